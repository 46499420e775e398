package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTodoText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid text", "buy milk", false},
		{"valid with leading space", "  buy milk", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TodoText(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "TodoText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestVisibilityFilter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"all", "SHOW_ALL", false},
		{"active", "SHOW_ACTIVE", false},
		{"completed", "SHOW_COMPLETED", false},
		{"empty", "", true},
		{"lowercase", "show_all", true},
		{"unknown", "SHOW_NONSENSE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VisibilityFilter(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "VisibilityFilter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// TodoText validates todo text is non-empty after trimming whitespace.
func TodoText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

// TodoTextField returns a criterio validator for todo text.
func TodoTextField(field, text string) error {
	return criterio.Run(field, text, TodoText)
}

// VisibilityFilter validates a filter name against the known set. The
// filter reducer accepts anything; this is for config and CLI input,
// where a typo should surface immediately.
func VisibilityFilter(name string) error {
	switch name {
	case "SHOW_ALL", "SHOW_ACTIVE", "SHOW_COMPLETED":
		return nil
	default:
		return fmt.Errorf("must be one of SHOW_ALL, SHOW_ACTIVE, SHOW_COMPLETED")
	}
}

// VisibilityFilterField returns a criterio validator for filter names.
func VisibilityFilterField(field, name string) error {
	return criterio.Run(field, name, VisibilityFilter)
}

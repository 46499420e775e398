package todo

import (
	"encoding/json"
	"fmt"

	"github.com/colonyops/todoloop/internal/core/state"
)

// DecodeAction rebuilds a domain action from its wire type name and
// JSON payload. Used by the journal to replay recorded histories.
func DecodeAction(typ string, payload []byte) (state.Action, error) {
	switch typ {
	case TypeAdd:
		var a Add
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("decode %s: %w", typ, err)
		}
		return a, nil
	case TypeToggle:
		var a Toggle
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("decode %s: %w", typ, err)
		}
		return a, nil
	case TypeSetFilter:
		var a SetFilter
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("decode %s: %w", typ, err)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unknown action type %q", typ)
	}
}

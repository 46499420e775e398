// Package journal records dispatched actions and replays them. The
// application state is a deterministic fold over its action history,
// so a journal is a complete, portable description of a session.
package journal

import (
	"encoding/json"
	"fmt"

	"github.com/colonyops/todoloop/internal/core/state"
	"github.com/colonyops/todoloop/internal/core/todo"
)

// Record is the serialized form of one dispatched action.
type Record struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Journal accumulates records in dispatch order.
type Journal struct {
	records []Record
}

// Attach registers the journal on the store so every successful
// dispatch is recorded. Actions that fail to marshal are skipped;
// domain actions are plain JSON-tagged structs, so this only happens
// for foreign action types.
func (j *Journal) Attach(s *state.Store[todo.AppState]) {
	s.OnDispatch(func(a state.Action, _ todo.AppState) {
		payload, err := json.Marshal(a)
		if err != nil {
			return
		}
		j.records = append(j.records, Record{Type: a.Type(), Payload: payload})
	})
}

// Records returns the recorded history in dispatch order.
func (j *Journal) Records() []Record {
	return j.records
}

// Replay folds a recorded history through a fresh store and returns
// the resulting state. Unknown action types and dispatch failures
// abort the replay; a journal is either valid or rejected whole.
func Replay(records []Record) (todo.AppState, error) {
	s, err := todo.NewStore()
	if err != nil {
		return todo.AppState{}, err
	}

	for i, r := range records {
		a, err := todo.DecodeAction(r.Type, r.Payload)
		if err != nil {
			return todo.AppState{}, fmt.Errorf("record %d: %w", i, err)
		}
		if err := s.Dispatch(a); err != nil {
			return todo.AppState{}, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return s.GetState(), nil
}

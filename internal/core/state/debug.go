package state

import "github.com/rs/zerolog"

// RegisterDebugLogger registers a dispatch hook that logs every action
// at debug level. Useful for tracing the action history behind a bug
// report: the log is the replayable input to the root reducer.
func RegisterDebugLogger[S any](s *Store[S], logger zerolog.Logger) {
	s.OnDispatch(func(a Action, _ S) {
		logger.Debug().Str("action", a.Type()).Msg("action dispatched")
	})
}

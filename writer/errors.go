package writer

import "errors"

// ErrAliasInJSON is returned for an alias event in JSON output, which has
// no references.
var ErrAliasInJSON = errors.New("alias in JSON output")

// Error reports an event sequence that does not form a single document.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

package lalr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned by a parser.
var (
	// ErrParseFailed is returned when the parser could not recover from a
	// syntax error. The delegate has been notified by ParseFailed.
	ErrParseFailed = errors.New("parse failed")

	// ErrSessionDone is returned for tokens fed after the parse terminated.
	ErrSessionDone = errors.New("parse already terminated")

	// ErrInvalidToken is returned for token symbols which are not terminals.
	ErrInvalidToken = errors.New("token is not a terminal")

	// ErrInconsistentTables is returned if the tables lack an entry the parse
	// depends on. This is a flaw of the tables, not of the input.
	ErrInconsistentTables = errors.New("inconsistent parser tables")
)

// ActionError is returned when a semantic action fails. The parse is aborted.
type ActionError struct {
	Rule int
	Err  error
}

func newActionError(rule int, err error) *ActionError {
	return &ActionError{Rule: rule, Err: errors.WithStack(err)}
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action for rule %d: %v", e.Rule, e.Err)
}

// Unwrap returns the error of the action.
func (e *ActionError) Unwrap() error {
	return e.Err
}

// Cause returns the error of the action, for github.com/pkg/errors.
func (e *ActionError) Cause() error {
	return e.Err
}

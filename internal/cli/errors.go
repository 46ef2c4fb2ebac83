package cli

import (
	stderrors "errors"
)

// reportedError marks an error the command has already shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// Reported reports whether err was already printed by the command that
// returned it
func Reported(err error) bool {
	var r *reportedError
	return stderrors.As(err, &r)
}

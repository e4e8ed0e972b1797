package exception

import (
	"errors"
	"fmt"
)

// ErrorCause points at the part of the request that caused an error, e.g.
// "path/origin" or "body/firstName".
type ErrorCause struct {
	Cause   string `json:"cause"`
	Message string `json:"message"`
}

// ApplicationError handles application level errors. Err is the short summary
// exposed to clients, Message the human readable explanation and Details the
// optional per-field causes. Cause carries the wrapped internal error and is
// never rendered to clients.
type ApplicationError struct {
	Err        string
	Message    string
	StatusCode int
	Details    []ErrorCause
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Err == targetErr.Err &&
		e.Message == targetErr.Message
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

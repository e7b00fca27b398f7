package validate

import "fmt"

// ValidationError reports an answer that cannot be accepted.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// NotFoundError reports a station query without any match.
type NotFoundError struct {
	Query string
	Err   error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("station not found: %q", e.Query)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

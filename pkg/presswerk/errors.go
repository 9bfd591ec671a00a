package presswerk

import "fmt"

// Error wraps a failure with the operation that produced it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("presswerk.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

package standin

import (
	"errors"
	"fmt"
)

var (
	// ErrCreation indicates that a substitute object could not be generated
	// for the supplied contract.
	ErrCreation = errors.New("mock creation failed")

	// ErrReference signals that a resolved object is not a substitute tracked
	// by this package.
	ErrReference = errors.New("referencing a non-mock object")
)

// UnexpectedInvocationError reports an intercepted call that no handler and
// no default hook could satisfy. It is recorded with the mock's exception
// guard and then raised as a panic value.
type UnexpectedInvocationError struct {
	// Invocation is the call that could not be handled.
	Invocation *Invocation
}

// Error describes the failed call, embedding the target, method, and
// argument list.
func (e *UnexpectedInvocationError) Error() string {
	return fmt.Sprintf("unexpected invocation: %s", e.Invocation)
}

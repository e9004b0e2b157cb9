package standin

import (
	"fmt"
	"strings"
)

// Invocation is an immutable snapshot of one intercepted method call: the
// owning mock, the substitute the call was made against, the method name,
// and the ordered argument list. A fresh Invocation is built per call and
// never reused.
type Invocation struct {
	mock   *Mock
	object any
	method string
	args   []any
}

func newInvocation(m *Mock, object any, method string, args []any) *Invocation {
	// Snapshot the arguments so later caller-side mutation cannot alter the
	// recorded call.
	snapshot := make([]any, len(args))
	copy(snapshot, args)
	return &Invocation{mock: m, object: object, method: method, args: snapshot}
}

// Mock returns the mock that owns the invoked substitute.
func (inv *Invocation) Mock() *Mock { return inv.mock }

// Object returns the substitute the call was made against.
func (inv *Invocation) Object() any { return inv.object }

// Method returns the invoked method name.
func (inv *Invocation) Method() string { return inv.method }

// Args returns a copy of the ordered argument list.
func (inv *Invocation) Args() []any {
	out := make([]any, len(inv.args))
	copy(out, inv.args)
	return out
}

// String renders the call as <mock>.<method>(<args>).
func (inv *Invocation) String() string {
	rendered := make([]string, len(inv.args))
	for i, arg := range inv.args {
		rendered[i] = fmt.Sprintf("%v", arg)
	}
	return fmt.Sprintf("%s.%s(%s)", inv.mock.Name(), inv.method, strings.Join(rendered, ", "))
}

// Result is the decided outcome for an Invocation: values to return to the
// intercepted caller, or an error to raise instead.
type Result struct {
	values []any
	err    error
}

// Return builds a Result that yields the given return values.
func Return(values ...any) *Result {
	return &Result{values: values}
}

// Raise builds a Result that raises err when applied.
func Raise(err error) *Result {
	return &Result{err: err}
}

// Apply performs the return-or-raise decision: it returns the recorded
// values, or panics with the recorded error, exactly as the handler produced
// them. The dispatcher applies results verbatim and never reinterprets them.
func (r *Result) Apply() []any {
	if r.err != nil {
		panic(r.err)
	}
	return r.values
}

// At returns the i-th element of a dispatched value list, or nil when the
// handler produced fewer values than the substitute expects. Generated stubs
// read their results through At, so a short handler yields zero values
// instead of an index panic.
func At(values []any, i int) any {
	if i < 0 || i >= len(values) {
		return nil
	}
	return values[i]
}

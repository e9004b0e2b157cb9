package standin

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/standin-project/standin/guard"
)

// Kind identifies the role a handler plays for a mock. The set is closed:
// each kind owns exactly one slot in the mock's handler table.
type Kind int

const (
	// Constructor handles calls made while the mock's behavior is being
	// recorded.
	Constructor Kind = iota

	// Checker handles calls made while the code under test runs, verifying
	// them against the recorded behavior.
	Checker

	kindCount
)

// String returns the kind's lower-case role name.
func (k Kind) String() string {
	switch k {
	case Constructor:
		return "constructor"
	case Checker:
		return "checker"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Mock dispatches every method call intercepted by its substitute object.
// Calls route through the selected handler when one is configured, fall back
// to the default hooks, and otherwise raise an UnexpectedInvocationError
// after recording it with the exception guard.
//
// A Mock is created only through New and is mutated only through handler
// assignment and removal.
type Mock struct {
	uid      uint64
	contract Contract
	name     string
	object   any
	handlers [kindCount]Handler
	hooks    hooks
	guard    *guard.Guard
	tracker  Tracker
	logger   *zap.Logger
}

// ID returns the mock's process-unique identifier.
func (m *Mock) ID() uint64 { return m.uid }

// Contract returns the contract this mock was created for.
func (m *Mock) Contract() Contract { return m.contract }

// Object returns the substitute object owned by this mock.
func (m *Mock) Object() any { return m.object }

// Name returns the mock's display name.
func (m *Mock) Name() string { return m.name }

// String returns the display name verbatim.
func (m *Mock) String() string { return m.name }

// SetHandler associates a handler with the slot for the given kind and
// registers the mock for end-of-test cleanup. Overwriting a non-Constructor
// slot simply replaces the previous handler. Assigning Constructor while the
// Constructor slot is occupied is a dispatcher bug and panics: handler
// collaborators must tear down a construction phase before starting another.
func (m *Mock) SetHandler(kind Kind, handler Handler) {
	if kind < 0 || kind >= kindCount {
		panic(fmt.Sprintf("BUG: unknown handler kind %d", int(kind)))
	}
	if kind == Constructor && m.handlers[Constructor] != nil {
		panic(fmt.Sprintf("BUG: %s: constructing twice", m.name))
	}

	m.handlers[kind] = handler
	m.tracker.Register(m)
	m.logger.Debug("handler set", zap.String("mock", m.name), zap.Stringer("kind", kind))
}

// UnsetHandler clears the slot for the given kind. Clearing an empty slot is
// a no-op.
func (m *Mock) UnsetHandler(kind Kind) {
	if kind < 0 || kind >= kindCount {
		panic(fmt.Sprintf("BUG: unknown handler kind %d", int(kind)))
	}

	m.handlers[kind] = nil
	m.logger.Debug("handler unset", zap.String("mock", m.name), zap.Stringer("kind", kind))
}

// ClearHandlers clears every handler slot unconditionally. It is idempotent
// and is what the cleanup tracker calls between test cases.
func (m *Mock) ClearHandlers() {
	for kind := range m.handlers {
		m.handlers[kind] = nil
	}
	m.logger.Debug("handlers cleared", zap.String("mock", m.name))
}

// selectHandler puts the priority on the constructor: construction-time
// behavior always preempts verification-time behavior when both are
// configured.
func (m *Mock) selectHandler() Handler {
	if m.handlers[Constructor] != nil {
		return m.handlers[Constructor]
	}
	return m.handlers[Checker]
}

// Dispatch routes one intercepted call and applies the outcome. Substitute
// methods call Dispatch with their method name and arguments and receive the
// return values decided by the selected handler or default hook; a raised
// outcome surfaces as a panic carrying the handler's error.
func (m *Mock) Dispatch(method string, args ...any) []any {
	inv := newInvocation(m, m.object, method, args)

	if handler := m.selectHandler(); handler != nil {
		m.logger.Debug("dispatching to handler", zap.Stringer("invocation", inv))
		return handler.Invoke(inv).Apply()
	}

	m.logger.Debug("no handler, trying default hooks", zap.Stringer("invocation", inv))
	return m.tryDefault(inv).Apply()
}

// tryDefault resolves an invocation through the default hooks or fails it as
// unexpected.
func (m *Mock) tryDefault(inv *Invocation) *Result {
	if result := m.hooks.try(inv); result != nil {
		return result
	}

	// A test may be mid-assertion and counting on capturing this exact
	// failure, so the guard records the error before it is raised. Raising
	// still happens unconditionally.
	err := &UnexpectedInvocationError{Invocation: inv}
	m.guard.Record(err)
	panic(err)
}

package standin

import "reflect"

// hook is one built-in behavior: a strict argument count plus the function
// producing the result.
type hook struct {
	arity int
	fn    func(inv *Invocation) *Result
}

// hooks is the table of built-in behaviors consulted when a mock has no
// handler. It covers the universal object-contract methods so substitutes
// remain printable, comparable, and hashable without recorded expectations.
type hooks struct {
	byMethod map[string]hook
}

func defaultHooks(m *Mock) hooks {
	return hooks{byMethod: map[string]hook{
		// Stringer support: the substitute prints as the mock's display name.
		"String": {arity: 0, fn: func(*Invocation) *Result {
			return Return(m.Name())
		}},
		// Identity comparison against the substitute object itself.
		"Equal": {arity: 1, fn: func(inv *Invocation) *Result {
			return Return(sameObject(inv.Args()[0], m.Object()))
		}},
		// The unique id doubles as a stable identity hash.
		"Hash": {arity: 0, fn: func(*Invocation) *Result {
			return Return(m.ID())
		}},
	}}
}

// try returns a Result when a built-in behavior exists for the invocation,
// nil otherwise. A name match with the wrong argument count is not a match.
func (h hooks) try(inv *Invocation) *Result {
	hk, ok := h.byMethod[inv.Method()]
	if !ok || hk.arity != len(inv.args) {
		return nil
	}
	return hk.fn(inv)
}

// sameObject reports whether other is the very substitute object, tolerating
// values that do not support comparison. The check is on the value, not the
// type: a comparable type can still hold a value comparison panics on.
func sameObject(other, object any) bool {
	if other == nil || !reflect.ValueOf(other).Comparable() {
		return false
	}
	return other == object
}

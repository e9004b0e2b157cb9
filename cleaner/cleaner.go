package cleaner

// Resettable is anything whose recorded behavior can be purged between test
// cases.
type Resettable interface {
	ClearHandlers()
}

// Tracker remembers every mock that received a handler so their handlers can
// be cleared in one sweep at the end of a test case.
//
// Trackers perform no internal locking and assume one externally
// synchronized test case at a time.
type Tracker struct {
	seen  map[Resettable]struct{}
	order []Resettable
}

// New creates an empty Tracker.
func New() *Tracker {
	return &Tracker{seen: map[Resettable]struct{}{}}
}

// defaultTracker is shared by every mock created without an explicit tracker.
var defaultTracker = New()

// Default returns the process-wide tracker.
func Default() *Tracker { return defaultTracker }

// Register remembers r for the next Cleanup. Registering the same value
// again has no effect; nil is ignored.
func (t *Tracker) Register(r Resettable) {
	if r == nil {
		return
	}
	if _, ok := t.seen[r]; ok {
		return
	}
	t.seen[r] = struct{}{}
	t.order = append(t.order, r)
}

// Len returns the number of mocks currently registered.
func (t *Tracker) Len() int { return len(t.order) }

// Cleanup clears the handlers of every registered mock, in registration
// order, and forgets them. Calling Cleanup again without new registrations
// is a no-op.
func (t *Tracker) Cleanup() {
	for _, r := range t.order {
		r.ClearHandlers()
	}
	t.order = nil
	t.seen = map[Resettable]struct{}{}
}

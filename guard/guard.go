package guard

import "github.com/eapache/queue"

// Guard optionally catches errors the dispatcher is about to raise so a test
// can assert on them later. A Guard captures only while armed; recording on
// a disarmed guard drops the error.
//
// Guards perform no internal locking and assume one externally synchronized
// test case at a time.
type Guard struct {
	armed  bool
	caught *queue.Queue
}

// New creates an unarmed Guard with nothing captured.
func New() *Guard {
	return &Guard{caught: queue.New()}
}

// defaultGuard is shared by every mock created without an explicit guard.
var defaultGuard = New()

// Default returns the process-wide guard.
func Default() *Guard { return defaultGuard }

// Arm starts capturing recorded errors.
func (g *Guard) Arm() { g.armed = true }

// Armed reports whether the guard is currently capturing.
func (g *Guard) Armed() bool { return g.armed }

// Record stores err for later assertion. Disarmed guards and nil errors are
// ignored. Recording never prevents the caller from raising err afterwards.
func (g *Guard) Record(err error) {
	if !g.armed || err == nil {
		return
	}
	g.caught.Add(err)
}

// Release disarms the guard and drains the captured errors in the order they
// were recorded.
func (g *Guard) Release() []error {
	g.armed = false
	out := make([]error, 0, g.caught.Length())
	for g.caught.Length() > 0 {
		out = append(out, g.caught.Remove().(error))
	}
	return out
}

// Empty reports whether no errors are currently captured.
func (g *Guard) Empty() bool { return g.caught.Length() == 0 }

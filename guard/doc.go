/*
Package guard lets a test capture an unexpected-invocation failure that would
otherwise propagate, so it can be asserted on after the fact.

The dispatcher hands every unexpected-invocation error to its guard's Record
before raising it. Recording is advisory: whether or not the guard keeps the
error, the raise still happens. An unarmed guard drops everything, so idle
mocks cost nothing; a test that expects a failure arms the guard, provokes
the call, recovers, and drains the capture with Release.

	g := guard.New()
	g.Arm()

	func() {
	  defer func() { _ = recover() }()
	  substitute.SayHi("Ada") // no handler: records, then raises
	}()

	caught := g.Release() // the UnexpectedInvocationError, in FIFO order

Mocks created without an explicit guard share the process-wide Default guard.
Tests that need isolation construct their own with New and inject it through
the mock factory configuration.
*/
package guard

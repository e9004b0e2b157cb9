/*
Package standin is the dispatch engine beneath a test-double library.

Given a Contract describing an interface surface, the factory produces a
substitute object that stands in for a real implementation. Every method call
made against the substitute is intercepted and routed through the owning
Mock's dispatcher: a configured handler decides the outcome, built-in default
hooks cover the universal object methods, and anything left over fails loudly
as an unexpected invocation.

Why use standin?

  - Record behavior: assign a handler and decide per call what the substitute
    returns or raises.
  - Verify behavior: every intercepted call arrives as an immutable Invocation
    carrying the target, method name, and argument list.
  - Fail fast: calls nothing can handle raise an UnexpectedInvocationError
    whose message embeds the full call description.

Quick start

	obj, err := standin.New(standin.Config{Contract: GreeterContract()})
	if err != nil {
	  // handle creation failure
	}

	g := obj.(*GreeterStub)
	m, _ := standin.Resolve(g)
	m.SetHandler(standin.Checker, standin.HandlerFunc(func(inv *standin.Invocation) *standin.Result {
	  return standin.Return("Hi " + inv.Args()[0].(string))
	}))

	g.SayHi("Ada") // "Hi Ada"

Substitutes are ordinary structs that forward each method to Dispatch; the
standingen tool (cmd/standingen) generates them from interface declarations,
so no reflection proxying is involved at call time.

Dispatch behavior

  - A Constructor handler, when present, always wins over a Checker handler:
    what the mock should return while being configured preempts what it should
    assert once the code under test runs.
  - With no handler, default hooks answer String, Equal, and Hash.
  - Otherwise the dispatcher records an UnexpectedInvocationError with the
    mock's exception guard and then panics with it. Recording always happens
    first, and the panic always happens.

# Concurrency

The dispatcher executes on the calling goroutine with no internal locking.
The id counter, the substitute registry, and the handler slots assume one
externally synchronized test case at a time; concurrent use of the same mock
requires caller-side synchronization.
*/
package standin

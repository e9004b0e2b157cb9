/*
Package gen generates substitute stubs for interface contracts.

A stub is an ordinary struct that holds its mock dispatcher and forwards
every method call to it, so interception needs no reflection proxying at call
time. For an interface Greeter, the generator emits:

  - a GreeterStub struct whose methods forward name and arguments to
    Dispatch and type-assert the returned values;
  - a GreeterContract function describing Greeter to the mock factory;
  - a NewGreeter convenience constructor returning a typed *GreeterStub.

Generation is split in two halves: Generate loads a package by pattern using
go/packages and locates the requested interfaces, while the describe/render
half works purely on go/types data and can be driven from in-memory sources.

Generated files are intended to live in the contract's own package; the
output package name merely defaults to it and may be overridden when the
interface's method surface does not reference package-local types.

Variadic parameters are forwarded as their slice value, so a handler sees the
variadic tail as a single argument.

The standingen command (cmd/standingen) is the CLI front-end.
*/
package gen

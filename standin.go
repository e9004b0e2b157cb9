package standin

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/standin-project/standin/cleaner"
	"github.com/standin-project/standin/guard"
)

// Contract describes a mockable surface: an interface's simple name plus a
// builder that constructs the substitute object standing in for it. The
// contract is immutable once a mock exists for it.
type Contract struct {
	// Name is the contract's simple name, used to derive default mock names.
	Name string

	// Build constructs the substitute object wired to forward every method
	// call to the given dispatcher. Substitutes are typically generated by
	// the standingen tool.
	Build func(*Mock) any
}

// Handler turns an intercepted Invocation into a Result. Handler
// implementations record and match expected behavior; the dispatcher only
// selects one and applies whatever Result it produces.
//
// A returning Result is expected to carry one value per result the invoked
// method declares, matching types. Substitutes tolerate missing or mistyped
// values by yielding zero values in their place.
type Handler interface {
	Invoke(inv *Invocation) *Result
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(inv *Invocation) *Result

// Invoke calls fn.
func (fn HandlerFunc) Invoke(inv *Invocation) *Result { return fn(inv) }

// Tracker registers mocks so their handlers can be purged between test cases.
type Tracker interface {
	Register(r cleaner.Resettable)
}

// Config provides configuration options for creating a mock.
type Config struct {
	// Contract describes the surface the substitute object must satisfy.
	Contract Contract

	// Name is the mock's display name. If empty, a name is derived as
	// Mock(<contract-name>)$<id>.
	Name string

	// Guard receives every unexpected-invocation error before it is raised.
	// If nil, the process-wide guard.Default() is used.
	Guard *guard.Guard

	// Tracker is notified when the mock receives a handler. If nil, the
	// process-wide cleaner.Default() is used.
	Tracker Tracker

	// Logger traces dispatcher activity. If nil, logging is disabled.
	Logger *zap.Logger
}

// uidCount assigns process-unique mock identifiers. Identifiers are
// monotonically increasing and are never reused or reset.
var uidCount uint64

// substitutes maps each substitute object back to its owning mock. Exactly
// one mock owns a given substitute.
var substitutes = map[any]*Mock{}

// New generates a substitute object for the supplied contract and registers
// a fresh Mock as its dispatcher. The returned object is the substitute
// itself; use Resolve to recover the Mock.
//
// New fails with an ErrCreation-wrapped error when the contract cannot be
// satisfied: a missing builder, a builder that produces nil, or a substitute
// whose type cannot be tracked.
func New(config Config) (any, error) {
	if config.Contract.Build == nil {
		return nil, fmt.Errorf("%w: contract %q has no builder", ErrCreation, config.Contract.Name)
	}

	m := &Mock{
		uid:      uidCount,
		contract: config.Contract,
		guard:    config.Guard,
		tracker:  config.Tracker,
		logger:   config.Logger,
	}
	uidCount++

	// Fill in defaults for everything left unset
	if m.guard == nil {
		m.guard = guard.Default()
	}
	if m.tracker == nil {
		m.tracker = cleaner.Default()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}

	m.name = config.Name
	if m.name == "" {
		m.name = fmt.Sprintf("Mock(%s)$%d", config.Contract.Name, m.uid)
	}
	m.hooks = defaultHooks(m)

	obj := config.Contract.Build(m)
	if obj == nil {
		return nil, fmt.Errorf("%w: builder for contract %q returned nil", ErrCreation, config.Contract.Name)
	}
	// Comparability must be checked on the value: a comparable type can still
	// hold an unhashable value the registry cannot key on.
	if !reflect.ValueOf(obj).Comparable() {
		return nil, fmt.Errorf("%w: substitute type %T cannot be tracked", ErrCreation, obj)
	}

	m.object = obj
	substitutes[obj] = m

	m.logger.Debug("mock created",
		zap.Uint64("id", m.uid),
		zap.String("name", m.name),
		zap.String("contract", config.Contract.Name))

	return obj, nil
}

// Resolve returns the Mock that owns the given substitute object. It fails
// with an ErrReference-wrapped error when the object is nil, untracked, or
// not the kind of value a substitute can be.
func Resolve(object any) (*Mock, error) {
	if object == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrReference)
	}
	if !reflect.ValueOf(object).Comparable() {
		return nil, fmt.Errorf("%w: %T", ErrReference, object)
	}
	m, ok := substitutes[object]
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrReference, object)
	}
	return m, nil
}

// ResolveOrPass returns the owning Mock when the given object is a tracked
// substitute and the object itself, unchanged, otherwise. Unlike Resolve it
// never fails, making it safe for collaborators that must tolerate both mock
// and non-mock arguments, including nil.
func ResolveOrPass(object any) any {
	m, err := Resolve(object)
	if err != nil {
		return object
	}
	return m
}

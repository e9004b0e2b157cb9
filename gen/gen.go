package gen

import (
	"errors"
	"fmt"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

var (
	// ErrPackageLoad indicates that the source package pattern could not be
	// loaded or type-checked.
	ErrPackageLoad = errors.New("package load failed")

	// ErrInterfaceNotFound is returned when no loaded package declares the
	// requested name.
	ErrInterfaceNotFound = errors.New("interface not found")

	// ErrNotAnInterface is returned when the requested name resolves to a
	// non-interface type.
	ErrNotAnInterface = errors.New("type is not an interface")

	// ErrNoInterfaces is returned when generation is requested for nothing.
	ErrNoInterfaces = errors.New("no interfaces requested")
)

// Config controls stub generation.
type Config struct {
	// Dir is the directory the package pattern is resolved from. Empty means
	// the current directory.
	Dir string

	// Package is the package pattern to load, for example "." or
	// "./internal/service".
	Package string

	// Interfaces are the interface names to generate stubs for.
	Interfaces []string

	// OutPackage is the package clause of the generated file. Defaults to
	// the name of the package declaring the first interface.
	OutPackage string
}

// Generate loads the configured package pattern and renders forwarding stubs
// for the requested interfaces as a single formatted Go source file.
func Generate(config Config) ([]byte, error) {
	if len(config.Interfaces) == 0 {
		return nil, ErrNoInterfaces
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedImports | packages.NeedDeps,
		Dir:  config.Dir,
	}
	pkgs, err := packages.Load(cfg, config.Package)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackageLoad, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("%w: pattern %q", ErrPackageLoad, config.Package)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: pattern %q matched nothing", ErrPackageLoad, config.Package)
	}

	// The first interface pins the source package; the rest must live there
	// too so the generated file has a single home.
	src, err := lookupPackage(pkgs, config.Interfaces[0])
	if err != nil {
		return nil, err
	}

	b := newBuilder(src.Types)
	stubs := make([]Stub, 0, len(config.Interfaces))
	for _, name := range config.Interfaces {
		obj := src.Types.Scope().Lookup(name)
		if obj == nil {
			return nil, fmt.Errorf("%w: %q in package %s", ErrInterfaceNotFound, name, src.PkgPath)
		}
		iface, ok := obj.Type().Underlying().(*types.Interface)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotAnInterface, name)
		}
		stubs = append(stubs, b.describe(name, iface))
	}

	outPkg := config.OutPackage
	if outPkg == "" {
		outPkg = src.Name
	}

	return render(file{Package: outPkg, Imports: b.importSpecs(), Stubs: stubs})
}

func lookupPackage(pkgs []*packages.Package, name string) (*packages.Package, error) {
	for _, pkg := range pkgs {
		if pkg.Types != nil && pkg.Types.Scope().Lookup(name) != nil {
			return pkg, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInterfaceNotFound, name)
}

// Stub describes one generated substitute type.
type Stub struct {
	// Interface is the contract's simple name.
	Interface string

	// Methods are the forwarded methods, ordered as go/types presents them.
	Methods []Method
}

// Method describes one forwarded method, pre-rendered for the template.
type Method struct {
	// Name is the method name.
	Name string

	// Signature is the parameter and result list, for example
	// "(name string, opts ...string) (int, error)".
	Signature string

	// CallArgs is the argument tail passed to Dispatch, for example
	// ", name, opts".
	CallArgs string

	// Results are the result type strings, used to type-assert the
	// dispatched values.
	Results []string
}

type importSpec struct {
	// Alias is set when the package name differs from the import path base.
	Alias string
	Path  string
}

// builder renders go/types data into Stub values, accumulating the imports
// the rendered type strings rely on.
type builder struct {
	from  *types.Package
	names map[string]string // import path -> assigned local name
	used  map[string]bool   // local names already taken
}

func newBuilder(from *types.Package) *builder {
	return &builder{
		from:  from,
		names: map[string]string{},
		// The template unconditionally imports the dispatcher package under
		// this name, so no source import may claim it.
		used: map[string]bool{"standin": true},
	}
}

// qualify is the types.Qualifier used for every rendered type: local types
// stay bare, everything else is package-qualified and recorded for the
// import block. Packages sharing a base name get numbered aliases so the
// generated import block stays unambiguous.
func (b *builder) qualify(p *types.Package) string {
	if p == nil || p == b.from {
		return ""
	}
	if name, ok := b.names[p.Path()]; ok {
		return name
	}

	name := p.Name()
	for i := 2; b.used[name]; i++ {
		name = fmt.Sprintf("%s%d", p.Name(), i)
	}
	b.names[p.Path()] = name
	b.used[name] = true
	return name
}

func (b *builder) describe(name string, iface *types.Interface) Stub {
	stub := Stub{Interface: name}
	for i := 0; i < iface.NumMethods(); i++ {
		fn := iface.Method(i)
		sig := fn.Type().(*types.Signature)
		stub.Methods = append(stub.Methods, b.method(fn.Name(), sig))
	}
	return stub
}

func (b *builder) method(name string, sig *types.Signature) Method {
	m := Method{Name: name}

	params := make([]string, sig.Params().Len())
	args := make([]string, sig.Params().Len())
	for i := 0; i < sig.Params().Len(); i++ {
		v := sig.Params().At(i)
		pname := paramName(v.Name(), i)
		ptype := types.TypeString(v.Type(), b.qualify)
		if sig.Variadic() && i == sig.Params().Len()-1 {
			elem := v.Type().(*types.Slice).Elem()
			ptype = "..." + types.TypeString(elem, b.qualify)
		}
		params[i] = pname + " " + ptype
		args[i] = pname
	}

	results := make([]string, sig.Results().Len())
	for i := 0; i < sig.Results().Len(); i++ {
		results[i] = types.TypeString(sig.Results().At(i).Type(), b.qualify)
	}

	m.Signature = "(" + strings.Join(params, ", ") + ")" + resultClause(results)
	if len(args) > 0 {
		m.CallArgs = ", " + strings.Join(args, ", ")
	}
	m.Results = results
	return m
}

func (b *builder) importSpecs() []importSpec {
	specs := make([]importSpec, 0, len(b.names))
	for path, name := range b.names {
		spec := importSpec{Path: path}
		if base := path[strings.LastIndex(path, "/")+1:]; base != name {
			spec.Alias = name
		}
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Path < specs[j].Path })
	return specs
}

// paramName keeps the declared parameter name unless it is missing or would
// collide with an identifier the stub body uses.
func paramName(name string, i int) string {
	switch name {
	case "", "_", "s", "out", "m":
		return fmt.Sprintf("p%d", i)
	}
	return name
}

func resultClause(results []string) string {
	switch len(results) {
	case 0:
		return ""
	case 1:
		return " " + results[0]
	default:
		return " (" + strings.Join(results, ", ") + ")"
	}
}

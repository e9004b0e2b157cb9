package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSrc = `package sample

type Greeter interface {
	SayHi(name string) string
	Announce(topic string, listeners ...string) (int, error)
	Reset()
}

type Plain struct{}
`

// checkSample type-checks the in-memory sample package so describe and
// render can be exercised without loading anything from disk.
func checkSample(t *testing.T) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "sample.go", sampleSrc, 0)
	require.NoError(t, err)

	conf := types.Config{}
	pkg, err := conf.Check("example.com/sample", fset, []*ast.File{f}, nil)
	require.NoError(t, err)
	return pkg
}

func sampleInterface(t *testing.T, pkg *types.Package, name string) *types.Interface {
	t.Helper()
	obj := pkg.Scope().Lookup(name)
	require.NotNil(t, obj)
	iface, ok := obj.Type().Underlying().(*types.Interface)
	require.True(t, ok)
	return iface
}

func methodByName(t *testing.T, stub Stub, name string) Method {
	t.Helper()
	for _, m := range stub.Methods {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("method %q not described", name)
	return Method{}
}

func TestDescribe(t *testing.T) {
	pkg := checkSample(t)
	b := newBuilder(pkg)
	stub := b.describe("Greeter", sampleInterface(t, pkg, "Greeter"))

	assert.Equal(t, "Greeter", stub.Interface)
	require.Len(t, stub.Methods, 3)

	t.Run("Plain Method", func(t *testing.T) {
		m := methodByName(t, stub, "SayHi")
		assert.Equal(t, "(name string) string", m.Signature)
		assert.Equal(t, ", name", m.CallArgs)
		assert.Equal(t, []string{"string"}, m.Results)
	})

	t.Run("Variadic Multi Result", func(t *testing.T) {
		m := methodByName(t, stub, "Announce")
		assert.Equal(t, "(topic string, listeners ...string) (int, error)", m.Signature)
		assert.Equal(t, ", topic, listeners", m.CallArgs)
		assert.Equal(t, []string{"int", "error"}, m.Results)
	})

	t.Run("No Params No Results", func(t *testing.T) {
		m := methodByName(t, stub, "Reset")
		assert.Equal(t, "()", m.Signature)
		assert.Equal(t, "", m.CallArgs)
		assert.Empty(t, m.Results)
	})

	t.Run("Local Types Need No Imports", func(t *testing.T) {
		assert.Empty(t, b.importSpecs())
	})
}

func TestRender(t *testing.T) {
	pkg := checkSample(t)
	b := newBuilder(pkg)
	stub := b.describe("Greeter", sampleInterface(t, pkg, "Greeter"))

	out, err := render(file{Package: "sample", Imports: b.importSpecs(), Stubs: []Stub{stub}})
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, "// Code generated by standingen. DO NOT EDIT.")
	assert.Contains(t, src, "package sample")
	assert.Contains(t, src, `standin "github.com/standin-project/standin"`)

	assert.Contains(t, src, "type GreeterStub struct")
	assert.Contains(t, src, "func GreeterContract() standin.Contract")
	assert.Contains(t, src, "func NewGreeter(config standin.Config) (*GreeterStub, error)")
	assert.Contains(t, src, "func (s *GreeterStub) Mock() *standin.Mock")

	assert.Contains(t, src, "func (s *GreeterStub) SayHi(name string) string")
	assert.Contains(t, src, `out := s.mock.Dispatch("SayHi", name)`)
	assert.Contains(t, src, "r0, _ := standin.At(out, 0).(string)")

	assert.Contains(t, src, "func (s *GreeterStub) Announce(topic string, listeners ...string) (int, error)")
	assert.Contains(t, src, "r1, _ := standin.At(out, 1).(error)")

	// A method without results forwards without capturing dispatch output.
	assert.Contains(t, src, `s.mock.Dispatch("Reset")`)
	assert.NotContains(t, src, `out := s.mock.Dispatch("Reset")`)

	// The generated file must itself be valid Go.
	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, "generated.go", src, 0)
	require.NoError(t, err)
}

func TestQualifyImportCollisions(t *testing.T) {
	b := newBuilder(types.NewPackage("example.com/sample", "sample"))

	alpha := types.NewPackage("example.com/alpha/types", "types")
	beta := types.NewPackage("example.com/beta/types", "types")

	// Colliding base names get numbered aliases; repeated qualification of
	// the same package stays stable.
	assert.Equal(t, "types", b.qualify(alpha))
	assert.Equal(t, "types2", b.qualify(beta))
	assert.Equal(t, "types", b.qualify(alpha))

	// The dispatcher import name is reserved for the template.
	clash := types.NewPackage("example.com/standin", "standin")
	assert.Equal(t, "standin2", b.qualify(clash))

	specs := b.importSpecs()
	require.Len(t, specs, 3)
	assert.Equal(t, importSpec{Path: "example.com/alpha/types"}, specs[0])
	assert.Equal(t, importSpec{Alias: "types2", Path: "example.com/beta/types"}, specs[1])
	assert.Equal(t, importSpec{Alias: "standin2", Path: "example.com/standin"}, specs[2])
}

func TestGenerateErrors(t *testing.T) {
	t.Run("No Interfaces Requested", func(t *testing.T) {
		_, err := Generate(Config{Package: "."})
		require.ErrorIs(t, err, ErrNoInterfaces)
	})
}

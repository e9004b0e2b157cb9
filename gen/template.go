package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// file is the root value rendered into one generated source file.
type file struct {
	Package string
	Imports []importSpec
	Stubs   []Stub
}

const fileTemplate = `// Code generated by standingen. DO NOT EDIT.

package {{.Package}}

import (
	standin "github.com/standin-project/standin"
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{range .Stubs}}
// {{.Interface}}Stub is a substitute implementation of {{.Interface}} that
// forwards every method call to its mock dispatcher.
type {{.Interface}}Stub struct {
	mock *standin.Mock
}

// {{.Interface}}Contract describes {{.Interface}} to the mock factory.
func {{.Interface}}Contract() standin.Contract {
	return standin.Contract{
		Name: "{{.Interface}}",
		Build: func(m *standin.Mock) any {
			return &{{.Interface}}Stub{mock: m}
		},
	}
}

// New{{.Interface}} creates a mock substitute for {{.Interface}}.
func New{{.Interface}}(config standin.Config) (*{{.Interface}}Stub, error) {
	config.Contract = {{.Interface}}Contract()
	obj, err := standin.New(config)
	if err != nil {
		return nil, err
	}
	return obj.(*{{.Interface}}Stub), nil
}

// Mock returns the dispatcher owning this substitute.
func (s *{{.Interface}}Stub) Mock() *standin.Mock {
	return s.mock
}
{{$iface := .Interface}}
{{- range .Methods}}
func (s *{{$iface}}Stub) {{.Name}}{{.Signature}} {
{{- if .Results}}
	out := s.mock.Dispatch("{{.Name}}"{{.CallArgs}})
{{- range $i, $t := .Results}}
	r{{$i}}, _ := standin.At(out, {{$i}}).({{$t}})
{{- end}}
	return {{range $i, $t := .Results}}{{if $i}}, {{end}}r{{$i}}{{end}}
{{- else}}
	s.mock.Dispatch("{{.Name}}"{{.CallArgs}})
{{- end}}
}
{{end}}
{{- end}}
`

var stubTemplate = template.Must(template.New("stubs").Parse(fileTemplate))

// render executes the stub template and gofmt-formats the output.
func render(f file) ([]byte, error) {
	var buf bytes.Buffer
	if err := stubTemplate.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("rendering stubs: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

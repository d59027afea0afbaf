package gen

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"text/template"

	"golang.org/x/tools/imports"
)

type (
	fileModel struct {
		Package    string
		StdImports []string
		PkgImports []string
		Tables     []*tableModel
	}

	tableModel struct {
		*TableDef
		DerivedConsts []*derivedConst
	}

	derivedConst struct {
		Name  string
		Value string
	}
)

// entryImport provides the Entry type every generated table is built from
const entryImport = "github.com/kode4food/constmap/table"

var (
	ErrBadGenerated = errors.New("generated source failed to format")

	fileTemplate = template.Must(
		template.New("constmap").Parse(fileSource),
	)
)

const fileSource = `// Code generated by constmapgen; DO NOT EDIT.

package {{.Package}}

import (
{{- range .StdImports}}
	"{{.}}"
{{- end}}
{{- if .StdImports}}
{{end}}
{{- range .PkgImports}}
	"{{.}}"
{{- end}}
)
{{- range .Tables}}

// {{.Table}} is a fixed table of {{.Count}} entries in declaration order
var {{.Table}} = [{{.Count}}]table.Entry[{{.KeyType}}, {{.ValueType}}]{
{{- range .Entries}}
	{Key: {{.Key}}, Value: {{.Value}}},
{{- end}}
}

// {{.Lookup}} returns the value of the first {{.Table}} entry matching key
func {{if .Receiver}}({{.Receiver}}) {{end}}{{.Lookup}}(key {{.KeyType}}) ({{.ValueType}}, bool) {
	for _, e := range {{.Table}} {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero {{.ValueType}}
	return zero, false
}
{{- if .Must}}

// {{.Must}} behaves like {{.Lookup}}, panicking when no entry matches
func {{if .Receiver}}(t {{.Receiver}}) {{end}}{{.Must}}(key {{.KeyType}}) {{.ValueType}} {
	if v, ok := {{if .Receiver}}t.{{end}}{{.Lookup}}(key); ok {
		return v
	}
	panic(fmt.Errorf("%w: %v", table.ErrKeyNotFound, key))
}
{{- end}}
{{- if .DerivedConsts}}

// Constants derived from {{.Table}}
const (
{{- range .DerivedConsts}}
	{{.Name}} = {{.Value}}
{{- end}}
)
{{- end}}
{{- end}}
`

func (f *File) emitModel(log *slog.Logger) (*fileModel, error) {
	res := &fileModel{
		Package:    f.Package,
		PkgImports: []string{entryImport},
	}
	needFmt := false
	for _, t := range f.Tables {
		for _, i := range t.shadowed() {
			log.Debug("entry shadowed by an earlier duplicate key",
				"table", t.Table, "entry", i)
		}
		dc, err := t.resolveDerived()
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Table, err)
		}
		if t.Must != "" {
			needFmt = true
		}
		res.Tables = append(res.Tables, &tableModel{
			TableDef:      t,
			DerivedConsts: dc,
		})
	}
	if needFmt {
		res.StdImports = append(res.StdImports, "fmt")
	}
	res.PkgImports = append(res.PkgImports, f.Imports...)
	sort.Strings(res.PkgImports)
	return res, nil
}

func (m *fileModel) render() ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, m); err != nil {
		return nil, err
	}
	res, err := imports.Process("constmap_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadGenerated, err)
	}
	return res, nil
}

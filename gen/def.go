package gen

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"
)

type (
	// File describes a single generated Go source file and the lookup
	// tables it will contain
	File struct {
		Package string      `yaml:"package"`
		Imports []string    `yaml:"imports,omitempty"`
		Tables  []*TableDef `yaml:"tables"`
	}

	// TableDef describes one table and its lookup function. The requested
	// names carry their own visibility: an exported identifier produces an
	// exported item, an unexported identifier a package-private one. When
	// Receiver is set, the lookup and must functions are emitted as methods
	// of that type
	TableDef struct {
		Receiver  string        `yaml:"receiver,omitempty"`
		Table     string        `yaml:"table"`
		Lookup    string        `yaml:"lookup"`
		Must      string        `yaml:"must,omitempty"`
		KeyType   string        `yaml:"key"`
		ValueType string        `yaml:"value"`
		Entries   []*EntryDef   `yaml:"entries"`
		Derived   []*DerivedDef `yaml:"derived,omitempty"`
	}

	// EntryDef is one key-expression / value-expression pair. Both must be
	// Go expressions that the compiler can evaluate in a constant context.
	// Entries are emitted in the order they were declared, and under
	// duplicate keys the earliest entry wins
	EntryDef struct {
		Key   string `yaml:"key"`
		Value string `yaml:"value"`
	}

	// DerivedDef requests a constant whose value is resolved by performing
	// the table's lookup at generation time with the provided constant key.
	// A key with no matching entry fails generation with Message
	DerivedDef struct {
		Name    string `yaml:"name"`
		Key     string `yaml:"key"`
		Message string `yaml:"msg,omitempty"`
	}
)

var (
	ErrNoPackage = errors.New("definition requires a package name")
	ErrNoTables  = errors.New("definition contains no tables")
	ErrBadName   = errors.New("not a valid Go identifier")
	ErrBadType   = errors.New("unparsable type expression")
	ErrBadExpr   = errors.New("unparsable expression")
)

// LoadFile reads and validates a definition from the provided YAML file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Load unmarshals and validates a YAML definition
func Load(data []byte) (*File, error) {
	res := &File{}
	if err := yaml.Unmarshal(data, res); err != nil {
		return nil, err
	}
	if err := res.validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// Count returns the number of entries supplied. It is derived from the
// length of the list alone, never from the entries' content
func (t *TableDef) Count() int {
	return len(t.Entries)
}

func (f *File) validate() error {
	if f.Package == "" {
		return ErrNoPackage
	}
	if !token.IsIdentifier(f.Package) {
		return fmt.Errorf("%w: %q", ErrBadName, f.Package)
	}
	if len(f.Tables) == 0 {
		return ErrNoTables
	}
	for _, t := range f.Tables {
		if err := t.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (t *TableDef) validate() error {
	names := []string{t.Table, t.Lookup}
	if t.Must != "" {
		names = append(names, t.Must)
	}
	if t.Receiver != "" {
		names = append(names, t.Receiver)
	}
	for _, n := range names {
		if !token.IsIdentifier(n) {
			return fmt.Errorf("%w: %q (table %q)", ErrBadName, n, t.Table)
		}
	}
	for _, ty := range []string{t.KeyType, t.ValueType} {
		if _, err := parser.ParseExpr(ty); err != nil {
			return fmt.Errorf("%w: %q (table %s)", ErrBadType, ty, t.Table)
		}
	}
	for i, e := range t.Entries {
		for _, x := range []string{e.Key, e.Value} {
			if _, err := parser.ParseExpr(x); err != nil {
				return fmt.Errorf(
					"%w: %q (table %s, entry %d)", ErrBadExpr, x, t.Table, i,
				)
			}
		}
	}
	for _, d := range t.Derived {
		if !token.IsIdentifier(d.Name) {
			return fmt.Errorf("%w: %q (table %s)", ErrBadName, d.Name, t.Table)
		}
		if _, err := parser.ParseExpr(d.Key); err != nil {
			return fmt.Errorf("%w: %q (table %s)", ErrBadExpr, d.Key, t.Table)
		}
	}
	return nil
}

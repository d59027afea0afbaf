package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testYAML = `
package: fruits

tables:
  - table: fruitNames
    lookup: fruitName
    key: rune
    value: string
    entries:
      - key: "'a'"
        value: '"apple"'
      - key: "'b'"
        value: '"banana"'
`

func writeDefinition(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "fruits.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(testYAML), 0o644))
	return path
}

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestGenerateCommand(t *testing.T) {
	as := assert.New(t)

	dir := t.TempDir()
	def := writeDefinition(t, dir)

	as.NoError(execute("--check=false", def))

	out := filepath.Join(dir, "fruits_gen.go")
	src, err := os.ReadFile(out)
	as.NoError(err)

	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, out, src, 0)
	as.NoError(err)
	as.Contains(string(src), "func fruitName(key rune) (string, bool) {")
}

func TestCheckMode(t *testing.T) {
	as := assert.New(t)

	dir := t.TempDir()
	def := writeDefinition(t, dir)

	// up to date after generating, out of date once touched
	as.NoError(execute("--check=false", def))
	as.NoError(execute("--check", def))

	out := filepath.Join(dir, "fruits_gen.go")
	as.NoError(os.WriteFile(out, []byte("package fruits // stale\n"), 0o644))
	err := execute("--check", def)
	as.ErrorIs(err, ErrOutOfDate)
}

func TestOutputDir(t *testing.T) {
	as := assert.New(t)

	dir := t.TempDir()
	def := writeDefinition(t, dir)
	outDir := t.TempDir()

	as.NoError(execute("--check=false", "-o", outDir, def))
	_, err := os.Stat(filepath.Join(outDir, "fruits_gen.go"))
	as.NoError(err)

	outputDir = ""
}

func TestBadDefinition(t *testing.T) {
	as := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	as.NoError(os.WriteFile(path, []byte("package: fruits\n"), 0o644))

	err := execute("--check=false", path)
	as.Error(err)
	as.Contains(err.Error(), "broken.yaml")
}

func TestOutputPath(t *testing.T) {
	as := assert.New(t)

	as.Equal(
		filepath.Join("defs", "fruits_gen.go"),
		outputPath(filepath.Join("defs", "fruits.yaml")),
	)

	outputDir = "out"
	as.Equal(
		filepath.Join("out", "fruits_gen.go"),
		outputPath(filepath.Join("defs", "fruits.yaml")),
	)
	outputDir = ""
}

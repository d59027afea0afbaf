package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kode4food/constmap/gen"
)

var (
	outputDir string
	check     bool
	verbose   bool

	logger *slog.Logger
)

var ErrOutOfDate = errors.New("generated file is out of date")

var rootCmd = &cobra.Command{
	Use:   "constmapgen [flags] <definition.yaml> ...",
	Short: "constmapgen emits fixed lookup tables from YAML definitions",
	Long: `constmapgen reads YAML table definitions and emits Go source files, each
containing a fixed-size table, a first-match-wins lookup function, and any
constants derived from generation-time lookups.

Each definition file produces one Go file named after it, so fruits.yaml
becomes fruits_gen.go alongside it unless --output says otherwise.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(
			cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level},
		))
	},
	RunE: runGenerate,
}

func runGenerate(_ *cobra.Command, args []string) error {
	for _, path := range args {
		if err := generateOne(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func generateOne(path string) error {
	def, err := gen.LoadFile(path)
	if err != nil {
		return err
	}
	src, err := gen.Generate(def, gen.WithLogger(logger))
	if err != nil {
		return err
	}
	out := outputPath(path)
	if check {
		existing, err := os.ReadFile(out)
		if err != nil || !bytes.Equal(existing, src) {
			return fmt.Errorf("%w: %s", ErrOutOfDate, out)
		}
		logger.Debug("up to date", "output", out)
		return nil
	}
	if err := gen.WriteFile(out, src); err != nil {
		return err
	}
	logger.Info("generated",
		"definition", path, "output", out, "tables", len(def.Tables))
	return nil
}

func outputPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + "_gen.go"
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	return filepath.Join(dir, base)
}

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"directory for generated files (default: alongside the definition)")
	rootCmd.Flags().BoolVar(&check, "check", false,
		"verify generated files are up to date without writing them")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

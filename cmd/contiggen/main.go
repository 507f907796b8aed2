// Package main provides the contiggen code generator CLI.
//
// contiggen parses //contig:record annotated structs from a Go source
// file and emits the aggregate configuration, layout, and view types
// implementing the packable contract for each record.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/contig-ml/contig/internal/codegen"
	"github.com/contig-ml/contig/internal/schema"
)

func main() {
	output := flag.String("o", "", "output file (default <input>_contig.go)")
	configPath := flag.String("config", "", "contiggen.yaml path (default next to the input file)")
	pkgName := flag.String("package", "", "output package name (default the input file's package)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <records.go>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()
	codegen.SetLogger(logger)

	if err := run(flag.Arg(0), *output, *configPath, *pkgName, logger); err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zap.Must(cfg.Build())
}

func run(input, output, configPath, pkgName string, logger *zap.Logger) error {
	if configPath == "" {
		configPath = filepath.Join(filepath.Dir(input), "contiggen.yaml")
	}
	cfg, err := schema.LoadOptional(configPath)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Output = output
	}
	if pkgName != "" {
		cfg.Package = pkgName
	}

	if err := schema.CheckModule(filepath.Dir(input)); err != nil {
		return err
	}

	records, pkg, err := schema.ParseFile(input)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no //%s records found in %s", schema.Directive, input)
	}
	if cfg.Package != "" {
		pkg = cfg.Package
	}
	logger.Debug("parsed records", zap.String("input", input), zap.Int("records", len(records)))

	src, err := codegen.NewGenerator(pkg, filepath.Base(input)).Generate(records)
	if err != nil {
		return err
	}

	outPath := cfg.OutputPath(input)
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logger.Info("generated",
		zap.String("output", outPath),
		zap.Int("records", len(records)))
	return nil
}

package schema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// ModulePath is the module the generated code depends on.
const ModulePath = "github.com/contig-ml/contig"

// Config represents the optional contiggen.yaml configuration.
type Config struct {
	// Output is the generated file name. Defaults to the input file
	// name with a _contig.go suffix.
	Output string `yaml:"output,omitempty"`
	// Package overrides the generated file's package name. Defaults
	// to the input file's package.
	Package string `yaml:"package,omitempty"`
}

// LoadOptional reads a contiggen.yaml if present. A missing file
// yields an empty configuration.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("schema: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("schema: failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// OutputPath resolves the generated file name for an input file.
func (c *Config) OutputPath(input string) string {
	if c.Output != "" {
		if filepath.IsAbs(c.Output) {
			return c.Output
		}
		return filepath.Join(filepath.Dir(input), c.Output)
	}
	return strings.TrimSuffix(input, ".go") + "_contig.go"
}

// CheckModule walks upward from dir to the enclosing go.mod and
// verifies the module can import the contig packages: it must either
// require the contig module or be the contig module itself. This
// catches the missing-import mistake at generation time instead of at
// the user's next build.
func CheckModule(dir string) error {
	path, err := findGoMod(dir)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("schema: failed to read %s: %w", path, err)
	}
	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return fmt.Errorf("schema: failed to parse %s: %w", path, err)
	}

	if f.Module != nil && f.Module.Mod.Path == ModulePath {
		return nil
	}
	for _, req := range f.Require {
		if req.Mod.Path == ModulePath {
			return nil
		}
	}
	return fmt.Errorf("schema: module %s does not require %s; generated code will not build", modName(f), ModulePath)
}

func modName(f *modfile.File) string {
	if f.Module != nil {
		return f.Module.Mod.Path
	}
	return "(unnamed)"
}

func findGoMod(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(abs, "go.mod")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("schema: no go.mod found above %s", dir)
		}
		abs = parent
	}
}

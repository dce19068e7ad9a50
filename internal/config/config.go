// Package config decodes HCL files describing chains of scalar operations.
//
// A file holds one or more labelled chain blocks:
//
//	chain "demo" {
//	  input   = 0.5
//	  ops     = ["square", "exp", "square"]
//	  seed    = 1.0   # optional
//	  epsilon = 1e-4  # optional, step for numerical checks
//	}
package config

import (
	"slices"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/scalar"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
)

// Defaults applied to optional attributes.
const (
	DefaultSeed    = 1.0
	DefaultEpsilon = 1e-4
)

// ErrInvalidConfig is returned for files that parse but describe no runnable chain.
var ErrInvalidConfig = errors.New("invalid chain config")

// File is the top-level structure of a chain file.
type File struct {
	Chains []ChainConfig `hcl:"chain,block"`
}

// ChainConfig describes one chain run.
type ChainConfig struct {
	Name    string   `hcl:"name,label"`
	Input   float64  `hcl:"input"`
	Ops     []string `hcl:"ops"`
	Seed    *float64 `hcl:"seed,optional"`
	Epsilon *float64 `hcl:"epsilon,optional"`
}

// SeedOrDefault returns the configured seed or DefaultSeed.
func (c ChainConfig) SeedOrDefault() float64 {
	if c.Seed == nil {
		return DefaultSeed
	}
	return *c.Seed
}

// EpsilonOrDefault returns the configured epsilon or DefaultEpsilon.
func (c ChainConfig) EpsilonOrDefault() float64 {
	if c.Epsilon == nil {
		return DefaultEpsilon
	}
	return *c.Epsilon
}

// Load parses and validates the chain file at path.
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
	}
	return decode(file, path)
}

// Parse parses and validates chain file contents; filename is used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*File, error) {
	var cfg File
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, errors.Errorf("failed to decode HCL file %s: %s", filename, diags.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "%s", filename)
	}
	return &cfg, nil
}

// Validate checks that every chain is runnable.
func (f *File) Validate() error {
	if len(f.Chains) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no chain blocks")
	}

	known := ops.Names()
	seen := make(map[string]bool, len(f.Chains))
	for _, c := range f.Chains {
		if seen[c.Name] {
			return errors.Wrapf(ErrInvalidConfig, "duplicate chain %q", c.Name)
		}
		seen[c.Name] = true

		if len(c.Ops) == 0 {
			return errors.Wrapf(ErrInvalidConfig, "chain %q: ops must not be empty", c.Name)
		}
		for _, name := range c.Ops {
			if !slices.Contains(known, name) {
				return errors.Wrapf(ErrInvalidConfig, "chain %q: unknown operation %q (known: %v)", c.Name, name, known)
			}
		}
		if eps := c.EpsilonOrDefault(); eps <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "chain %q: epsilon must be positive, got %g", c.Name, eps)
		}
	}
	return nil
}

// Build creates a chain with a fresh operation per entry in c.Ops.
func Build[T scalar.Float](c ChainConfig) (*autodiff.Chain[T], error) {
	list := make([]ops.Operation[T], 0, len(c.Ops))
	for _, name := range c.Ops {
		op, err := ops.New[T](name)
		if err != nil {
			return nil, errors.WithMessagef(err, "chain %q", c.Name)
		}
		list = append(list, op)
	}
	return autodiff.NewChain(list...), nil
}

// Package main provides the scalargrad CLI.
//
// It runs chains of scalar operations forward, backpropagates a seed
// gradient and prints each step next to a numerical derivative estimate.
//
//	scalargrad -x 0.5 -ops square,exp,square
//	scalargrad -config chains.hcl -v 2
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/born-ml/scalargrad/internal/config"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

const version = "v0.1.0"

var (
	flagConfig = flag.String("config", "", "HCL file with chain blocks; overrides -x, -ops, -seed and -eps")
	flagX      = flag.Float64("x", 0.5, "Input value of the ad-hoc chain")
	flagOps    = flag.String("ops", "square,exp,square", "Comma-separated operations of the ad-hoc chain")
	flagSeed   = flag.Float64("seed", config.DefaultSeed, "Gradient seeded at the chain output")
	flagEps    = flag.Float64("eps", config.DefaultEpsilon, "Step for numerical differentiation")
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("scalargrad %s\n", version)
		return
	}

	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	chains := must.M1(loadChains())
	for _, c := range chains {
		klog.V(1).Infof("running chain %q: %v at x=%g", c.Name, c.Ops, c.Input)
		report := must.M1(Run(c))
		fmt.Println(report.Render())
	}
}

// loadChains reads -config, or assembles a single chain from the other flags.
func loadChains() ([]config.ChainConfig, error) {
	if *flagConfig != "" {
		f, err := config.Load(*flagConfig)
		if err != nil {
			return nil, err
		}
		return f.Chains, nil
	}

	seed, eps := *flagSeed, *flagEps
	f := &config.File{Chains: []config.ChainConfig{{
		Name:    "cli",
		Input:   *flagX,
		Ops:     splitOps(*flagOps),
		Seed:    &seed,
		Epsilon: &eps,
	}}}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.Chains, nil
}

func splitOps(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

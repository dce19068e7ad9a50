package main

import (
	"fmt"
	"strconv"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/config"
	"github.com/born-ml/scalargrad/internal/scalar"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

// Step is one operation of a chain run.
type Step struct {
	Op        string
	Input     float64
	Output    float64
	Grad      float64 // upstream gradient at Output
	Local     float64 // analytic derivative at Input
	Numerical float64 // central-difference derivative at Input
}

// Report is the result of running one configured chain.
type Report struct {
	Name      string
	Seed      float64
	Epsilon   float64
	Steps     []Step
	Gradient  float64 // gradient of the chain input
	Numerical float64 // numerical derivative of the whole chain, times Seed
}

// Run evaluates c forward, backpropagates its seed and probes every step numerically.
func Run(c config.ChainConfig) (*Report, error) {
	chain, err := config.Build[float64](c)
	if err != nil {
		return nil, err
	}
	seed, eps := c.SeedOrDefault(), c.EpsilonOrDefault()

	vars := chain.Forward(scalar.New(c.Input))
	if err := chain.Backward(vars, seed); err != nil {
		return nil, err
	}

	r := &Report{Name: c.Name, Seed: seed, Epsilon: eps}
	for k, op := range chain.Ops() {
		// Local derivative first: NumericalDiff overwrites the retained input.
		local, err := op.Backward(1)
		if err != nil {
			return nil, err
		}
		gy, _ := vars[k+1].Grad()
		r.Steps = append(r.Steps, Step{
			Op:        op.Name(),
			Input:     vars[k].Data,
			Output:    vars[k+1].Data,
			Grad:      gy,
			Local:     local,
			Numerical: autodiff.NumericalDiff(op, vars[k], eps),
		})
	}
	r.Gradient, _ = vars[0].Grad()
	r.Numerical = seed * autodiff.NumericalDiff(chain.Operation(), scalar.New(c.Input), eps)
	return r, nil
}

// Render returns the report as a table followed by a summary line.
func (r *Report) Render() string {
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	headerStyle := lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
	titleStyle := lipgloss.NewStyle().Bold(true)

	table := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Step", "Op", "Input", "Output", "Upstream grad", "d/dx", "d/dx (numerical)")

	for i, s := range r.Steps {
		table.Row(strconv.Itoa(i+1), s.Op, format(s.Input), format(s.Output), format(s.Grad), format(s.Local), format(s.Numerical))
	}

	title := titleStyle.Render(fmt.Sprintf("chain %q (seed=%g, eps=%g)", r.Name, r.Seed, r.Epsilon))
	summary := fmt.Sprintf("x.grad = %s, numerical = %s", format(r.Gradient), format(r.Numerical))
	return title + "\n" + table.String() + "\n" + summary
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

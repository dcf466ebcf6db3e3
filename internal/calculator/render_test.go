package calculator

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"scicalc/internal/ops"
	"scicalc/internal/solver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrinter(opts Options) (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPrinter(&buf, opts), &buf
}

func TestPrinter_Number(t *testing.T) {
	p, _ := newTestPrinter(Options{})

	tests := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{-2, "-2"},
		{2.5, "2.5"},
		{1.0 / 3.0, "0.333333"},
		{1e-5, "1e-05"},
		{1234567, "1.23457e+06"},
		{0, "0"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Number(tt.in), "Number(%v)", tt.in)
	}
}

func TestPrinter_NumberPrecision(t *testing.T) {
	p, _ := newTestPrinter(Options{Precision: 3})
	assert.Equal(t, "0.333", p.Number(1.0/3.0))

	p, _ = newTestPrinter(Options{Precision: 12})
	assert.Equal(t, "3.14159265359", p.Number(math.Pi))
}

func TestPrinter_Operation(t *testing.T) {
	tests := []struct {
		name string
		op   string
		args []float64
		want string
		err  error
	}{
		{"divide", "div", []float64{10, 4}, "Result = 2.5\n", nil},
		{"power", "pow", []float64{2, 10}, "Result = 1024\n", nil},
		{"divide by zero", "div", []float64{1, 0}, "Error! Division by zero.\nResult = nan\n", ops.ErrDivisionByZero},
		{"negative sqrt", "sqrt", []float64{-4}, "Error! Negative input.\nResult = nan\n", ops.ErrNegativeInput},
		{"log of zero", "log", []float64{0}, "Error! Logarithm not defined.\nResult = nan\n", ops.ErrInvalidDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := newTestPrinter(Options{})
			op, ok := ops.ByName(tt.op)
			require.True(t, ok)

			err := p.Operation(op, tt.args)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_ErrorFallback(t *testing.T) {
	p, buf := newTestPrinter(Options{})
	p.Error(errors.New("boom"))
	assert.Equal(t, "Error! boom\n", buf.String())
}

func TestPrinter_Quadratic(t *testing.T) {
	tests := []struct {
		name    string
		q       solver.Quadratic
		echo    string
		outcome string
	}{
		{"two roots", solver.Quadratic{A: 1, B: -3, C: 2}, "Equation: 1x^2 + -3x + 2 = 0", "Roots: 2 , 1"},
		{"one root", solver.Quadratic{A: 1, B: -2, C: 1}, "Equation: 1x^2 + -2x + 1 = 0", "Root: 1"},
		{"complex", solver.Quadratic{A: 1, B: 2, C: 5}, "Equation: 1x^2 + 2x + 5 = 0", "Roots: -1 + 2i , -1 - 2i"},
		{"linear", solver.Quadratic{A: 0, B: 1, C: 1}, "Equation: 0x^2 + 1x + 1 = 0", "Not a quadratic equation."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := newTestPrinter(Options{})
			p.Quadratic(tt.q)
			assert.Equal(t, "\n"+tt.echo+"\n"+tt.outcome+"\n", buf.String())
		})
	}
}

func TestPrinter_System2(t *testing.T) {
	p, buf := newTestPrinter(Options{})
	sol := p.System2(solver.System2{A1: 1, B1: 1, C1: 3, A2: 2, B2: -1, C2: 0})

	assert.Equal(t, solver.UniqueSolution, sol.Kind)
	assert.Equal(t, "\nSystem of equations:\n"+
		"1x + 1y = 3\n"+
		"2x + -1y = 0\n"+
		"Solution: x = 1, y = 2\n", buf.String())
}

func TestPrinter_System2Singular(t *testing.T) {
	s := solver.System2{A1: 1, B1: 1, C1: 2, A2: 2, B2: 2, C2: 4}

	p, buf := newTestPrinter(Options{})
	sol := p.System2(s)
	assert.Equal(t, solver.NoUniqueSolution, sol.Kind)
	assert.Contains(t, buf.String(), "No unique solution.\n")
	assert.NotContains(t, buf.String(), "dependent")

	p, buf = newTestPrinter(Options{ExplainSingular: true})
	p.System2(s)
	assert.Contains(t, buf.String(), "No unique solution.\nThe system is dependent (infinitely many solutions).\n")

	p, buf = newTestPrinter(Options{ExplainSingular: true})
	p.System2(solver.System2{A1: 1, B1: 1, C1: 2, A2: 1, B2: 1, C2: 3})
	assert.Contains(t, buf.String(), "The system is inconsistent (no solution).\n")
}

func TestPrinter_System3(t *testing.T) {
	p, buf := newTestPrinter(Options{})
	sol := p.System3(solver.System3{
		A1: 1, B1: 1, C1: 1, D1: 6,
		A2: 0, B2: 2, C2: 5, D2: -4,
		A3: 2, B3: 5, C3: -1, D3: 27,
	})

	assert.Equal(t, solver.UniqueSolution, sol.Kind)
	assert.Equal(t, "\nSystem of equations:\n"+
		"1x + 1y + 1z = 6\n"+
		"0x + 2y + 5z = -4\n"+
		"2x + 5y + -1z = 27\n"+
		"Solution: x = 5, y = 3, z = -2\n", buf.String())
}

func TestPrinter_System3Singular(t *testing.T) {
	p, buf := newTestPrinter(Options{ExplainSingular: true})
	sol := p.System3(solver.System3{
		A1: 1, B1: 2, C1: 3, D1: 1,
		A2: 2, B2: 4, C2: 6, D2: 5,
		A3: 1, B3: 0, C3: 1, D3: 0,
	})

	assert.Equal(t, solver.NoUniqueSolution, sol.Kind)
	assert.Contains(t, buf.String(), "No unique solution (either infinite or none).\n")
	assert.Contains(t, buf.String(), "The system is inconsistent (no solution).\n")
}

package calculator

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"scicalc/internal/logging"
	"scicalc/internal/ops"
	"scicalc/internal/solver"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Options controls rendering and optional solver diagnostics.
type Options struct {
	Precision       int    // significant digits, <= 0 means 6
	ExplainSingular bool   // print inconsistent/dependent after a singular system
	SessionID       string // attached to every log line
}

const defaultPrecision = 6

// Printer renders calculation results in the calculator's text format.
type Printer struct {
	w       io.Writer
	opts    Options
	styles  styles
	solverL *zap.Logger
	opsL    *zap.Logger
}

type styles struct {
	header lipgloss.Style
	err    lipgloss.Style
}

// Palette shared with the header: lime accent, red for errors.
var (
	accent      = lipgloss.Color("#8BC34A")
	destructive = lipgloss.Color("#e53935")
)

func newStyles(w io.Writer) styles {
	// A renderer bound to w keeps non-terminal output free of escape codes.
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Bold(true).Foreground(accent),
		err:    r.NewStyle().Foreground(destructive),
	}
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, opts Options) *Printer {
	if opts.Precision <= 0 {
		opts.Precision = defaultPrecision
	}
	return &Printer{
		w:       w,
		opts:    opts,
		styles:  newStyles(w),
		solverL: logging.Get(logging.CategorySolver).With(zap.String("session_id", opts.SessionID)),
		opsL:    logging.Get(logging.CategoryOps).With(zap.String("session_id", opts.SessionID)),
	}
}

// Number formats v as %g with the configured number of significant digits.
// NaN and infinities print as nan, inf and -inf.
func (p *Printer) Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', p.opts.Precision, 64)
}

// Result prints "Result = v".
func (p *Printer) Result(v float64) {
	fmt.Fprintf(p.w, "Result = %s\n", p.Number(v))
}

// Error prints an operation error in the "Error! ..." form.
func (p *Printer) Error(err error) {
	var msg string
	switch {
	case errors.Is(err, ops.ErrDivisionByZero):
		msg = "Error! Division by zero."
	case errors.Is(err, ops.ErrNegativeInput):
		msg = "Error! Negative input."
	case errors.Is(err, ops.ErrInvalidDomain):
		msg = "Error! Logarithm not defined."
	default:
		msg = "Error! " + err.Error()
	}
	fmt.Fprintln(p.w, p.styles.err.Render(msg))
}

// Operation evaluates op on args and prints the result or the error.
func (p *Printer) Operation(op ops.Operation, args []float64) error {
	v, err := op.Apply(args...)
	if err != nil {
		p.opsL.Warn("operation failed",
			zap.String("op", op.Name),
			zap.Float64s("args", args),
			zap.Error(err),
		)
		p.Error(err)
		// A failed operation still reports its value, which is NaN.
		p.Result(math.NaN())
		return err
	}
	p.opsL.Debug("operation evaluated",
		zap.String("op", op.Name),
		zap.Float64s("args", args),
		zap.Float64("result", v),
	)
	p.Result(v)
	return nil
}

// Quadratic echoes the equation, solves it and prints the roots.
func (p *Printer) Quadratic(q solver.Quadratic) solver.QuadraticSolution {
	n := p.Number
	fmt.Fprintf(p.w, "\nEquation: %sx^2 + %sx + %s = 0\n", n(q.A), n(q.B), n(q.C))

	sol := q.Solve()
	p.solverL.Info("quadratic solved",
		zap.Float64s("coefficients", []float64{q.A, q.B, q.C}),
		zap.Stringer("kind", sol.Kind),
	)

	switch sol.Kind {
	case solver.NotQuadratic:
		fmt.Fprintln(p.w, "Not a quadratic equation.")
	case solver.TwoRealRoots:
		fmt.Fprintf(p.w, "Roots: %s , %s\n", n(sol.R1), n(sol.R2))
	case solver.OneRealRoot:
		fmt.Fprintf(p.w, "Root: %s\n", n(sol.R1))
	case solver.ComplexPair:
		fmt.Fprintf(p.w, "Roots: %s + %si , %s - %si\n", n(sol.Real), n(sol.Imag), n(sol.Real), n(sol.Imag))
	}
	return sol
}

// System2 echoes a two-equation system, solves it and prints x and y.
func (p *Printer) System2(s solver.System2) solver.LinearSolution {
	n := p.Number
	fmt.Fprintln(p.w, "\nSystem of equations:")
	fmt.Fprintf(p.w, "%sx + %sy = %s\n", n(s.A1), n(s.B1), n(s.C1))
	fmt.Fprintf(p.w, "%sx + %sy = %s\n", n(s.A2), n(s.B2), n(s.C2))

	sol := s.Solve()
	p.logLinear("linear2 solved", sol)

	if sol.Kind == solver.NoUniqueSolution {
		fmt.Fprintln(p.w, "No unique solution.")
		if p.opts.ExplainSingular {
			p.explain(solver.DiagnoseSystem2(s))
		}
		return sol
	}
	fmt.Fprintf(p.w, "Solution: x = %s, y = %s\n", n(sol.Values[0]), n(sol.Values[1]))
	return sol
}

// System3 echoes a three-equation system, solves it and prints x, y and z.
func (p *Printer) System3(s solver.System3) solver.LinearSolution {
	n := p.Number
	fmt.Fprintln(p.w, "\nSystem of equations:")
	fmt.Fprintf(p.w, "%sx + %sy + %sz = %s\n", n(s.A1), n(s.B1), n(s.C1), n(s.D1))
	fmt.Fprintf(p.w, "%sx + %sy + %sz = %s\n", n(s.A2), n(s.B2), n(s.C2), n(s.D2))
	fmt.Fprintf(p.w, "%sx + %sy + %sz = %s\n", n(s.A3), n(s.B3), n(s.C3), n(s.D3))

	timer := logging.StartTimer(logging.CategorySolver, "linear3")
	sol := s.Solve()
	timer.Stop()
	p.logLinear("linear3 solved", sol)

	if sol.Kind == solver.NoUniqueSolution {
		fmt.Fprintln(p.w, "No unique solution (either infinite or none).")
		if p.opts.ExplainSingular {
			p.explain(solver.DiagnoseSystem3(s))
		}
		return sol
	}
	fmt.Fprintf(p.w, "Solution: x = %s, y = %s, z = %s\n",
		n(sol.Values[0]), n(sol.Values[1]), n(sol.Values[2]))
	return sol
}

func (p *Printer) explain(s solver.Singularity) {
	p.solverL.Debug("singular system diagnosed", zap.Stringer("singularity", s))
	switch s {
	case solver.Inconsistent:
		fmt.Fprintln(p.w, "The system is inconsistent (no solution).")
	case solver.Dependent:
		fmt.Fprintln(p.w, "The system is dependent (infinitely many solutions).")
	}
}

func (p *Printer) logLinear(msg string, sol solver.LinearSolution) {
	p.solverL.Info(msg,
		zap.Stringer("kind", sol.Kind),
		zap.Float64("det", sol.Det),
		zap.Float64s("values", sol.Values),
	)
}

package solver

import "fmt"

// LinearKind classifies the outcome of the linear system solvers.
type LinearKind int

const (
	// NoUniqueSolution covers both the inconsistent and the infinitely
	// many solutions case; see DiagnoseSystem2 / DiagnoseSystem3.
	NoUniqueSolution LinearKind = iota
	UniqueSolution
)

func (k LinearKind) String() string {
	switch k {
	case NoUniqueSolution:
		return "no_unique_solution"
	case UniqueSolution:
		return "unique_solution"
	default:
		return fmt.Sprintf("LinearKind(%d)", int(k))
	}
}

// LinearSolution is the result of SolveLinear2 / SolveLinear3.
// Values holds x, y (and z) in order when Kind is UniqueSolution.
type LinearSolution struct {
	Kind   LinearKind
	Det    float64
	Values []float64
}

// System2 holds the equations a1*x + b1*y = c1 and a2*x + b2*y = c2.
type System2 struct {
	A1, B1, C1 float64
	A2, B2, C2 float64
}

// Solve is shorthand for SolveLinear2 over the system's coefficients.
func (s System2) Solve() LinearSolution {
	return SolveLinear2(s.A1, s.B1, s.C1, s.A2, s.B2, s.C2)
}

// System3 holds three equations of the form a*x + b*y + c*z = d.
type System3 struct {
	A1, B1, C1, D1 float64
	A2, B2, C2, D2 float64
	A3, B3, C3, D3 float64
}

// Solve is shorthand for SolveLinear3 over the system's coefficients.
func (s System3) Solve() LinearSolution {
	return SolveLinear3(
		s.A1, s.B1, s.C1, s.D1,
		s.A2, s.B2, s.C2, s.D2,
		s.A3, s.B3, s.C3, s.D3,
	)
}

// SolveLinear2 solves a two-equation system with Cramer's rule.
func SolveLinear2(a1, b1, c1, a2, b2, c2 float64) LinearSolution {
	d := a1*b2 - a2*b1
	if d == 0 {
		return LinearSolution{Kind: NoUniqueSolution, Det: d}
	}
	x := (c1*b2 - c2*b1) / d
	y := (a1*c2 - a2*c1) / d
	return LinearSolution{Kind: UniqueSolution, Det: d, Values: []float64{x, y}}
}

// SolveLinear3 solves a three-equation system with Cramer's rule. Each
// numerator determinant replaces one column of the coefficient matrix with
// the constants d1, d2, d3.
func SolveLinear3(a1, b1, c1, d1, a2, b2, c2, d2, a3, b3, c3, d3 float64) LinearSolution {
	d := determinant3x3(a1, b1, c1, a2, b2, c2, a3, b3, c3)
	dx := determinant3x3(d1, b1, c1, d2, b2, c2, d3, b3, c3)
	dy := determinant3x3(a1, d1, c1, a2, d2, c2, a3, d3, c3)
	dz := determinant3x3(a1, b1, d1, a2, b2, d2, a3, b3, d3)

	if d == 0 {
		return LinearSolution{Kind: NoUniqueSolution, Det: d}
	}
	return LinearSolution{
		Kind:   UniqueSolution,
		Det:    d,
		Values: []float64{dx / d, dy / d, dz / d},
	}
}

// determinant3x3 expands the matrix
//
//	| a1 b1 c1 |
//	| a2 b2 c2 |
//	| a3 b3 c3 |
//
// along its first row.
func determinant3x3(a1, b1, c1, a2, b2, c2, a3, b3, c3 float64) float64 {
	return a1*(b2*c3-b3*c2) - b1*(a2*c3-a3*c2) + c1*(a2*b3-a3*b2)
}

// Package solver implements the closed-form equation solvers of scicalc:
// the quadratic formula and Cramer's rule for 2x2 and 3x3 linear systems.
//
// Every solver is a pure function of its coefficients. Degenerate inputs are
// reported through the Kind of the returned solution, never through an error.
//
// Branch decisions (a == 0, D == 0) use exact floating-point equality. A
// discriminant that should be zero but carries rounding error is classified
// as two close real roots or a complex pair with a tiny imaginary part.
package solver

import (
	"fmt"
	"math"
)

// QuadraticKind classifies the outcome of SolveQuadratic.
type QuadraticKind int

const (
	NotQuadratic QuadraticKind = iota // leading coefficient is zero
	TwoRealRoots                      // D > 0
	OneRealRoot                       // D == 0
	ComplexPair                       // D < 0
)

func (k QuadraticKind) String() string {
	switch k {
	case NotQuadratic:
		return "not_quadratic"
	case TwoRealRoots:
		return "two_real_roots"
	case OneRealRoot:
		return "one_real_root"
	case ComplexPair:
		return "complex_pair"
	default:
		return fmt.Sprintf("QuadraticKind(%d)", int(k))
	}
}

// Quadratic holds the coefficients of a*x^2 + b*x + c = 0.
type Quadratic struct {
	A, B, C float64
}

// Solve is shorthand for SolveQuadratic(q.A, q.B, q.C).
func (q Quadratic) Solve() QuadraticSolution {
	return SolveQuadratic(q.A, q.B, q.C)
}

// Discriminant returns b^2 - 4ac.
func (q Quadratic) Discriminant() float64 {
	return q.B*q.B - 4*q.A*q.C
}

// QuadraticSolution is the tagged result of SolveQuadratic.
//
//	TwoRealRoots: R1 is the + branch, R2 the - branch
//	OneRealRoot:  R1
//	ComplexPair:  Real ± Imag·i
type QuadraticSolution struct {
	Kind QuadraticKind
	R1   float64
	R2   float64
	Real float64
	Imag float64
}

// Roots returns the roots as complex numbers in solver order.
// NotQuadratic yields nil.
func (s QuadraticSolution) Roots() []complex128 {
	switch s.Kind {
	case TwoRealRoots:
		return []complex128{complex(s.R1, 0), complex(s.R2, 0)}
	case OneRealRoot:
		return []complex128{complex(s.R1, 0)}
	case ComplexPair:
		return []complex128{complex(s.Real, s.Imag), complex(s.Real, -s.Imag)}
	default:
		return nil
	}
}

// SolveQuadratic classifies and solves a*x^2 + b*x + c = 0.
func SolveQuadratic(a, b, c float64) QuadraticSolution {
	if a == 0 {
		return QuadraticSolution{Kind: NotQuadratic}
	}

	d := b*b - 4*a*c
	switch {
	case d > 0:
		sq := math.Sqrt(d)
		return QuadraticSolution{
			Kind: TwoRealRoots,
			R1:   (-b + sq) / (2 * a),
			R2:   (-b - sq) / (2 * a),
		}
	case d == 0:
		return QuadraticSolution{Kind: OneRealRoot, R1: -b / (2 * a)}
	default:
		// NaN discriminants also land here; the pair then carries NaN parts.
		return QuadraticSolution{
			Kind: ComplexPair,
			Real: -b / (2 * a),
			Imag: math.Sqrt(-d) / (2 * a),
		}
	}
}

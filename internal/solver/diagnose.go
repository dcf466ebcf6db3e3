package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Singularity tells the two NoUniqueSolution cases apart.
type Singularity int

const (
	Inconsistent Singularity = iota // no solution
	Dependent                       // infinitely many solutions
)

func (s Singularity) String() string {
	switch s {
	case Inconsistent:
		return "inconsistent"
	case Dependent:
		return "dependent"
	default:
		return fmt.Sprintf("Singularity(%d)", int(s))
	}
}

// rankTol is the relative singular value cutoff used for the rank test.
const rankTol = 1e-12

// DiagnoseSystem2 reports whether a singular two-equation system has no
// solution or infinitely many. The result is meaningless for systems that
// SolveLinear2 solves uniquely.
func DiagnoseSystem2(s System2) Singularity {
	coeff := mat.NewDense(2, 2, []float64{
		s.A1, s.B1,
		s.A2, s.B2,
	})
	aug := mat.NewDense(2, 3, []float64{
		s.A1, s.B1, s.C1,
		s.A2, s.B2, s.C2,
	})
	return diagnose(coeff, aug)
}

// DiagnoseSystem3 is DiagnoseSystem2 for three equations.
func DiagnoseSystem3(s System3) Singularity {
	coeff := mat.NewDense(3, 3, []float64{
		s.A1, s.B1, s.C1,
		s.A2, s.B2, s.C2,
		s.A3, s.B3, s.C3,
	})
	aug := mat.NewDense(3, 4, []float64{
		s.A1, s.B1, s.C1, s.D1,
		s.A2, s.B2, s.C2, s.D2,
		s.A3, s.B3, s.C3, s.D3,
	})
	return diagnose(coeff, aug)
}

// diagnose applies the Rouché–Capelli test: the system is consistent iff
// rank(coeff) == rank(aug).
func diagnose(coeff, aug *mat.Dense) Singularity {
	if rank(coeff) < rank(aug) {
		return Inconsistent
	}
	return Dependent
}

func rank(m *mat.Dense) int {
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDNone); !ok {
		// Only happens for NaN/Inf input; treat as full rank.
		r, c := m.Dims()
		return min(r, c)
	}
	return svd.Rank(rankTol)
}

package solver

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    QuadraticSolution
	}{
		{
			name: "two real roots keep branch order",
			a:    1, b: -3, c: 2,
			want: QuadraticSolution{Kind: TwoRealRoots, R1: 2, R2: 1},
		},
		{
			name: "negative leading coefficient flips branch values",
			a:    -1, b: 3, c: -2,
			want: QuadraticSolution{Kind: TwoRealRoots, R1: 1, R2: 2},
		},
		{
			name: "repeated root",
			a:    1, b: 2, c: 1,
			want: QuadraticSolution{Kind: OneRealRoot, R1: -1},
		},
		{
			name: "complex pair",
			a:    1, b: 2, c: 5,
			want: QuadraticSolution{Kind: ComplexPair, Real: -1, Imag: 2},
		},
		{
			name: "zero leading coefficient",
			a:    0, b: 4, c: 1,
			want: QuadraticSolution{Kind: NotQuadratic},
		},
		{
			name: "all zero",
			want: QuadraticSolution{Kind: NotQuadratic},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolveQuadratic(tt.a, tt.b, tt.c)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SolveQuadratic(%v, %v, %v) mismatch (-want +got):\n%s", tt.a, tt.b, tt.c, diff)
			}
		})
	}
}

func TestSolveQuadratic_NegativeZeroLeading(t *testing.T) {
	got := SolveQuadratic(math.Copysign(0, -1), 1, 1)
	assert.Equal(t, NotQuadratic, got.Kind)
}

func TestSolveQuadratic_RealRootsSatisfyEquation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	checked := 0
	for i := 0; i < 500; i++ {
		a := rng.Float64()*20 - 10
		b := rng.Float64()*20 - 10
		c := rng.Float64()*20 - 10
		if a == 0 || b*b-4*a*c <= 0 {
			continue
		}
		checked++
		sol := SolveQuadratic(a, b, c)
		require.Equal(t, TwoRealRoots, sol.Kind)
		for _, r := range []float64{sol.R1, sol.R2} {
			residual := a*r*r + b*r + c
			assert.True(t, scalar.EqualWithinAbsOrRel(residual, 0, 1e-8, 1e-8),
				"residual %g for root %g of (%g, %g, %g)", residual, r, a, b, c)
		}
	}
	require.NotZero(t, checked)
}

func TestSolveQuadratic_RepeatedRootIsExact(t *testing.T) {
	// Perfect squares k^2 * (x - r)^2 with integer coefficients.
	for _, tc := range []struct{ a, b, c float64 }{
		{1, -4, 4},
		{4, 4, 1},
		{9, -12, 4},
		{-2, 8, -8},
	} {
		sol := SolveQuadratic(tc.a, tc.b, tc.c)
		require.Equal(t, OneRealRoot, sol.Kind, "%+v", tc)
		assert.Equal(t, -tc.b/(2*tc.a), sol.R1)
		r := sol.R1
		assert.InDelta(t, 0, tc.a*r*r+tc.b*r+tc.c, tol)
	}
}

func TestSolveQuadratic_ComplexRootsAreConjugate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	checked := 0
	for i := 0; i < 500; i++ {
		a := rng.Float64()*20 - 10
		b := rng.Float64()*20 - 10
		c := rng.Float64()*20 - 10
		if a == 0 || b*b-4*a*c >= 0 {
			continue
		}
		checked++
		sol := SolveQuadratic(a, b, c)
		require.Equal(t, ComplexPair, sol.Kind)

		roots := sol.Roots()
		require.Len(t, roots, 2)
		assert.Equal(t, cmplx.Conj(roots[0]), roots[1])
		for _, z := range roots {
			residual := complex(a, 0)*z*z + complex(b, 0)*z + complex(c, 0)
			assert.InDelta(t, 0, cmplx.Abs(residual), 1e-8)
		}
	}
	require.NotZero(t, checked)
}

func TestQuadraticSolution_Roots(t *testing.T) {
	assert.Nil(t, QuadraticSolution{Kind: NotQuadratic}.Roots())
	assert.Equal(t, []complex128{-1}, SolveQuadratic(1, 2, 1).Roots())
	assert.Equal(t, []complex128{2, 1}, SolveQuadratic(1, -3, 2).Roots())
	assert.Equal(t, []complex128{complex(-1, 2), complex(-1, -2)}, SolveQuadratic(1, 2, 5).Roots())
}

func TestQuadratic_Method(t *testing.T) {
	q := Quadratic{A: 2, B: -4, C: -6}
	assert.Equal(t, 64.0, q.Discriminant())
	assert.Equal(t, SolveQuadratic(2, -4, -6), q.Solve())
}

func TestSolveQuadratic_Idempotent(t *testing.T) {
	inputs := [][3]float64{{1, -3, 2}, {1, 2, 1}, {1, 2, 5}, {0, 1, 1}, {0.1, 0.2, 0.3}}
	for _, in := range inputs {
		first := SolveQuadratic(in[0], in[1], in[2])
		second := SolveQuadratic(in[0], in[1], in[2])
		assert.Equal(t, first, second)
	}
}

func TestQuadraticKind_String(t *testing.T) {
	assert.Equal(t, "two_real_roots", TwoRealRoots.String())
	assert.Equal(t, "not_quadratic", NotQuadratic.String())
	assert.Equal(t, "QuadraticKind(9)", QuadraticKind(9).String())
}

// Package ops provides the basic and scientific operations behind menu
// entries 1-10. Each operation is a thin wrapper over package math; the
// three with a restricted domain return a sentinel error instead of NaN.
package ops

import (
	"errors"
	"math"
)

// Domain errors. Callers match them with errors.Is.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrNegativeInput  = errors.New("negative input")
	ErrInvalidDomain  = errors.New("logarithm not defined")
)

func Add(a, b float64) float64      { return a + b }
func Subtract(a, b float64) float64 { return a - b }
func Multiply(a, b float64) float64 { return a * b }

// Divide returns a / b, or ErrDivisionByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power returns base**exp as defined by math.Pow.
func Power(base, exp float64) float64 { return math.Pow(base, exp) }

// Sqrt returns the square root of x. Negative and NaN inputs yield
// ErrNegativeInput.
func Sqrt(x float64) (float64, error) {
	if x >= 0 {
		return math.Sqrt(x), nil
	}
	return 0, ErrNegativeInput
}

// Angles are in radians.
func Sin(x float64) float64 { return math.Sin(x) }
func Cos(x float64) float64 { return math.Cos(x) }
func Tan(x float64) float64 { return math.Tan(x) }

// Log returns the natural logarithm of x, or ErrInvalidDomain when x <= 0.
func Log(x float64) (float64, error) {
	if x > 0 {
		return math.Log(x), nil
	}
	return 0, ErrInvalidDomain
}

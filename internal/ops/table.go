package ops

import (
	"fmt"
	"sort"
	"strings"
)

// Operation describes one numbered menu entry backed by this package.
type Operation struct {
	Choice int      // menu number
	Name   string   // sub-command name used by "scicalc calc"
	Label  string   // menu text
	Prompt string   // input prompt
	Arity  int      // number of operands read after the prompt
	Eval   EvalFunc // never nil
}

// EvalFunc evaluates an operation. len(args) equals the operation's Arity.
type EvalFunc func(args []float64) (float64, error)

func binary(f func(a, b float64) float64) EvalFunc {
	return func(args []float64) (float64, error) { return f(args[0], args[1]), nil }
}

func unary(f func(x float64) float64) EvalFunc {
	return func(args []float64) (float64, error) { return f(args[0]), nil }
}

var operations = []Operation{
	{1, "add", "Addition", "Enter two numbers: ", 2, binary(Add)},
	{2, "sub", "Subtraction", "Enter two numbers: ", 2, binary(Subtract)},
	{3, "mul", "Multiplication", "Enter two numbers: ", 2, binary(Multiply)},
	{4, "div", "Division", "Enter two numbers: ", 2, func(args []float64) (float64, error) {
		return Divide(args[0], args[1])
	}},
	{5, "pow", "Power (x^y)", "Enter base and exponent: ", 2, binary(Power)},
	{6, "sqrt", "Square Root", "Enter number: ", 1, func(args []float64) (float64, error) {
		return Sqrt(args[0])
	}},
	{7, "sin", "Sine", "Enter angle (radians): ", 1, unary(Sin)},
	{8, "cos", "Cosine", "Enter angle (radians): ", 1, unary(Cos)},
	{9, "tan", "Tangent", "Enter angle (radians): ", 1, unary(Tan)},
	{10, "log", "Log (base e)", "Enter number: ", 1, func(args []float64) (float64, error) {
		return Log(args[0])
	}},
}

// Operations returns the operation table ordered by menu number.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// ByChoice looks up an operation by its menu number.
func ByChoice(choice int) (Operation, bool) {
	for _, op := range operations {
		if op.Choice == choice {
			return op, true
		}
	}
	return Operation{}, false
}

// ByName looks up an operation by its sub-command name (case-insensitive).
func ByName(name string) (Operation, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, op := range operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// Names lists the sub-command names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(operations))
	for _, op := range operations {
		names = append(names, op.Name)
	}
	sort.Strings(names)
	return names
}

// Apply checks the operand count and evaluates op.
func (op Operation) Apply(args ...float64) (float64, error) {
	if len(args) != op.Arity {
		return 0, fmt.Errorf("%s expects %d operand(s), got %d", op.Name, op.Arity, len(args))
	}
	return op.Eval(args)
}

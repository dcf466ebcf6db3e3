// Package calculator implements the interactive scicalc menu.
//
// A Session reads whitespace-separated tokens from an io.Reader, dispatches
// the numbered menu choices to package ops and package solver, and renders
// every outcome through a Printer. No input ends the loop except choice 14
// and end of input.
package calculator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"scicalc/internal/logging"
	"scicalc/internal/ops"
	"scicalc/internal/solver"

	"go.uber.org/zap"
)

// Menu numbers handled by the session itself.
const (
	ChoiceQuadratic = 11
	ChoiceLinear2   = 12
	ChoiceLinear3   = 13
	ChoiceExit      = 14
)

// errEndOfInput signals that the reader ran out of tokens.
var errEndOfInput = errors.New("end of input")

// Session is one interactive calculator run.
type Session struct {
	in      *bufio.Scanner
	pending []string // unread tokens of the current line
	out     io.Writer
	p       *Printer
	log     *zap.Logger
}

// NewSession creates a session reading from r and writing to w.
func NewSession(r io.Reader, w io.Writer, opts Options) *Session {
	return &Session{
		in:  bufio.NewScanner(r),
		out: w,
		p:   NewPrinter(w, opts),
		log: logging.Get(logging.CategorySession).With(zap.String("session_id", opts.SessionID)),
	}
}

// Run shows the menu and processes choices until choice 14, end of input,
// or ctx is cancelled. Bad input and domain errors are reported and the
// loop continues.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("session started")
	defer s.log.Info("session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.displayMenu()
		fmt.Fprint(s.out, "Enter your choice: ")

		tok, err := s.next()
		if err != nil {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, "Exiting calculator...")
			return s.inputErr(err)
		}

		choice, err := strconv.Atoi(tok)
		if err != nil {
			s.log.Debug("non-numeric choice", zap.String("token", tok))
			fmt.Fprintln(s.out, "Invalid choice!")
			continue
		}
		s.log.Debug("choice", zap.Int("choice", choice))

		if choice == ChoiceExit {
			fmt.Fprintln(s.out, "Exiting calculator...")
			return nil
		}

		if err := s.dispatch(choice); err != nil {
			if errors.Is(err, errEndOfInput) {
				fmt.Fprintln(s.out)
				fmt.Fprintln(s.out, "Exiting calculator...")
				return s.inputErr(err)
			}
			var ne *numberError
			if errors.As(err, &ne) {
				// The rest of the line belongs to the failed entry.
				s.discardLine()
				fmt.Fprintf(s.out, "Invalid number: %s\n", ne.token)
				continue
			}
			// Domain errors were already rendered by the printer.
		}
	}
}

// dispatch runs a single menu choice other than exit.
func (s *Session) dispatch(choice int) error {
	if op, ok := ops.ByChoice(choice); ok {
		fmt.Fprint(s.out, op.Prompt)
		args, err := s.numbers(op.Arity)
		if err != nil {
			return err
		}
		return s.p.Operation(op, args)
	}

	switch choice {
	case ChoiceQuadratic:
		fmt.Fprint(s.out, "Enter coefficients (a, b, c): ")
		v, err := s.numbers(3)
		if err != nil {
			return err
		}
		s.p.Quadratic(solver.Quadratic{A: v[0], B: v[1], C: v[2]})

	case ChoiceLinear2:
		fmt.Fprintln(s.out, "Equation form: a*x + b*y = c")
		fmt.Fprint(s.out, "Enter coefficients of first equation (a1 b1 c1): ")
		e1, err := s.numbers(3)
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, "Enter coefficients of second equation (a2 b2 c2): ")
		e2, err := s.numbers(3)
		if err != nil {
			return err
		}
		s.p.System2(solver.System2{
			A1: e1[0], B1: e1[1], C1: e1[2],
			A2: e2[0], B2: e2[1], C2: e2[2],
		})

	case ChoiceLinear3:
		fmt.Fprintln(s.out, "Equation form: a*x + b*y + c*z = d")
		var rows [3][]float64
		for i, ord := range []string{"first", "second", "third"} {
			fmt.Fprintf(s.out, "Enter coefficients of %s equation (a%d b%d c%d d%d): ", ord, i+1, i+1, i+1, i+1)
			v, err := s.numbers(4)
			if err != nil {
				return err
			}
			rows[i] = v
		}
		s.p.System3(solver.System3{
			A1: rows[0][0], B1: rows[0][1], C1: rows[0][2], D1: rows[0][3],
			A2: rows[1][0], B2: rows[1][1], C2: rows[1][2], D2: rows[1][3],
			A3: rows[2][0], B3: rows[2][1], C3: rows[2][2], D3: rows[2][3],
		})

	default:
		fmt.Fprintln(s.out, "Invalid choice!")
	}
	return nil
}

// displayMenu prints the numbered menu.
func (s *Session) displayMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.p.styles.header.Render("==== Scientific Calculator ===="))
	for _, line := range MenuLines() {
		fmt.Fprintln(s.out, line)
	}
}

// MenuLines returns the menu entries 1-14 in display order.
func MenuLines() []string {
	table := ops.Operations()
	lines := make([]string, 0, len(table)+4)
	for _, op := range table {
		lines = append(lines, fmt.Sprintf("%d. %s", op.Choice, op.Label))
	}
	return append(lines,
		fmt.Sprintf("%d. Solve Quadratic Equation", ChoiceQuadratic),
		fmt.Sprintf("%d. Solve Two Linear Equations (2 variables)", ChoiceLinear2),
		fmt.Sprintf("%d. Solve Three Linear Equations (3 variables)", ChoiceLinear3),
		fmt.Sprintf("%d. Exit", ChoiceExit),
	)
}

// numberError reports a token that is not a number.
type numberError struct {
	token string
	err   error
}

func (e *numberError) Error() string { return fmt.Sprintf("invalid number %q: %v", e.token, e.err) }
func (e *numberError) Unwrap() error { return e.err }

// ParseNumber parses a single operand token.
func ParseNumber(tok string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
	if err != nil {
		return 0, &numberError{token: tok, err: err}
	}
	return v, nil
}

// next returns the next whitespace-separated token, reading further lines
// as needed.
func (s *Session) next() (string, error) {
	for len(s.pending) == 0 {
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return "", fmt.Errorf("failed to read input: %w", err)
			}
			return "", errEndOfInput
		}
		s.pending = strings.Fields(s.in.Text())
	}
	tok := s.pending[0]
	s.pending = s.pending[1:]
	return tok, nil
}

func (s *Session) discardLine() {
	s.pending = nil
}

// numbers reads n operand tokens.
func (s *Session) numbers(n int) ([]float64, error) {
	out := make([]float64, 0, n)
	for len(out) < n {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		v, err := ParseNumber(tok)
		if err != nil {
			s.log.Debug("invalid operand", zap.String("token", tok))
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// inputErr maps a clean end of input to nil.
func (s *Session) inputErr(err error) error {
	if errors.Is(err, errEndOfInput) {
		return nil
	}
	return err
}

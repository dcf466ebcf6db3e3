package main

import (
	"fmt"
	"os"
	"strings"

	"scicalc/internal/calculator"
	"scicalc/internal/config"
	"scicalc/internal/ops"
	"scicalc/internal/solver"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// quadraticCmd solves ax^2 + bx + c = 0
var quadraticCmd = &cobra.Command{
	Use:   "quadratic a b c",
	Short: "Solve ax^2 + bx + c = 0",
	Example: `  scicalc quadratic 1 -3 2
  scicalc quadratic -- -1 0 4`,
	Args: cobra.ExactArgs(3),
	RunE: runQuadratic,
}

// linear2Cmd solves a 2x2 system with Cramer's rule
var linear2Cmd = &cobra.Command{
	Use:   "linear2 a1 b1 c1 a2 b2 c2",
	Short: "Solve a1*x + b1*y = c1, a2*x + b2*y = c2",
	Example: `  scicalc linear2 1 1 3 1 -1 -1`,
	Args:  cobra.ExactArgs(6),
	RunE:  runLinear2,
}

// linear3Cmd solves a 3x3 system with Cramer's rule
var linear3Cmd = &cobra.Command{
	Use:   "linear3 a1 b1 c1 d1 a2 b2 c2 d2 a3 b3 c3 d3",
	Short: "Solve a three-variable linear system",
	Example: `  scicalc linear3 -- 2 1 -1 8 -3 -1 2 -11 -2 1 2 -3`,
	Args:  cobra.ExactArgs(12),
	RunE:  runLinear3,
}

// calcCmd evaluates one basic or scientific operation
var calcCmd = &cobra.Command{
	Use:   "calc <op> operand...",
	Short: "Evaluate one operation: " + strings.Join(ops.Names(), ", "),
	Long: `Evaluates a single basic or scientific operation.

Binary operations (add, sub, mul, div, pow) take two operands, the others
take one. Angles are in radians and log is the natural logarithm.`,
	Example: `  scicalc calc div 10 4
  scicalc calc -- sqrt -4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

// configCmd groups configuration commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the scicalc configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Writes the default configuration to the config path. An existing file
is kept unless --force is given; with --force even an unreadable file is
replaced.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationConfigOptional: "true"},
	RunE:        runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing config file")
}

func parseArgs(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := calculator.ParseNumber(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func runQuadratic(cmd *cobra.Command, args []string) error {
	v, err := parseArgs(args)
	if err != nil {
		return err
	}
	p := calculator.NewPrinter(cmd.OutOrStdout(), printerOptions())
	sol := p.Quadratic(solver.Quadratic{A: v[0], B: v[1], C: v[2]})
	logger.Debug("quadratic", zap.Stringer("kind", sol.Kind))
	return nil
}

func runLinear2(cmd *cobra.Command, args []string) error {
	v, err := parseArgs(args)
	if err != nil {
		return err
	}
	p := calculator.NewPrinter(cmd.OutOrStdout(), printerOptions())
	sol := p.System2(solver.System2{
		A1: v[0], B1: v[1], C1: v[2],
		A2: v[3], B2: v[4], C2: v[5],
	})
	logger.Debug("linear2", zap.Stringer("kind", sol.Kind), zap.Float64("det", sol.Det))
	return nil
}

func runLinear3(cmd *cobra.Command, args []string) error {
	v, err := parseArgs(args)
	if err != nil {
		return err
	}
	p := calculator.NewPrinter(cmd.OutOrStdout(), printerOptions())
	sol := p.System3(solver.System3{
		A1: v[0], B1: v[1], C1: v[2], D1: v[3],
		A2: v[4], B2: v[5], C2: v[6], D2: v[7],
		A3: v[8], B3: v[9], C3: v[10], D3: v[11],
	})
	logger.Debug("linear3", zap.Stringer("kind", sol.Kind), zap.Float64("det", sol.Det))
	return nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	op, ok := ops.ByName(args[0])
	if !ok {
		return fmt.Errorf("unknown operation %q (valid: %s)", args[0], strings.Join(ops.Names(), ", "))
	}
	if len(args)-1 != op.Arity {
		return fmt.Errorf("%s expects %d operand(s), got %d", op.Name, op.Arity, len(args)-1)
	}
	v, err := parseArgs(args[1:])
	if err != nil {
		return err
	}

	p := calculator.NewPrinter(cmd.OutOrStdout(), printerOptions())
	if err := p.Operation(op, v); err != nil {
		logger.Warn("operation failed", zap.String("op", op.Name), zap.Error(err))
		return fmt.Errorf("%s: %w", op.Name, err)
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logger.Info("config written", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

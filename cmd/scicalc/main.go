package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"scicalc/internal/calculator"
	"scicalc/internal/config"
	"scicalc/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	precision  int

	// Resolved per invocation by PersistentPreRunE
	cfg       *config.Config
	sessionID string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "scicalc",
	Short: "scicalc - interactive scientific calculator",
	Long: `scicalc is a menu-driven scientific calculator.

It covers basic arithmetic, powers and roots, trigonometry, natural
logarithms, quadratic equations and 2x2 / 3x3 linear systems solved with
Cramer's rule.

Run without arguments to start the interactive menu. The subcommands solve
a single problem and exit; pass negative operands after "--".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}

		// The interactive menu owns stdout; keep the console logger quiet.
		if !cmd.HasParent() {
			logger = zap.NewNop()
			return nil
		}

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logger.With(zap.String("session_id", sessionID))
		return nil
	},
	RunE: runInteractive,
}

// annotationConfigOptional marks commands that run on defaults when the
// config file cannot be loaded.
const annotationConfigOptional = "scicalc/config-optional"

// loadConfig resolves configuration, flag overrides and file logging.
func loadConfig(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	var err error
	cfg, err = config.Load(path)
	if err != nil {
		if cmd.Annotations[annotationConfigOptional] == "" {
			return err
		}
		cfg = config.DefaultConfig()
	}
	if cmd.Flags().Changed("precision") {
		cfg.Display.Precision = precision
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ws, err := config.FindWorkspaceRoot()
	if err != nil {
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}
	if err := logging.Initialize(ws, cfg.Logging); err != nil {
		return err
	}

	sessionID = uuid.NewString()
	logging.Get(logging.CategoryConfig).Info("config resolved",
		zap.String("path", path),
		zap.Int("precision", cfg.Display.Precision),
		zap.Bool("explain_singular", cfg.Solver.ExplainSingular),
		zap.String("session_id", sessionID),
	)
	return nil
}

func printerOptions() calculator.Options {
	return calculator.Options{
		Precision:       cfg.Display.Precision,
		ExplainSingular: cfg.Solver.ExplainSingular,
		SessionID:       sessionID,
	}
}

// runInteractive runs the menu loop on stdin/stdout until exit or EOF.
// SIGINT keeps its default behaviour and terminates the process.
func runInteractive(cmd *cobra.Command, args []string) error {
	s := calculator.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), printerOptions())
	err := s.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: <workspace>/.scicalc/config.yaml)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", 6, "Significant digits in printed numbers (1-17)")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(quadraticCmd)
	rootCmd.AddCommand(linear2Cmd)
	rootCmd.AddCommand(linear3Cmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(configCmd)
}

// run executes the command tree and always flushes the loggers, including
// when a command fails and cobra skips its post-run hooks.
func run(ctx context.Context) error {
	defer shutdown()
	return rootCmd.ExecuteContext(ctx)
}

func shutdown() {
	if logger != nil {
		_ = logger.Sync()
	}
	logging.CloseAll()
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

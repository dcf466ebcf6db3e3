package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Dir is the per-workspace directory holding config.yaml and logs/.
const Dir = ".scicalc"

// Config holds all scicalc configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Output formatting
	Display DisplayConfig `yaml:"display"`

	// Equation solver behaviour
	Solver SolverConfig `yaml:"solver"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig controls how numbers are printed.
type DisplayConfig struct {
	// Significant digits for %g formatting (default: 6).
	Precision int `yaml:"precision"`
}

// SolverConfig configures the equation solvers.
type SolverConfig struct {
	// Report whether a singular linear system is inconsistent or dependent
	// after the "No unique solution" line.
	ExplainSingular bool `yaml:"explain_singular"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "scicalc",
		Version: "1.0.0",

		Display: DisplayConfig{
			Precision: 6,
		},

		Solver: SolverConfig{
			ExplainSingular: false,
		},

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "json",
			DebugMode: false,
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SCICALC_PRECISION"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SCICALC_PRECISION %q: %w", v, err)
		}
		c.Display.Precision = p
	}
	if v := os.Getenv("SCICALC_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SCICALC_DEBUG %q: %w", v, err)
		}
		c.Logging.DebugMode = b
	}
	if v := os.Getenv("SCICALC_EXPLAIN_SINGULAR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SCICALC_EXPLAIN_SINGULAR %q: %w", v, err)
		}
		c.Solver.ExplainSingular = b
	}
	if dir := os.Getenv("SCICALC_LOG_DIR"); dir != "" {
		c.Logging.Dir = dir
	}
	return nil
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted log encodings.
var ValidFormats = []string{"json", "console"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Display.Precision < 1 || c.Display.Precision > 17 {
		return fmt.Errorf("invalid display precision: %d (must be between 1 and 17)", c.Display.Precision)
	}
	if !contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if !contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Logging.Format, ValidFormats)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// FindWorkspaceRoot walks up from the current directory looking for a
// .scicalc directory. It falls back to the current directory.
func FindWorkspaceRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	originalDir := dir
	for {
		if info, err := os.Stat(filepath.Join(dir, Dir)); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return originalDir, nil
}

// DefaultConfigPath returns <workspace>/.scicalc/config.yaml.
func DefaultConfigPath() string {
	root, err := FindWorkspaceRoot()
	if err != nil {
		return filepath.Join(Dir, "config.yaml")
	}
	return filepath.Join(root, Dir, "config.yaml")
}

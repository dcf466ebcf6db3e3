// Package logging provides config-driven categorized file logging for scicalc.
// Logs are written to <workspace>/.scicalc/logs/ with separate files per category.
// Logging is controlled by logging.debug_mode in the config - when false, no logs are written.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"scicalc/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config resolution
	CategorySession Category = "session" // Menu loop, user choices
	CategorySolver  Category = "solver"  // Equation solver calls and outcomes
	CategoryOps     Category = "ops"     // Basic/scientific operations, domain errors
	CategoryConfig  Category = "config"  // Config load/save
)

var (
	loggers   = make(map[Category]*zap.Logger)
	files     = make(map[Category]*os.File)
	loggersMu sync.RWMutex

	logsDir  string
	settings config.LoggingConfig
	level    = zapcore.InfoLevel
	configMu sync.RWMutex
)

// Initialize sets up the logging directory from the logging config.
// Should be called once at startup with the workspace path.
func Initialize(workspace string, cfg config.LoggingConfig) error {
	if workspace == "" {
		return fmt.Errorf("workspace path required")
	}

	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	configMu.Lock()
	settings = cfg
	level = lvl
	logsDir = cfg.LogDir(workspace)
	configMu.Unlock()

	// Only create logs directory if debug mode is enabled
	if !cfg.DebugMode {
		return nil
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("logging initialized",
		zap.String("workspace", workspace),
		zap.String("logs_dir", logsDir),
		zap.String("level", lvl.String()),
		zap.String("format", cfg.Format),
	)
	for cat, enabled := range cfg.Categories {
		boot.Debug("category toggle", zap.String("category", cat), zap.Bool("enabled", enabled))
	}

	return nil
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return settings.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return settings.IsCategoryEnabled(string(category))
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}

	configMu.RLock()
	dir, format, lvl := logsDir, settings.Format, level
	configMu.RUnlock()
	if dir == "" {
		return zap.NewNop()
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	// Date prefix for easy rotation
	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(dir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return zap.NewNop()
	}

	core := zapcore.NewCore(newEncoder(format), zapcore.AddSync(file), lvl)
	l := zap.New(core).With(zap.String("category", string(category)))
	loggers[category] = l
	files[category] = file

	return l
}

func newEncoder(format string) zapcore.Encoder {
	if format == "console" {
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(enc)
}

// CloseAll flushes and closes all open log files (call at shutdown)
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for cat, l := range loggers {
		_ = l.Sync()
		if f := files[cat]; f != nil {
			f.Close()
		}
	}
	loggers = make(map[Category]*zap.Logger)
	files = make(map[Category]*os.File)
}

// Timer measures an operation and logs its duration on Stop.
type Timer struct {
	category  Category
	operation string
	start     time.Time
}

// StartTimer starts timing an operation in the given category.
func StartTimer(category Category, operation string) *Timer {
	return &Timer{category: category, operation: operation, start: time.Now()}
}

// Stop logs the elapsed time at debug level and returns it.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("operation timed",
		zap.String("operation", t.operation),
		zap.Duration("elapsed", elapsed),
	)
	return elapsed
}

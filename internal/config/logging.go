package config

import "path/filepath"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`           // debug, info, warn, error
	Format     string          `yaml:"format" json:"format,omitempty"`         // json, console
	Dir        string          `yaml:"dir" json:"dir,omitempty"`               // default: <workspace>/.scicalc/logs
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode,omitempty"` // Master toggle - false = no logging
	Categories map[string]bool `yaml:"categories" json:"categories,omitempty"` // Per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns false if debug_mode is false.
// Returns true if debug_mode is true and category is enabled (or not specified).
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true // All enabled by default in debug mode
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true // Enable by default if not specified
	}
	return enabled
}

// LogDir resolves the log directory against the workspace root.
func (c *LoggingConfig) LogDir(workspace string) string {
	if c.Dir == "" {
		return filepath.Join(workspace, Dir, "logs")
	}
	if filepath.IsAbs(c.Dir) {
		return c.Dir
	}
	return filepath.Join(workspace, c.Dir)
}

package config

import (
	"fmt"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config defines the agent-level configuration structure, mapping
// directly to the reactor.json file.
type Config struct {
	// Instructions overrides the directive-syntax instruction block a
	// caller prepends to its reasoner prompt. Empty means use the
	// built-in defaults.
	Instructions string `json:"instructions"`
	// EnableCoreTools controls registration of the builtin tool set.
	EnableCoreTools bool `json:"enable_core_tools"`
	// EnableCatalog controls registration of the builtin catalog
	// capability used for handler discovery.
	EnableCatalog bool `json:"enable_catalog"`
}

// SystemConfig defines engine-level technical parameters, mapping to
// the system.json file. These control timing and logging rather than
// business behavior.
type SystemConfig struct {
	// ActionTimeoutMs is the hard time budget for a single handler
	// invocation. The deadline is per-call and independently cancelled.
	ActionTimeoutMs int `json:"action_timeout_ms"`
	// MaxIterations bounds the chat driver's reason/act cycles before
	// it gives up and returns the last reasoning text.
	MaxIterations int `json:"max_iterations"`
	// LogLevel sets the minimum severity for emitted events.
	// Accepted values: "debug", "info", "warn", "error".
	LogLevel string `json:"log_level"`
}

// ActionTimeout returns the handler budget as a duration.
func (c *SystemConfig) ActionTimeout() time.Duration {
	return time.Duration(c.ActionTimeoutMs) * time.Millisecond
}

// DefaultConfig returns the agent configuration used when reactor.json
// is absent.
func DefaultConfig() *Config {
	return &Config{
		EnableCoreTools: true,
		EnableCatalog:   true,
	}
}

// DefaultSystemConfig returns hardcoded safe defaults, used as a
// fallback when system.json is missing or corrupt so the engine can
// always start.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		ActionTimeoutMs: 10000,
		MaxIterations:   3,
		LogLevel:        "info",
	}
}

// Load reads and parses the JSON configuration files. A missing
// reactor.json yields defaults; a malformed one is an error so broken
// setups fail loudly instead of running half-configured. system.json is
// loaded independently and silently falls back to defaults.
func Load(appPath, systemPath string) (*Config, *SystemConfig, error) {
	cfg := DefaultConfig()

	if appPath != "" {
		data, err := os.ReadFile(appPath)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return nil, nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, nil, fmt.Errorf("failed to parse config file %s: %w", appPath, err)
			}
		}
	}

	return cfg, LoadSystemConfig(systemPath), nil
}

// LoadSystemConfig attempts to load system settings, returning defaults
// if the file is missing or unparseable.
func LoadSystemConfig(path string) *SystemConfig {
	cfg := DefaultSystemConfig()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultSystemConfig()
	}
	if cfg.ActionTimeoutMs <= 0 {
		cfg.ActionTimeoutMs = DefaultSystemConfig().ActionTimeoutMs
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultSystemConfig().MaxIterations
	}
	return cfg
}

// Package config provides configuration types and defaults for digitduel.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration options for digitduel.
type Config struct {
	// DataDir is where the run database and log file live.
	// Defaults to ~/.digitduel.
	DataDir string        `mapstructure:"data_dir"`
	Solver  SolverConfig  `mapstructure:"solver"`
	History HistoryConfig `mapstructure:"history"`
	Log     LogConfig     `mapstructure:"log"`
}

// SolverConfig holds solver-related options.
type SolverConfig struct {
	// DefaultDigits is the digit count used when --digits is not given.
	DefaultDigits int `mapstructure:"default_digits"`

	// BruteForceLimit caps the digit count accepted for brute-force
	// verification. The oracle is exponential; this is the guard rail.
	BruteForceLimit int `mapstructure:"brute_force_limit"`
}

// HistoryConfig holds run-history persistence options.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LogConfig holds logging options.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DataDir: defaultDataDir(),
		Solver: SolverConfig{
			DefaultDigits:   10,
			BruteForceLimit: 16,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DBPath returns the run database path under the data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "digitduel.db")
}

// LogPath returns the log file path under the data directory.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "digitduel.log")
}

// Load reads configuration from path, falling back to
// {DataDir}/config.yaml and then to defaults when no file exists.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigFile(filepath.Join(cfg.DataDir, "config.yaml"))
	}

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// defaultDataDir resolves ~/.digitduel, falling back to a relative
// directory when the home dir cannot be determined.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".digitduel"
	}
	return filepath.Join(home, ".digitduel")
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rustyeddy/breakeven/export"
	"github.com/rustyeddy/breakeven/risk"
	"github.com/rustyeddy/breakeven/scenario"
	"gopkg.in/yaml.v3"
)

// Config represents the complete calculator configuration
type Config struct {
	Scenario scenario.Input `json:"scenario" yaml:"scenario"`
	Server   ServerConfig   `json:"server" yaml:"server"`
	Log      LogConfig      `json:"log" yaml:"log"`
	Export   ExportConfig   `json:"export" yaml:"export"`
}

// ServerConfig contains HTTP service parameters
type ServerConfig struct {
	Addr         string `json:"addr" yaml:"addr"`
	ReadTimeout  string `json:"read_timeout" yaml:"read_timeout"` // e.g. "5s"
	WriteTimeout string `json:"write_timeout" yaml:"write_timeout"`
}

// Timeouts parses the read and write timeouts
func (s ServerConfig) Timeouts() (read, write time.Duration, err error) {
	if s.ReadTimeout != "" {
		if read, err = time.ParseDuration(s.ReadTimeout); err != nil {
			return 0, 0, fmt.Errorf("server.read_timeout: %w", err)
		}
	}
	if s.WriteTimeout != "" {
		if write, err = time.ParseDuration(s.WriteTimeout); err != nil {
			return 0, 0, fmt.Errorf("server.write_timeout: %w", err)
		}
	}
	return read, write, nil
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level string `json:"level" yaml:"level"` // debug|info|warn|error
	JSON  bool   `json:"json" yaml:"json"`
}

// ExportConfig contains export parameters
type ExportConfig struct {
	Format export.Format `json:"format" yaml:"format"` // "csv" or "sqlite"
	Dir    string        `json:"dir,omitempty" yaml:"dir,omitempty"`
	DBPath string        `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Target returns the path the configured format writes to
func (e ExportConfig) Target() string {
	if e.Format == export.FormatSQLite {
		return e.DBPath
	}
	return e.Dir
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension).
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Load reads path when set, otherwise starts from defaults, then applies
// .env and environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides values from BREAKEVEN_* variables
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("BREAKEVEN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getenv("BREAKEVEN_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("BREAKEVEN_FEE_UNIT"); v != "" {
		c.Scenario.FeeUnit = risk.FeeUnit(v)
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"BREAKEVEN_RISK_REWARD", &c.Scenario.RiskReward},
		{"BREAKEVEN_FEE_VALUE", &c.Scenario.FeeValue},
		{"BREAKEVEN_STAKE", &c.Scenario.Stake},
	}
	for _, fl := range floats {
		v := getenv(fl.key)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", fl.key, err)
		}
		*fl.dst = x
	}

	if v := getenv("BREAKEVEN_TRADES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BREAKEVEN_TRADES: %w", err)
		}
		c.Scenario.Trades = n
	}
	return nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Scenario.Validate(); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if _, _, err := c.Server.Timeouts(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Export.Format != export.FormatCSV && c.Export.Format != export.FormatSQLite {
		return fmt.Errorf("export.format must be 'csv' or 'sqlite'")
	}
	if c.Export.Format == export.FormatCSV && c.Export.Dir == "" {
		return fmt.Errorf("export.dir required for CSV format")
	}
	if c.Export.Format == export.FormatSQLite && c.Export.DBPath == "" {
		return fmt.Errorf("export.db_path required for SQLite format")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Scenario: scenario.Default(),
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  "5s",
			WriteTimeout: "10s",
		},
		Log: LogConfig{
			Level: "info",
		},
		Export: ExportConfig{
			Format: export.FormatCSV,
			Dir:    "./breakeven-export",
			DBPath: "./breakeven.sqlite",
		},
	}
}

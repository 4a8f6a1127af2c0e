package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// configDir is the configuration directory path
	// Can be set via SetConfigDir before loading config
	configDir     string
	configDirInit bool
)

// SetConfigDir sets a custom configuration directory
// Must be called before any config loading functions
func SetConfigDir(dir string) {
	configDir = dir
	configDirInit = true
}

// GetConfigDir returns the configuration directory
// Priority: 1. Manually set via SetConfigDir, 2. ./config in current directory
func GetConfigDir() string {
	if !configDirInit {
		cwd, err := os.Getwd()
		if err == nil {
			configDir = filepath.Join(cwd, "config")
		}
		configDirInit = true
	}
	return configDir
}

// Config application configuration structure
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Parser  ParserConfig  `yaml:"parser"`
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig identifies this server to MCP clients.
type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// ParserConfig tunes the natural-language interpreter.
type ParserConfig struct {
	// CueWindow is how many characters before a wattage mention are searched
	// for role keywords when a sentence is ambiguous.
	CueWindow int `yaml:"cue_window"`
}

// HTTPConfig configures the optional HTTP API.
type HTTPConfig struct {
	Addr           string `yaml:"addr"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// LoggingConfig configures the file logger.
type LoggingConfig struct {
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
	MaxDays int    `yaml:"max_days"`
	Console bool   `yaml:"console"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:    "microwave-converter",
			Version: "1.0.0",
		},
		Parser: ParserConfig{
			CueWindow: 30,
		},
		HTTP: HTTPConfig{
			Addr:           "127.0.0.1:8742",
			TimeoutSeconds: 10,
		},
		Logging: LoggingConfig{
			Dir:     LogDir(),
			Level:   "info",
			MaxDays: 7,
			Console: false,
		},
	}
}

// ConfigDir returns the configuration directory path
func ConfigDir() (string, error) {
	dir := GetConfigDir()
	if dir == "" {
		return "", fmt.Errorf("failed to determine config directory")
	}
	return dir, nil
}

// LogDir returns the log directory path
func LogDir() string {
	dir := GetConfigDir()
	if dir == "" {
		return "logs"
	}
	return filepath.Join(dir, "logs")
}

// ConfigPath returns the configuration file path
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load loads configuration from file, creating a default file on first run
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Use default values as base so partial files stay valid
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to file
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	content := "# WattWise Configuration File\n\n" + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Name) == "" {
		return fmt.Errorf("config error: server.name cannot be empty")
	}
	if strings.TrimSpace(c.Server.Version) == "" {
		return fmt.Errorf("config error: server.version cannot be empty")
	}

	if c.Parser.CueWindow <= 0 {
		return fmt.Errorf("config error: parser.cue_window must be greater than 0")
	}

	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("config error: http.addr cannot be empty")
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("config error: http.timeout_seconds must be greater than 0")
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config error: logging.level must be one of debug, info, warn, error")
	}
	if c.Logging.MaxDays <= 0 {
		return fmt.Errorf("config error: logging.max_days must be greater than 0")
	}

	return nil
}

// String returns string representation of config
func (c *Config) String() string {
	return fmt.Sprintf(`WattWise Configuration:
  Server:
    Name: %s
    Version: %s
  Parser:
    Cue Window: %d chars
  HTTP:
    Addr: %s
    Timeout Seconds: %d
  Logging:
    Dir: %s
    Level: %s
    Max Days: %d
    Console: %v`,
		c.Server.Name,
		c.Server.Version,
		c.Parser.CueWindow,
		c.HTTP.Addr,
		c.HTTP.TimeoutSeconds,
		c.Logging.Dir,
		c.Logging.Level,
		c.Logging.MaxDays,
		c.Logging.Console,
	)
}

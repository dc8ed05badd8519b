package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"qa-chat/internal/match"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "qa-chat.yaml"

// Config represents the qa-chat configuration.
type Config struct {
	Matcher MatcherConfig `yaml:"matcher"`
	Corpus  CorpusConfig  `yaml:"corpus"`
	Server  ServerConfig  `yaml:"server"`
	Chat    ChatConfig    `yaml:"chat"`
	Log     LogConfig     `yaml:"log"`
	Color   string        `yaml:"color"` // auto, always, never
}

// MatcherConfig holds matching settings.
type MatcherConfig struct {
	Threshold     int    `yaml:"threshold"`       // Largest accepted edit distance
	Fallback      string `yaml:"fallback"`        // Answer when nothing is close enough
	MaxInputRunes int    `yaml:"max_input_runes"` // Input is truncated beyond this (0 = no limit)
}

// CorpusConfig holds corpus settings.
type CorpusConfig struct {
	Path string `yaml:"path"` // YAML corpus file (empty = built-in)
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr           string `yaml:"addr"`             // Listen address
	ReadTimeoutMs  int    `yaml:"read_timeout_ms"`  // Request read timeout
	WriteTimeoutMs int    `yaml:"write_timeout_ms"` // Response write timeout
	MaxBodyBytes   int64  `yaml:"max_body_bytes"`   // Largest accepted request body
}

// ChatConfig holds terminal chat settings.
type ChatConfig struct {
	ReplyDelayMs int `yaml:"reply_delay_ms"` // Pause before the bot answers
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // trace, debug, info, warn, error
	JSON  bool   `yaml:"json"`  // Emit JSON log lines
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Matcher: MatcherConfig{
			Threshold:     match.DefaultThreshold,
			Fallback:      match.DefaultFallback,
			MaxInputRunes: match.DefaultMaxInputRunes,
		},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8080",
			ReadTimeoutMs:  5000,
			WriteTimeoutMs: 5000,
			MaxBodyBytes:   8 << 10,
		},
		Chat: ChatConfig{
			ReplyDelayMs: 500,
		},
		Log: LogConfig{
			Level: "info",
		},
		Color: "auto",
	}
}

// LoadFromFile loads configuration from the specified file.
// If the file doesn't exist, returns default configuration.
// Environment variable overrides are applied after file loading.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides to the config.
// Unparseable values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("QA_CHAT_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}

	if v := os.Getenv("QA_CHAT_CORPUS"); v != "" {
		c.Corpus.Path = v
	}

	if v := os.Getenv("QA_CHAT_ADDR"); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv("QA_CHAT_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Matcher.Threshold = n
		}
	}
}

// Validate checks the configuration. A negative threshold is allowed and
// disables matching.
func (c *Config) Validate() error {
	if c.Matcher.MaxInputRunes < 0 {
		return errors.New("matcher.max_input_runes must be >= 0")
	}

	if strings.TrimSpace(c.Matcher.Fallback) == "" {
		return errors.New("matcher.fallback must not be empty")
	}

	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}

	if c.Server.ReadTimeoutMs < 0 {
		return errors.New("server.read_timeout_ms must be >= 0")
	}

	if c.Server.WriteTimeoutMs < 0 {
		return errors.New("server.write_timeout_ms must be >= 0")
	}

	if c.Server.MaxBodyBytes <= 0 {
		return errors.New("server.max_body_bytes must be > 0")
	}

	if c.Chat.ReplyDelayMs < 0 {
		return errors.New("chat.reply_delay_ms must be >= 0")
	}

	if !isValidColorMode(c.Color) {
		return fmt.Errorf("color must be auto, always, or never (got: %s)", c.Color)
	}

	if !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be trace, debug, info, warn, or error (got: %s)", c.Log.Level)
	}

	return nil
}

// MatcherOptions converts the matcher section into match options.
func (c *Config) MatcherOptions() []match.Option {
	return []match.Option{
		match.WithThreshold(c.Matcher.Threshold),
		match.WithFallback(c.Matcher.Fallback),
		match.WithMaxInputRunes(c.Matcher.MaxInputRunes),
	}
}

// ReadTimeout returns the server read timeout as a duration.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutMs) * time.Millisecond
}

// WriteTimeout returns the server write timeout as a duration.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutMs) * time.Millisecond
}

// ReplyDelay returns the chat reply delay as a duration.
func (c ChatConfig) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelayMs) * time.Millisecond
}

func isValidLogLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func isValidColorMode(mode string) bool {
	switch mode {
	case "auto", "always", "never":
		return true
	default:
		return false
	}
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// ShortCodeLength is the only short code length the service issues and accepts.
const ShortCodeLength = 6

// ErrInvalidShortCodeLength is returned when the configured short code length is not ShortCodeLength.
var ErrInvalidShortCodeLength = fmt.Errorf("short code length must be %d", ShortCodeLength)

type Config struct {
	Env             string `yaml:"env" env:"APP_ENV"`
	BaseURL         string `yaml:"base_url" env:"BASE_URL"`
	ShortCodeLength int    `yaml:"short_code_length" env:"SHORT_CODE_LENGTH"`
	Log             `yaml:"log" envPrefix:"LOG_"`
	HTTPServer      `yaml:"http_server" envPrefix:"HTTP_SERVER_"`
}

type Log struct {
	Level string `yaml:"level" env:"LEVEL"`
	JSON  bool   `yaml:"json" env:"JSON"`
}

var defaultLog = Log{
	Level: "info",
}

// SlogLevel parses Level, falling back to slog.LevelInfo for unknown values.
func (l *Log) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

type HTTPServer struct {
	Port           int           `yaml:"port" env:"PORT"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
	MaxHeaderBytes int           `yaml:"max_header_bytes" env:"MAX_HEADER_BYTES"`
	CertFile       string        `yaml:"cert_file" env:"CERT_FILE"`
	KeyFile        string        `yaml:"key_file" env:"KEY_FILE"`
}

var defaultHTTPServer = HTTPServer{
	Port:           5000,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   10 * time.Second,
	IdleTimeout:    time.Minute,
	MaxHeaderBytes: 1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// TLSEnabled reports whether both a certificate and a key are configured.
func (s *HTTPServer) TLSEnabled() bool {
	return s.CertFile != "" && s.KeyFile != ""
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment, in that order. An empty path skips the file.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	setDefaults(&cfg)

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse environment: %w", op, err)
	}

	if cfg.ShortCodeLength != ShortCodeLength {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidShortCodeLength)
	}

	return &cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}

	return nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.ShortCodeLength = ShortCodeLength
	cfg.Log = defaultLog
	cfg.HTTPServer = defaultHTTPServer
}

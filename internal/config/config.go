package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ferdiebergado/eventsapi/internal/pkg/env"
	timex "github.com/ferdiebergado/eventsapi/internal/pkg/time"
)

const (
	DefaultPort     = 8080
	DefaultLocale   = "zh-TW"
	DefaultOrigin   = "http://localhost:5173"
	DefaultUploads  = "uploads"
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Server struct {
	Port            int            `json:"port,omitempty" env:"PORT"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
}

type DB struct {
	Driver          string         `json:"driver,omitempty"`
	DSN             string         `json:"-" env:"DATABASE_URL"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
	AutoMigrate     bool           `json:"auto_migrate,omitempty" env:"DB_AUTO_MIGRATE"`
}

type CORS struct {
	AllowedOrigins []string `json:"allowed_origins,omitempty" env:"ALLOWED_ORIGINS"`
}

type Uploads struct {
	Dir       string `json:"dir,omitempty" env:"UPLOAD_DIR"`
	URLPrefix string `json:"url_prefix,omitempty"`
}

type Log struct {
	Env   string `json:"env,omitempty" env:"ENV"`
	Level string `json:"level,omitempty" env:"LOG_LEVEL"`
}

type Events struct {
	DefaultLocale   string `json:"default_locale,omitempty"`
	DefaultPageSize int    `json:"default_page_size,omitempty"`
}

type Config struct {
	Server  *Server  `json:"server,omitempty"`
	DB      *DB      `json:"db,omitempty"`
	CORS    *CORS    `json:"cors,omitempty"`
	Uploads *Uploads `json:"uploads,omitempty"`
	Log     *Log     `json:"log,omitempty"`
	Events  *Events  `json:"events,omitempty"`
}

// LogValue implements slog.LogValuer. The database DSN is left out since it carries credentials.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("server", c.Server),
		slog.Group("db",
			slog.String("driver", c.DB.Driver),
			slog.Int("max_open_conns", c.DB.MaxOpenConns),
			slog.Int("max_idle_conns", c.DB.MaxIdleConns),
			slog.Bool("auto_migrate", c.DB.AutoMigrate),
		),
		slog.Any("cors", c.CORS),
		slog.Any("uploads", c.Uploads),
		slog.Any("log", c.Log),
		slog.Any("events", c.Events),
	)
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Server: &Server{
			Port:            DefaultPort,
			ReadTimeout:     timex.Duration{Duration: 10 * time.Second},
			WriteTimeout:    timex.Duration{Duration: 10 * time.Second},
			IdleTimeout:     timex.Duration{Duration: 60 * time.Second},
			ShutdownTimeout: timex.Duration{Duration: 10 * time.Second},
		},
		DB: &DB{
			Driver:          "pgx",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxIdleTime: timex.Duration{Duration: 5 * time.Minute},
			ConnMaxLifetime: timex.Duration{Duration: time.Hour},
			PingTimeout:     timex.Duration{Duration: 5 * time.Second},
			AutoMigrate:     true,
		},
		CORS: &CORS{
			AllowedOrigins: []string{DefaultOrigin},
		},
		Uploads: &Uploads{
			Dir:       DefaultUploads,
			URLPrefix: "/uploads",
		},
		Log: &Log{
			Env:   "development",
			Level: "info",
		},
		Events: &Events{
			DefaultLocale:   DefaultLocale,
			DefaultPageSize: DefaultPageSize,
		},
	}
}

// Load reads cfgFile on top of the defaults and then applies the environment overrides.
// A missing cfgFile is not an error.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg := Default()

	if err := parseCfgFile(cfgFile, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		slog.Warn("Config file not found, using defaults.", "config_file", cfgFile)
	}

	if err := env.OverrideStruct(cfg); err != nil {
		return nil, fmt.Errorf("override config with env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string, cfg *Config) error {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	if err := json.Unmarshal(configFile, cfg); err != nil {
		return fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return nil
}

func (c *Config) validate() error {
	if c.DB.DSN == "" {
		return errors.New(`config: DATABASE_URL is required, set it in the environment or in ".env"`)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}

	if c.Events.DefaultPageSize < 1 || c.Events.DefaultPageSize > MaxPageSize {
		return fmt.Errorf("config: default page size %d must be between 1 and %d",
			c.Events.DefaultPageSize, MaxPageSize)
	}

	return nil
}

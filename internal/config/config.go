package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Hermes  HermesConfig  `yaml:"hermes"`
	Wheel   WheelConfig   `yaml:"wheel"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port          int    `yaml:"port"`
	MetricsPort   int    `yaml:"metrics_port"`
	AdminToken    string `yaml:"admin_token"`
	AdminPassword string `yaml:"admin_password"`
	SessionTTLMin int    `yaml:"session_ttl_min"`
	RateLimit     int    `yaml:"rate_limit"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	URL    string `yaml:"url"`
}

type HermesConfig struct {
	URL string `yaml:"url"`
}

type WheelConfig struct {
	Spins        int      `yaml:"spins"`
	Frames       int      `yaml:"frames"`
	FrameDelayMs int      `yaml:"frame_delay_ms"`
	Size         float64  `yaml:"size"`
	Radius       float64  `yaml:"radius"`
	Palette      []string `yaml:"palette"`
	WinnerColor  string   `yaml:"winner_color"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Server.SessionTTLMin) * time.Minute
}

func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.Wheel.FrameDelayMs) * time.Millisecond
}

func (c *Config) Animation() wheel.Animation {
	return wheel.Animation{Spins: c.Wheel.Spins, Frames: c.Wheel.Frames}
}

func (c *Config) Style() wheel.Style {
	return wheel.Style{
		Size:        c.Wheel.Size,
		Radius:      c.Wheel.Radius,
		Palette:     c.Wheel.Palette,
		WinnerColor: c.Wheel.WinnerColor,
	}
}

func Load(path string) (*Config, error) {
	anim := wheel.DefaultAnimation()
	style := wheel.DefaultStyle()

	cfg := &Config{
		Server: ServerConfig{
			Port:          8700,
			MetricsPort:   8701,
			SessionTTLMin: 60,
			RateLimit:     120,
		},
		Storage: StorageConfig{
			Driver: "file",
			Path:   "options.json",
		},
		Hermes: HermesConfig{
			URL: "nats://localhost:4222",
		},
		Wheel: WheelConfig{
			Spins:        anim.Spins,
			Frames:       anim.Frames,
			FrameDelayMs: 50,
			Size:         style.Size,
			Radius:       style.Radius,
			Palette:      style.Palette,
			WinnerColor:  style.WinnerColor,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "file", "sqlite":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for driver %q", c.Storage.Driver)
		}
	case "postgres":
		if c.Storage.URL == "" {
			return fmt.Errorf("storage.url is required for driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Wheel.Frames < 1 {
		return fmt.Errorf("wheel.frames must be at least 1, got %d", c.Wheel.Frames)
	}
	if c.Wheel.Spins < 0 {
		return fmt.Errorf("wheel.spins must not be negative, got %d", c.Wheel.Spins)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WHEEL_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("WHEEL_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("WHEEL_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("WHEEL_ADMIN_PASSWORD"); v != "" {
		cfg.Server.AdminPassword = v
	}
	if v := os.Getenv("WHEEL_SESSION_TTL_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.SessionTTLMin = n
		}
	}
	if v := os.Getenv("WHEEL_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimit = n
		}
	}
	if v := os.Getenv("WHEEL_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("WHEEL_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("WHEEL_DATABASE_URL"); v != "" {
		cfg.Storage.URL = v
	}
	if v := os.Getenv("WHEEL_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("WHEEL_SPINS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Wheel.Spins = n
		}
	}
	if v := os.Getenv("WHEEL_FRAMES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Wheel.Frames = n
		}
	}
	if v := os.Getenv("WHEEL_FRAME_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Wheel.FrameDelayMs = n
		}
	}
	if v := os.Getenv("WHEEL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("WHEEL_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

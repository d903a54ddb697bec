package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envVars = []string{
	"WHEEL_PORT", "WHEEL_METRICS_PORT", "WHEEL_ADMIN_TOKEN", "WHEEL_ADMIN_PASSWORD",
	"WHEEL_SESSION_TTL_MIN", "WHEEL_RATE_LIMIT", "WHEEL_STORAGE_DRIVER", "WHEEL_STORAGE_PATH",
	"WHEEL_DATABASE_URL", "WHEEL_HERMES_URL", "WHEEL_SPINS", "WHEEL_FRAMES",
	"WHEEL_FRAME_DELAY_MS", "WHEEL_LOG_LEVEL", "WHEEL_LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Storage.Driver != "file" || cfg.Storage.Path != "options.json" {
		t.Errorf("expected file storage at options.json, got %s %s", cfg.Storage.Driver, cfg.Storage.Path)
	}
	if cfg.Hermes.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Hermes.URL)
	}
	if cfg.Wheel.Spins != 5 {
		t.Errorf("expected 5 spins, got %d", cfg.Wheel.Spins)
	}
	if cfg.Wheel.Frames != 60 {
		t.Errorf("expected 60 frames, got %d", cfg.Wheel.Frames)
	}
	if len(cfg.Wheel.Palette) != 10 {
		t.Errorf("expected 10 palette colours, got %d", len(cfg.Wheel.Palette))
	}
	if cfg.Wheel.WinnerColor != "#FFD700" {
		t.Errorf("expected gold winner colour, got %s", cfg.Wheel.WinnerColor)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}

	if cfg.FrameDelay() != 50*time.Millisecond {
		t.Errorf("expected FrameDelay 50ms, got %v", cfg.FrameDelay())
	}
	if cfg.SessionTTL() != time.Hour {
		t.Errorf("expected SessionTTL 1h, got %v", cfg.SessionTTL())
	}
	if a := cfg.Animation(); a.Spins != 5 || a.Frames != 60 {
		t.Errorf("unexpected animation %+v", a)
	}
	if s := cfg.Style(); s.Size != 400 || s.Radius != 180 {
		t.Errorf("unexpected style %+v", s)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WHEEL_PORT", "9000")
	t.Setenv("WHEEL_METRICS_PORT", "9001")
	t.Setenv("WHEEL_ADMIN_TOKEN", "secret-token")
	t.Setenv("WHEEL_ADMIN_PASSWORD", "hunter2")
	t.Setenv("WHEEL_STORAGE_DRIVER", "POSTGRES")
	t.Setenv("WHEEL_DATABASE_URL", "postgres://localhost/wheel_test")
	t.Setenv("WHEEL_HERMES_URL", "nats://nats:4222")
	t.Setenv("WHEEL_SPINS", "3")
	t.Setenv("WHEEL_FRAMES", "20")
	t.Setenv("WHEEL_FRAME_DELAY_MS", "10")
	t.Setenv("WHEEL_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token 'secret-token', got '%s'", cfg.Server.AdminToken)
	}
	if cfg.Server.AdminPassword != "hunter2" {
		t.Errorf("expected admin password, got '%s'", cfg.Server.AdminPassword)
	}
	if cfg.Storage.Driver != "postgres" {
		t.Errorf("expected postgres driver, got '%s'", cfg.Storage.Driver)
	}
	if cfg.Storage.URL != "postgres://localhost/wheel_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Storage.URL)
	}
	if cfg.Hermes.URL != "nats://nats:4222" {
		t.Errorf("expected hermes URL, got '%s'", cfg.Hermes.URL)
	}
	if cfg.Wheel.Spins != 3 || cfg.Wheel.Frames != 20 {
		t.Errorf("expected 3 spins and 20 frames, got %d and %d", cfg.Wheel.Spins, cfg.Wheel.Frames)
	}
	if cfg.FrameDelay() != 10*time.Millisecond {
		t.Errorf("expected FrameDelay 10ms, got %v", cfg.FrameDelay())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	data := `
server:
  port: 8800
storage:
  driver: sqlite
  path: /tmp/wheel.db
wheel:
  spins: 8
  palette: ["#000000", "#FFFFFF"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8800 {
		t.Errorf("expected port 8800, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Driver != "sqlite" || cfg.Storage.Path != "/tmp/wheel.db" {
		t.Errorf("unexpected storage %+v", cfg.Storage)
	}
	if cfg.Wheel.Spins != 8 {
		t.Errorf("expected 8 spins, got %d", cfg.Wheel.Spins)
	}
	if cfg.Wheel.Frames != 60 {
		t.Errorf("expected default frames to survive, got %d", cfg.Wheel.Frames)
	}
	if len(cfg.Wheel.Palette) != 2 {
		t.Errorf("expected palette override, got %v", cfg.Wheel.Palette)
	}

	t.Setenv("WHEEL_SPINS", "2")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Wheel.Spins != 2 {
		t.Errorf("expected env to win over file, got %d", cfg.Wheel.Spins)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"WHEEL_STORAGE_DRIVER": "redis"}},
		{"postgres without url", map[string]string{"WHEEL_STORAGE_DRIVER": "postgres"}},
		{"zero frames", map[string]string{"WHEEL_FRAMES": "0"}},
		{"negative spins", map[string]string{"WHEEL_SPINS": "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(""); err == nil {
				t.Error("expected error")
			}
		})
	}

	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

package config

import (
	"testing"

	"github.com/membank-oss/membank/internal/errors"
)

func validConfig() *Config {
	cfg := defaultConfig()
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidate_BadDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Driver = "postgres"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
	if errors.AsCode(err) != errors.CodeConfigInvalid {
		t.Errorf("expected CONFIG_INVALID, got %s", errors.AsCode(err))
	}
}

func TestValidate_EmptyStorePath(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Path = ""

	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for empty store path")
	}
}

func TestValidate_NegativeLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Retrieval.Limit = -1

	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for negative retrieval limit")
	}
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"

	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for invalid logging level")
	}
}

func TestValidate_Hooks(t *testing.T) {
	tests := []struct {
		name    string
		hook    HookConfig
		wantErr bool
	}{
		{"valid shell", HookConfig{Name: "notify", Type: "shell", Command: "echo ok"}, false},
		{"shell without command", HookConfig{Name: "notify", Type: "shell"}, true},
		{"valid webhook", HookConfig{Name: "post", Type: "webhook", URL: "http://localhost:9999/hook"}, false},
		{"webhook without url", HookConfig{Name: "post", Type: "webhook"}, true},
		{"valid log", HookConfig{Name: "trace", Type: "log"}, false},
		{"unknown type", HookConfig{Name: "x", Type: "pager"}, true},
		{"missing name", HookConfig{Type: "log"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Hooks.Hooks = []HookConfig{tt.hook}

			err := Validate(cfg)
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

package config

import (
	"fmt"
	"strings"

	"github.com/membank-oss/membank/internal/errors"
)

// Validate checks the configuration for unusable values.
func Validate(cfg *Config) error {
	var problems []string

	validDrivers := map[string]bool{
		"sqlite": true,
	}
	if !validDrivers[cfg.Store.Driver] {
		problems = append(problems, fmt.Sprintf("unsupported store driver: %s", cfg.Store.Driver))
	}
	if cfg.Store.Path == "" {
		problems = append(problems, "store path is required")
	}
	if cfg.Retrieval.Limit < 0 {
		problems = append(problems, fmt.Sprintf("retrieval limit must not be negative: %d", cfg.Retrieval.Limit))
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"":      true, // empty defaults to info
	}
	if !validLevels[cfg.Logging.Level] {
		problems = append(problems, fmt.Sprintf("invalid logging level: %s", cfg.Logging.Level))
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"":     true,
	}
	if !validFormats[cfg.Logging.Format] {
		problems = append(problems, fmt.Sprintf("invalid logging format: %s", cfg.Logging.Format))
	}

	for _, h := range cfg.Hooks.Hooks {
		if err := validateHook(&h); err != nil {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(errors.CodeConfigInvalid,
			"config validation failed: "+strings.Join(problems, "; ")).
			WithSuggestion("Fix membank.yaml or delete it to use the defaults")
	}
	return nil
}

func validateHook(h *HookConfig) error {
	if h.Name == "" {
		return fmt.Errorf("hook name is required")
	}

	switch h.Type {
	case "shell":
		if h.Command == "" {
			return fmt.Errorf("hook %s: shell hooks require a command", h.Name)
		}
	case "webhook":
		if h.URL == "" {
			return fmt.Errorf("hook %s: webhook hooks require a url", h.Name)
		}
	case "log":
		// level is optional, defaults to info
	default:
		return fmt.Errorf("hook %s: invalid hook type: %s", h.Name, h.Type)
	}
	return nil
}

package config

// Config represents the main project configuration (membank.yaml)
type Config struct {
	Name      string          `yaml:"name" json:"name"`
	Version   string          `yaml:"version" json:"version"`
	Store     StoreConfig     `yaml:"store" json:"store"`
	Retrieval RetrievalConfig `yaml:"retrieval" json:"retrieval"`
	Journal   JournalConfig   `yaml:"journal" json:"journal"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
	Hooks     HooksConfig     `yaml:"hooks" json:"hooks"`
}

// StoreConfig configures document storage. The path is explicit
// configuration, never a package-level constant.
type StoreConfig struct {
	Driver string `yaml:"driver" json:"driver"` // sqlite
	Path   string `yaml:"path" json:"path"`     // database file path
}

// RetrievalConfig provides retrieval defaults
type RetrievalConfig struct {
	Limit int `yaml:"limit" json:"limit"` // default document limit per retrieval
}

// JournalConfig configures the operation journal
type JournalConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Path    string `yaml:"path" json:"path"` // journal database file path
}

// LoggingConfig configures logging
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // text, json
}

// HooksConfig configures lifecycle event hooks.
type HooksConfig struct {
	Enabled bool         `yaml:"enabled" json:"enabled"`
	Hooks   []HookConfig `yaml:"hooks" json:"hooks"`
}

// HookConfig defines a single hook.
type HookConfig struct {
	Name     string   `yaml:"name" json:"name"`
	Type     string   `yaml:"type" json:"type"`     // shell, webhook, log
	Events   []string `yaml:"events" json:"events"` // event types to match
	Blocking bool     `yaml:"blocking" json:"blocking"`
	Command  string   `yaml:"command,omitempty" json:"command,omitempty"` // for shell hooks
	URL      string   `yaml:"url,omitempty" json:"url,omitempty"`         // for webhook hooks
	Level    string   `yaml:"level,omitempty" json:"level,omitempty"`     // for log hooks (debug, info, warn)
}

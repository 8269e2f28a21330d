package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DirName is the per-project data directory.
const DirName = ".scribe"

// Config represents the scribe configuration
type Config struct {
	// Editor behaviour
	DebounceMS      int  `json:"debounce_ms"`
	LineNumbers     bool `json:"line_numbers"`
	Minimap         bool `json:"minimap"`
	TabSize         int  `json:"tab_size"`
	Autosave        bool `json:"autosave"`
	WatchDebounceMS int  `json:"watch_debounce_ms"`

	// UI preferences
	Theme   string `json:"theme"`
	Preview bool   `json:"preview"`

	// Diagnostics
	LogFile string `json:"log_file"`
	Debug   bool   `json:"debug"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DebounceMS:      500,
		LineNumbers:     true,
		Minimap:         false,
		TabSize:         4,
		Autosave:        false,
		WatchDebounceMS: 300,
		Theme:           "scribe",
		Preview:         true,
		LogFile:         filepath.Join(DirName, "scribe.log"),
		Debug:           false,
	}
}

// Debounce returns the configured debounce as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// WatchDebounce is how long outside edits to the open file must settle
// before they are reported.
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMS) * time.Millisecond
}

// Manager handles configuration loading and saving
type Manager struct {
	projectPath string
	configPath  string
	config      *Config
}

// NewManager creates a new configuration manager
func NewManager(projectPath string) *Manager {
	dir := filepath.Join(projectPath, DirName)
	return &Manager{
		projectPath: projectPath,
		configPath:  filepath.Join(dir, "config.json"),
		config:      DefaultConfig(),
	}
}

// Path returns the location of config.json.
func (m *Manager) Path() string {
	return m.configPath
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", DirName, err)
	}

	if err := m.ensureGitignore(); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return m.Save()
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so keys missing from the file keep their default
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}

	m.expandEnvVars(config)
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}

	m.config = config
	return nil
}

// Validate rejects values the editor cannot use.
func (c *Config) Validate() error {
	if c.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must be >= 0, got %d", c.DebounceMS)
	}
	if c.TabSize < 0 {
		return fmt.Errorf("tab_size must be >= 0, got %d", c.TabSize)
	}
	if c.WatchDebounceMS < 0 {
		return fmt.Errorf("watch_debounce_ms must be >= 0, got %d", c.WatchDebounceMS)
	}
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	switch key {
	case "theme":
		m.config.Theme = value
	case "log_file":
		m.config.LogFile = value
	case "debounce_ms", "tab_size", "watch_debounce_ms":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
		switch key {
		case "debounce_ms":
			m.config.DebounceMS = n
		case "tab_size":
			m.config.TabSize = n
		default:
			m.config.WatchDebounceMS = n
		}
	case "line_numbers":
		m.config.LineNumbers = value == "true"
	case "minimap":
		m.config.Minimap = value == "true"
	case "autosave":
		m.config.Autosave = value == "true"
	case "preview":
		m.config.Preview = value == "true"
	case "debug":
		m.config.Debug = value == "true"
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return m.Save()
}

// ensureGitignore creates a .gitignore in .scribe/ with smart defaults
func (m *Manager) ensureGitignore() error {
	gitignorePath := filepath.Join(filepath.Dir(m.configPath), ".gitignore")

	if _, err := os.Stat(gitignorePath); !os.IsNotExist(err) {
		return nil // Already exists
	}

	gitignoreContent := `# scribe data directory
#
# config.json is meant to be shared; logs and scratch files are not.

*.log
*.tmp
.DS_Store

!config.json
!.gitignore
`

	return os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644)
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandEnvVars expands environment variables in string config values
func (m *Manager) expandEnvVars(config *Config) {
	config.Theme = expandString(config.Theme)
	config.LogFile = expandString(config.LogFile)
}

// expandString expands $VAR and ${VAR}; unknown variables are left as-is.
func expandString(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match
	})
}

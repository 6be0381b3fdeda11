package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// SystemConfig lives in ~/.config/ustaad/settings.toml and only points at
// the data directory; everything else lives with the data.
type SystemConfig struct {
	DataDirectory string `toml:"data_directory"`
}

// UserConfig lives in <data_directory>/config.toml.
type UserConfig struct {
	Provider         string `toml:"provider"`
	OpenAIModel      string `toml:"openai_model"`
	GeminiModel      string `toml:"gemini_model"`
	PersonaIntensity string `toml:"persona_intensity"`
	MaxHistoryItems  int    `toml:"max_history_items"`
}

// Config is the merged runtime configuration.
type Config struct {
	DataDirectory    string
	Provider         string
	OpenAIModel      string
	GeminiModel      string
	PersonaIntensity string
	MaxHistoryItems  int

	Credentials *CredentialStore
}

var Debug = false
var DebugLog *log.Logger

// DataDir returns the expanded data directory path.
func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

// Model returns the configured model for the active provider.
func (c *Config) Model() string {
	if c.Provider == "openai" {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

// ModelFor returns the configured model for the given provider tag.
func (c *Config) ModelFor(provider string) string {
	if provider == "openai" {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

func (c *Config) applyEnvOverrides() {
	if dataDir := os.Getenv("USTAAD_DATA_DIR"); dataDir != "" {
		c.DataDirectory = dataDir
	}
	if provider := os.Getenv("USTAAD_PROVIDER"); provider != "" {
		c.Provider = provider
	}
}

// CheckDebug reports whether debug logging is requested via environment.
func CheckDebug() bool {
	debug := os.Getenv("USTAAD_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog opens <dataDir>/debug.log when USTAAD_DEBUG is set. The TUI
// owns the terminal, so stderr is not usable for diagnostics.
func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	// 0600 - debug output may include prompt text
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (USTAAD_DEBUG=%s) ===", os.Getenv("USTAAD_DEBUG"))
}

// Load reads the two-tier configuration, creating default files on first
// run, and loads the credential store.
func Load() (*Config, error) {
	systemCfg, err := LoadSystemConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load system config: %w", err)
	}

	cfg := &Config{DataDirectory: systemCfg.DataDirectory}
	cfg.applyEnvOverrides()

	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	userCfg, err := LoadUserConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	cfg.Provider = userCfg.Provider
	cfg.OpenAIModel = userCfg.OpenAIModel
	cfg.GeminiModel = userCfg.GeminiModel
	cfg.PersonaIntensity = userCfg.PersonaIntensity
	cfg.MaxHistoryItems = userCfg.MaxHistoryItems
	cfg.applyEnvOverrides()
	cfg.fillDefaults()

	creds := NewCredentialStore()
	if err := creds.Load(dataDir); err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	cfg.Credentials = creds

	return cfg, nil
}

// fillDefaults backfills zero values so partial config files behave like
// the documented defaults.
func (c *Config) fillDefaults() {
	def := DefaultUserConfig()
	if c.Provider != "openai" && c.Provider != "gemini" {
		c.Provider = def.Provider
	}
	if c.OpenAIModel == "" {
		c.OpenAIModel = def.OpenAIModel
	}
	if c.GeminiModel == "" {
		c.GeminiModel = def.GeminiModel
	}
	if c.PersonaIntensity == "" {
		c.PersonaIntensity = def.PersonaIntensity
	}
	if c.MaxHistoryItems <= 0 {
		c.MaxHistoryItems = def.MaxHistoryItems
	}
}

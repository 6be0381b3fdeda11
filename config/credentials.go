package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// CredentialStore manages per-provider API keys.
//
// Keys live in <data_directory>/credentials.toml with 0600 permissions.
// The session orchestrator only reads; writes happen through the set-key
// and clear-key administrative commands.
type CredentialStore struct {
	credentials map[string]string // provider tag → API key
}

// NewCredentialStore creates an empty credential store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		credentials: make(map[string]string),
	}
}

// Load reads credentials from disk. A missing file is not an error.
func (c *CredentialStore) Load(dataDir string) error {
	path := credentialsPath(dataDir)
	if !FileExists(path) {
		return nil
	}

	type credentialsFile struct {
		Credentials map[string]string `toml:"credentials"`
	}

	var cf credentialsFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return fmt.Errorf("failed to parse credentials file: %w", err)
	}
	if cf.Credentials != nil {
		c.credentials = cf.Credentials
	}
	return nil
}

// Save writes credentials to disk with 0600 permissions.
func (c *CredentialStore) Save(dataDir string) error {
	if err := EnsureDir(dataDir); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	type credentialsFile struct {
		Credentials map[string]string `toml:"credentials"`
	}

	f, err := os.OpenFile(credentialsPath(dataDir), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create credentials file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(credentialsFile{Credentials: c.credentials}); err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	return nil
}

// Get retrieves the API key for a provider; empty when absent.
func (c *CredentialStore) Get(provider string) string {
	return c.credentials[provider]
}

// Set stores the API key for a provider.
func (c *CredentialStore) Set(provider, apiKey string) {
	c.credentials[provider] = apiKey
}

// Delete removes the API key for a provider.
func (c *CredentialStore) Delete(provider string) {
	delete(c.credentials, provider)
}

func credentialsPath(dataDir string) string {
	return filepath.Join(dataDir, "credentials.toml")
}

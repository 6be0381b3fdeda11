package provider

import "fmt"

// NewProvider creates a provider based on configuration.
//
// The provider set is closed: anything other than TypeOpenAI or TypeGemini
// is a configuration error and fails fast, synchronously, before any
// network activity. Callers get a ready-to-use instance with no further
// setup required.
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Type {
	case TypeOpenAI:
		p, err := NewOpenAIProvider(cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case TypeGemini:
		p, err := NewGeminiProvider(cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}

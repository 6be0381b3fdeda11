package provider

import (
	"strings"
	"testing"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		expectName  string
	}{
		{
			name: "openai provider",
			config: Config{
				Type:   TypeOpenAI,
				APIKey: "test-key",
				Model:  "gpt-4o-mini",
			},
			expectError: false,
			expectName:  "openai",
		},
		{
			name: "gemini provider",
			config: Config{
				Type:   TypeGemini,
				APIKey: "test-key",
				Model:  "gemini-2.5-flash",
			},
			expectError: false,
			expectName:  "gemini",
		},
		{
			name: "openai provider with default model",
			config: Config{
				Type:   TypeOpenAI,
				APIKey: "test-key",
			},
			expectError: false,
			expectName:  "openai",
		},
		{
			name: "openai provider without key",
			config: Config{
				Type:  TypeOpenAI,
				Model: "gpt-4o-mini",
			},
			expectError: true,
		},
		{
			name: "gemini provider without key",
			config: Config{
				Type:  TypeGemini,
				Model: "gemini-2.5-flash",
			},
			expectError: true,
		},
		{
			name: "unknown provider type",
			config: Config{
				Type:   Type("anthropic"),
				APIKey: "test-key",
				Model:  "claude",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if p != nil {
					t.Error("expected nil provider on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p == nil {
				t.Fatal("expected non-nil provider")
			}
			if p.Name() != tt.expectName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.expectName)
			}
		})
	}
}

func TestNewProviderUnknownTypeMessage(t *testing.T) {
	_, err := NewProvider(Config{Type: Type("llama"), APIKey: "k"})
	if err == nil {
		t.Fatal("expected error for unknown provider type")
	}
	if !strings.Contains(err.Error(), "unknown provider type") {
		t.Errorf("error %q should name the unknown provider type", err.Error())
	}
}

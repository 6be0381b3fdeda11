// Package testutil provides mock providers for session and stream tests.
package testutil

import (
	"context"
	"strings"
)

// MockProvider implements provider.Provider for testing.
//
// By default it streams Chunks as cumulative snapshots (the real adapters'
// contract) and returns the accumulated text. Set StreamFunc to override
// the behavior entirely, or Err to fail after streaming whatever Chunks
// contain.
type MockProvider struct {
	ProviderName string
	Chunks       []string
	Err          error

	StreamFunc func(ctx context.Context, systemPrompt, userPrompt string, onChunk func(string)) (string, error)

	// Recorded state for assertions.
	Calls         int
	LastSystem    string
	LastUser      string
	EmittedChunks []string
}

// NewMockProvider creates a mock provider that streams the given chunks.
func NewMockProvider(name string, chunks ...string) *MockProvider {
	return &MockProvider{
		ProviderName: name,
		Chunks:       chunks,
	}
}

// Name implements provider.Provider.
func (m *MockProvider) Name() string {
	return m.ProviderName
}

// StreamExplanation implements provider.Provider.
func (m *MockProvider) StreamExplanation(ctx context.Context, systemPrompt, userPrompt string, onChunk func(string)) (string, error) {
	m.Calls++
	m.LastSystem = systemPrompt
	m.LastUser = userPrompt

	if m.StreamFunc != nil {
		return m.StreamFunc(ctx, systemPrompt, userPrompt, onChunk)
	}

	var full strings.Builder
	for _, chunk := range m.Chunks {
		full.WriteString(chunk)
		m.EmittedChunks = append(m.EmittedChunks, full.String())
		if onChunk != nil {
			onChunk(full.String())
		}
	}

	if m.Err != nil {
		return full.String(), m.Err
	}
	return full.String(), nil
}

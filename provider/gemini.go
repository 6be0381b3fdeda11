package provider

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider implements the Provider interface using Google's official
// Gen AI Go SDK. The generate-content API streams incremental text
// fragments (already plain text, not token deltas); the adapter accumulates
// them into the same cumulative-callback contract as the OpenAI adapter.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini provider instance.
// Returns an error if the API key is missing or the client cannot be built.
func NewGeminiProvider(apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Name implements Provider.Name.
func (p *GeminiProvider) Name() string {
	return string(TypeGemini)
}

// StreamExplanation implements Provider.StreamExplanation.
func (p *GeminiProvider) StreamExplanation(ctx context.Context, systemPrompt, userPrompt string, onChunk func(content string)) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	var full strings.Builder
	for resp, err := range p.client.Models.GenerateContentStream(ctx, p.model, genai.Text(userPrompt), config) {
		// Returned unchanged: the classifier needs the SDK error intact.
		if err != nil {
			return full.String(), err
		}
		text := resp.Text()
		if text == "" {
			continue
		}
		full.WriteString(text)
		if onChunk != nil {
			onChunk(full.String())
		}
	}

	return full.String(), nil
}

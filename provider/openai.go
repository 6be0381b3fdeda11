package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIProvider implements the Provider interface using OpenAI's official
// Go SDK. The chat-completion API streams token deltas; the adapter
// concatenates them so every callback carries the cumulative text.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider instance.
// Returns an error if the API key is missing.
func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAIProvider{
		client: client,
		model:  model,
	}, nil
}

// Name implements Provider.Name.
func (p *OpenAIProvider) Name() string {
	return string(TypeOpenAI)
}

// StreamExplanation implements Provider.StreamExplanation.
func (p *OpenAIProvider) StreamExplanation(ctx context.Context, systemPrompt, userPrompt string, onChunk func(content string)) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model:       openai.ChatModel(p.model),
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(2000),
	}

	stream := p.client.Chat.Completions.NewStreaming(ctx, params)

	var full strings.Builder
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
			continue
		}
		full.WriteString(chunk.Choices[0].Delta.Content)
		if onChunk != nil {
			onChunk(full.String())
		}
	}

	// Returned unchanged: the classifier needs the SDK error intact.
	if err := stream.Err(); err != nil {
		return full.String(), err
	}

	return full.String(), nil
}

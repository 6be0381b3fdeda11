// Package provider defines the abstract interface for LLM providers.
//
// Ustaad supports exactly two providers (OpenAI, Gemini) through a common
// Provider interface. This keeps the session orchestrator provider-agnostic:
// it builds prompts, hands them to whichever provider the config names, and
// consumes one stream of cumulative text regardless of how the backend
// chunks its response.
//
// # Cumulative chunks
//
// StreamExplanation invokes its callback with the full text generated so
// far, not the newest delta. The OpenAI API streams token deltas and the
// Gemini API streams incremental text fragments; both adapters normalize to
// the cumulative contract internally, so the UI's only rendering operation
// is "replace the pane with the latest snapshot".
//
// # Error propagation
//
// Adapters return backend failures unchanged. Classification into
// user-facing categories happens one layer up (see Classify), which is the
// single source of truth for user wording across both providers.
package provider

import "context"

// Provider is the capability contract every backend adapter satisfies.
type Provider interface {
	// Name returns the provider tag ("openai" or "gemini").
	Name() string

	// StreamExplanation sends the prompts and streams the response.
	// onChunk receives the cumulative text so far, in strict arrival
	// order. The returned string equals the last value passed to onChunk.
	StreamExplanation(ctx context.Context, systemPrompt, userPrompt string, onChunk func(content string)) (string, error)
}

// Type identifies the provider implementation.
type Type string

const (
	TypeOpenAI Type = "openai"
	TypeGemini Type = "gemini"
)

// Config holds provider construction parameters. One provider instance is
// built per request; construction is cheap and instances hold no state
// beyond the client handle and model name.
type Config struct {
	Type   Type
	APIKey string
	Model  string
}

package provider

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		provider string
		want     string
	}{
		{
			name:     "401 status",
			err:      &StatusError{StatusCode: 401, Message: "invalid authentication"},
			provider: "openai",
			want:     msgAuth,
		},
		{
			name:     "403 status",
			err:      &StatusError{StatusCode: 403, Message: "forbidden"},
			provider: "gemini",
			want:     msgAuth,
		},
		{
			name:     "auth by message without status",
			err:      errors.New("Incorrect API key provided: sk-****"),
			provider: "openai",
			want:     msgAuth,
		},
		{
			name:     "gemini key not valid",
			err:      errors.New("API key not valid. Please pass a valid API key."),
			provider: "gemini",
			want:     msgAuth,
		},
		{
			name:     "permission denied",
			err:      errors.New("PERMISSION_DENIED: permission denied for resource"),
			provider: "gemini",
			want:     msgAuth,
		},
		{
			name:     "auth beats timeout wording",
			err:      &StatusError{StatusCode: 401, Message: "request timeout while checking credentials"},
			provider: "openai",
			want:     msgAuth,
		},
		{
			name:     "429 status gemini",
			err:      &StatusError{StatusCode: 429, Message: "rate limit exceeded"},
			provider: "gemini",
			want:     msgQuotaGemini,
		},
		{
			name:     "429 status openai",
			err:      &StatusError{StatusCode: 429, Message: "rate limit exceeded"},
			provider: "openai",
			want:     msgRateOpenAI,
		},
		{
			name:     "quota by message",
			err:      errors.New("RESOURCE_EXHAUSTED: quota exceeded for requests per minute"),
			provider: "gemini",
			want:     msgQuotaGemini,
		},
		{
			name:     "429 literal substring",
			err:      errors.New("unexpected response: 429"),
			provider: "openai",
			want:     msgRateOpenAI,
		},
		{
			name:     "404 status",
			err:      &StatusError{StatusCode: 404, Message: "no such endpoint"},
			provider: "openai",
			want:     msgModelNotFound,
		},
		{
			name:     "model not found by message",
			err:      errors.New("The model gpt-5-giga does not exist or you do not have access to it"),
			provider: "openai",
			want:     msgModelNotFound,
		},
		{
			name:     "dns failure",
			err:      errors.New("dial tcp: lookup api.openai.com: no such host"),
			provider: "openai",
			want:     msgNetwork,
		},
		{
			name:     "connection refused",
			err:      errors.New("dial tcp 127.0.0.1:443: connect: connection refused"),
			provider: "gemini",
			want:     msgNetwork,
		},
		{
			name:     "dns flavored timeout is network not timeout",
			err:      errors.New("ETIMEDOUT during DNS lookup"),
			provider: "openai",
			want:     msgNetwork,
		},
		{
			name:     "socket hang up",
			err:      errors.New("socket hang up"),
			provider: "openai",
			want:     msgNetwork,
		},
		{
			name:     "offline precheck error",
			err:      ErrOffline,
			provider: "gemini",
			want:     msgNetwork,
		},
		{
			name:     "plain timeout",
			err:      errors.New("request timeout after 60s"),
			provider: "openai",
			want:     msgTimeout,
		},
		{
			name:     "fallback surfaces raw message",
			err:      errors.New("something strange happened"),
			provider: "openai",
			want:     "something strange happened",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err, tt.provider)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The two providers must surface distinct rate-limit wording.
func TestClassifyRateLimitWordingDiffersByProvider(t *testing.T) {
	err := &StatusError{StatusCode: 429, Message: "rate limit exceeded"}
	gemini := Classify(err, "gemini")
	openai := Classify(err, "openai")
	if gemini == openai {
		t.Errorf("gemini and openai 429 messages must differ, both were %q", gemini)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	err := &StatusError{StatusCode: 429, Message: "quota"}
	first := Classify(err, "gemini")
	for i := 0; i < 5; i++ {
		if got := Classify(err, "gemini"); got != first {
			t.Fatalf("Classify not deterministic: %q then %q", first, got)
		}
	}
}

// rewordedErr hides its cause's message but keeps the error chain.
type rewordedErr struct{ cause error }

func (e rewordedErr) Error() string { return "request aborted" }
func (e rewordedErr) Unwrap() error { return e.cause }

// The offline sentinel must classify as a network error by identity, even
// when a wrapper replaces its message with words no signature matches.
func TestClassifyOfflineSentinelByIdentity(t *testing.T) {
	if got := Classify(ErrOffline, "gemini"); got != msgNetwork {
		t.Errorf("Classify(ErrOffline) = %q, want %q", got, msgNetwork)
	}
	if got := Classify(rewordedErr{cause: ErrOffline}, "openai"); got != msgNetwork {
		t.Errorf("Classify(wrapped ErrOffline) = %q, want %q", got, msgNetwork)
	}
}

func TestStatusCodeFromStatusError(t *testing.T) {
	if got := statusCode(&StatusError{StatusCode: 503}); got != 503 {
		t.Errorf("statusCode = %d, want 503", got)
	}
	if got := statusCode(errors.New("no status here")); got != 0 {
		t.Errorf("statusCode = %d, want 0 for statusless error", got)
	}
}

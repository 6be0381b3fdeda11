package provider_test

import (
	"context"
	"testing"

	"ustaad/provider"
	"ustaad/provider/testutil"
)

// Every chunk callback must carry the cumulative text, non-decreasing in
// length, and the final callback payload must equal the returned text.
func TestStreamCumulativeMonotonicity(t *testing.T) {
	mock := testutil.NewMockProvider("openai", "Dekho ", "bhai, ", "yeh ", "ek ", "loop ", "hai.")

	var seen []string
	final, err := mock.StreamExplanation(context.Background(), "sys", "user", func(content string) {
		seen = append(seen, content)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seen) != 6 {
		t.Fatalf("expected 6 callbacks, got %d", len(seen))
	}
	for i := 1; i < len(seen); i++ {
		if len(seen[i]) < len(seen[i-1]) {
			t.Errorf("chunk %d shrank: %q after %q", i, seen[i], seen[i-1])
		}
	}
	if seen[len(seen)-1] != final {
		t.Errorf("final callback %q != returned text %q", seen[len(seen)-1], final)
	}
	if final != "Dekho bhai, yeh ek loop hai." {
		t.Errorf("unexpected final text %q", final)
	}
}

func TestStreamNilCallback(t *testing.T) {
	mock := testutil.NewMockProvider("gemini", "a", "b")
	final, err := mock.StreamExplanation(context.Background(), "sys", "user", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if final != "ab" {
		t.Errorf("final = %q, want %q", final, "ab")
	}
}

func TestStreamErrorPropagatesUnchanged(t *testing.T) {
	wantErr := &provider.StatusError{StatusCode: 429, Message: "rate limit exceeded"}
	mock := testutil.NewMockProvider("gemini", "partial")
	mock.Err = wantErr

	_, err := mock.StreamExplanation(context.Background(), "sys", "user", nil)
	if err != wantErr {
		t.Fatalf("error not propagated unchanged: got %v", err)
	}
}

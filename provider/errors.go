package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"
)

// StatusError carries an HTTP status for failures raised outside the two
// SDKs (pre-flight checks, tests). The SDK error types are recognized
// directly; this exists so the classifier has one more shape to match.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return e.Message
}

// ErrOffline is what the connectivity pre-check short-circuits to; it
// classifies as a connectivity failure without a provider round-trip.
var ErrOffline = errors.New("connection refused: network unreachable")

// User-facing category messages. Auth, not-found, network and timeout share
// wording across providers; rate-limit wording is provider-specific because
// the two backends have different quota semantics worth surfacing.
const (
	msgAuth          = "API key galat hai! 'ustaad set-key' command chalao."
	msgQuotaGemini   = "Gemini ka quota khatam ho gaya! Thoda wait karo."
	msgRateOpenAI    = "OpenAI ka rate limit hit ho gaya! Thoda wait karo."
	msgModelNotFound = "Model nahi mila! Config mein sahi model set karo."
	msgNetwork       = "Internet connection mein problem hai!"
	msgTimeout       = "Server slow hai ya connection weak hai! Thodi der baad try karo."
)

// networkSignatures are the low-level transport failure markers the two
// SDKs and the Go runtime surface in error text. Matched case-insensitively.
var networkSignatures = []string{
	"enotfound",
	"econnrefused",
	"etimedout",
	"econnreset",
	"eai_again",
	"socket hang up",
	"getaddrinfo",
	"no such host",
	"connection refused",
	"connection reset",
	"network is unreachable",
	"dns",
}

// Classify maps a provider failure onto one of the fixed user-facing
// categories. Pure and deterministic; no I/O.
//
// Precedence is first-match-wins and the order matters because provider
// messages overlap: auth is checked first (cheapest for the user to fix,
// must never be masked by a broader network match), rate-limit before the
// fallback (providers encode it inconsistently: status code, message text,
// or a bare "429" substring), and the network check before the generic
// timeout check so a DNS-flavored timeout reads as a connectivity problem.
func Classify(err error, providerTag string) string {
	if err == nil {
		return ""
	}

	status := statusCode(err)
	msg := err.Error()
	lower := strings.ToLower(msg)

	// 1. Authentication / authorization.
	if status == 401 || status == 403 ||
		strings.Contains(lower, "invalid api key") ||
		strings.Contains(lower, "incorrect api key") ||
		strings.Contains(lower, "api key not valid") ||
		strings.Contains(lower, "unauthorized") ||
		strings.Contains(lower, "authentication") ||
		strings.Contains(lower, "permission denied") {
		return msgAuth
	}

	// 2. Rate limit / quota.
	if status == 429 ||
		strings.Contains(msg, "429") ||
		strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "quota") ||
		strings.Contains(lower, "too many requests") {
		if providerTag == string(TypeGemini) {
			return msgQuotaGemini
		}
		return msgRateOpenAI
	}

	// 3. Resource not found.
	if status == 404 ||
		strings.Contains(lower, "model not found") ||
		strings.Contains(lower, "does not exist") {
		return msgModelNotFound
	}

	// 4. Network / connectivity.
	if isNetworkError(err, lower) {
		return msgNetwork
	}

	// 5. Generic timeout, after the network check.
	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(lower, "timeout") {
		return msgTimeout
	}

	// 6. Fallback: surface the raw message verbatim.
	return msg
}

func isNetworkError(err error, lower string) bool {
	// The offline sentinel is a network error by identity, not wording.
	if errors.Is(err, ErrOffline) {
		return true
	}

	for _, sig := range networkSignatures {
		if strings.Contains(lower, sig) {
			return true
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH)
}

// statusCode extracts an HTTP status from whichever error shape the call
// produced: the OpenAI SDK, the Gemini SDK, or a local StatusError.
// Returns 0 when the error carries no status.
func statusCode(err error) int {
	var oaErr *openai.Error
	if errors.As(err, &oaErr) {
		return oaErr.StatusCode
	}
	var gErr genai.APIError
	if errors.As(err, &gErr) {
		return gErr.Code
	}
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr.StatusCode
	}
	return 0
}

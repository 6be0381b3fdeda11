package session

import (
	"context"
	"net/http"
	"time"
)

// connectivityProbeURL is a lightweight, highly-available endpoint used only
// to answer "is the network up at all".
const connectivityProbeURL = "https://dns.google/"

const connectivityTimeout = 3 * time.Second

// CheckConnectivity is a best-effort reachability check used as a
// pre-flight gate before provider calls, never as a guarantee: the network
// can still drop between this check and the request, in which case the
// request's own failure is classified as a network error.
func CheckConnectivity(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, connectivityTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, connectivityProbeURL, nil)
	if err != nil {
		return false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

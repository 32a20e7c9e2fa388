package api

import (
	"net/http"

	"github.com/google/uuid"
)

// Transport is the outgoing side of the session model: it attaches the
// current bearer credential (when one exists) and an X-Request-Id to
// every request, and funnels authorization failures on authenticated
// requests into the onUnauthorized hook. It performs no retries; a
// single request is a single attempt.
type Transport struct {
	base http.RoundTripper

	// credential returns the live bearer token, or "" when anonymous.
	credential func() string

	// onUnauthorized is called synchronously for every 401 received on a
	// request that carried a credential. Deduplication of the resulting
	// forced logout is the callee's concern, not the transport's.
	onUnauthorized func()
}

func NewTransport(base http.RoundTripper, credential func() string, onUnauthorized func()) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, credential: credential, onUnauthorized: onUnauthorized}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per-attempt state must not leak into the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-Id", uuid.NewString())

	cred := t.credential()
	if cred != "" {
		clone.Header.Set("Authorization", "Bearer "+cred)
	}

	resp, err := t.base.RoundTrip(clone)
	if err != nil {
		return nil, err
	}

	// Only a credential-bearing request can mean "our session died".
	// A 401 on an anonymous call (e.g. a bad login) is the caller's error
	// to surface.
	if resp.StatusCode == http.StatusUnauthorized && cred != "" && t.onUnauthorized != nil {
		t.onUnauthorized()
	}
	return resp, nil
}

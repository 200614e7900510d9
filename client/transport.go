// file: client/transport.go

package client

import (
	"ged-apae-console/logger"
	"ged-apae-console/repository"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuthTransport is the HTTP interceptor between the console and the backend.
//
// On the way out it attaches the stored token as a bearer credential. On the
// way back, a 401 or 403 on any endpoint outside the exempt list clears the
// stored session, fires OnSessionInvalidated and fails the request with a
// *SessionInvalidatedError. The exempt list exists so that a rejected login
// reaches the caller as a bad-credentials answer instead of a session expiry.
type AuthTransport struct {
	base     http.RoundTripper
	tokens   repository.ITokenRepository
	basePath string
	exempt   map[string]struct{}

	// OnSessionInvalidated runs after the session has been cleared.
	OnSessionInvalidated func(req *http.Request)
}

// NewAuthTransport wraps base (http.DefaultTransport when nil). basePath is
// the path prefix of the backend URL; exemptPaths are endpoint paths relative to it.
func NewAuthTransport(base http.RoundTripper, tokens repository.ITokenRepository, basePath string, exemptPaths []string) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt[normalizePath(p)] = struct{}{}
	}
	return &AuthTransport{
		base:     base,
		tokens:   tokens,
		basePath: normalizePath(basePath),
		exempt:   exempt,
	}
}

// RoundTrip implements http.RoundTripper. The caller's request is never modified.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	outgoing := req.Clone(ctx)

	if token, ok := t.tokens.GetToken(ctx); ok && token != "" {
		outgoing.Header.Set("Authorization", "Bearer "+token)
	}
	if outgoing.Header.Get("X-Request-ID") == "" {
		outgoing.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := t.base.RoundTrip(outgoing)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusForbidden {
		return resp, nil
	}

	endpoint := t.endpointPath(req.URL.Path)
	if t.IsExempt(endpoint) {
		return resp, nil
	}

	logger.Log.WithFields(logrus.Fields{
		"path":       endpoint,
		"status":     resp.StatusCode,
		"request_id": outgoing.Header.Get("X-Request-ID"),
	}).Warn("Backend rejected the session, logging out")

	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	t.tokens.Clear(ctx)
	if t.OnSessionInvalidated != nil {
		t.OnSessionInvalidated(req)
	}
	return nil, &SessionInvalidatedError{StatusCode: resp.StatusCode, Path: endpoint}
}

// IsExempt reports whether an auth failure on endpoint keeps the session.
func (t *AuthTransport) IsExempt(endpoint string) bool {
	_, ok := t.exempt[normalizePath(endpoint)]
	return ok
}

func (t *AuthTransport) endpointPath(requestPath string) string {
	p := normalizePath(requestPath)
	if t.basePath != "/" && strings.HasPrefix(p, t.basePath+"/") {
		return p[len(t.basePath):]
	}
	return p
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

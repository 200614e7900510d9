// file: client/transport_test.go

package client

import (
	"context"
	"errors"
	"ged-apae-console/logger"
	"ged-apae-console/repository"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTokens(t *testing.T, token string, permissions ...string) *repository.TokenRepository {
	t.Helper()
	tokens := repository.NewTokenRepository(repository.NewMemoryStorage(), "@token", "@perms")
	if token != "" {
		require.NoError(t, tokens.Write(context.Background(), token, permissions))
	}
	return tokens
}

// statusServer answers every request with status and records the last Authorization header.
func statusServer(t *testing.T, status int, seen *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = r.Header.Get("Authorization")
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthTransport_AttachesBearerToken(t *testing.T) {
	var seen string
	srv := statusServer(t, http.StatusOK, &seen)

	t.Run("token present", func(t *testing.T) {
		transport := NewAuthTransport(nil, newTokens(t, "T1", "ALUNOS"), "", nil)
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/alunos/all", nil)

		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "Bearer T1", seen)
		assert.Empty(t, req.Header.Get("Authorization"), "caller's request must not be modified")
	})

	t.Run("no token", func(t *testing.T) {
		transport := NewAuthTransport(nil, newTokens(t, ""), "", nil)
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/alunos/all", nil)

		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Empty(t, seen)
	})
}

func TestAuthTransport_InvalidatesSessionOnAuthFailure(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			var seen string
			srv := statusServer(t, status, &seen)
			tokens := newTokens(t, "T1", "ALUNOS")

			redirected := 0
			transport := NewAuthTransport(nil, tokens, "", []string{"/user/login"})
			transport.OnSessionInvalidated = func(*http.Request) { redirected++ }

			req, _ := http.NewRequest(http.MethodGet, srv.URL+"/alunos/all", nil)
			resp, err := transport.RoundTrip(req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrSessionInvalidated)
			assert.Equal(t, 1, redirected)

			_, ok := tokens.GetToken(context.Background())
			assert.False(t, ok, "token must be cleared")
			_, ok = tokens.GetPermissions(context.Background())
			assert.False(t, ok, "permissions must be cleared")
		})
	}
}

func TestAuthTransport_LoginEndpointIsExempt(t *testing.T) {
	var seen string
	srv := statusServer(t, http.StatusForbidden, &seen)
	tokens := newTokens(t, "T1", "ALUNOS")

	redirected := false
	transport := NewAuthTransport(nil, tokens, "", []string{"/user/login"})
	transport.OnSessionInvalidated = func(*http.Request) { redirected = true }

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/user/login", nil)
	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.False(t, redirected)
	token, ok := tokens.GetToken(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "T1", token)
}

func TestAuthTransport_OtherStatusesPassThrough(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		var seen string
		srv := statusServer(t, status, &seen)
		tokens := newTokens(t, "T1", "ALUNOS")
		transport := NewAuthTransport(nil, tokens, "", nil)

		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/alunos/all", nil)
		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, status, resp.StatusCode)
		_, ok := tokens.GetToken(context.Background())
		assert.True(t, ok)
	}
}

type failingRoundTripper struct{ err error }

func (f failingRoundTripper) RoundTrip(*http.Request) (*http.Response, error) { return nil, f.err }

func TestAuthTransport_TransportErrorsPassThrough(t *testing.T) {
	boom := errors.New("connection refused")
	tokens := newTokens(t, "T1")
	transport := NewAuthTransport(failingRoundTripper{err: boom}, tokens, "", nil)

	req, _ := http.NewRequest(http.MethodGet, "http://backend.invalid/alunos/all", nil)
	_, err := transport.RoundTrip(req)
	assert.ErrorIs(t, err, boom)

	_, ok := tokens.GetToken(context.Background())
	assert.True(t, ok, "network failures do not end the session")
}

func TestAuthTransport_ExemptPathsRelativeToBasePath(t *testing.T) {
	transport := NewAuthTransport(nil, newTokens(t, ""), "/api/", []string{"user/login/"})

	assert.Equal(t, "/user/login", transport.endpointPath("/api/user/login"))
	assert.True(t, transport.IsExempt(transport.endpointPath("/api/user/login")))
	assert.False(t, transport.IsExempt(transport.endpointPath("/api/user/list")))
	assert.Equal(t, "/apiary", transport.endpointPath("/apiary"))
}

// file: handler/auth_middleware_test.go

package handler

import (
	"context"
	"ged-apae-console/model"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("conteúdo"))
})

func TestAuthMiddleware(t *testing.T) {
	t.Run("no session redirects to login", func(t *testing.T) {
		console, _ := newConsole(t, nil)
		rr := httptest.NewRecorder()

		AuthMiddleware(console.Sessions, loginRoute)(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/alunos", nil))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, loginRoute, rr.Header().Get("Location"))
	})

	t.Run("expired session is cleared", func(t *testing.T) {
		console, tokens := newConsole(t, nil)
		expired := signToken(t, "ana@apae.org", "", time.Now().Add(-time.Minute))
		require.NoError(t, tokens.Write(context.Background(), expired, []string{model.PermissionAlunos}))
		rr := httptest.NewRecorder()

		AuthMiddleware(console.Sessions, loginRoute)(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		_, ok := tokens.GetToken(context.Background())
		assert.False(t, ok)
		_, ok = tokens.GetPermissions(context.Background())
		assert.False(t, ok)
	})

	t.Run("json endpoints answer 401", func(t *testing.T) {
		console, _ := newConsole(t, nil)
		rr := httptest.NewRecorder()

		AuthMiddleware(console.Sessions, loginRoute)(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/session", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"code":401,"message":"Sessão inválida ou expirada"}`, rr.Body.String())
	})

	t.Run("valid session passes", func(t *testing.T) {
		console, _ := newConsole(t, []string{})
		rr := httptest.NewRecorder()

		AuthMiddleware(console.Sessions, loginRoute)(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "conteúdo", rr.Body.String())
	})
}

func TestRequirePermission(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		console, _ := newConsole(t, []string{model.PermissionAlunos})
		guard := RequirePermission(console.Sessions, model.PermissionAlunos, http.HandlerFunc(console.Denied))
		rr := httptest.NewRecorder()

		guard(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/alunos", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "conteúdo", rr.Body.String())
	})

	t.Run("denied renders the notice in place", func(t *testing.T) {
		console, _ := newConsole(t, []string{model.PermissionAlunos})
		guard := RequirePermission(console.Sessions, model.PermissionDocumentos, http.HandlerFunc(console.Denied))
		rr := httptest.NewRecorder()

		guard(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/documentos", nil))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Empty(t, rr.Header().Get("Location"))
		assert.Contains(t, rr.Body.String(), "Acesso Negado")
		assert.NotContains(t, rr.Body.String(), "conteúdo")
	})

	t.Run("without a denied handler", func(t *testing.T) {
		console, _ := newConsole(t, []string{})
		rr := httptest.NewRecorder()

		RequirePermission(console.Sessions, model.PermissionAlunos, nil)(okHandler).
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/alunos", nil))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "Acesso Negado")
	})

	t.Run("evaluated on every request", func(t *testing.T) {
		console, tokens := newConsole(t, []string{})
		guarded := RequirePermission(console.Sessions, model.PermissionAlunos, nil)(okHandler)

		rr := httptest.NewRecorder()
		guarded.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/alunos", nil))
		assert.Equal(t, http.StatusForbidden, rr.Code)

		token, _ := tokens.GetToken(context.Background())
		require.NoError(t, tokens.Write(context.Background(), token, []string{model.PermissionAlunos}))

		rr = httptest.NewRecorder()
		guarded.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/alunos", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

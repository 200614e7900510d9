// file: handler/auth_middleware.go

package handler

import (
	"context"
	"ged-apae-console/common"
	"ged-apae-console/logger"
	"net/http"

	"github.com/sirupsen/logrus"
)

// IPermissionChecker answers the route guard's single question.
type IPermissionChecker interface {
	HasPermission(ctx context.Context, name string) bool
}

// AuthMiddleware lets a request through only while the stored session is
// valid. Checking it invalidates an expired or malformed session. Pages
// redirect to loginRoute; JSON endpoints answer 401.
func AuthMiddleware(sessions ISessionService, loginRoute string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAuthenticated(r.Context()) {
				if isAPIRequest(r) {
					common.NewAppError(http.StatusUnauthorized, "Sessão inválida ou expirada", nil).Send(w, r)
					return
				}
				http.Redirect(w, r, loginRoute, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission guards next behind one permission. Without it the
// operator gets denied in place of the content, with a 403 and no redirect.
// The check runs on every request.
func RequirePermission(checker IPermissionChecker, permission string, denied http.Handler) func(http.Handler) http.Handler {
	if denied == nil {
		denied = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Acesso Negado", http.StatusForbidden)
		})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !checker.HasPermission(r.Context(), permission) {
				logger.Log.WithFields(logrus.Fields{
					"path":       r.URL.Path,
					"permission": permission,
				}).Warn("Access denied")
				denied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Denied renders the access-denied notice with status 403.
func (c *Console) Denied(w http.ResponseWriter, r *http.Request) {
	view := c.View(r, "Acesso Negado", nil)
	if err := c.Renderer.Render(w, http.StatusForbidden, "denied.html", view); err != nil {
		http.Error(w, "Acesso Negado", http.StatusForbidden)
	}
}

// file: handler/error_handler.go

package handler

import (
	"errors"
	"ged-apae-console/client"
	"ged-apae-console/common"
	"ged-apae-console/web"
	"net/http"
	"strings"
)

// ErrorHandlingMiddleware adapts a handler returning *common.AppError.
// A failure caused by the backend rejecting the session sends the operator
// to the login route; JSON endpoints get a JSON error; every other failure
// renders the error page.
func (c *Console) ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appErr := next(w, r)
		if appErr == nil {
			return
		}

		if errors.Is(appErr, client.ErrSessionInvalidated) {
			requestLog(r).Warn("Session invalidated by backend, redirecting to login")
			http.Redirect(w, r, c.LoginRoute, http.StatusSeeOther)
			return
		}

		if isAPIRequest(r) {
			appErr.Send(w, r)
			return
		}

		appErr.Log(r)
		view := c.View(r, "Erro", web.ErrorData{Status: appErr.Code, Message: appErr.Message})
		if err := c.Renderer.Render(w, appErr.Code, "error.html", view); err != nil {
			common.NewAppError(appErr.Code, appErr.Message, err).Send(w, r)
		}
	}
}

// NotFound renders the page shown for unknown console routes.
func (c *Console) NotFound(w http.ResponseWriter, r *http.Request) *common.AppError {
	return common.NewAppError(http.StatusNotFound, "Eita, não encontramos esta página...", nil)
}

func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}

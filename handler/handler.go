// file: handler/handler.go

package handler

import (
	"context"
	"errors"
	"ged-apae-console/client"
	"ged-apae-console/common"
	"ged-apae-console/logger"
	"ged-apae-console/service"
	"ged-apae-console/web"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ISessionService is what the handlers ask about the operator's session.
type ISessionService interface {
	IsAuthenticated(ctx context.Context) bool
	Decode(ctx context.Context) service.DecodeResult
	Permissions(ctx context.Context) ([]string, error)
	HasPermission(ctx context.Context, name string) bool
	HasAnyPermission(ctx context.Context, names ...string) bool
}

// IRenderer renders a named page template.
type IRenderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// Console holds what every page handler needs: the session, the renderer
// and the route the operator is sent to when the session is gone.
type Console struct {
	Sessions   ISessionService
	Renderer   IRenderer
	LoginRoute string
}

// NewConsole creates a new Console.
func NewConsole(sessions ISessionService, renderer IRenderer, loginRoute string) *Console {
	return &Console{Sessions: sessions, Renderer: renderer, LoginRoute: loginRoute}
}

var flashMessages = map[string]string{
	"criado":     "Registro criado com sucesso.",
	"atualizado": "Registro atualizado com sucesso.",
	"excluido":   "Registro excluído com sucesso.",
	"status":     "Situação alterada com sucesso.",
	"importado":  "Importação concluída com sucesso.",
}

// View builds the data of a page rendered inside a session.
func (c *Console) View(r *http.Request, title string, data any) web.View {
	ctx := r.Context()
	view := web.View{
		Title: title,
		Nav:   c.VisibleNav(ctx),
		Flash: flashMessages[r.URL.Query().Get("ok")],
		Data:  data,
	}
	view.UserName = "Usuário"
	if decoded, ok := c.Sessions.Decode(ctx).(service.Decoded); ok && decoded.Name() != "" {
		view.UserName = decoded.Name()
	}
	return view
}

// Render writes a page, turning a template failure into an AppError.
func (c *Console) Render(w http.ResponseWriter, status int, name string, view web.View) *common.AppError {
	if err := c.Renderer.Render(w, status, name, view); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Não foi possível exibir a página.", err)
	}
	return nil
}

// redirect answers a form post with a 303 to target, flagging the outcome.
func redirect(w http.ResponseWriter, r *http.Request, target, outcome string) {
	if outcome != "" {
		target += "?ok=" + outcome
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// backendError maps a service failure to the AppError shown to the operator.
// Local validation failures become 400s carrying the field messages; backend
// answers keep their status and message; anything else is a 502.
func backendError(err error, message string) *common.AppError {
	if common.IsValidationError(err) {
		return common.NewAppError(http.StatusBadRequest, strings.Join(common.ValidationMessages(err), " "), err)
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.StatusCode
		if code >= http.StatusInternalServerError {
			code = http.StatusBadGateway
		}
		if apiErr.Message != "" {
			message = apiErr.Message
		}
		return common.NewAppError(code, message, err)
	}

	if errors.Is(err, client.ErrSessionInvalidated) {
		return common.NewAppError(http.StatusUnauthorized, "Sessão expirada.", err)
	}
	return common.NewAppError(http.StatusBadGateway, message, err)
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		return 0
	}
	return page
}

func idParam(r *http.Request) (int64, *common.AppError) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.NewAppError(http.StatusNotFound, "Registro não encontrado.", nil)
	}
	return id, nil
}

func requestLog(r *http.Request) *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})
}

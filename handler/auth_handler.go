// file: handler/auth_handler.go

package handler

import (
	"context"
	"errors"
	"ged-apae-console/client"
	"ged-apae-console/common"
	"ged-apae-console/model"
	"ged-apae-console/service"
	"ged-apae-console/web"
	"net/http"
	"strings"
)

// IAuthService runs the operator's login, logout and password change.
type IAuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context)
	ChangePassword(ctx context.Context, req model.ChangePasswordRequest) error
}

type AuthHandler struct {
	*Console
	auth IAuthService
}

func NewAuthHandler(console *Console, auth IAuthService) *AuthHandler {
	return &AuthHandler{Console: console, auth: auth}
}

// LoginPage shows the login form, or the home page when a session is active.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) *common.AppError {
	if h.Sessions.IsAuthenticated(r.Context()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}
	return h.Render(w, http.StatusOK, "login.html", web.View{Title: "Entrar", Data: web.LoginData{}})
}

// Login authenticates the operator and stores the session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	req := model.LoginRequest{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
	log := requestLog(r).WithField("email", req.Email)
	log.Info("Login attempt")

	_, err := h.auth.Login(r.Context(), req)
	if err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}

	status := http.StatusBadGateway
	message := "Não foi possível conectar ao servidor. Tente novamente."
	switch {
	case common.IsValidationError(err):
		status = http.StatusBadRequest
		message = strings.Join(common.ValidationMessages(err), " ")
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = "Email ou senha inválidos."
	}
	log.WithError(err).Warn("Login failed")

	return h.Render(w, status, "login.html", web.View{
		Title:  "Entrar",
		Errors: []string{message},
		Data:   web.LoginData{Email: req.Email},
	})
}

// Logout forgets the session and returns to the login form.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	h.auth.Logout(r.Context())
	requestLog(r).Info("Operator logged out")
	http.Redirect(w, r, h.LoginRoute, http.StatusSeeOther)
	return nil
}

func (h *AuthHandler) ChangePasswordPage(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.Render(w, http.StatusOK, "senha.html", h.View(r, "Alterar senha", nil))
}

// ChangePassword checks the form locally, then sends it to the backend.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) *common.AppError {
	req := model.ChangePasswordRequest{
		SenhaAtual:        r.PostFormValue("senhaAtual"),
		NovaSenha:         r.PostFormValue("novaSenha"),
		ConfirmaNovaSenha: r.PostFormValue("confirmaNovaSenha"),
	}

	err := h.auth.ChangePassword(r.Context(), req)
	view := h.View(r, "Alterar senha", nil)
	switch {
	case err == nil:
		view.Flash = "Senha alterada com sucesso!"
		return h.Render(w, http.StatusOK, "senha.html", view)
	case errors.Is(err, client.ErrSessionInvalidated):
		return backendError(err, "")
	}

	appErr := backendError(err, "Erro ao alterar a senha.")
	appErr.Log(r)
	view.Errors = []string{appErr.Message}
	return h.Render(w, appErr.Code, "senha.html", view)
}

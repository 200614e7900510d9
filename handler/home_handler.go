// file: handler/home_handler.go

package handler

import (
	"encoding/json"
	"errors"
	"ged-apae-console/common"
	"ged-apae-console/service"
	"ged-apae-console/web"
	"net/http"
	"time"
)

// SessionInfo describes the current session for scripts running in the console.
type SessionInfo struct {
	Subject     string        `json:"subject"`
	Nome        string        `json:"nome,omitempty"`
	ExpiresAt   *time.Time    `json:"expiresAt,omitempty"`
	Permissions []string      `json:"permissions"`
	Nav         []web.NavLink `json:"nav"`
}

type HomeHandler struct {
	*Console
}

func NewHomeHandler(console *Console) *HomeHandler {
	return &HomeHandler{Console: console}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.Render(w, http.StatusOK, "home.html", h.View(r, "Início", nil))
}

// Session godoc
// @Summary      Show the current session
// @Description  decoded token claims, cached permissions and the visible menu
// @Tags         session
// @Produce      json
// @Success      200  {object}  handler.SessionInfo
// @Failure      401  {object}  common.AppError
// @Router       /api/session [get]
func (h *HomeHandler) Session(w http.ResponseWriter, r *http.Request) *common.AppError {
	ctx := r.Context()

	var info SessionInfo
	switch result := h.Sessions.Decode(ctx).(type) {
	case service.Invalid:
		return common.NewAppError(http.StatusUnauthorized, "Sessão inválida", result.Reason)
	case service.Decoded:
		info.Subject = result.Subject
		info.Nome = result.DisplayName
		if result.HasExpiry() {
			expiry := result.Expiry
			info.ExpiresAt = &expiry
		}
	}

	permissions, err := h.Sessions.Permissions(ctx)
	if err != nil && !errors.Is(err, service.ErrNoSession) {
		return common.NewAppError(http.StatusInternalServerError, "Permissões ilegíveis", err)
	}
	if permissions == nil {
		permissions = []string{}
	}
	info.Permissions = permissions
	info.Nav = h.VisibleNav(ctx)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(info)
	return nil
}

// file: handler/usuario_handler.go

package handler

import (
	"context"
	"ged-apae-console/common"
	"ged-apae-console/model"
	"net/http"
	"strconv"
	"strings"
)

type IUsuarioService interface {
	List(ctx context.Context, page int, termoBusca string) (*model.Page[model.Usuario], error)
	Get(ctx context.Context, id int64) (*model.Usuario, error)
	Register(ctx context.Context, payload model.UsuarioPayload) (*model.Usuario, error)
	Update(ctx context.Context, id int64, payload model.UsuarioPayload) (*model.Usuario, error)
	Delete(ctx context.Context, id int64) error
	Groups(ctx context.Context) ([]model.UserGroup, error)
}

type UsuarioHandler struct {
	*Console
	service IUsuarioService
}

func NewUsuarioHandler(console *Console, service IUsuarioService) *UsuarioHandler {
	return &UsuarioHandler{Console: console, service: service}
}

type usuarioFormData struct {
	Action  string
	Usuario model.Usuario
	Grupos  []model.UserGroup
}

func (h *UsuarioHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	page, err := h.service.List(r.Context(), pageParam(r), term)
	if err != nil {
		return backendError(err, "Erro ao carregar os usuários.")
	}
	data := listData[model.Usuario]{Page: page, Term: term}
	return h.Render(w, http.StatusOK, "usuarios.html", h.View(r, "Gerenciamento de Usuários", data))
}

func (h *UsuarioHandler) New(w http.ResponseWriter, r *http.Request) *common.AppError {
	grupos, err := h.service.Groups(r.Context())
	if err != nil {
		return backendError(err, "Erro ao carregar os grupos.")
	}
	data := usuarioFormData{Action: "/cadastro", Grupos: grupos}
	return h.Render(w, http.StatusOK, "usuario_form.html", h.View(r, "Cadastrar Usuário", data))
}

func (h *UsuarioHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	payload := usuarioFromForm(r)
	if _, err := h.service.Register(r.Context(), payload); err != nil {
		data := usuarioFormData{Action: "/cadastro", Usuario: payloadView(0, payload)}
		data.Grupos, _ = h.service.Groups(r.Context())
		return h.formError(w, r, err, "usuario_form.html", "Cadastrar Usuário", data)
	}
	redirect(w, r, "/usuario", "criado")
	return nil
}

func (h *UsuarioHandler) Edit(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	usuario, err := h.service.Get(r.Context(), id)
	if err != nil {
		return backendError(err, "Erro ao carregar o usuário.")
	}
	grupos, err := h.service.Groups(r.Context())
	if err != nil {
		return backendError(err, "Erro ao carregar os grupos.")
	}
	data := usuarioFormData{Action: "/usuario/" + strconv.FormatInt(id, 10), Usuario: *usuario, Grupos: grupos}
	return h.Render(w, http.StatusOK, "usuario_form.html", h.View(r, "Editar Usuário", data))
}

func (h *UsuarioHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	payload := usuarioFromForm(r)
	if _, err := h.service.Update(r.Context(), id, payload); err != nil {
		data := usuarioFormData{Action: "/usuario/" + strconv.FormatInt(id, 10), Usuario: payloadView(id, payload)}
		data.Grupos, _ = h.service.Groups(r.Context())
		return h.formError(w, r, err, "usuario_form.html", "Editar Usuário", data)
	}
	redirect(w, r, "/usuario", "atualizado")
	return nil
}

func (h *UsuarioHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		return backendError(err, "Erro ao excluir o usuário.")
	}
	redirect(w, r, "/usuario", "excluido")
	return nil
}

func usuarioFromForm(r *http.Request) model.UsuarioPayload {
	payload := model.UsuarioPayload{
		Nome:    strings.TrimSpace(r.PostFormValue("nome")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		GroupID: strings.TrimSpace(r.PostFormValue("groupId")),
	}
	if password := r.PostFormValue("password"); password != "" {
		payload.Password = &password
	}
	return payload
}

// payloadView refills the form after a rejected submission. The password is never echoed.
func payloadView(id int64, payload model.UsuarioPayload) model.Usuario {
	groupID, _ := strconv.ParseInt(payload.GroupID, 10, 64)
	return model.Usuario{ID: id, Nome: payload.Nome, Email: payload.Email, UserGroup: model.Ref{ID: groupID}}
}

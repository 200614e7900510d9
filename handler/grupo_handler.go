// file: handler/grupo_handler.go

package handler

import (
	"context"
	"ged-apae-console/common"
	"ged-apae-console/model"
	"net/http"
	"strconv"
	"strings"
)

type IGrupoService interface {
	List(ctx context.Context) ([]model.UserGroup, error)
	Get(ctx context.Context, id int64) (*model.UserGroup, error)
	Create(ctx context.Context, data model.GroupFormData) (*model.UserGroup, error)
	Update(ctx context.Context, id int64, data model.GroupFormData) (*model.UserGroup, error)
	Delete(ctx context.Context, id int64) error
	Permissions(ctx context.Context) ([]model.Permission, error)
}

type GrupoHandler struct {
	*Console
	service IGrupoService
}

func NewGrupoHandler(console *Console, service IGrupoService) *GrupoHandler {
	return &GrupoHandler{Console: console, service: service}
}

type grupoFormData struct {
	Action   string
	Grupo    model.UserGroup
	Catalogo []model.Permission
}

func (h *GrupoHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	grupos, err := h.service.List(r.Context())
	if err != nil {
		return backendError(err, "Erro ao carregar os grupos.")
	}
	data := struct{ Grupos []model.UserGroup }{grupos}
	return h.Render(w, http.StatusOK, "grupos.html", h.View(r, "Grupos de Usuários", data))
}

func (h *GrupoHandler) New(w http.ResponseWriter, r *http.Request) *common.AppError {
	catalogo, err := h.service.Permissions(r.Context())
	if err != nil {
		return backendError(err, "Erro ao carregar as permissões.")
	}
	data := grupoFormData{Action: "/admin/grupos", Catalogo: catalogo}
	return h.Render(w, http.StatusOK, "grupo_form.html", h.View(r, "Novo grupo", data))
}

func (h *GrupoHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	form := grupoFromForm(r)
	if _, err := h.service.Create(r.Context(), form); err != nil {
		data := grupoFormData{Action: "/admin/grupos", Grupo: groupView(0, form)}
		data.Catalogo, _ = h.service.Permissions(r.Context())
		return h.formError(w, r, err, "grupo_form.html", "Novo grupo", data)
	}
	redirect(w, r, "/admin/grupos", "criado")
	return nil
}

func (h *GrupoHandler) Edit(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	grupo, err := h.service.Get(r.Context(), id)
	if err != nil {
		return backendError(err, "Erro ao carregar o grupo.")
	}
	catalogo, err := h.service.Permissions(r.Context())
	if err != nil {
		return backendError(err, "Erro ao carregar as permissões.")
	}
	data := grupoFormData{Action: "/admin/grupos/" + strconv.FormatInt(id, 10), Grupo: *grupo, Catalogo: catalogo}
	return h.Render(w, http.StatusOK, "grupo_form.html", h.View(r, "Editar grupo", data))
}

func (h *GrupoHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	form := grupoFromForm(r)
	if _, err := h.service.Update(r.Context(), id, form); err != nil {
		data := grupoFormData{Action: "/admin/grupos/" + strconv.FormatInt(id, 10), Grupo: groupView(id, form)}
		data.Catalogo, _ = h.service.Permissions(r.Context())
		return h.formError(w, r, err, "grupo_form.html", "Editar grupo", data)
	}
	redirect(w, r, "/admin/grupos", "atualizado")
	return nil
}

func (h *GrupoHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		return backendError(err, "Erro ao excluir o grupo.")
	}
	redirect(w, r, "/admin/grupos", "excluido")
	return nil
}

// grupoFromForm reads the group name and the checked permission ids.
// Ids that do not parse are skipped.
func grupoFromForm(r *http.Request) model.GroupFormData {
	r.ParseForm()
	form := model.GroupFormData{
		Nome:        strings.TrimSpace(r.PostForm.Get("nome")),
		Permissions: []model.PermissionRef{},
	}
	for _, raw := range r.PostForm["permissions"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		form.Permissions = append(form.Permissions, model.PermissionRef{ID: id})
	}
	return form
}

func groupView(id int64, form model.GroupFormData) model.UserGroup {
	group := model.UserGroup{ID: id, Nome: form.Nome}
	for _, p := range form.Permissions {
		group.Permissions = append(group.Permissions, model.Permission{ID: p.ID})
	}
	return group
}

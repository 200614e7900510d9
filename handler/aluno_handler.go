// file: handler/aluno_handler.go

package handler

import (
	"context"
	"encoding/json"
	"ged-apae-console/common"
	"ged-apae-console/model"
	"net/http"
	"strconv"
	"strings"
)

type IAlunoService interface {
	Create(ctx context.Context, aluno model.Aluno) (*model.Aluno, error)
	Import(ctx context.Context, fileName string, content []byte) (map[string]any, error)
	List(ctx context.Context, page int, termoBusca string) (*model.Page[model.Aluno], error)
	Search(ctx context.Context, nome string) (*model.Page[model.Aluno], error)
	Get(ctx context.Context, id int64) (*model.Aluno, error)
	Update(ctx context.Context, id int64, aluno model.Aluno) error
	Delete(ctx context.Context, id int64) error
}

type AlunoHandler struct {
	*Console
	service IAlunoService
}

func NewAlunoHandler(console *Console, service IAlunoService) *AlunoHandler {
	return &AlunoHandler{Console: console, service: service}
}

type listData[T any] struct {
	Page *model.Page[T]
	Term string
}

type alunoFormData struct {
	Aluno  model.Aluno
	Action string
}

func (h *AlunoHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	page, err := h.service.List(r.Context(), pageParam(r), term)
	if err != nil {
		return backendError(err, "Erro ao carregar os alunos.")
	}
	return h.Render(w, http.StatusOK, "alunos.html", h.View(r, "Alunos", listData[model.Aluno]{Page: page, Term: term}))
}

// Search answers the student picker with a JSON page.
func (h *AlunoHandler) Search(w http.ResponseWriter, r *http.Request) *common.AppError {
	page, err := h.service.Search(r.Context(), r.URL.Query().Get("nome"))
	if err != nil {
		return backendError(err, "Erro ao buscar alunos.")
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(page)
	return nil
}

func (h *AlunoHandler) New(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.Render(w, http.StatusOK, "aluno_form.html", h.View(r, "Cadastrar aluno", alunoFormData{Action: "/alunos"}))
}

func (h *AlunoHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	aluno := alunoFromForm(r)
	created, err := h.service.Create(r.Context(), aluno)
	if err != nil {
		return h.formError(w, r, err, "aluno_form.html", "Cadastrar aluno", alunoFormData{Aluno: aluno, Action: "/alunos"})
	}
	requestLog(r).WithField("aluno_id", created.ID).Info("Student created from console")
	redirect(w, r, "/alunos", "criado")
	return nil
}

// Import accepts a CSV or XLSX file of students.
func (h *AlunoHandler) Import(w http.ResponseWriter, r *http.Request) *common.AppError {
	name, content, appErr := formFile(w, r, "file", true)
	if appErr != nil {
		return appErr
	}
	if _, err := h.service.Import(r.Context(), name, content); err != nil {
		return backendError(err, "Erro ao importar alunos.")
	}
	redirect(w, r, "/alunos", "importado")
	return nil
}

func (h *AlunoHandler) Edit(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	aluno, err := h.service.Get(r.Context(), id)
	if err != nil {
		return backendError(err, "Erro ao carregar o aluno.")
	}
	data := alunoFormData{Aluno: *aluno, Action: "/alunos/" + strconv.FormatInt(id, 10)}
	return h.Render(w, http.StatusOK, "aluno_form.html", h.View(r, "Editar aluno", data))
}

func (h *AlunoHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	aluno := alunoFromForm(r)
	if err := h.service.Update(r.Context(), id, aluno); err != nil {
		aluno.ID = id
		return h.formError(w, r, err, "aluno_form.html", "Editar aluno", alunoFormData{Aluno: aluno, Action: "/alunos/" + strconv.FormatInt(id, 10)})
	}
	redirect(w, r, "/alunos", "atualizado")
	return nil
}

func (h *AlunoHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		return backendError(err, "Erro ao excluir o aluno.")
	}
	redirect(w, r, "/alunos", "excluido")
	return nil
}

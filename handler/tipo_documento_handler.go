// file: handler/tipo_documento_handler.go

package handler

import (
	"context"
	"ged-apae-console/common"
	"ged-apae-console/model"
	"net/http"
	"strings"
)

type ITipoDocumentoService interface {
	List(ctx context.Context, page int, termoBusca string) (*model.Page[model.TipoDocumento], error)
	Create(ctx context.Context, req model.TipoDocumentoRequest) (*model.TipoDocumento, error)
	Update(ctx context.Context, id int64, req model.TipoDocumentoRequest) (*model.TipoDocumento, error)
	ToggleStatus(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type TipoDocumentoHandler struct {
	*Console
	service ITipoDocumentoService
}

func NewTipoDocumentoHandler(console *Console, service ITipoDocumentoService) *TipoDocumentoHandler {
	return &TipoDocumentoHandler{Console: console, service: service}
}

func (h *TipoDocumentoHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	page, err := h.service.List(r.Context(), pageParam(r), term)
	if err != nil {
		return backendError(err, "Erro ao carregar os tipos de documento.")
	}
	data := listData[model.TipoDocumento]{Page: page, Term: term}
	return h.Render(w, http.StatusOK, "tipos.html", h.View(r, "Tipos de Documento", data))
}

func (h *TipoDocumentoHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	if _, err := h.service.Create(r.Context(), tipoFromForm(r)); err != nil {
		return backendError(err, "Erro ao salvar o tipo de documento.")
	}
	redirect(w, r, "/tipo-documento", "criado")
	return nil
}

func (h *TipoDocumentoHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	if _, err := h.service.Update(r.Context(), id, tipoFromForm(r)); err != nil {
		return backendError(err, "Erro ao salvar o tipo de documento.")
	}
	redirect(w, r, "/tipo-documento", "atualizado")
	return nil
}

func (h *TipoDocumentoHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	if err := h.service.ToggleStatus(r.Context(), id); err != nil {
		return backendError(err, "Erro ao alterar a situação do tipo de documento.")
	}
	redirect(w, r, "/tipo-documento", "status")
	return nil
}

func (h *TipoDocumentoHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		return backendError(err, "Erro ao excluir o tipo de documento.")
	}
	requestLog(r).WithField("tipo_documento_id", id).Info("Document type deleted from console")
	redirect(w, r, "/tipo-documento", "excluido")
	return nil
}

func tipoFromForm(r *http.Request) model.TipoDocumentoRequest {
	return model.TipoDocumentoRequest{
		Nome:     strings.TrimSpace(r.PostFormValue("nome")),
		Validade: strings.TrimSpace(r.PostFormValue("validade")),
	}
}

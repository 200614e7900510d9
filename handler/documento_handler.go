// file: handler/documento_handler.go

package handler

import (
	"context"
	"ged-apae-console/client"
	"ged-apae-console/common"
	"ged-apae-console/model"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

type IDocumentoService interface {
	List(ctx context.Context, page int, termoBusca string) (*model.Page[model.Documento], error)
	Upload(ctx context.Context, alunoID int64, doc model.DocumentoUpload) error
	Get(ctx context.Context, id int64) (*model.Documento, error)
	ToggleStatus(ctx context.Context, id int64) error
	Update(ctx context.Context, id int64, upd model.DocumentoUpdate) error
	Download(ctx context.Context, id int64) (*client.File, error)
}

// ITipoDocumentoLister lists the document types offered on document forms.
type ITipoDocumentoLister interface {
	Active(ctx context.Context) ([]model.TipoDocumento, error)
}

type DocumentoHandler struct {
	*Console
	service IDocumentoService
	tipos   ITipoDocumentoLister
}

func NewDocumentoHandler(console *Console, service IDocumentoService, tipos ITipoDocumentoLister) *DocumentoHandler {
	return &DocumentoHandler{Console: console, service: service, tipos: tipos}
}

type documentoFormData struct {
	Action          string
	Documento       *model.Documento
	AlunoID         int64
	Tipos           []model.TipoDocumento
	TipoSelecionado int64
}

func (h *DocumentoHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	page, err := h.service.List(r.Context(), pageParam(r), term)
	if err != nil {
		return backendError(err, "Erro ao carregar os documentos.")
	}
	return h.Render(w, http.StatusOK, "documentos.html", h.View(r, "Documentos", listData[model.Documento]{Page: page, Term: term}))
}

func (h *DocumentoHandler) New(w http.ResponseWriter, r *http.Request) *common.AppError {
	tipos, err := h.tipos.Active(r.Context())
	if err != nil {
		return backendError(err, "Erro ao carregar os tipos de documento.")
	}
	data := documentoFormData{Action: "/documentos", AlunoID: formInt64(r, "aluno"), Tipos: tipos}
	return h.Render(w, http.StatusOK, "documento_form.html", h.View(r, "Enviar documento", data))
}

// Create uploads a document for the student chosen on the form.
func (h *DocumentoHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	name, content, appErr := formFile(w, r, "file", true)
	if appErr != nil {
		return appErr
	}
	alunoID := formInt64(r, "alunoId")
	if alunoID <= 0 {
		return common.NewAppError(http.StatusBadRequest, "Selecione um aluno.", nil)
	}

	upload := model.DocumentoUpload{
		Titulo:          strings.TrimSpace(r.FormValue("titulo")),
		TipoDocumentoID: formInt64(r, "tipoDocumento"),
		DataDocumento:   strings.TrimSpace(r.FormValue("dataDocumento")),
		FileName:        name,
		Content:         content,
	}
	if err := h.service.Upload(r.Context(), alunoID, upload); err != nil {
		return backendError(err, "Erro ao enviar o documento.")
	}
	redirect(w, r, "/documentos", "criado")
	return nil
}

func (h *DocumentoHandler) Edit(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	doc, err := h.service.Get(r.Context(), id)
	if err != nil {
		return backendError(err, "Erro ao carregar o documento.")
	}
	tipos, err := h.tipos.Active(r.Context())
	if err != nil {
		return backendError(err, "Erro ao carregar os tipos de documento.")
	}

	data := documentoFormData{
		Action:    "/documentos/" + strconv.FormatInt(id, 10),
		Documento: doc,
		Tipos:     tipos,
	}
	if doc.TipoDocumento != nil {
		data.TipoSelecionado = doc.TipoDocumento.ID
	}
	return h.Render(w, http.StatusOK, "documento_form.html", h.View(r, "Editar documento", data))
}

// Update changes the document type and replaces the file when one is sent.
func (h *DocumentoHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	name, content, appErr := formFile(w, r, "file", false)
	if appErr != nil {
		return appErr
	}

	upd := model.DocumentoUpdate{
		TipoDocumentoID: formInt64(r, "tipoDocumento"),
		FileName:        name,
		Content:         content,
	}
	if err := h.service.Update(r.Context(), id, upd); err != nil {
		return backendError(err, "Erro ao atualizar o documento.")
	}
	redirect(w, r, "/documentos", "atualizado")
	return nil
}

func (h *DocumentoHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	if err := h.service.ToggleStatus(r.Context(), id); err != nil {
		return backendError(err, "Erro ao alterar a situação do documento.")
	}
	redirect(w, r, "/documentos", "status")
	return nil
}

// Download streams a document's file to the operator.
func (h *DocumentoHandler) Download(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := idParam(r)
	if appErr != nil {
		return appErr
	}
	file, err := h.service.Download(r.Context(), id)
	if err != nil {
		return backendError(err, "Erro ao baixar o documento.")
	}
	defer file.Body.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	name := file.FileName
	if name == "" {
		name = "documento-" + strconv.FormatInt(id, 10)
	}
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": name})
	if disposition == "" {
		disposition = "attachment"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if file.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, file.Body); err != nil {
		requestLog(r).WithError(err).Warn("Document download interrupted")
	}
	return nil
}

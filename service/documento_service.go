// file: service/documento_service.go

package service

import (
	"context"
	"ged-apae-console/client"
	"ged-apae-console/common"
	"ged-apae-console/logger"
	"ged-apae-console/model"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// DocumentoService wraps the document endpoints of the backend.
type DocumentoService struct {
	client IBackendClient
}

// NewDocumentoService creates a new DocumentoService.
func NewDocumentoService(client IBackendClient) *DocumentoService {
	return &DocumentoService{client: client}
}

// List returns one page of documents, optionally filtered.
func (s *DocumentoService) List(ctx context.Context, page int, termoBusca string) (*model.Page[model.Documento], error) {
	var result model.Page[model.Documento]
	query := pageQuery(page, "", strings.TrimSpace(termoBusca))
	if err := s.client.Do(ctx, http.MethodGet, "/documentos/listar", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Upload attaches a new document to the student alunoID.
func (s *DocumentoService) Upload(ctx context.Context, alunoID int64, doc model.DocumentoUpload) error {
	if err := common.Validate(doc); err != nil {
		return err
	}

	fields := map[string]string{
		"nome":          doc.Titulo,
		"tipoDocumento": strconv.FormatInt(doc.TipoDocumentoID, 10),
	}
	if doc.DataDocumento != "" {
		fields["dataDocumento"] = doc.DataDocumento
	}
	files := []client.FilePart{{Field: "file", FileName: doc.FileName, Content: doc.Content}}

	if err := s.client.DoMultipart(ctx, http.MethodPost, idPath("/documentos/create/", alunoID, ""), fields, files, nil); err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"aluno_id": alunoID,
		"file":     doc.FileName,
	}).Info("Document uploaded")
	return nil
}

// Get fetches one document.
func (s *DocumentoService) Get(ctx context.Context, id int64) (*model.Documento, error) {
	var doc model.Documento
	if err := s.client.Do(ctx, http.MethodGet, idPath("/documentos/listarUm/", id, ""), nil, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ToggleStatus flips a document between active and inactive.
func (s *DocumentoService) ToggleStatus(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodPatch, idPath("/documentos/", id, "/status"), nil, nil, nil)
}

// Update changes a document's type and, when a file is given, replaces its content.
func (s *DocumentoService) Update(ctx context.Context, id int64, upd model.DocumentoUpdate) error {
	if err := common.Validate(upd); err != nil {
		return err
	}

	fields := map[string]string{"tipoDocumento": strconv.FormatInt(upd.TipoDocumentoID, 10)}
	var files []client.FilePart
	if upd.FileName != "" {
		files = append(files, client.FilePart{Field: "file", FileName: upd.FileName, Content: upd.Content})
	}
	return s.client.DoMultipart(ctx, http.MethodPut, idPath("/documentos/update/", id, ""), fields, files, nil)
}

// Download streams the stored file of a document. The caller closes the body.
func (s *DocumentoService) Download(ctx context.Context, id int64) (*client.File, error) {
	file, err := s.client.Download(ctx, idPath("/documentos/download/", id, ""))
	if err != nil {
		return nil, err
	}
	logger.Log.WithFields(logrus.Fields{
		"documento_id": id,
		"content_type": file.ContentType,
	}).Info("Document downloaded")
	return file, nil
}

// file: service/tipo_documento_service.go

package service

import (
	"context"
	"ged-apae-console/common"
	"ged-apae-console/model"
	"net/http"
	"strings"
)

// TipoDocumentoService wraps the document-type endpoints of the backend.
type TipoDocumentoService struct {
	client IBackendClient
}

// NewTipoDocumentoService creates a new TipoDocumentoService.
func NewTipoDocumentoService(client IBackendClient) *TipoDocumentoService {
	return &TipoDocumentoService{client: client}
}

// List returns one page of document types ordered by name.
func (s *TipoDocumentoService) List(ctx context.Context, page int, termoBusca string) (*model.Page[model.TipoDocumento], error) {
	var result model.Page[model.TipoDocumento]
	query := pageQuery(page, "nome,asc", strings.TrimSpace(termoBusca))
	if err := s.client.Do(ctx, http.MethodGet, "/tipo-documento/all", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *TipoDocumentoService) Create(ctx context.Context, req model.TipoDocumentoRequest) (*model.TipoDocumento, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}
	var created model.TipoDocumento
	if err := s.client.Do(ctx, http.MethodPost, "/tipo-documento", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *TipoDocumentoService) Update(ctx context.Context, id int64, req model.TipoDocumentoRequest) (*model.TipoDocumento, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}
	var updated model.TipoDocumento
	if err := s.client.Do(ctx, http.MethodPut, idPath("/tipo-documento/", id, ""), nil, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ToggleStatus flips a document type between active and inactive.
func (s *TipoDocumentoService) ToggleStatus(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodPatch, idPath("/tipo-documento/", id, "/status"), nil, nil, nil)
}

// Delete removes a document type. The backend refuses types still in use.
func (s *TipoDocumentoService) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodDelete, idPath("/tipo-documento/", id, ""), nil, nil, nil)
}

// Active lists the document types that can be assigned to new documents.
func (s *TipoDocumentoService) Active(ctx context.Context) ([]model.TipoDocumento, error) {
	var tipos []model.TipoDocumento
	if err := s.client.Do(ctx, http.MethodGet, "/tipo-documento/ativos", nil, nil, &tipos); err != nil {
		return nil, err
	}
	return tipos, nil
}

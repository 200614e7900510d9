// file: service/tipo_documento_service_test.go

package service

import (
	"context"
	"ged-apae-console/common"
	"ged-apae-console/model"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTipoDocumentoService(t *testing.T) {
	ctx := context.Background()
	req := model.TipoDocumentoRequest{Nome: "Laudo", Validade: "2026-12-31"}

	backend := new(mockBackend)
	backend.On("Do", http.MethodGet, "/tipo-documento/all",
		url.Values{"page": {"0"}, "size": {"10"}, "sort": {"nome,asc"}, "termoBusca": {"lau"}}, nil).
		Return(nil, `{"content":[{"id":1,"nome":"Laudo","ativo":true}]}`).Once()
	backend.On("Do", http.MethodPost, "/tipo-documento", mock.Anything, req).Return(nil, `{"id":2,"nome":"Laudo"}`).Once()
	backend.On("Do", http.MethodPut, "/tipo-documento/2", mock.Anything, req).Return(nil, `{"id":2,"nome":"Laudo"}`).Once()
	backend.On("Do", http.MethodPatch, "/tipo-documento/2/status", mock.Anything, nil).Return(nil).Once()

	svc := NewTipoDocumentoService(backend)

	page, err := svc.List(ctx, 0, "lau")
	require.NoError(t, err)
	assert.True(t, *page.Content[0].Ativo)

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	_, err = svc.Update(ctx, 2, req)
	require.NoError(t, err)
	require.NoError(t, svc.ToggleStatus(ctx, 2))
	backend.AssertExpectations(t)
}

func TestTipoDocumentoService_InvalidValidade(t *testing.T) {
	backend := new(mockBackend)
	_, err := NewTipoDocumentoService(backend).Create(context.Background(),
		model.TipoDocumentoRequest{Nome: "Laudo", Validade: "31/12/2026"})

	assert.True(t, common.IsValidationError(err))
	assert.Equal(t, []string{"Validade deve estar no formato AAAA-MM-DD."}, common.ValidationMessages(err))
}

func TestTipoDocumentoService_Active(t *testing.T) {
	backend := new(mockBackend)
	backend.On("Do", http.MethodGet, "/tipo-documento/ativos", mock.Anything, nil).
		Return(nil, `[{"id":1,"nome":"Laudo","ativo":true},{"id":3,"nome":"RG","ativo":true}]`).Once()

	tipos, err := NewTipoDocumentoService(backend).Active(context.Background())

	require.NoError(t, err)
	require.Len(t, tipos, 2)
	assert.Equal(t, "RG", tipos[1].Nome)
	backend.AssertExpectations(t)
}

func TestTipoDocumentoService_Delete(t *testing.T) {
	backend := new(mockBackend)
	backend.On("Do", http.MethodDelete, "/tipo-documento/4", mock.Anything, nil).Return(nil).Once()

	require.NoError(t, NewTipoDocumentoService(backend).Delete(context.Background(), 4))
	backend.AssertExpectations(t)
}

// file: handler/aluno_handler_test.go

package handler

import (
	"bytes"
	"context"
	"ged-apae-console/client"
	"ged-apae-console/common"
	"ged-apae-console/model"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAlunoService struct{ mock.Mock }

func (m *mockAlunoService) Create(ctx context.Context, aluno model.Aluno) (*model.Aluno, error) {
	args := m.Called(aluno)
	created, _ := args.Get(0).(*model.Aluno)
	return created, args.Error(1)
}

func (m *mockAlunoService) Import(ctx context.Context, fileName string, content []byte) (map[string]any, error) {
	args := m.Called(fileName, content)
	summary, _ := args.Get(0).(map[string]any)
	return summary, args.Error(1)
}

func (m *mockAlunoService) List(ctx context.Context, page int, termoBusca string) (*model.Page[model.Aluno], error) {
	args := m.Called(page, termoBusca)
	result, _ := args.Get(0).(*model.Page[model.Aluno])
	return result, args.Error(1)
}

func (m *mockAlunoService) Search(ctx context.Context, nome string) (*model.Page[model.Aluno], error) {
	args := m.Called(nome)
	result, _ := args.Get(0).(*model.Page[model.Aluno])
	return result, args.Error(1)
}

func (m *mockAlunoService) Get(ctx context.Context, id int64) (*model.Aluno, error) {
	args := m.Called(id)
	aluno, _ := args.Get(0).(*model.Aluno)
	return aluno, args.Error(1)
}

func (m *mockAlunoService) Update(ctx context.Context, id int64, aluno model.Aluno) error {
	return m.Called(id, aluno).Error(0)
}

func (m *mockAlunoService) Delete(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}

func TestAlunoHandler_List(t *testing.T) {
	console, _ := newConsole(t, []string{model.PermissionAlunos})
	svc := new(mockAlunoService)
	svc.On("List", 1, "bia").Return(&model.Page[model.Aluno]{
		Content:    []model.Aluno{{ID: 4, Nome: "Bia Souza", CPF: "12345678900"}},
		Number:     1,
		TotalPages: 2,
		Last:       true,
	}, nil).Once()
	rr := httptest.NewRecorder()

	console.ErrorHandlingMiddleware(NewAlunoHandler(console, svc).List).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/alunos?page=1&q=bia", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Bia Souza")
	assert.Contains(t, rr.Body.String(), "123.456.789-00")
	svc.AssertExpectations(t)
}

func TestAlunoHandler_ListSessionRejected(t *testing.T) {
	console, _ := newConsole(t, []string{model.PermissionAlunos})
	svc := new(mockAlunoService)
	svc.On("List", 0, "").Return(nil, &client.SessionInvalidatedError{StatusCode: 403, Path: "/alunos/all"}).Once()
	rr := httptest.NewRecorder()

	console.ErrorHandlingMiddleware(NewAlunoHandler(console, svc).List).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/alunos", nil))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, loginRoute, rr.Header().Get("Location"))
}

func TestAlunoHandler_Create(t *testing.T) {
	form := url.Values{"nome": {"Bia"}, "dataNascimento": {"2012-05-01"}, "cpf": {"12345678900"}, "numero": {"12"}}

	t.Run("success", func(t *testing.T) {
		console, _ := newConsole(t, []string{model.PermissionAlunos})
		svc := new(mockAlunoService)
		svc.On("Create", mock.MatchedBy(func(a model.Aluno) bool {
			return a.Nome == "Bia" && a.Numero == 12
		})).Return(&model.Aluno{ID: 5}, nil).Once()
		rr := httptest.NewRecorder()

		console.ErrorHandlingMiddleware(NewAlunoHandler(console, svc).Create).ServeHTTP(rr, postForm("/alunos", form))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/alunos?ok=criado", rr.Header().Get("Location"))
		svc.AssertExpectations(t)
	})

	t.Run("validation failure re-renders the form", func(t *testing.T) {
		console, _ := newConsole(t, []string{model.PermissionAlunos})
		svc := new(mockAlunoService)
		invalid := common.Validate(model.Aluno{Nome: "Bia"})
		svc.On("Create", mock.Anything).Return(nil, invalid).Once()
		rr := httptest.NewRecorder()

		console.ErrorHandlingMiddleware(NewAlunoHandler(console, svc).Create).ServeHTTP(rr, postForm("/alunos", form))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "é obrigatório")
		assert.Contains(t, rr.Body.String(), `value="Bia"`)
	})
}

func TestAlunoHandler_Import(t *testing.T) {
	console, _ := newConsole(t, []string{model.PermissionAlunos})
	svc := new(mockAlunoService)
	svc.On("Import", "alunos.csv", []byte("nome;cpf\n")).Return(map[string]any{}, nil).Once()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "alunos.csv")
	require.NoError(t, err)
	part.Write([]byte("nome;cpf\n"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/alunos/importar", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()

	console.ErrorHandlingMiddleware(NewAlunoHandler(console, svc).Import).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/alunos?ok=importado", rr.Header().Get("Location"))
	svc.AssertExpectations(t)
}

func TestAlunoHandler_ImportWithoutFile(t *testing.T) {
	console, _ := newConsole(t, []string{model.PermissionAlunos})
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/alunos/importar", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()

	console.ErrorHandlingMiddleware(NewAlunoHandler(console, new(mockAlunoService)).Import).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Selecione um arquivo.")
}

func TestAlunoHandler_EditAndDelete(t *testing.T) {
	console, _ := newConsole(t, []string{model.PermissionAlunos})
	svc := new(mockAlunoService)
	svc.On("Get", int64(9)).Return(&model.Aluno{ID: 9, Nome: "Caio"}, nil).Once()
	svc.On("Delete", int64(9)).Return(nil).Once()
	h := NewAlunoHandler(console, svc)

	mux := http.NewServeMux()
	mux.Handle("GET /alunos/{id}", console.ErrorHandlingMiddleware(h.Edit))
	mux.Handle("POST /alunos/{id}/excluir", console.ErrorHandlingMiddleware(h.Delete))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/alunos/9", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `action="/alunos/9"`)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/alunos/9/excluir", nil))
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/alunos/abc", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	svc.AssertExpectations(t)
}

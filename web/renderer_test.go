// file: web/renderer_test.go

package web

import (
	"ged-apae-console/logger"
	"ged-apae-console/model"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestNewRenderer_LoadsEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range []string{
		"login.html", "home.html", "denied.html", "error.html", "senha.html",
		"alunos.html", "aluno_form.html", "documentos.html", "documento_form.html",
		"tipos.html", "usuarios.html", "usuario_form.html", "grupos.html", "grupo_form.html",
	} {
		assert.Contains(t, r.pages, name)
	}
	assert.NotContains(t, r.pages, "layout.html")
}

func TestRenderer_Denied(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = r.Render(rr, http.StatusForbidden, "denied.html", View{
		Title:    "Acesso Negado",
		UserName: "Ana",
		Nav:      []NavLink{{Path: "/", Text: "Início"}},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Acesso Negado")
	assert.Contains(t, rr.Body.String(), "Olá, Ana")
}

func TestRenderer_ListWithPager(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	page := &model.Page[model.Aluno]{
		Content:    []model.Aluno{{ID: 3, Nome: "Bia", CPF: "12345678900", DataNascimento: "2012-05-01"}},
		Number:     1,
		TotalPages: 3,
	}
	rr := httptest.NewRecorder()
	err = r.Render(rr, http.StatusOK, "alunos.html", View{
		Data: struct {
			Page *model.Page[model.Aluno]
			Term string
		}{page, "bia"},
	})

	require.NoError(t, err)
	body := rr.Body.String()
	assert.Contains(t, body, "123.456.789-00")
	assert.Contains(t, body, "01/05/2012")
	assert.Contains(t, body, "Página 2 de 3")
	assert.Contains(t, body, "Anterior")
	assert.Contains(t, body, "Próxima")
	assert.NotContains(t, body, "Sair", "no menu outside a session")
}

func TestRenderer_Errors(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	t.Run("unknown template", func(t *testing.T) {
		rr := httptest.NewRecorder()
		assert.Error(t, r.Render(rr, http.StatusOK, "missing.html", View{}))
	})

	t.Run("execution failure writes nothing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := r.Render(rr, http.StatusOK, "alunos.html", View{Data: 42})
		assert.Error(t, err)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("broken template set", func(t *testing.T) {
		_, err := newRenderer(fstest.MapFS{
			"templates/layout.html": {Data: []byte(`{{template "content" .}}`)},
			"templates/bad.html":    {Data: []byte(`{{define "content"}}{{.Oops}`)},
		})
		assert.Error(t, err)
	})
}

// file: handler/forms.go

package handler

import (
	"errors"
	"ged-apae-console/common"
	"ged-apae-console/model"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// formError re-renders a form with the failure when the input was rejected
// locally or by the backend with a 4xx. Session loss and server failures go
// through ErrorHandlingMiddleware instead.
func (c *Console) formError(w http.ResponseWriter, r *http.Request, err error, name, title string, data any) *common.AppError {
	appErr := backendError(err, "Não foi possível salvar.")
	switch {
	case appErr.Code >= http.StatusInternalServerError,
		appErr.Code == http.StatusUnauthorized,
		appErr.Code == http.StatusForbidden:
		return appErr
	}
	appErr.Log(r)
	view := c.View(r, title, data)
	view.Errors = []string{appErr.Message}
	return c.Render(w, appErr.Code, name, view)
}

// maxUploadSize bounds one uploaded file. The request body may exceed it by
// multipartOverhead for the other form fields.
var maxUploadSize int64 = 32 << 20

const multipartOverhead = 1 << 20

// formFile reads an uploaded file from a multipart form. A missing file is an
// error only when required. A file over maxUploadSize is refused with a 413,
// never cut short.
func formFile(w http.ResponseWriter, r *http.Request, field string, required bool) (string, []byte, *common.AppError) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", nil, fileTooLarge(err)
		}
		return "", nil, common.NewAppError(http.StatusBadRequest, "Formulário inválido.", err)
	}
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		if required {
			return "", nil, common.NewAppError(http.StatusBadRequest, "Selecione um arquivo.", nil)
		}
		return "", nil, nil
	}
	if err != nil {
		return "", nil, common.NewAppError(http.StatusBadRequest, "Arquivo inválido.", err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return "", nil, common.NewAppError(http.StatusBadRequest, "Não foi possível ler o arquivo.", err)
	}
	if int64(len(content)) > maxUploadSize {
		return "", nil, fileTooLarge(nil)
	}
	return header.Filename, content, nil
}

func fileTooLarge(err error) *common.AppError {
	limit := strconv.FormatInt(maxUploadSize>>20, 10)
	return common.NewAppError(http.StatusRequestEntityTooLarge, "Arquivo maior que o limite de "+limit+" MB.", err)
}

func formInt64(r *http.Request, field string) int64 {
	v, _ := strconv.ParseInt(strings.TrimSpace(r.FormValue(field)), 10, 64)
	return v
}

func alunoFromForm(r *http.Request) model.Aluno {
	numero, _ := strconv.Atoi(strings.TrimSpace(r.PostFormValue("numero")))
	field := func(name string) string { return strings.TrimSpace(r.PostFormValue(name)) }
	return model.Aluno{
		Nome:           field("nome"),
		DataNascimento: field("dataNascimento"),
		CPF:            field("cpf"),
		CPFResponsavel: field("cpfResponsavel"),
		Telefone:       field("telefone"),
		Sexo:           field("sexo"),
		Deficiencia:    field("deficiencia"),
		Observacoes:    field("observacoes"),
		Estado:         field("estado"),
		Cidade:         field("cidade"),
		Bairro:         field("bairro"),
		Rua:            field("rua"),
		Numero:         numero,
		Complemento:    field("complemento"),
		CEP:            field("cep"),
	}
}

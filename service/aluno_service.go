// file: service/aluno_service.go

package service

import (
	"context"
	"fmt"
	"ged-apae-console/client"
	"ged-apae-console/common"
	"ged-apae-console/logger"
	"ged-apae-console/model"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

const searchPageSize = "20"

// AlunoService wraps the student endpoints of the backend.
type AlunoService struct {
	client IBackendClient
}

// NewAlunoService creates a new AlunoService.
func NewAlunoService(client IBackendClient) *AlunoService {
	return &AlunoService{client: client}
}

// Create registers a new student.
func (s *AlunoService) Create(ctx context.Context, aluno model.Aluno) (*model.Aluno, error) {
	if err := common.Validate(aluno); err != nil {
		return nil, err
	}
	aluno.ID = 0

	var created model.Aluno
	if err := s.client.Do(ctx, http.MethodPost, "/alunos/create", nil, aluno, &created); err != nil {
		return nil, err
	}
	logger.Log.WithField("aluno_id", created.ID).Info("Student created")
	return &created, nil
}

// Import uploads a spreadsheet of students. The backend's summary is returned as-is.
func (s *AlunoService) Import(ctx context.Context, fileName string, content []byte) (map[string]any, error) {
	if strings.TrimSpace(fileName) == "" || len(content) == 0 {
		return nil, fmt.Errorf("%w: arquivo de importação vazio", common.ErrValidation)
	}

	var summary map[string]any
	files := []client.FilePart{{Field: "file", FileName: fileName, Content: content}}
	if err := s.client.DoMultipart(ctx, http.MethodPost, "/alunos/importar", nil, files, &summary); err != nil {
		return nil, err
	}
	logger.Log.WithFields(logrus.Fields{
		"file":  fileName,
		"bytes": len(content),
	}).Info("Students imported")
	return summary, nil
}

// List returns one page of students ordered by name, optionally filtered.
func (s *AlunoService) List(ctx context.Context, page int, termoBusca string) (*model.Page[model.Aluno], error) {
	var result model.Page[model.Aluno]
	query := pageQuery(page, "nome,asc", strings.TrimSpace(termoBusca))
	if err := s.client.Do(ctx, http.MethodGet, "/alunos/all", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search looks students up by name, for pickers.
func (s *AlunoService) Search(ctx context.Context, nome string) (*model.Page[model.Aluno], error) {
	query := url.Values{}
	query.Set("nome", strings.TrimSpace(nome))
	query.Set("page", "0")
	query.Set("size", searchPageSize)

	var result model.Page[model.Aluno]
	if err := s.client.Do(ctx, http.MethodGet, "/alunos/all", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches one student.
func (s *AlunoService) Get(ctx context.Context, id int64) (*model.Aluno, error) {
	var aluno model.Aluno
	if err := s.client.Do(ctx, http.MethodGet, idPath("/alunos/", id, ""), nil, nil, &aluno); err != nil {
		return nil, err
	}
	return &aluno, nil
}

// Update replaces a student's record.
func (s *AlunoService) Update(ctx context.Context, id int64, aluno model.Aluno) error {
	if err := common.Validate(aluno); err != nil {
		return err
	}
	aluno.ID = id
	return s.client.Do(ctx, http.MethodPut, idPath("/alunos/", id, ""), nil, aluno, nil)
}

// Delete removes a student.
func (s *AlunoService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Do(ctx, http.MethodDelete, idPath("/alunos/", id, ""), nil, nil, nil); err != nil {
		return err
	}
	logger.Log.WithField("aluno_id", id).Info("Student deleted")
	return nil
}

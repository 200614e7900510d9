// file: service/usuario_service.go

package service

import (
	"context"
	"fmt"
	"ged-apae-console/common"
	"ged-apae-console/logger"
	"ged-apae-console/model"
	"net/http"
	"strings"
)

// UsuarioService wraps the operator-account endpoints of the backend.
type UsuarioService struct {
	client IBackendClient
}

// NewUsuarioService creates a new UsuarioService.
func NewUsuarioService(client IBackendClient) *UsuarioService {
	return &UsuarioService{client: client}
}

// List returns one page of operator accounts ordered by name.
func (s *UsuarioService) List(ctx context.Context, page int, termoBusca string) (*model.Page[model.Usuario], error) {
	var result model.Page[model.Usuario]
	query := pageQuery(page, "nome,asc", strings.TrimSpace(termoBusca))
	if err := s.client.Do(ctx, http.MethodGet, "/user/list", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates an operator account. A password is mandatory here.
func (s *UsuarioService) Register(ctx context.Context, payload model.UsuarioPayload) (*model.Usuario, error) {
	if err := common.Validate(payload); err != nil {
		return nil, err
	}
	if payload.Password == nil || *payload.Password == "" {
		return nil, fmt.Errorf("%w: senha é obrigatória", common.ErrValidation)
	}

	var created model.Usuario
	if err := s.client.Do(ctx, http.MethodPost, "/user/register", nil, payload, &created); err != nil {
		return nil, err
	}
	logger.Log.WithField("usuario_id", created.ID).Info("Operator account registered")
	return &created, nil
}

// Update changes an operator account. An empty password keeps the current one.
func (s *UsuarioService) Update(ctx context.Context, id int64, payload model.UsuarioPayload) (*model.Usuario, error) {
	if payload.Password != nil && *payload.Password == "" {
		payload.Password = nil
	}
	if err := common.Validate(payload); err != nil {
		return nil, err
	}

	var updated model.Usuario
	if err := s.client.Do(ctx, http.MethodPut, idPath("/user/", id, ""), nil, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *UsuarioService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Do(ctx, http.MethodDelete, idPath("/user/", id, ""), nil, nil, nil); err != nil {
		return err
	}
	logger.Log.WithField("usuario_id", id).Info("Operator account deleted")
	return nil
}

// Groups lists the user groups an account can be assigned to.
func (s *UsuarioService) Groups(ctx context.Context) ([]model.UserGroup, error) {
	var groups []model.UserGroup
	if err := s.client.Do(ctx, http.MethodGet, "/grupo_usuario/list", nil, nil, &groups); err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []model.UserGroup{}
	}
	return groups, nil
}

// Get fetches one operator account.
func (s *UsuarioService) Get(ctx context.Context, id int64) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := s.client.Do(ctx, http.MethodGet, idPath("/user/", id, ""), nil, nil, &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

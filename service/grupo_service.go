// file: service/grupo_service.go

package service

import (
	"context"
	"encoding/json"
	"ged-apae-console/common"
	"ged-apae-console/logger"
	"ged-apae-console/model"
	"net/http"
)

// PermissionCatalogueKey is the cache key of the backend permission catalogue.
const PermissionCatalogueKey = "catalogue:permissoes"

// GrupoService wraps the user-group endpoints of the backend.
type GrupoService struct {
	client IBackendClient
	cache  ICacheClient
}

// NewGrupoService creates a new GrupoService. cache may be nil, in which case
// the permission catalogue is fetched on every call.
func NewGrupoService(client IBackendClient, cache ICacheClient) *GrupoService {
	return &GrupoService{client: client, cache: cache}
}

func (s *GrupoService) List(ctx context.Context) ([]model.UserGroup, error) {
	var groups []model.UserGroup
	if err := s.client.Do(ctx, http.MethodGet, "/grupo_usuario/list", nil, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *GrupoService) Get(ctx context.Context, id int64) (*model.UserGroup, error) {
	var group model.UserGroup
	if err := s.client.Do(ctx, http.MethodGet, idPath("/grupo_usuario/", id, ""), nil, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *GrupoService) Create(ctx context.Context, data model.GroupFormData) (*model.UserGroup, error) {
	if err := common.Validate(data); err != nil {
		return nil, err
	}
	var created model.UserGroup
	if err := s.client.Do(ctx, http.MethodPost, "/grupo_usuario/create", nil, data, &created); err != nil {
		return nil, err
	}
	logger.Log.WithField("grupo_id", created.ID).Info("User group created")
	return &created, nil
}

func (s *GrupoService) Update(ctx context.Context, id int64, data model.GroupFormData) (*model.UserGroup, error) {
	if err := common.Validate(data); err != nil {
		return nil, err
	}
	var updated model.UserGroup
	if err := s.client.Do(ctx, http.MethodPut, idPath("/grupo_usuario/", id, ""), nil, data, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *GrupoService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Do(ctx, http.MethodDelete, idPath("/grupo_usuario/", id, ""), nil, nil, nil); err != nil {
		return err
	}
	logger.Log.WithField("grupo_id", id).Info("User group deleted")
	return nil
}

// Permissions lists the permission catalogue, using a cache-aside strategy
// when a cache is configured.
func (s *GrupoService) Permissions(ctx context.Context) ([]model.Permission, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, PermissionCatalogueKey).Result(); err == nil {
			var permissions []model.Permission
			if err := json.Unmarshal([]byte(cached), &permissions); err == nil {
				return permissions, nil
			}
		}
	}

	var permissions []model.Permission
	if err := s.client.Do(ctx, http.MethodGet, "/permissoes", nil, nil, &permissions); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(permissions); err == nil {
			if err := s.cache.Set(ctx, PermissionCatalogueKey, data, CatalogueTTL).Err(); err != nil {
				logger.Log.WithError(err).Warn("Failed to cache permission catalogue")
			}
		}
	}
	return permissions, nil
}

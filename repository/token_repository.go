// file: repository/token_repository.go

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"ged-apae-console/logger"

	"github.com/sirupsen/logrus"
)

// ITokenRepository defines the contract for the operator's session token storage.
type ITokenRepository interface {
	Write(ctx context.Context, token string, permissions []string) error
	GetToken(ctx context.Context) (string, bool)
	GetPermissions(ctx context.Context) (string, bool)
	Clear(ctx context.Context)
}

// TokenRepository implements ITokenRepository on top of an IStorage,
// under two fixed keys: one for the raw token, one for the permission list
// encoded as JSON text.
type TokenRepository struct {
	storage        IStorage
	tokenKey       string
	permissionsKey string
}

// NewTokenRepository creates a new TokenRepository.
func NewTokenRepository(storage IStorage, tokenKey, permissionsKey string) *TokenRepository {
	return &TokenRepository{
		storage:        storage,
		tokenKey:       tokenKey,
		permissionsKey: permissionsKey,
	}
}

// Write stores the token and its permission list together. The token shape is not checked.
func (r *TokenRepository) Write(ctx context.Context, token string, permissions []string) error {
	if permissions == nil {
		permissions = []string{}
	}
	encoded, err := json.Marshal(permissions)
	if err != nil {
		return fmt.Errorf("encoding permissions: %w", err)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"permissions": len(permissions),
	})
	log.Info("Writing session token")

	err = r.storage.SetItems(ctx, map[string]string{
		r.tokenKey:       token,
		r.permissionsKey: string(encoded),
	})
	if err != nil {
		log.WithError(err).Error("Failed to write session token")
		return err
	}
	return nil
}

// GetToken returns the raw stored token, or false when none is stored.
func (r *TokenRepository) GetToken(ctx context.Context) (string, bool) {
	return r.get(ctx, r.tokenKey)
}

// GetPermissions returns the stored permission list as raw JSON text.
func (r *TokenRepository) GetPermissions(ctx context.Context) (string, bool) {
	return r.get(ctx, r.permissionsKey)
}

// Clear removes the token and the permission list. It never fails;
// storage errors are logged.
func (r *TokenRepository) Clear(ctx context.Context) {
	logger.Log.Info("Clearing session token")
	if err := r.storage.RemoveItems(ctx, r.tokenKey, r.permissionsKey); err != nil {
		logger.Log.WithError(err).Error("Failed to clear session token")
	}
}

func (r *TokenRepository) get(ctx context.Context, key string) (string, bool) {
	value, err := r.storage.GetItem(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrItemNotFound) {
			logger.Log.WithError(err).WithField("key", key).Error("Failed to read session item")
		}
		return "", false
	}
	return value, true
}

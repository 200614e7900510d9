// file: service/auth_service.go

package service

import (
	"context"
	"errors"
	"fmt"
	"ged-apae-console/client"
	"ged-apae-console/common"
	"ged-apae-console/logger"
	"ged-apae-console/model"
	"ged-apae-console/repository"
	"net/http"
)

// LoginPath is the backend login endpoint. It belongs in the interceptor's exempt list.
const LoginPath = "/user/login"

// ErrInvalidCredentials means the backend refused the email/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService runs the login, logout and change-password flows.
type AuthService struct {
	client IBackendClient
	tokens repository.ITokenRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(client IBackendClient, tokens repository.ITokenRepository) *AuthService {
	return &AuthService{client: client, tokens: tokens}
}

// Login authenticates against the backend and stores the returned token and
// permission list together. A failed login leaves any stored session untouched.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	log := logger.Log.WithField("email", req.Email)

	var resp model.LoginResponse
	if err := s.client.Do(ctx, http.MethodPost, LoginPath, nil, req, &resp); err != nil {
		switch client.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			log.Warn("Login refused by backend")
			return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		log.WithError(err).Error("Login request failed")
		return nil, err
	}
	if resp.Token == "" {
		return nil, errors.New("login response carried no token")
	}

	if err := s.tokens.Write(ctx, resp.Token, resp.Permissions); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}
	log.WithField("permissions", resp.Permissions).Info("Operator logged in")
	return &resp, nil
}

// Logout forgets the stored session.
func (s *AuthService) Logout(ctx context.Context) {
	s.tokens.Clear(ctx)
}

// ChangePassword validates the form and asks the backend to change the
// current operator's password.
func (s *AuthService) ChangePassword(ctx context.Context, req model.ChangePasswordRequest) error {
	if err := common.Validate(req); err != nil {
		return err
	}
	return s.client.Do(ctx, http.MethodPut, "/user/change-password", nil, req, nil)
}

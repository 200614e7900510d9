// file: service/session_service.go

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"ged-apae-console/logger"
	"ged-apae-console/model"
	"ged-apae-console/repository"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNoSession means no token is stored.
	ErrNoSession = errors.New("no session")
	// ErrMalformedToken means the stored token payload could not be decoded.
	ErrMalformedToken = errors.New("malformed session token")
)

// DecodeResult is either Decoded or Invalid.
type DecodeResult interface {
	isDecodeResult()
}

// Decoded is a successfully decoded token payload.
// Expiry is the zero time when the token carries no exp claim.
type Decoded struct {
	Subject     string
	DisplayName string
	Permissions []string
	Expiry      time.Time
}

// Invalid explains why a token could not be decoded.
type Invalid struct {
	Reason error
}

func (Decoded) isDecodeResult() {}
func (Invalid) isDecodeResult() {}

// Name returns the display name, falling back to the subject.
func (d Decoded) Name() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return d.Subject
}

// HasExpiry reports whether the token carried an exp claim.
func (d Decoded) HasExpiry() bool {
	return !d.Expiry.IsZero()
}

// ExpiredAt reports whether the token is expired at now. A token without an
// exp claim never expires, and no clock-skew leeway is applied.
func (d Decoded) ExpiredAt(now time.Time) bool {
	return d.HasExpiry() && d.Expiry.Before(now)
}

// DecodeToken reads the token payload without verifying its signature.
// It has no side effects.
func DecodeToken(token string) DecodeResult {
	var claims model.SessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Invalid{Reason: fmt.Errorf("%w: %v", ErrMalformedToken, err)}
	}

	decoded := Decoded{
		Subject:     claims.Subject,
		DisplayName: claims.Nome,
		Permissions: claims.Permissions,
	}
	if claims.ExpiresAt != nil {
		decoded.Expiry = claims.ExpiresAt.Time
	}
	return decoded
}

// SessionService answers questions about the operator's session from the
// token store alone, without a backend round-trip. IsAuthenticated is the
// only method that mutates the store; Decode and the permission predicates
// are read-only.
type SessionService struct {
	tokens repository.ITokenRepository
	now    func() time.Time
}

// NewSessionService creates a new SessionService. A nil now uses time.Now.
func NewSessionService(tokens repository.ITokenRepository, now func() time.Time) *SessionService {
	if now == nil {
		now = time.Now
	}
	return &SessionService{tokens: tokens, now: now}
}

// IsAuthenticated reports whether a stored, decodable, unexpired token exists.
// A malformed or expired token invalidates the session.
func (s *SessionService) IsAuthenticated(ctx context.Context) bool {
	token, ok := s.tokens.GetToken(ctx)
	if !ok {
		return false
	}

	switch result := DecodeToken(token).(type) {
	case Invalid:
		logger.Log.WithError(result.Reason).Warn("Stored session token is malformed, invalidating session")
		s.tokens.Clear(ctx)
		return false
	case Decoded:
		if result.ExpiredAt(s.now()) {
			logger.Log.WithFields(logrus.Fields{
				"subject":    result.Subject,
				"expired_at": result.Expiry,
			}).Info("Session token expired, invalidating session")
			s.tokens.Clear(ctx)
			return false
		}
		return true
	}
	return false
}

// Decode returns the stored token payload for display. It never touches the store.
func (s *SessionService) Decode(ctx context.Context) DecodeResult {
	token, ok := s.tokens.GetToken(ctx)
	if !ok {
		return Invalid{Reason: ErrNoSession}
	}
	return DecodeToken(token)
}

// Permissions returns the cached permission list written at login.
func (s *SessionService) Permissions(ctx context.Context) ([]string, error) {
	if _, ok := s.tokens.GetToken(ctx); !ok {
		return nil, ErrNoSession
	}
	raw, ok := s.tokens.GetPermissions(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	var permissions []string
	if err := json.Unmarshal([]byte(raw), &permissions); err != nil {
		return nil, fmt.Errorf("parsing cached permissions: %w", err)
	}
	return permissions, nil
}

// HasPermission reports whether name is in the cached permission set.
// No session or an unreadable set yields false.
func (s *SessionService) HasPermission(ctx context.Context, name string) bool {
	return s.HasAnyPermission(ctx, name)
}

// HasAnyPermission reports whether at least one of names is in the cached
// permission set. An empty names list yields false.
func (s *SessionService) HasAnyPermission(ctx context.Context, names ...string) bool {
	if len(names) == 0 {
		return false
	}

	permissions, err := s.Permissions(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			logger.Log.WithError(err).Error("Could not read cached permissions")
		}
		return false
	}

	granted := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		granted[p] = struct{}{}
	}
	for _, name := range names {
		if _, ok := granted[name]; ok {
			return true
		}
	}
	return false
}

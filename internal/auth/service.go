// Package auth issues and validates access tokens for case system
// principals. Tokens carry the full organization scope, so downstream
// request handling needs no user lookups; logout works through a revocation
// list keyed by token ID.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/daxp472/CMS/internal/models"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
	"github.com/daxp472/CMS/pkg/platform/sentinel"
	"github.com/daxp472/CMS/pkg/requestcontext"
)

// UserStore is the slice of the store the auth service needs.
type UserStore interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service handles login, logout and token validation.
type Service struct {
	users      UserStore
	jwt        *JWTService
	revocation RevocationList
	logger     *slog.Logger
}

// NewService wires the auth service.
func NewService(users UserStore, jwt *JWTService, revocation RevocationList, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{users: users, jwt: jwt, revocation: revocation, logger: logger}
}

// LoginResult carries the issued token and the authenticated user.
type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *models.User
}

// Login verifies credentials and issues an access token. Every failure mode
// reports the same reason so the endpoint does not leak which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "email and password are required")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "user lookup failed")
	}
	if !user.IsActive {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}

	token, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "token generation failed")
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", user.ID, "role", user.Role)
	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   s.jwt.TokenTTL(),
		User:        user,
	}, nil
}

// Logout revokes the presented token for its remaining lifetime.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return err
	}
	ttl := s.jwt.TokenTTL()
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}
	if err := s.revocation.RevokeToken(ctx, claims.ID, ttl); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "token revocation failed")
	}
	s.logger.InfoContext(ctx, "user logged out", "user_id", claims.UserID)
	return nil
}

// ValidatePrincipal verifies a token and its revocation status, yielding the
// principal for the request context. Satisfies middleware.PrincipalValidator.
func (s *Service) ValidatePrincipal(ctx context.Context, token string) (requestcontext.PrincipalInfo, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return requestcontext.PrincipalInfo{}, err
	}
	revoked, err := s.revocation.IsRevoked(ctx, claims.ID)
	if err != nil {
		return requestcontext.PrincipalInfo{}, dErrors.Wrap(err, dErrors.CodeInternal, "revocation check failed")
	}
	if revoked {
		return requestcontext.PrincipalInfo{}, dErrors.New(dErrors.CodeUnauthorized, "token has been revoked")
	}
	return requestcontext.PrincipalInfo{
		UserID:           claims.UserID,
		Role:             claims.Role,
		OrganizationType: claims.OrganizationType,
		OrganizationID:   claims.OrganizationID,
	}, nil
}

// CurrentUser loads the full user record for the authenticated principal.
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	info, ok := requestcontext.Principal(ctx)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "no authenticated principal")
	}
	userID, err := uuid.Parse(info.UserID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "malformed principal")
	}
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unknown principal")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "user lookup failed")
	}
	return user, nil
}

// HashPassword hashes a plaintext password for storage. Exposed for the dev
// seed and future user provisioning.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

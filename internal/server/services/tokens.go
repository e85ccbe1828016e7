// Package services contains server-side business logic. This file implements
// TokenService, the credential lifecycle core: issuing access/refresh token
// pairs, verifying access tokens for the HTTP middleware, exchanging refresh
// tokens for new access tokens, and revoking refresh tokens on logout.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hytex/classroom-server/internal/common"
	"github.com/hytex/classroom-server/internal/logging"
	"github.com/hytex/classroom-server/internal/server/auth"
	"github.com/hytex/classroom-server/internal/server/config"
	"github.com/hytex/classroom-server/internal/server/repositories/repomanager"
)

// Identity is the subject a token pair is issued for.
type Identity struct {
	UserID int64
	Role   string
}

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService implements the credential lifecycle:
//   - Issue: sign an access/refresh pair and record the refresh token
//   - VerifyAccessToken: decode an access token for the auth middleware
//   - Refresh: exchange a still-live refresh token for a new access token
//   - Logout: revoke a refresh token, idempotently
type TokenService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	logger                       logging.Logger
	accessTokenSecret            []byte
	refreshTokenSecret           []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewTokenService constructs a TokenService using repositories and server
// config.
func NewTokenService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger, cfg *config.Config) *TokenService {
	return &TokenService{
		db:                           db,
		repomanager:                  m,
		logger:                       l.With("module", "tokens"),
		accessTokenSecret:            []byte(cfg.AccessTokenSecret),
		refreshTokenSecret:           []byte(cfg.RefreshTokenSecret),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Issue signs an access/refresh token pair for the identity and records the
// refresh token in the credential store. If the insert fails, the issuance
// fails as a whole: a refresh token that was not durably recorded is never
// handed out.
func (s *TokenService) Issue(ctx context.Context, identity Identity) (*TokenPair, error) {
	access, err := auth.GenerateToken(identity.UserID, identity.Role, s.accessTokenSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refresh, err := auth.GenerateToken(identity.UserID, identity.Role, s.refreshTokenSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.RefreshTokens(s.db)
	if err := repo.Create(ctx, identity.UserID, identity.Role, refresh, s.refreshTokenValidityDuration); err != nil {
		s.logger.Error(ctx, "error recording refresh token", "error", err.Error())
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccessToken decodes an access token and returns its claims.
func (s *TokenService) VerifyAccessToken(tokenString string) (*auth.Claims, error) {
	return auth.ParseToken(tokenString, s.accessTokenSecret)
}

// Refresh exchanges a refresh token for a new access token. The credential
// store is the source of truth: a token absent from the store is revoked and
// yields common.ErrorForbidden no matter how valid its signature still is.
// A stored token that fails verification is deleted from the store before
// the rejection is returned.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	if _, err := repo.Find(ctx, refreshToken); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "refresh token not in store")
			if err := repo.Delete(ctx, refreshToken); err != nil {
				s.logger.Error(ctx, "error deleting refresh token", "error", err.Error())
			}
			return "", common.ErrorForbidden
		}
		return "", common.ErrorInternal
	}

	claims, err := auth.ParseToken(refreshToken, s.refreshTokenSecret)
	if err != nil {
		s.logger.Warn(ctx, "refresh token failed verification", "error", err.Error())
		if err := repo.Delete(ctx, refreshToken); err != nil {
			s.logger.Error(ctx, "error deleting refresh token", "error", err.Error())
			return "", common.ErrorInternal
		}
		return "", common.ErrorForbidden
	}

	access, err := auth.GenerateToken(claims.UserID, claims.Role, s.accessTokenSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return access, nil
}

// Logout revokes a refresh token by removing it from the credential store.
// Removing an absent token is not an error, so a repeated logout with the
// same token succeeds as well.
func (s *TokenService) Logout(ctx context.Context, refreshToken string) error {
	repo := s.repomanager.RefreshTokens(s.db)
	if err := repo.Delete(ctx, refreshToken); err != nil {
		return common.ErrorInternal
	}
	return nil
}

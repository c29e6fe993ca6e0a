// Package services contains server-side business logic. This file
// implements UserService: login against portal credentials, issuing and
// rotating token pairs, logout, and current-user lookup.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/northlink/selfcare/internal/common"
	"github.com/northlink/selfcare/internal/dbx"
	"github.com/northlink/selfcare/internal/server/auth"
	"github.com/northlink/selfcare/internal/server/config"
	"github.com/northlink/selfcare/internal/server/models"
	"github.com/northlink/selfcare/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token, a long-lived refresh
// token, and the access-token lifetime reported to clients.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// LoginInput carries everything the login operation needs. Identifier is
// matched against email, portal ID, and account number within PortalType.
type LoginInput struct {
	Identifier     string
	Password       []byte
	PortalType     string
	MFACode        string
	RememberDevice bool
}

// UserService provides authentication-related operations:
//   - Login: verify credentials and mint tokens
//   - RefreshToken: rotate refresh tokens and mint new access tokens
//   - Logout: revoke a refresh token
//   - GetUser: profile lookup for an authenticated user
type UserService struct {
	db                             *sql.DB
	repomanager                    repomanager.RepositoryManager
	jwtSecret                      []byte
	accessTokenValidityDuration    time.Duration
	refreshTokenValidityDuration   time.Duration
	rememberDeviceValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                             db,
		repomanager:                    m,
		jwtSecret:                      []byte(cfg.SecretKey),
		accessTokenValidityDuration:    cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration:   cfg.RefreshTokenValidityDuration,
		rememberDeviceValidityDuration: cfg.RememberDeviceValidityDuration,
	}
}

// Login verifies the identifier/password pair and, on success, returns the
// user together with a fresh TokenPair. Unknown identifiers and wrong
// passwords are indistinguishable to the caller (common.ErrorUnauthorized).
// Accounts flagged MFA-required reject logins without a code.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*models.User, *TokenPair, error) {
	switch in.PortalType {
	case common.PortalResidential, common.PortalBusiness, common.PortalAdmin:
	default:
		return nil, nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByIdentifier(ctx, in.Identifier, in.PortalType)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if !CheckPassword(in.Password, user.Salt, user.PasswordHash) {
		return nil, nil, common.ErrorUnauthorized
	}

	if user.MFARequired && in.MFACode == "" {
		return nil, nil, common.ErrorUnauthorized
	}

	refreshValidity := s.refreshTokenValidityDuration
	if in.RememberDevice {
		refreshValidity = s.rememberDeviceValidityDuration
	}

	pair, err := s.generateTokenPair(ctx, user, refreshValidity, s.db)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired;
// unknown ones ErrorUnauthorized.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, token.UserID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	// Rotation keeps the remaining window: validity of the new token is
	// whatever was left on the old one.
	remaining := time.Until(token.Expires)

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.RefreshTokens(tx)
		if err := repoTx.Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPairTx(ctx, user, remaining, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes the given refresh token. Revoking an unknown token is
// not an error, so repeated logouts stay idempotent.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	repo := s.repomanager.RefreshTokens(s.db)
	if err := repo.Delete(ctx, refreshToken); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// GetUser returns the profile for an authenticated user ID.
func (s *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// AccessTokenValidity exposes the configured access-token lifetime, which
// handlers report to clients as expires_in.
func (s *UserService) AccessTokenValidity() time.Duration {
	return s.accessTokenValidityDuration
}

// --- helpers below ---

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, user *models.User, refreshValidity time.Duration, db dbx.DBTX) (*TokenPair, error) {
	return s.generateTokenPairTx(ctx, user, refreshValidity, db)
}

func (s *UserService) generateTokenPairTx(ctx context.Context, user *models.User, refreshValidity time.Duration, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(user.ID, user.PortalType, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	refreshRepo := s.repomanager.RefreshTokens(tx)
	if err := refreshRepo.Create(ctx, user.ID, refresh, refreshValidity); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    s.accessTokenValidityDuration,
	}, nil
}

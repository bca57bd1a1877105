package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tnavInter19/twitter-backend/apierr"
	"github.com/tnavInter19/twitter-backend/db"
	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/kv"
	"github.com/tnavInter19/twitter-backend/models"
	"github.com/tnavInter19/twitter-backend/token"
)

// AuthService orchestrates the session lifecycle: registration, login,
// logout and refresh-token exchange.
type AuthService struct {
	users  db.Users
	ledger *kv.Ledger
	tokens *token.Issuer
}

func NewAuthService(users db.Users, ledger *kv.Ledger, tokens *token.Issuer) *AuthService {
	return &AuthService{
		users:  users,
		ledger: ledger,
		tokens: tokens,
	}
}

// issuePair mints an access/refresh pair bound to one fresh jti.
func (s *AuthService) issuePair(user models.User) (models.UserAndCredentials, error) {
	jti := uuid.New().String()

	access, err := s.tokens.AccessToken(user, jti)
	if err != nil {
		slog.Error("failed to create access token", "error", err, "user_id", user.ID.Hex())
		return models.UserAndCredentials{}, err
	}

	refresh, err := s.tokens.RefreshToken(user, jti)
	if err != nil {
		slog.Error("failed to create refresh token", "error", err, "user_id", user.ID.Hex())
		return models.UserAndCredentials{}, err
	}

	return models.UserAndCredentials{
		User:    user,
		Token:   access,
		Refresh: refresh,
	}, nil
}

// Register creates a user record with a hashed password and returns the
// public user together with a fresh token pair.
func (s *AuthService) Register(ctx context.Context, form forms.RegisterForm) (models.UserAndCredentials, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		return models.UserAndCredentials{}, err
	}

	user, err := s.users.CreateUser(ctx, db.CreateUser{
		Name:     form.Name,
		Email:    form.Email,
		Username: form.Username,
		PwdHash:  string(hashed),
	})
	if errors.Is(err, db.ErrDuplicate) {
		return models.UserAndCredentials{}, apierr.Newf(apierr.KindDuplicateKey, "User already exists!")
	}
	if err != nil {
		slog.Error("failed to create user", "error", err)
		return models.UserAndCredentials{}, err
	}

	return s.issuePair(user)
}

// Login verifies credentials and issues a fresh token pair. A missing
// user and a wrong password produce the same error so accounts cannot
// be enumerated.
func (s *AuthService) Login(ctx context.Context, form forms.LoginForm) (models.UserAndCredentials, error) {
	user, err := s.users.FindUserByEmail(ctx, form.Email)
	if errors.Is(err, db.ErrNotFound) {
		return models.UserAndCredentials{}, apierr.Unauthorized()
	}
	if err != nil {
		slog.Error("failed to look up user", "error", err)
		return models.UserAndCredentials{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)); err != nil {
		return models.UserAndCredentials{}, apierr.Unauthorized()
	}

	return s.issuePair(user)
}

// Logout revokes the caller's jti, killing the access/refresh pair that
// carries it. Revoking twice is harmless.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	if err := s.ledger.Revoke(jti, kv.KindJTI, s.tokens.RefreshTTL()); err != nil {
		slog.Error("failed to revoke token", "error", err, "jti", jti)
		return err
	}
	return nil
}

// Refresh exchanges a valid, unused refresh token for a new pair. The
// decoded refresh claims must match the caller identity derived from
// the accompanying access token, so a stolen refresh token alone is not
// enough to mint credentials.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string, caller models.AuthenticatedUser) (models.UserAndCredentials, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return models.UserAndCredentials{}, apierr.Unauthorized()
	}

	if claims.UserID != caller.ID.Hex() ||
		claims.Email != caller.Email ||
		claims.Issuer != caller.Issuer ||
		claims.ID != caller.JTI {
		return models.UserAndCredentials{}, apierr.Unauthorized()
	}

	// Consume the jti atomically: of two concurrent exchanges of the
	// same refresh token, exactly one can win.
	fresh, err := s.ledger.Consume(claims.ID, kv.KindJTI, s.tokens.RefreshTTL())
	if err != nil {
		slog.Error("failed to consume refresh token", "error", err, "jti", claims.ID)
		return models.UserAndCredentials{}, err
	}
	if !fresh {
		return models.UserAndCredentials{}, apierr.Unauthorized()
	}

	userID, err := models.ParseUserID(claims.UserID)
	if err != nil {
		return models.UserAndCredentials{}, apierr.BadRequest()
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return models.UserAndCredentials{}, apierr.BadRequest()
	}
	if err != nil {
		slog.Error("failed to reload user", "error", err, "user_id", claims.UserID)
		return models.UserAndCredentials{}, err
	}

	return s.issuePair(user)
}

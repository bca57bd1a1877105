// Package token mints and verifies the signed access/refresh token
// pairs that carry user identity between requests.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tnavInter19/twitter-backend/models"
)

// Claims is the payload embedded in both access and refresh tokens. A
// pair issued together shares one jti (RegisteredClaims.ID) so that
// revoking the id kills both halves at once.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Issuer signs access and refresh tokens with dedicated secrets so that
// possession of one class of token never allows forging the other.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewIssuer(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		issuer:        issuer,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// RefreshTTL is the lifetime of refresh tokens, also used as the
// retention window for revocation records.
func (i *Issuer) RefreshTTL() time.Duration {
	return i.refreshTTL
}

func (i *Issuer) sign(user models.User, jti string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: user.ID.Hex(),
		Email:  user.Email,
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// AccessToken mints a short-lived access token bound to the given jti.
func (i *Issuer) AccessToken(user models.User, jti string) (string, error) {
	return i.sign(user, jti, i.accessTTL, i.accessSecret)
}

// RefreshToken mints a refresh token sharing the jti of its paired
// access token.
func (i *Issuer) RefreshToken(user models.User, jti string) (string, error) {
	return i.sign(user, jti, i.refreshTTL, i.refreshSecret)
}

func parse(tokenString string, secret []byte, opts ...jwt.ParserOption) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	return claims, nil
}

// VerifyAccess validates signature and expiry of an access token.
func (i *Issuer) VerifyAccess(tokenString string) (*Claims, error) {
	return parse(tokenString, i.accessSecret)
}

// VerifyRefresh validates signature and expiry of a refresh token.
func (i *Issuer) VerifyRefresh(tokenString string) (*Claims, error) {
	return parse(tokenString, i.refreshSecret)
}

// DecodeAccess extracts the claims of an access token, requiring a
// correct signature but ignoring expiry. The refresh endpoint uses it
// so an expired access token can still identify its bearer.
func (i *Issuer) DecodeAccess(tokenString string) (*Claims, error) {
	return parse(tokenString, i.accessSecret, jwt.WithoutClaimsValidation())
}

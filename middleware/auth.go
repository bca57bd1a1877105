// Package middleware holds the authentication gate and the boundary
// error handler the routes are wrapped in.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tnavInter19/twitter-backend/kv"
	"github.com/tnavInter19/twitter-backend/models"
	"github.com/tnavInter19/twitter-backend/token"
)

const identityKey = "authenticatedUser"

// ExtractToken pulls the bearer token out of the Authorization header.
func ExtractToken(r *http.Request) string {
	bearToken := r.Header.Get("Authorization")
	//normally Authorization the_token_xxx
	strArr := strings.Split(bearToken, " ")
	if len(strArr) == 2 {
		return strArr[1]
	}

	return strArr[0]
}

func identityFromClaims(claims *token.Claims) (models.AuthenticatedUser, bool) {
	id, err := models.ParseUserID(claims.UserID)
	if err != nil {
		return models.AuthenticatedUser{}, false
	}

	return models.AuthenticatedUser{
		ID:     id,
		Email:  claims.Email,
		Issuer: claims.Issuer,
		JTI:    claims.ID,
	}, true
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": "Please login first",
	})
}

// RequireAuth is the strict gate: the access token must carry a valid
// signature, be unexpired and its jti must not have been revoked. The
// decoded identity is attached for the handler.
func RequireAuth(tokens *token.Issuer, ledger *kv.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.VerifyAccess(ExtractToken(c.Request))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		revoked, err := ledger.IsRevoked(claims.ID, kv.KindJTI)
		if err != nil || revoked {
			abortUnauthorized(c)
			return
		}

		identity, ok := identityFromClaims(claims)
		if !ok {
			abortUnauthorized(c)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireClaims is the claims-only gate used by the refresh endpoint:
// the access token's signature must be correct but it may be expired,
// so a stale token can still identify its bearer.
func RequireClaims(tokens *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.DecodeAccess(ExtractToken(c.Request))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		identity, ok := identityFromClaims(claims)
		if !ok {
			abortUnauthorized(c)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// Identity returns the caller identity a gate attached to the request.
func Identity(c *gin.Context) (models.AuthenticatedUser, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return models.AuthenticatedUser{}, false
	}

	identity, ok := value.(models.AuthenticatedUser)
	return identity, ok
}

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/sugarline/cakeshop/internal/pkg/auth"
)

const (
	// CustomerIDContextKey is a gin context key for the authenticated customer identifier.
	CustomerIDContextKey = "customerID"
	// TokenContextKey is a gin context key for the raw bearer token forwarded upstream.
	TokenContextKey = "token"

	authCookieName = "cakeshop_token"
)

// ClaimsDecoder extracts customer claims from a bearer token.
type ClaimsDecoder interface {
	DecodeClaims(token string) (*pkgAuth.Claims, error)
}

// AuthRequired ensures a bearer token is present before accessing handler.
// The token is decoded for its customer identifier but it is never verified
// locally; the upstream platform remains the authority on every call.
func AuthRequired(decoder ClaimsDecoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := decoder.DecodeClaims(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if claims.Expired(time.Now()) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(CustomerIDContextKey, claims.Subject)
		c.Set(TokenContextKey, token)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

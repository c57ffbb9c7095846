package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
	"github.com/noah-isme/sigue-client/pkg/response"
)

// ContextUserKey is the gin context key storing the caller's token claims.
const ContextUserKey = "currentUser"

// TokenValidator verifies bearer tokens.
type TokenValidator interface {
	ValidateToken(token string) (*models.TokenClaims, error)
}

// JWT admits only requests carrying a valid "Bearer <token>" header.
func JWT(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			reject(c, err)
			return
		}
		claims, err := tokens.ValidateToken(token)
		if err != nil {
			reject(c, err)
			return
		}
		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", appErrors.ErrUnauthorized
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header")
	}
	return strings.TrimSpace(token), nil
}

// Claims returns the claims stored by JWT, or nil on unprotected routes.
func Claims(c *gin.Context) *models.TokenClaims {
	value, _ := c.Get(ContextUserKey)
	claims, _ := value.(*models.TokenClaims)
	return claims
}

func reject(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}

package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

// Self lets a caller reach the route whose :id is their own user id.
const Self = "SELF"

type rolePolicy struct {
	roles map[models.Role]bool
	self  bool
}

func newRolePolicy(allowed []string) rolePolicy {
	p := rolePolicy{roles: make(map[models.Role]bool, len(allowed))}
	for _, a := range allowed {
		if a == Self {
			p.self = true
		} else {
			p.roles[models.Role(a)] = true
		}
	}
	return p
}

func (p rolePolicy) permits(claims *models.TokenClaims, targetID string) bool {
	if p.roles[claims.Role] {
		return true
	}
	return p.self && targetID != "" && targetID == strconv.FormatInt(claims.UserID, 10)
}

// RBAC admits callers holding one of the allowed roles. Passing Self also
// admits a caller acting on their own :id.
func RBAC(allowed ...string) gin.HandlerFunc {
	policy := newRolePolicy(allowed)
	return func(c *gin.Context) {
		claims := Claims(c)
		switch {
		case claims == nil:
			reject(c, appErrors.ErrUnauthorized)
		case !policy.permits(claims, c.Param("id")):
			reject(c, appErrors.ErrForbidden)
		default:
			c.Next()
		}
	}
}

func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	return RBAC(names...)
}

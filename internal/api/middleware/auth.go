package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sneha-510/smart-coalmine-system/internal/permission"
	"github.com/sneha-510/smart-coalmine-system/pkg/redis"
	"github.com/sneha-510/smart-coalmine-system/pkg/response"
	"github.com/sneha-510/smart-coalmine-system/pkg/session"
)

// Context keys populated by SessionAuth.
const (
	CtxUserID     = "user_id"
	CtxRole       = "role"
	CtxSessionJTI = "session_jti"
	CtxSessionExp = "session_exp"
)

// SessionAuth resolves the caller from the signed session token,
// carried in the session cookie or an Authorization: Bearer header.
// rdb may be nil; revocation checks then degrade to signature+expiry only.
func SessionAuth(sessions *session.Manager, rdb *redis.Client, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c, cookieName)
		if token == "" {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		claims, err := sessions.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, "Session invalid or expired")
			c.Abort()
			return
		}

		if claims.TokenType != "session" {
			response.Unauthorized(c, "Session invalid or expired")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsSessionRevoked(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, "Session invalid or expired")
				c.Abort()
				return
			}
			// A Redis error degrades to allowing the signed token.
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxSessionJTI, claims.ID)
		c.Set(CtxSessionExp, claims.ExpiresAt.Time)

		c.Next()
	}
}

func tokenFromRequest(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// Require gates a route on a single named permission.
func Require(p permission.Permission) gin.HandlerFunc {
	return RequireAny(p)
}

// RequireAny gates a route on any of the named permissions. Which one
// the caller actually holds may further scope the operation in the
// service layer (e.g. read-all vs read-own).
func RequireAny(perms ...permission.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(CtxRole)
		if !exists {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}
		role, _ := v.(string)

		for _, p := range perms {
			if permission.RoleHas(role, p) {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Unauthorized")
		c.Abort()
	}
}

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"petpromise/internal/domain/user"
	"petpromise/internal/pkg/jwt"
	"petpromise/internal/usecase/commands"
	"petpromise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserEmailKey = "user_email"
	ctxUserRoleKey  = "user_role"
)

type AuthMiddleware struct {
	tokens *jwt.Service
	users  queries.UserQueries
}

func NewAuthMiddleware(tokens *jwt.Service, users queries.UserQueries) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		// Tokens minted before the lowercasing policy may carry mixed case.
		c.Set(ctxUserEmailKey, user.NormalizeEmail(claims.Email))
		c.Next()
	}
}

// RequireAdmin resolves the caller's stored role and admits admins only. Must
// run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetActorEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		role, err := m.users.RoleByEmail(c.Request.Context(), email)
		if err != nil || !role.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Admin access required"},
			})
			c.Abort()
			return
		}

		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

// AttachRole resolves the caller's stored role without gating on it, so
// owner-or-admin checks further down can honor the admin override. Lookup
// failures leave the role unset. Must run after RequireAuth.
func (m *AuthMiddleware) AttachRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		if email, ok := GetActorEmail(c); ok {
			if role, err := m.users.RoleByEmail(c.Request.Context(), email); err == nil {
				c.Set(ctxUserRoleKey, role)
			}
		}
		c.Next()
	}
}

// RequireSelf rejects callers asking for someone else's records: the named
// query parameter must equal the token's email. Must run after RequireAuth.
func (m *AuthMiddleware) RequireSelf(queryParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetActorEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		requested := user.NormalizeEmail(c.Query(queryParam))
		if requested == "" || requested != email {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Forbidden access"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetActorEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

func GetActorRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}

// GetActor assembles the usecase-facing caller identity. Role is set only on
// routes that passed the admin gate.
func GetActor(c *gin.Context) (commands.Actor, bool) {
	email, ok := GetActorEmail(c)
	if !ok {
		return commands.Actor{}, false
	}
	actor := commands.Actor{Email: email}
	if role, ok := GetActorRole(c); ok {
		actor.Role = role
	}
	return actor, true
}

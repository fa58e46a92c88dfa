package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/models"
	"github.com/jobflix/jobflix-backend/internal/services"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

type AuthMiddleware struct {
	log  *logger.Logger
	auth *services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, auth *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{log: log.With("middleware", "AuthMiddleware"), auth: auth}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		userID, role, err := m.auth.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set(ctxUserID, userID)
		c.Set(ctxRole, role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return c.Query("token")
}

// CurrentUser reads the authenticated identity set by RequireAuth.
func CurrentUser(c *gin.Context) (uuid.UUID, models.Role) {
	id, _ := c.Get(ctxUserID)
	role, _ := c.Get(ctxRole)
	userID, ok := id.(uuid.UUID)
	if !ok {
		return uuid.Nil, ""
	}
	r, _ := role.(models.Role)
	return userID, r
}

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"freebusy/internal/pkg/cookie"
	"freebusy/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxCalendarIDKey = "calendar_id"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the session cookie or a bearer token and stores the
// authenticated calendar ID on the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session token required",
			})
			c.Abort()
			return
		}

		calendarID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxCalendarIDKey, calendarID)
		c.Set("jwt_claims", map[string]any{
			"calendar_id": calendarID.String(),
		})
		c.Next()
	}
}

func GetCalendarID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxCalendarIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}

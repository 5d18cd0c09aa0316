package auth

import (
	"net/http"
	"strings"

	"idea-marketplace-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	emailKey  = "email"
	claimsKey = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *TokenService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and puts the actor email on the gin and request contexts
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		m.authenticate(c, tokenString)
	}
}

// RequireQueryToken accepts the token from the "token" query parameter.
// Browsers cannot set headers on websocket upgrades.
func (m *AuthMiddleware) RequireQueryToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token query parameter is required"})
			c.Abort()
			return
		}
		m.authenticate(c, tokenString)
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context, tokenString string) {
	claims, err := m.service.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		c.Abort()
		return
	}

	c.Set(emailKey, claims.Email)
	c.Set(claimsKey, claims)
	c.Request = c.Request.WithContext(logger.ContextWithActor(c.Request.Context(), claims.Email))

	c.Next()
}

// GetUserEmail extracts the actor email from the gin context
func GetUserEmail(c *gin.Context) (string, bool) {
	if email, exists := c.Get(emailKey); exists {
		if str, ok := email.(string); ok && str != "" {
			return str, true
		}
	}
	return "", false
}

// GetAuthClaims extracts the full auth claims from the gin context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	if claims, exists := c.Get(claimsKey); exists {
		if authClaims, ok := claims.(*AuthClaims); ok {
			return authClaims, true
		}
	}
	return nil, false
}

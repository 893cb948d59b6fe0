package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MuusmannMedia/liguster/internal/domain/repository"
	repoimpl "github.com/MuusmannMedia/liguster/internal/repository"
)

const userIDKey = "liguster_user_id"

// AuthMiddleware lifts the bearer token from the Authorization header onto
// the request context and resolves it to a user id. Requests without a
// token pass through as anonymous; browsing does not require login.
func AuthMiddleware(auth repository.AuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token != "" {
			ctx := repoimpl.ContextWithToken(c.Request.Context(), token)
			c.Request = c.Request.WithContext(ctx)
		}

		userID, err := auth.CurrentUserID(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_token",
				"message": "Could not verify access token: " + err.Error(),
			})
			return
		}
		c.Set(userIDKey, userID)

		c.Next()
	}
}

// RequireAuth rejects anonymous requests. It must run after AuthMiddleware.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthenticated",
				"message": "Login is required for this operation",
			})
			return
		}
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	id, _ := c.Get(userIDKey)
	s, _ := id.(string)
	return s
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

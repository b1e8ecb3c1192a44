package auth

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/cother/cother/database"
)

// identityKey is the gin context key under which the resolved identity is stored.
const identityKey = "identity"

// Identity returns the authenticated user attached to the request context by
// RequireAuth, or nil if the request was not authenticated.
func Identity(c *gin.Context) *database.User {
	user, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, ok := user.(*database.User)
	if !ok {
		return nil
	}
	return identity
}

// RequireAuth verifies the bearer token from the Authorization header
// ("<scheme> <token>") and attaches the resolved identity to the request
// context for downstream handlers.
func (s *Service) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := s.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			case errors.Is(err, ErrUnauthorized):
				c.AbortWithStatus(http.StatusUnauthorized)
			default:
				log.Error("failed to authenticate request", "error", err)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
			return
		}

		c.Set(identityKey, user)
		c.Next()
	}
}

// RequireOwner only lets the request through when the authenticated identity
// matches the id path parameter.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := Identity(c)
		if identity == nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || identity.ID != uint(id) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}

// RequireAdmin only lets the request through when the authenticated identity
// holds the Administrator role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := Identity(c)
		if identity == nil || identity.Authentication.Role != database.RoleAdministrator {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}

// Package handler contains the gin handlers of the HTTP API.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/cother/cother/auth"
	"github.com/cother/cother/cache"
	"github.com/cother/cother/config"
	"github.com/cother/cother/database"
	"github.com/cother/cother/steam"
)

// SteamClient is the storefront contract used by the steam proxy handlers.
type SteamClient interface {
	GetSpecialOffers(ctx context.Context) ([]steam.FeaturedItem, error)
	GetNewReleases(ctx context.Context) ([]steam.FeaturedItem, error)
}

// Handler bundles the collaborators of the HTTP handlers.
type Handler struct {
	db         database.DB
	authSvc    *auth.Service
	steam      SteamClient
	steamCache *cache.PrefixedCache[[]steam.FeaturedItem]
	authCfg    *config.AuthConfig
}

// New creates a new Handler.
func New(db database.DB, authSvc *auth.Service, steamClient SteamClient, steamCache *cache.PrefixedCache[[]steam.FeaturedItem], authCfg *config.AuthConfig) *Handler {
	return &Handler{
		db:         db,
		authSvc:    authSvc,
		steam:      steamClient,
		steamCache: steamCache,
		authCfg:    authCfg,
	}
}

// bindStrict decodes the JSON request body into dst, rejecting unknown fields.
func bindStrict(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// abortWithError maps a pipeline error to its HTTP status. Every sentinel maps
// to exactly one status; anything else is an internal error with the body
// withheld.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		c.AbortWithStatus(http.StatusBadRequest)
	case errors.Is(err, auth.ErrDuplicateEmail):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "email already exists"})
	case errors.Is(err, auth.ErrDuplicateUsername):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "username already exists"})
	case errors.Is(err, auth.ErrUserNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid credentials"})
	case errors.Is(err, auth.ErrInvalidRole):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
	default:
		log.Error("request failed", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// Package api wires the gin engine, middleware chain and route tables.
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/cother/cother/api/handler"
	"github.com/cother/cother/auth"
	"github.com/cother/cother/cache"
	"github.com/cother/cother/config"
	"github.com/cother/cother/database"
	"github.com/cother/cother/steam"
)

// Server is the HTTP surface of the Cother backend.
type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	authSvc   *auth.Service
	handler   *handler.Handler
}

// New creates a new API server.
func New(cfg *config.Config, db database.DB, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	authSvc := auth.NewService(db, cfg.Auth, cfg.Gravatar)
	steamClient := steam.New(cfg.Steam)
	steamCache := cache.NewPrefixedCache[[]steam.FeaturedItem](cfg.Cache, "steam-")

	s := &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		authSvc:   authSvc,
		handler:   handler.New(db, authSvc, steamClient, steamCache, cfg.Auth),
	}
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))

	h := s.handler

	// Public routes
	s.ginEngine.POST("/auth/register", h.Register)
	s.ginEngine.POST("/auth/login", h.Login)
	s.ginEngine.GET("/steam/special_offers", h.SpecialOffers)
	s.ginEngine.GET("/steam/new_releases", h.NewReleases)

	// Authenticated routes
	authed := s.ginEngine.Group("/")
	authed.Use(s.authSvc.RequireAuth())

	authed.GET("/auth/authenticate", h.CurrentUser)

	users := authed.Group("/users")
	users.GET("", auth.RequireAdmin(), h.ListUsers)
	users.GET("/:id", auth.RequireAdmin(), h.GetUser)
	users.DELETE("/:id", auth.RequireOwner(), h.DeleteUser)
	users.PATCH("/:id", auth.RequireOwner(), h.UpdateProfile)
	users.PATCH("/:id/role", auth.RequireAdmin(), h.UpdateRole)
	users.PATCH("/:id/password", auth.RequireOwner(), h.UpdatePassword)

	admin := authed.Group("/admin")
	admin.Use(auth.RequireAdmin())
	admin.PATCH("/users/:id", h.AdminUpdateUser)
	admin.DELETE("/users/:id", h.DeleteUser)
}

// Handler exposes the configured routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.ginEngine
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	return s.ginEngine.Run(s.cfg.Listen)
}

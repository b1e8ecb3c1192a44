package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cother/cother/api/models"
	"github.com/cother/cother/auth"
)

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := bindStrict(c, &req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.UserFromDatabase(user))
}

// Login handles POST /auth/login. On success the session token is returned in
// the body and mirrored in a cookie for browser clients.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := bindStrict(c, &req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	user, token, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.SetCookie(h.authCfg.CookieName, token, h.authCfg.TokenMaxAge, "/", h.authCfg.CookieDomain, false, true)
	c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User:  models.UserFromDatabase(user),
	})
}

// CurrentUser handles GET /auth/authenticate. The identity was already
// resolved by the auth middleware.
func (h *Handler) CurrentUser(c *gin.Context) {
	identity := auth.Identity(c)
	if identity == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, models.UserFromDatabase(identity))
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cother/cother/api/models"
	"github.com/cother/cother/auth"
)

func userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

// ListUsers handles GET /users.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.db.GetUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.UsersFromDatabase(users))
}

// GetUser handles GET /users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	user, err := h.db.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(c, auth.ErrUserNotFound)
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.UserFromDatabase(user))
}

// DeleteUser handles DELETE /users/:id and DELETE /admin/users/:id.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	user, err := h.db.DeleteUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(c, auth.ErrUserNotFound)
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.UserFromDatabase(user))
}

// UpdateProfile handles PATCH /users/:id. Only the allow-listed profile
// fields are mutable here; unknown fields reject the whole request.
func (h *Handler) UpdateProfile(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := bindStrict(c, &req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	user, err := h.db.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(c, auth.ErrUserNotFound)
			return
		}
		abortWithError(c, err)
		return
	}

	req.Profile.Apply(&user.Profile)
	if err := h.db.UpdateUser(c.Request.Context(), user); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.UserFromDatabase(user))
}

// UpdateRole handles PATCH /users/:id/role.
func (h *Handler) UpdateRole(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req models.UpdateRoleRequest
	if err := bindStrict(c, &req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	if !req.Role.Valid() {
		abortWithError(c, auth.ErrInvalidRole)
		return
	}

	user, err := h.db.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(c, auth.ErrUserNotFound)
			return
		}
		abortWithError(c, err)
		return
	}

	user.Authentication.Role = req.Role
	if err := h.db.UpdateUser(c.Request.Context(), user); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.UserFromDatabase(user))
}

// UpdatePassword handles PATCH /users/:id/password.
func (h *Handler) UpdatePassword(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req models.UpdatePasswordRequest
	if err := bindStrict(c, &req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	if req.Password == "" || req.NewPassword == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	user, err := h.authSvc.ChangePassword(c.Request.Context(), id, req.NewPassword)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.UserFromDatabase(user))
}

// AdminUpdateUser handles PATCH /admin/users/:id. Admins may additionally
// change username, email and role.
func (h *Handler) AdminUpdateUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req models.AdminUpdateRequest
	if err := bindStrict(c, &req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	if req.Role != nil && !req.Role.Valid() {
		abortWithError(c, auth.ErrInvalidRole)
		return
	}

	user, err := h.db.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(c, auth.ErrUserNotFound)
			return
		}
		abortWithError(c, err)
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Authentication.Role = *req.Role
	}
	req.Profile.Apply(&user.Profile)

	if err := h.db.UpdateUser(c.Request.Context(), user); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.UserFromDatabase(user))
}

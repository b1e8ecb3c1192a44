// Package models contains the request and response types of the HTTP API.
// Secret material (password hash, salt, session token) never appears here.
package models

import (
	"time"

	"github.com/cother/cother/database"
)

// User is the externally visible representation of a user account.
type User struct {
	ID        uint          `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Role      database.Role `json:"role"`
	Profile   Profile       `json:"profile"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Profile is the externally visible profile subrecord.
type Profile struct {
	Img         string     `json:"img"`
	Name        string     `json:"name"`
	LastName    string     `json:"lastName"`
	Sex         string     `json:"sex"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	PhoneNumber string     `json:"phoneNumber"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileUpdate carries the allow-listed mutable profile fields. Pointer
// fields distinguish "not supplied" from "set to zero value".
type ProfileUpdate struct {
	Img         *string    `json:"img"`
	Name        *string    `json:"name"`
	LastName    *string    `json:"lastName"`
	Sex         *string    `json:"sex"`
	BirthDate   *time.Time `json:"birthDate"`
	PhoneNumber *string    `json:"phoneNumber"`
}

// UpdateProfileRequest is the body of PATCH /users/:id.
type UpdateProfileRequest struct {
	Profile *ProfileUpdate `json:"profile"`
}

// UpdateRoleRequest is the body of PATCH /users/:id/role.
type UpdateRoleRequest struct {
	Role database.Role `json:"role"`
}

// UpdatePasswordRequest is the body of PATCH /users/:id/password.
type UpdatePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

// AdminUpdateRequest is the body of PATCH /admin/users/:id.
type AdminUpdateRequest struct {
	Username *string        `json:"username"`
	Email    *string        `json:"email"`
	Role     *database.Role `json:"role"`
	Profile  *ProfileUpdate `json:"profile"`
}

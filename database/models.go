package database

import (
	"time"

	"gorm.io/gorm"
)

// Role is the authorization role of a user.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleUser          Role = "User"
	RoleModerator     Role = "Moderator"
	RoleGuest         Role = "Guest"
)

// Roles lists all valid roles.
var Roles = []Role{RoleAdministrator, RoleUser, RoleModerator, RoleGuest}

// Valid reports whether the role is part of the fixed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleUser, RoleModerator, RoleGuest:
		return true
	}
	return false
}

// User represents a user account in the database.
// Username and email carry unique indexes; the registration flow additionally
// pre-checks both so duplicates map to a precise conflict response.
type User struct {
	gorm.Model
	Username       string         `gorm:"uniqueIndex;not null"`
	Email          string         `gorm:"uniqueIndex;not null"`
	Profile        Profile        `gorm:"embedded;embeddedPrefix:profile_"`
	Authentication Authentication `gorm:"embedded;embeddedPrefix:auth_"`
}

// Profile holds the freely mutable personal data of a user.
type Profile struct {
	AvatarURL   string     `json:"img"`
	DisplayName string     `json:"name"`
	LastName    string     `json:"lastName"`
	Sex         string     `json:"sex"`
	BirthDate   *time.Time `json:"birthDate"`
	PhoneNumber string     `json:"phoneNumber"`
}

// Authentication holds the secret material of a user. None of its fields are
// ever serialized to API responses.
type Authentication struct {
	PasswordHash string `json:"-"`
	Salt         string `json:"-"`
	SessionToken string `json:"-"` // single slot, overwritten on every login
	Role         Role   `gorm:"default:User"`
}

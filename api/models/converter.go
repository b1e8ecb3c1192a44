package models

import (
	"github.com/samber/lo"

	"github.com/cother/cother/database"
)

// UserFromDatabase converts a stored user into its API representation,
// dropping all secret fields.
func UserFromDatabase(u *database.User) User {
	return User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Authentication.Role,
		Profile: Profile{
			Img:         u.Profile.AvatarURL,
			Name:        u.Profile.DisplayName,
			LastName:    u.Profile.LastName,
			Sex:         u.Profile.Sex,
			BirthDate:   u.Profile.BirthDate,
			PhoneNumber: u.Profile.PhoneNumber,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UsersFromDatabase converts a list of stored users.
func UsersFromDatabase(users []database.User) []User {
	return lo.Map(users, func(u database.User, _ int) User {
		return UserFromDatabase(&u)
	})
}

// Apply merges the supplied profile fields into the stored profile.
// Fields not present in the update are left untouched.
func (p *ProfileUpdate) Apply(profile *database.Profile) {
	if p == nil {
		return
	}
	if p.Img != nil {
		profile.AvatarURL = *p.Img
	}
	if p.Name != nil {
		profile.DisplayName = *p.Name
	}
	if p.LastName != nil {
		profile.LastName = *p.LastName
	}
	if p.Sex != nil {
		profile.Sex = *p.Sex
	}
	if p.BirthDate != nil {
		profile.BirthDate = p.BirthDate
	}
	if p.PhoneNumber != nil {
		profile.PhoneNumber = *p.PhoneNumber
	}
}

package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

func (c *Client) CreateUser(ctx context.Context, user *User) (*User, error) {
	if err := c.db.WithContext(ctx).Create(user).Error; err != nil {
		log.Error("failed to create user", "error", err)
		return nil, err
	}
	return user, nil
}

func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.db.WithContext(ctx).Find(&users).Error; err != nil {
		log.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to get user by ID", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to get user by email", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to get user by username", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser persists the full user record. Correctness of concurrent updates
// relies on the single UPDATE being atomic; last write wins.
func (c *Client) UpdateUser(ctx context.Context, user *User) error {
	if err := c.db.WithContext(ctx).Save(user).Error; err != nil {
		log.Error("failed to update user", "error", err)
		return err
	}
	return nil
}

// DeleteUserByID removes a user and returns the deleted record.
func (c *Client) DeleteUserByID(ctx context.Context, id uint) (*User, error) {
	user, err := c.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Hard delete: a soft-deleted row would still occupy the unique
	// username/email indexes.
	if err := c.db.WithContext(ctx).Unscoped().Delete(&User{}, id).Error; err != nil {
		log.Error("failed to delete user", "error", err)
		return nil, err
	}
	return user, nil
}

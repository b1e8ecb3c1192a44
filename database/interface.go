package database

import "context"

// DB is the storage contract the rest of the application depends on.
type DB interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUsers(ctx context.Context) ([]User, error)
	GetUserByID(ctx context.Context, id uint) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
	DeleteUserByID(ctx context.Context, id uint) (*User, error)
}

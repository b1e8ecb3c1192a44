package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cother/cother/config"
	"github.com/cother/cother/database"
	"github.com/cother/cother/gravatar"
)

// defaultAvatar is used when Gravatar avatars are disabled.
const defaultAvatar = "profile_img.jpg"

// Service implements the authentication pipeline: registration, login,
// bearer-token verification and password changes.
type Service struct {
	db          database.DB
	secret      []byte
	tokenMaxAge time.Duration
	gravatarCfg *config.GravatarConfig
}

// NewService creates a new authentication service.
func NewService(db database.DB, cfg *config.AuthConfig, gravatarCfg *config.GravatarConfig) *Service {
	return &Service{
		db:          db,
		secret:      []byte(cfg.Secret),
		tokenMaxAge: time.Duration(cfg.TokenMaxAge) * time.Second,
		gravatarCfg: gravatarCfg,
	}
}

// Register creates a new user account. Email and username are pre-checked for
// duplicates so each conflict maps to its own error; the unique indexes on
// both columns back the check up against concurrent registrations.
func (s *Service) Register(ctx context.Context, email, password, username string) (*database.User, error) {
	if email == "" || password == "" || username == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.db.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.db.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	salt, err := RandomSalt()
	if err != nil {
		return nil, err
	}

	avatar := gravatar.GenerateURL(email, s.gravatarCfg)
	if avatar == "" {
		avatar = defaultAvatar
	}

	user := &database.User{
		Username: username,
		Email:    email,
		Profile: database.Profile{
			AvatarURL: avatar,
		},
		Authentication: database.Authentication{
			PasswordHash: Hash(salt, password),
			Salt:         salt,
			Role:         database.RoleUser,
		},
	}

	return s.db.CreateUser(ctx, user)
}

// Login verifies the credentials and issues a new session token. The token is
// stored as the user's single active session, so a new login implicitly
// invalidates any prior one.
func (s *Service) Login(ctx context.Context, email, password string) (*database.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !VerifyHash(user.Authentication.PasswordHash, user.Authentication.Salt, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID, s.secret, s.tokenMaxAge)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	user.Authentication.SessionToken = token
	if err := s.db.UpdateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to store session token: %w", err)
	}

	return user, token, nil
}

// Authenticate verifies a bearer token and resolves the identity behind it.
// The token must be the user's currently stored session token; tokens
// overwritten by a later login no longer authenticate.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*database.User, error) {
	userID, err := UserIDFromToken(tokenString, s.secret)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.db.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Authentication.SessionToken != tokenString {
		return nil, ErrUnauthorized
	}

	return user, nil
}

// ChangePassword replaces the user's password with a freshly salted hash.
func (s *Service) ChangePassword(ctx context.Context, id uint, newPassword string) (*database.User, error) {
	if newPassword == "" {
		return nil, ErrMissingFields
	}

	user, err := s.db.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	salt, err := RandomSalt()
	if err != nil {
		return nil, err
	}

	user.Authentication.Salt = salt
	user.Authentication.PasswordHash = Hash(salt, newPassword)
	if err := s.db.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	return user, nil
}

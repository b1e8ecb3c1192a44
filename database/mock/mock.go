// Package mock provides an in-memory implementation of database.DB for testing.
package mock

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/cother/cother/database"
)

var _ database.DB = (*MockDB)(nil) // Ensure MockDB implements DB

// MockDB is a mock implementation of database.DB for testing.
type MockDB struct {
	mu sync.RWMutex

	users      map[uint]*database.User
	nextUserID uint

	// Error simulation
	CreateUserError        error
	GetUsersError          error
	GetUserByIDError       error
	GetUserByEmailError    error
	GetUserByUsernameError error
	UpdateUserError        error
	DeleteUserError        error
}

// NewMockDB creates a new MockDB instance.
func NewMockDB() *MockDB {
	return &MockDB{
		users:      make(map[uint]*database.User),
		nextUserID: 1,
	}
}

// Reset clears all data and errors from the mock database.
func (m *MockDB) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[uint]*database.User)
	m.nextUserID = 1

	m.CreateUserError = nil
	m.GetUsersError = nil
	m.GetUserByIDError = nil
	m.GetUserByEmailError = nil
	m.GetUserByUsernameError = nil
	m.UpdateUserError = nil
	m.DeleteUserError = nil
}

func (m *MockDB) CreateUser(_ context.Context, user *database.User) (*database.User, error) {
	if m.CreateUserError != nil {
		return nil, m.CreateUserError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = m.nextUserID
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.nextUserID++

	stored := *user
	m.users[user.ID] = &stored
	return user, nil
}

func (m *MockDB) GetUsers(_ context.Context) ([]database.User, error) {
	if m.GetUsersError != nil {
		return nil, m.GetUsersError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]database.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, nil
}

func (m *MockDB) GetUserByID(_ context.Context, id uint) (*database.User, error) {
	if m.GetUserByIDError != nil {
		return nil, m.GetUserByIDError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u := *user
	return &u, nil
}

func (m *MockDB) GetUserByEmail(_ context.Context, email string) (*database.User, error) {
	if m.GetUserByEmailError != nil {
		return nil, m.GetUserByEmailError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			user := *u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockDB) GetUserByUsername(_ context.Context, username string) (*database.User, error) {
	if m.GetUserByUsernameError != nil {
		return nil, m.GetUserByUsernameError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			user := *u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockDB) UpdateUser(_ context.Context, user *database.User) error {
	if m.UpdateUserError != nil {
		return m.UpdateUserError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now()
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *MockDB) DeleteUserByID(_ context.Context, id uint) (*database.User, error) {
	if m.DeleteUserError != nil {
		return nil, m.DeleteUserError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	u := *user
	return &u, nil
}

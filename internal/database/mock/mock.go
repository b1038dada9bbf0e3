package mock

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/jon4hz/feedback/internal/database"
)

// MockDB is a mock implementation of database.DB for testing.
type MockDB struct {
	mu sync.RWMutex

	// User storage, keyed by username
	users map[string]*database.User

	// Feedback storage
	feedbacks      map[uint]*database.Feedback
	nextFeedbackID uint

	// Error simulation
	CreateUserError             error
	GetUserByUsernameError      error
	DeleteUserError             error
	CreateFeedbackError         error
	GetFeedbackByIDError        error
	ListFeedbackByUsernameError error
	UpdateFeedbackError         error
	DeleteFeedbackError         error
}

var _ database.DB = (*MockDB)(nil)

// NewMockDB creates a new MockDB instance.
func NewMockDB() *MockDB {
	return &MockDB{
		users:          make(map[string]*database.User),
		feedbacks:      make(map[uint]*database.Feedback),
		nextFeedbackID: 1,
	}
}

func (m *MockDB) CreateUser(_ context.Context, user *database.User) error {
	if m.CreateUserError != nil {
		return m.CreateUserError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return gorm.ErrDuplicatedKey
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}

	user.ID = uint(len(m.users) + 1)
	stored := *user
	m.users[user.Username] = &stored
	return nil
}

func (m *MockDB) GetUserByUsername(_ context.Context, username string) (*database.User, error) {
	if m.GetUserByUsernameError != nil {
		return nil, m.GetUserByUsernameError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[username]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	u := *user
	return &u, nil
}

func (m *MockDB) DeleteUser(_ context.Context, username string) error {
	if m.DeleteUserError != nil {
		return m.DeleteUserError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[username]; !exists {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, username)
	for id, f := range m.feedbacks {
		if f.Username == username {
			delete(m.feedbacks, id)
		}
	}
	return nil
}

func (m *MockDB) CreateFeedback(_ context.Context, feedback *database.Feedback) error {
	if m.CreateFeedbackError != nil {
		return m.CreateFeedbackError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	feedback.ID = m.nextFeedbackID
	m.nextFeedbackID++
	stored := *feedback
	m.feedbacks[feedback.ID] = &stored
	return nil
}

func (m *MockDB) GetFeedbackByID(_ context.Context, id uint) (*database.Feedback, error) {
	if m.GetFeedbackByIDError != nil {
		return nil, m.GetFeedbackByIDError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	feedback, exists := m.feedbacks[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	f := *feedback
	return &f, nil
}

func (m *MockDB) ListFeedbackByUsername(_ context.Context, username string) ([]database.Feedback, error) {
	if m.ListFeedbackByUsernameError != nil {
		return nil, m.ListFeedbackByUsernameError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var feedbacks []database.Feedback
	for _, f := range m.feedbacks {
		if f.Username == username {
			feedbacks = append(feedbacks, *f)
		}
	}
	return feedbacks, nil
}

func (m *MockDB) UpdateFeedback(_ context.Context, id uint, title, content string) error {
	if m.UpdateFeedbackError != nil {
		return m.UpdateFeedbackError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	feedback, exists := m.feedbacks[id]
	if !exists {
		return gorm.ErrRecordNotFound
	}
	feedback.Title = title
	feedback.Content = content
	return nil
}

func (m *MockDB) DeleteFeedback(_ context.Context, id uint) error {
	if m.DeleteFeedbackError != nil {
		return m.DeleteFeedbackError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.feedbacks[id]; !exists {
		return gorm.ErrRecordNotFound
	}
	delete(m.feedbacks, id)
	return nil
}

func (m *MockDB) Close() error {
	return nil
}

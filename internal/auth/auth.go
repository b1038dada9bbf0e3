package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jon4hz/feedback/internal/database"
)

// ErrDuplicateUser is returned by Register when the username or email is already taken.
var ErrDuplicateUser = errors.New("username or email already taken")

const bcryptCost = 10

// Service implements registration and credential verification on top of the database.
type Service struct {
	db database.DB
}

// New creates a new auth service.
func New(db database.DB) *Service {
	return &Service{db: db}
}

// HashPassword produces a salted bcrypt digest of the plaintext password.
// Repeated calls on the same input yield different digests.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt digest.
func CheckPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Register normalizes the account fields, hashes the password and stores the
// new user. Returns ErrDuplicateUser when the username or email already exists.
func (s *Service) Register(ctx context.Context, username, password, email, firstName, lastName string) (*database.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, err
	}

	user := &database.User{
		Username:     normalize(username),
		Email:        normalize(email),
		PasswordHash: hash,
		FirstName:    normalize(firstName),
		LastName:     normalize(lastName),
	}

	if err := s.db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return user, nil
}

// Authenticate looks up the user and verifies the password. A lookup miss and
// a wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*database.User, bool) {
	user, err := s.db.GetUserByUsername(ctx, normalize(username))
	if err != nil {
		return nil, false
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, false
	}
	return user, true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jon4hz/feedback/internal/database/mock"
)

func TestHashPassword(t *testing.T) {
	hash1, err := HashPassword("secret")
	require.NoError(t, err)
	hash2, err := HashPassword("secret")
	require.NoError(t, err)

	// Salted: same input must not produce the same digest
	assert.NotEqual(t, hash1, hash2)
	assert.NotEqual(t, "secret", hash1)

	assert.True(t, CheckPassword(hash1, "secret"))
	assert.True(t, CheckPassword(hash2, "secret"))
	assert.False(t, CheckPassword(hash1, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "secret"))
}

func TestRegister(t *testing.T) {
	db := mock.NewMockDB()
	svc := New(db)

	user, err := svc.Register(context.Background(), "  Alice ", "secret", "Alice@Example.COM", "Alice", "Smith")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.FirstName)
	assert.Equal(t, "smith", user.LastName)
	assert.Equal(t, "alice smith", user.FullName())
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.True(t, CheckPassword(user.PasswordHash, "secret"))
}

func TestRegister_Duplicate(t *testing.T) {
	db := mock.NewMockDB()
	svc := New(db)

	_, err := svc.Register(context.Background(), "alice", "secret", "alice@example.com", "alice", "smith")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{name: "same username", username: "alice", email: "other@example.com"},
		{name: "same username different case", username: "ALICE", email: "other@example.com"},
		{name: "same email", username: "bob", email: "alice@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.username, "secret", tt.email, "first", "last")
			assert.ErrorIs(t, err, ErrDuplicateUser)
		})
	}

	// Exactly one account for alice
	user, err := db.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestAuthenticate(t *testing.T) {
	db := mock.NewMockDB()
	svc := New(db)

	_, err := svc.Register(context.Background(), "alice", "secret", "alice@example.com", "alice", "smith")
	require.NoError(t, err)

	user, ok := svc.Authenticate(context.Background(), "alice", "secret")
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	// Uppercase input authenticates the normalized account
	user, ok = svc.Authenticate(context.Background(), "Alice", "secret")
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	// Wrong password and unknown user fail identically
	wrongUser, wrongOK := svc.Authenticate(context.Background(), "alice", "nope")
	missingUser, missingOK := svc.Authenticate(context.Background(), "nobody", "secret")
	assert.False(t, wrongOK)
	assert.False(t, missingOK)
	assert.Equal(t, wrongUser, missingUser)
	assert.Nil(t, wrongUser)
}

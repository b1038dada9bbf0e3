package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jon4hz/feedback/internal/config"
	"github.com/jon4hz/feedback/internal/database"
)

func TestUserFromDB(t *testing.T) {
	user := &database.User{
		Username:  "alice",
		Email:     "alice@example.com",
		FirstName: "alice",
		LastName:  "smith",
	}

	got := UserFromDB(user, &config.GravatarConfig{Enabled: true, Size: 80})
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice smith", got.FullName)
	assert.Contains(t, got.AvatarURL, "gravatar.com")

	got = UserFromDB(user, &config.GravatarConfig{Enabled: false})
	assert.Empty(t, got.AvatarURL)
}

func TestFeedbackListFromDB(t *testing.T) {
	feedbacks := []database.Feedback{
		{ID: 1, Title: "a", Content: "aa", Username: "alice", CreatedAt: time.Now().Add(-48 * time.Hour)},
		{ID: 2, Title: "b", Content: "bb", Username: "alice", CreatedAt: time.Now()},
	}

	got := FeedbackListFromDB(feedbacks)
	assert.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, "a", got[0].Title)
	assert.Equal(t, "2 days ago", got[0].Posted)
	assert.NotEmpty(t, got[1].Posted)
}

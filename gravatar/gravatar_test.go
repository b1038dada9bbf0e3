package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jon4hz/feedback/internal/config"
)

func TestGenerateURL(t *testing.T) {
	cfg := &config.GravatarConfig{
		Enabled:      true,
		DefaultImage: "identicon",
		Rating:       "g",
		Size:         80,
	}

	tests := []struct {
		name  string
		email string
		cfg   *config.GravatarConfig
		want  string
	}{
		{
			name:  "nil config",
			email: "test@example.com",
			cfg:   nil,
			want:  "",
		},
		{
			name:  "disabled",
			email: "test@example.com",
			cfg:   &config.GravatarConfig{Enabled: false},
			want:  "",
		},
		{
			name:  "empty email",
			email: "",
			cfg:   cfg,
			want:  "",
		},
		{
			name:  "basic",
			email: "test@example.com",
			cfg:   cfg,
			want:  "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0?d=identicon&r=g&s=80",
		},
		{
			name:  "email is normalized",
			email: "  Test@Example.COM ",
			cfg:   cfg,
			want:  "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0?d=identicon&r=g&s=80",
		},
		{
			name:  "invalid options are dropped",
			email: "test@example.com",
			cfg:   &config.GravatarConfig{Enabled: true, DefaultImage: "bogus", Rating: "nc-17", Size: 0},
			want:  "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateURL(tt.email, tt.cfg))
		})
	}
}

func TestValidators(t *testing.T) {
	assert.True(t, IsValidDefaultImage("identicon"))
	assert.False(t, IsValidDefaultImage("nope"))
	assert.True(t, IsValidRating("pg"))
	assert.False(t, IsValidRating("nc-17"))
	assert.True(t, IsValidSize(1))
	assert.True(t, IsValidSize(2048))
	assert.False(t, IsValidSize(0))
	assert.False(t, IsValidSize(4096))
}

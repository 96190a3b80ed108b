package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user verifies its own password", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "walker_01",
			PlainPassword: "correct-horse-battery",
		})
		require.NoError(t, err)

		assert.True(t, user.VerifyPassword("correct-horse-battery"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "walker_01",
			PlainPassword: "password",
		})
		assert.Error(t, err)
	})

	t.Run("rejects malformed usernames", func(t *testing.T) {
		for _, username := range []string{"ab", "has space", "way_too_long_username_indeed"} {
			_, err := NewUser(UserConfig{
				ID:            uuid.New(),
				Username:      username,
				PlainPassword: "correct-horse-battery",
			})
			assert.Error(t, err, "username %q should be rejected", username)
		}
	})
}

package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid user", "treasurer@club.example", "secret1234", false},
		{"email is normalized", "  Treasurer@Club.Example  ", "secret1234", false},
		{"empty email", "", "secret1234", true},
		{"malformed email", "not-an-email", "secret1234", true},
		{"short password", "a@b.example", "ab1", true},
		{"password without digits", "a@b.example", "onlyletters", true},
		{"password without letters", "a@b.example", "1234567890", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.email, tt.password, "")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "treasurer@club.example", user.Email)
			assert.NotEmpty(t, user.PasswordHash)
			assert.NotEqual(t, tt.password, user.PasswordHash)
		})
	}
}

func TestUserVerifyPassword(t *testing.T) {
	user, err := NewUser("treasurer@club.example", "secret1234", "Pat")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("secret1234"))
	assert.False(t, user.VerifyPassword("wrong1234"))
	assert.False(t, user.VerifyPassword(""))
}

func TestUserSetPassword(t *testing.T) {
	user, err := NewUser("treasurer@club.example", "secret1234", "")
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("another99"))
	assert.True(t, user.VerifyPassword("another99"))
	assert.False(t, user.VerifyPassword("secret1234"))

	assert.Error(t, user.SetPassword("short"))
}

func TestUserGetDisplayNameOrEmail(t *testing.T) {
	user, err := NewUser("treasurer@club.example", "secret1234", "Pat")
	require.NoError(t, err)
	assert.Equal(t, "Pat", user.GetDisplayNameOrEmail())

	user.DisplayName = ""
	assert.Equal(t, "treasurer@club.example", user.GetDisplayNameOrEmail())
}

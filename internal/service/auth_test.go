package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apdd/apdd-server/internal/model"
	"github.com/apdd/apdd-server/internal/testutil"
)

func TestAuth_Login(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid credentials", username: "admin", password: "admin123"},
		{name: "wrong password", username: "admin", password: "nope", wantErr: model.ErrUnauthorized},
		{name: "wrong username", username: "root", password: "admin123", wantErr: model.ErrUnauthorized},
		{name: "empty credentials", username: "", password: "", wantErr: model.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := new(MockSessionRegistry)
			if tt.wantErr == nil {
				registry.On("Issue").Return("issued-token").Once()
			}

			auth := NewAuth(registry, "admin", "admin123", testutil.MakeNoopLogger())
			token, err := auth.Login(tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "issued-token", token)
			}
			registry.AssertExpectations(t)
		})
	}
}

func TestAuth_Login_IssuesNewTokenEveryCall(t *testing.T) {
	registry := new(MockSessionRegistry)
	registry.On("Issue").Return("token-1").Once()
	registry.On("Issue").Return("token-2").Once()

	auth := NewAuth(registry, "admin", "admin123", testutil.MakeNoopLogger())

	first, err := auth.Login("admin", "admin123")
	require.NoError(t, err)
	second, err := auth.Login("admin", "admin123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	registry.AssertExpectations(t)
}

func TestAuth_Logout(t *testing.T) {
	registry := new(MockSessionRegistry)
	registry.On("Revoke", "some-token").Once()

	auth := NewAuth(registry, "admin", "admin123", testutil.MakeNoopLogger())
	auth.Logout("some-token")

	registry.AssertExpectations(t)
}

func TestAuth_IsValid(t *testing.T) {
	registry := new(MockSessionRegistry)
	registry.On("IsValid", "good").Return(true)
	registry.On("IsValid", "bad").Return(false)

	auth := NewAuth(registry, "admin", "admin123", testutil.MakeNoopLogger())

	assert.True(t, auth.IsValid("good"))
	assert.False(t, auth.IsValid("bad"))
}

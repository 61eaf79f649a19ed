// ABOUTME: Tests for the local user profile.
// ABOUTME: Covers login, register conflicts, logout, and persistence.
package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutProfile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p, err := Load()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestLoginAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p, err := Login("Jan Kowalski", "jan@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.NotEmpty(t, p.DeviceID)

	loaded, err := Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Jan Kowalski", loaded.Name)
	assert.Equal(t, "jan@example.com", loaded.Email)
	assert.Equal(t, p.ID, loaded.ID)
}

func TestRegisterRefusesWhenLoggedIn(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Register("Jan", "jan@example.com")
	require.NoError(t, err)

	_, err = Register("Anna", "anna@example.com")
	assert.Error(t, err)
}

func TestLogout(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Login("Jan", "jan@example.com")
	require.NoError(t, err)

	require.NoError(t, Logout())

	p, err := Load()
	require.NoError(t, err)
	assert.Nil(t, p)

	// Logging out twice is fine.
	require.NoError(t, Logout())
}

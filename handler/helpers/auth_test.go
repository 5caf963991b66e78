package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestAuthDataRoundTrip(t *testing.T) {
	token, err := GetAuthData("ops@bizdesk.io", "agent-uuid-1", testKey, time.Hour)
	require.Nil(t, err)

	authData, err := ParseAuthData(token)
	require.Nil(t, err)
	assert.Equal(t, "agent-uuid-1", authData.AgentUUID)

	email, err := ParseAndDecryptProtectedFields(testKey, authData.ProtectedFields)
	require.Nil(t, err)
	assert.Equal(t, "ops@bizdesk.io", email)
}

func TestAuthDataExpiry(t *testing.T) {
	token, err := GetAuthData("ops@bizdesk.io", "agent-uuid-2", testKey, -time.Minute)
	require.Nil(t, err)

	authData, err := ParseAuthData(token)
	require.Nil(t, err)

	_, err = ParseAndDecryptProtectedFields(testKey, authData.ProtectedFields)
	assert.Equal(t, ErrExpired, err)
}

func TestAuthDataWrongKey(t *testing.T) {
	token, err := GetAuthData("ops@bizdesk.io", "agent-uuid-3", testKey, time.Hour)
	require.Nil(t, err)

	authData, err := ParseAuthData(token)
	require.Nil(t, err)

	// The per-agent salt is the key; a rotated salt invalidates
	// outstanding tokens.
	_, err = ParseAndDecryptProtectedFields("fedcba9876543210fedcba9876543210", authData.ProtectedFields)
	assert.NotNil(t, err)
}

func TestGetAuthDataMissingParams(t *testing.T) {
	_, err := GetAuthData("", "agent-uuid", testKey, time.Hour)
	assert.NotNil(t, err)

	_, err = ParseAuthData("")
	assert.NotNil(t, err)
}

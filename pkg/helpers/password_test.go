package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyOnly(t *testing.T) {
	hash, err := HashPassword("pass3")
	require.NoError(t, err)
	assert.NotEqual(t, "pass3", hash)

	assert.True(t, CompareHashAndPassword(hash, "pass3"))
	assert.False(t, CompareHashAndPassword(hash, "wrong"))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	h1, err := HashPassword("same")
	require.NoError(t, err)
	h2, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestCompareHashAndPassword_MalformedHash(t *testing.T) {
	// Corrupt stored hash never panics, it just fails verification.
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "anything"))
}

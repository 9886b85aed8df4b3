package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	require.NoError(t, hasher.Verify("password123", hash))
	assert.Error(t, hasher.Verify("wrong-password", hash))
}

func TestBcryptPasswordHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	require.NoError(t, hasher.Verify("password123", first))
	require.NoError(t, hasher.Verify("password123", second))
}

func TestNewBcryptPasswordHasher_ClampsCost(t *testing.T) {
	hasher := NewBcryptPasswordHasher(1000)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	require.NoError(t, hasher.Verify("password123", hash))
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Hash("salt", "pw123"), Hash("salt", "pw123"))
}

func TestHash_DifferentSalts(t *testing.T) {
	t.Parallel()

	saltA, err := RandomSalt()
	require.NoError(t, err)
	saltB, err := RandomSalt()
	require.NoError(t, err)

	require.NotEqual(t, saltA, saltB)
	assert.NotEqual(t, Hash(saltA, "pw123"), Hash(saltB, "pw123"))
}

func TestHash_DifferentInputs(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Hash("salt", "pw123"), Hash("salt", "pw124"))
}

func TestRandomSalt_Fresh(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 16 {
		salt, err := RandomSalt()
		require.NoError(t, err)
		assert.Len(t, salt, 2*saltLen) // hex encoded
		assert.False(t, seen[salt], "salt repeated")
		seen[salt] = true
	}
}

func TestVerifyHash(t *testing.T) {
	t.Parallel()

	salt, err := RandomSalt()
	require.NoError(t, err)
	digest := Hash(salt, "pw123")

	assert.True(t, VerifyHash(digest, salt, "pw123"))
	assert.False(t, VerifyHash(digest, salt, "pw124"))
	assert.False(t, VerifyHash(digest, "othersalt", "pw123"))
}

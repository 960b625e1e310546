package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mootbing/angine/pkg/config"
)

func TestGenerateKey(t *testing.T) {
	t.Run("live keys carry the live prefix", func(t *testing.T) {
		raw, hash, prefix, err := generateKey(config.EnvLive)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(raw, "engine_live_"))
		assert.Len(t, prefix, displayPrefixLen)
		assert.Equal(t, raw[:displayPrefixLen], prefix)
		assert.Len(t, hash, 64, "hex SHA-256")
		assert.NotContains(t, hash, raw)
	})

	t.Run("test keys carry the test prefix", func(t *testing.T) {
		raw, _, _, err := generateKey(config.EnvTest)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(raw, "engine_test_"))
	})

	t.Run("keys are unique", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			raw, _, _, err := generateKey(config.EnvLive)
			require.NoError(t, err)
			assert.False(t, seen[raw])
			seen[raw] = true
		}
	})

	t.Run("hash is deterministic", func(t *testing.T) {
		assert.Equal(t, hashKey("engine_live_abc"), hashKey("engine_live_abc"))
		assert.NotEqual(t, hashKey("engine_live_abc"), hashKey("engine_live_abd"))
	})
}

func TestHasKeyPrefix(t *testing.T) {
	assert.True(t, hasKeyPrefix("engine_live_xyz", config.EnvLive))
	assert.False(t, hasKeyPrefix("engine_test_xyz", config.EnvLive))
	assert.False(t, hasKeyPrefix("engine_live_xyz", config.EnvTest))
	assert.False(t, hasKeyPrefix("sk-something-else", config.EnvLive))
	assert.False(t, hasKeyPrefix("", config.EnvLive))
}

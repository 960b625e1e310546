package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Mootbing/angine/pkg/config"
)

const (
	// rawKeyBytes is the entropy of a generated key before encoding.
	rawKeyBytes = 24

	// displayPrefixLen is how much of the raw key is stored for display.
	displayPrefixLen = 14
)

// keyPrefix returns the textual prefix for the deployment environment,
// e.g. "engine_live_" or "engine_test_".
func keyPrefix(env config.Environment) string {
	return fmt.Sprintf("engine_%s_", env)
}

// generateKey produces a new raw key for the environment together with its
// storage digest and display prefix.
func generateKey(env config.Environment) (raw, hash, prefix string, err error) {
	buf := make([]byte, rawKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	raw = keyPrefix(env) + base64.RawURLEncoding.EncodeToString(buf)
	hash = hashKey(raw)
	prefix = raw[:displayPrefixLen]
	return raw, hash, prefix, nil
}

// hashKey returns the hex SHA-256 digest of a raw key.
func hashKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// hasKeyPrefix reports whether raw carries the environment's textual prefix.
// Validation fails fast on mismatch, before any hashing or lookup.
func hasKeyPrefix(raw string, env config.Environment) bool {
	return strings.HasPrefix(raw, keyPrefix(env))
}

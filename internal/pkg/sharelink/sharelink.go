// Package sharelink issues and resolves client-facing itinerary share
// links. Tokens are 32 bytes of cryptographically secure randomness in
// URL-safe base64; regenerating a token invalidates the previous link.
package sharelink

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	// TokenBytes is the raw token length before encoding.
	TokenBytes = 32

	// PathPrefix is the public share route prefix.
	PathPrefix = "/share/"
)

// GenerateToken creates a new share token.
func GenerateToken() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read secure random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// BuildPath returns the public path for a token, e.g. "/share/<token>".
func BuildPath(token string) string {
	return PathPrefix + token
}

// TokenFromPath extracts the token from a share path. Returns "" when
// the path is not a share path or carries no token.
func TokenFromPath(path string) string {
	if !strings.HasPrefix(path, PathPrefix) {
		return ""
	}
	token := strings.TrimPrefix(path, PathPrefix)
	if token == "" || strings.Contains(token, "/") {
		return ""
	}
	return token
}

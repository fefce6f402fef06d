package sharelink

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, TokenBytes)

	other, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestBuildPathRoundTrip(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)

	path := BuildPath(token)
	assert.Equal(t, "/share/"+token, path)
	assert.Equal(t, token, TokenFromPath(path))
}

func TestTokenFromPathRejectsForeignPaths(t *testing.T) {
	assert.Equal(t, "", TokenFromPath("/trips/abc"))
	assert.Equal(t, "", TokenFromPath("/share/"))
	assert.Equal(t, "", TokenFromPath("/share/a/b"))
}

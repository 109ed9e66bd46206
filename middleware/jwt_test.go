package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := parseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "correct-secret")
	token, err := GenerateJWT("user@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "wrong-secret")
	_, err = parseJWT(token)
	assert.Error(t, err)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := parseJWT("not.a.token")
	assert.Error(t, err)
}

func TestStripBearer(t *testing.T) {
	token, err := stripBearer("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = stripBearer("abc123")
	assert.Error(t, err, "missing prefix must be rejected")
}

func TestSocketioJWTDecoder(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateJWT("sock@example.com")
	require.NoError(t, err)

	email, err := Socketio_JWT_decoder(map[string]interface{}{
		"authorization": "Bearer " + token,
	})
	require.NoError(t, err)
	assert.Equal(t, "sock@example.com", email)

	_, err = Socketio_JWT_decoder(map[string]interface{}{})
	assert.Error(t, err)
}

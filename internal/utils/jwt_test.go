package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("nudge", 42, time.Hour, "secret")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 2*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "nudge", 0, "key"},
		{"empty key", "nudge", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken("nudge", 7, time.Hour, "secret")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret", "nudge")
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, generated.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, _ := GenerateJWTToken("nudge", 1, time.Hour, "secret")
	expired, _ := GenerateJWTToken("nudge", 1, -time.Minute, "secret")
	otherIssuer, _ := GenerateJWTToken("someone-else", 1, time.Hour, "secret")

	tests := []struct {
		name  string
		token string
		key   string
	}{
		{"wrong key", valid.SignedString, "other"},
		{"expired", expired.SignedString, "secret"},
		{"wrong issuer", otherIssuer.SignedString, "secret"},
		{"malformed", "not.a.token", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, "nudge")
			assert.Error(t, err)
		})
	}

	_, err := ValidateAndParseJWTToken(expired.SignedString, "secret", "nudge")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ParseBearerToken("bearer   abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc", "abc", "Bearer a b"} {
		_, err = ParseBearerToken(header)
		assert.ErrorIs(t, err, ErrInvalidAuthHeader, header)
	}
}

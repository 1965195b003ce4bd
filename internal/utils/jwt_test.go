package utils

import (
	"testing"
	"time"

	"noteshare/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:      "unit-test-secret",
		JWTIssuer:         "noteshare-test",
		JWTExpirationTime: time.Hour,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	tokenString, err := GenerateToken(cfg, 42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := ValidateToken(cfg, tokenString)
	require.NoError(t, err)

	claims, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "alice", claims["name"])
	assert.Equal(t, "noteshare-test", claims["iss"])
	_, hasJTI := jtiFromClaims(claims)
	assert.True(t, hasJTI)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	tokenString, err := GenerateToken(testConfig(), 42, "alice")
	require.NoError(t, err)

	other := testConfig()
	other.JWTSecretKey = "different-secret"
	_, err = ValidateToken(other, tokenString)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWTExpirationTime = -time.Minute

	tokenString, err := GenerateToken(cfg, 42, "alice")
	require.NoError(t, err)

	_, err = ValidateToken(cfg, tokenString)
	assert.Error(t, err)
}

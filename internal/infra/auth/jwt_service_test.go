package auth

import (
	"testing"

	"recipebox/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey = config.SecretKeyConfig{Access: "test_access_secret_key_very_long_for_testing"}
	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()

	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, err := tokenService.GenerateAccessToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	token, err := tokenService.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "42", claims["sub"])
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testJWTConfig()

	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = tokenService.ValidateToken("not.a.token", cfg.SecretKey.Access)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, err := tokenService.GenerateAccessToken(7)
	require.NoError(t, err)

	_, err = tokenService.ValidateToken(accessToken, "a_different_secret")
	assert.Error(t, err)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(42, "student@example.com", false)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "student@example.com", claims.Email)
	assert.False(t, claims.IsAdmin)
	assert.Greater(t, claims.Expiry, float64(time.Now().Unix()))
}

func TestVerifyTokenBearerPrefix(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(7, "admin@studyabroad.com", true)
	require.NoError(t, err)

	claims, err := auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	auth := SetupAuth("test-secret")
	other := SetupAuth("another-secret")

	token, err := auth.GenerateToken(1, "a@b.com", false)
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	auth := SetupAuth("test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  1,
		"email":    "a@b.com",
		"is_admin": false,
		"iat":      time.Now().Add(-48 * time.Hour).Unix(),
		"exp":      time.Now().Add(-24 * time.Hour).Unix(),
	})
	tokenStr, err := expired.SignedString([]byte(auth.Secret))
	require.NoError(t, err)

	_, err = auth.VerifyToken(tokenStr)
	assert.Error(t, err)
}

func TestVerifyTokenMissingAndGarbage(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.VerifyToken("")
	assert.Error(t, err)

	_, err = auth.VerifyToken("Bearer ")
	assert.Error(t, err)

	_, err = auth.VerifyToken("not.a.jwt")
	assert.Error(t, err)
}

func TestGenerateTokenMissingInputs(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.GenerateToken(0, "a@b.com", false)
	assert.Error(t, err)

	_, err = auth.GenerateToken(1, "", false)
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	auth := SetupAuth("test-secret")
	assert.NoError(t, auth.VerifyPassword("secret123", string(hash)))
	assert.Error(t, auth.VerifyPassword("wrong", string(hash)))
}

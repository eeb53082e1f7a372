package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	teacherID := "t1"

	token, expiresAt, err := svc.GenerateAccessToken("u1", &teacherID, "Kim Jiyoung", "teacher")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	userID, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestGenerateAccessToken_NilTeacherID(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, _, err := svc.GenerateAccessToken("u2", nil, "Admin", "admin")
	require.NoError(t, err)

	userID, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u2", userID)
}

func TestValidateAccessToken_GarbageRejected(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateAccessToken_WrongSecretRejected(t *testing.T) {
	issuer := NewJWTService(testSecret, "1h")
	verifier := NewJWTService("a-different-secret", "1h")

	token, _, err := issuer.GenerateAccessToken("u1", nil, "Kim Jiyoung", "teacher")
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateAccessToken("u1", nil, "Kim Jiyoung", "teacher")
	assert.Error(t, err)
}

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

func testUser() *models.User {
	return &models.User{
		ID:          uuid.Must(uuid.NewV7()),
		Email:       "player@example.com",
		DisplayName: "Player One",
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := testUser()

	token, err := IssueSessionToken(user)
	require.NoError(t, err)

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "player@example.com", claims.Email)
	assert.Equal(t, "Player One", claims.DisplayName)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := IssueSessionToken(testUser())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsForeignIssuer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// Same secret and signing method, wrong issuer
	claims := SessionClaims{
		UserID: uuid.Must(uuid.NewV7()).String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "some-other-service",
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsForeignAudience(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := SessionClaims{
		UserID: uuid.Must(uuid.NewV7()).String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{"some-other-app"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY", "-1h")

	token, err := IssueSessionToken(testUser())
	require.NoError(t, err)

	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionTTL(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "1h")
	assert.Equal(t, time.Hour, sessionTTL())

	t.Setenv("JWT_EXPIRY", "not-a-duration")
	assert.Equal(t, defaultSessionTTL, sessionTTL())

	t.Setenv("JWT_EXPIRY", "")
	assert.Equal(t, defaultSessionTTL, sessionTTL())
}

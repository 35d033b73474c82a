package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homevest_backend/internal/config"
	"homevest_backend/internal/models"
)

func init() {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.JWTTTLDays = 1
	config.AppConfig = cfg
}

func testPartner() *models.Partner {
	p := &models.Partner{
		Username:       "acme",
		Email:          "acme@example.com",
		ApprovalStatus: models.ApprovalApproved,
		IsActive:       true,
	}
	p.ID = "partner-1"
	return p
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testPartner())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "partner-1", claims.UserID)
	assert.Equal(t, "acme", claims.Username)
	assert.Equal(t, models.RolePartner, claims.Role)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(testPartner())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = ParseToken(tampered)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-jwt")
	assert.Error(t, err)
}

func TestNewSessionTokenIsOpaqueAndUnique(t *testing.T) {
	a := NewSessionToken()
	b := NewSessionToken()
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "-")
	assert.GreaterOrEqual(t, len(a), 64)
}

package auth

import (
	"testing"
	"time"

	"bureau/config"
	"bureau/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := newTestTokenService(t)

	access, refresh, err := svc.GenerateTokens("EMP-0001", []string{"admin"})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateAccess(access)
	require.NoError(t, err)
	assert.Equal(t, "EMP-0001", claims.UserID)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Equal(t, "access", claims.Type)

	refreshClaims, err := svc.ValidateRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, "EMP-0001", refreshClaims.UserID)
	// Roles stay out of the refresh token.
	assert.Empty(t, refreshClaims.Roles)
}

func TestValidate_RejectsWrongTokenType(t *testing.T) {
	svc := newTestTokenService(t)

	access, refresh, err := svc.GenerateTokens("EMP-0002", []string{"employee"})
	require.NoError(t, err)

	_, err = svc.ValidateAccess(refresh)
	assert.Error(t, err)

	_, err = svc.ValidateRefresh(access)
	assert.Error(t, err)
}

func TestValidate_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	access, _, err := svc.GenerateTokens("EMP-0003", []string{"employee"})
	require.NoError(t, err)

	_, err = svc.ValidateAccess(access + "x")
	assert.Error(t, err)
}

func TestGetRefreshTokenDuration(t *testing.T) {
	svc := newTestTokenService(t)
	assert.Equal(t, time.Hour*24*7, svc.GetRefreshTokenDuration())
}

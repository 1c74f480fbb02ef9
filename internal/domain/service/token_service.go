package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens. The subject is the
// employee's external user id.
type Claims struct {
	UserID string   `json:"uid"`
	Roles  []string `json:"roles,omitempty"`
	Type   string   `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given employee.
	GenerateTokens(userID string, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccess checks an access token and returns its claims.
	ValidateAccess(tokenString string) (*Claims, error)

	// ValidateRefresh checks a refresh token and returns its claims.
	ValidateRefresh(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}

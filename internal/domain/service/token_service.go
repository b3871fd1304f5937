package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by owner tokens.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed credentials.
type TokenService interface {
	// GenerateOwnerToken creates a token granting the owner role to subject.
	GenerateOwnerToken(subject string, ttl time.Duration) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}

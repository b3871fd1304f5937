package auth

import (
	"context"
	"testing"
	"time"

	"cheeserater/config"
	"cheeserater/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func testConfig(subjects ...string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.Owner.Subjects = subjects

	return cfg
}

func signClaims(t *testing.T, method jwt.SigningMethod, key any, claims service.Claims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidateOwnerToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := svc.GenerateOwnerToken("alice", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, []string{"owner"}, claims.Roles)
}

func TestJWTService_GenerateOwnerToken_InvalidInput(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	_, err = svc.GenerateOwnerToken("", time.Hour)
	assert.Error(t, err)

	_, err = svc.GenerateOwnerToken("alice", 0)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	valid := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	expired := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	noExpiry := service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"}}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: signClaims(t, jwt.SigningMethodHS256, []byte("other-secret"), valid)},
		{name: "wrong algorithm", token: signClaims(t, jwt.SigningMethodHS512, []byte(testSecret), valid)},
		{name: "expired", token: signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{name: "no expiry", token: signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestOwnerOracle_IsOwner(t *testing.T) {
	cfg := testConfig("bob")
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	oracle := NewOwnerOracle(svc, cfg)

	ownerToken, err := svc.GenerateOwnerToken("alice", time.Hour)
	require.NoError(t, err)

	expiry := jwt.NewNumericDate(time.Now().Add(time.Hour))
	listedSubject := signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "bob", ExpiresAt: expiry},
	})
	reviewer := signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), service.Claims{
		Roles:            []string{"reviewer"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "carol", ExpiresAt: expiry},
	})

	tests := []struct {
		name       string
		credential string
		want       bool
		wantErr    bool
	}{
		{name: "empty credential", credential: "  ", want: false},
		{name: "owner role", credential: ownerToken, want: true},
		{name: "configured subject", credential: listedSubject, want: true},
		{name: "reviewer", credential: reviewer, want: false},
		{name: "invalid token", credential: "garbage", want: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oracle.IsOwner(context.Background(), tt.credential)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

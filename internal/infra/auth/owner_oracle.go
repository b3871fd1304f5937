package auth

import (
	"context"
	"slices"
	"strings"

	"cheeserater/config"
	"cheeserater/internal/domain/entity"
	"cheeserater/internal/domain/service"
)

// ownerOracle grants ownership to tokens carrying the owner role or issued
// to a configured owner subject.
type ownerOracle struct {
	tokens   service.TokenService
	subjects []string
}

// NewOwnerOracle is the constructor for ownerOracle.
func NewOwnerOracle(tokens service.TokenService, cfg *config.Config) service.OwnerOracle {
	return &ownerOracle{
		tokens:   tokens,
		subjects: slices.Clone(cfg.Owner.Subjects),
	}
}

// IsOwner reports false without error for an empty credential.
func (o *ownerOracle) IsOwner(_ context.Context, credential string) (bool, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return false, nil
	}

	claims, err := o.tokens.ValidateToken(credential)
	if err != nil {
		return false, err
	}

	if entity.RolesFromStrings(claims.Roles).Contains(entity.RoleOwner) {
		return true, nil
	}

	return claims.Subject != "" && slices.Contains(o.subjects, claims.Subject), nil
}

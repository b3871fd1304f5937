package entity

import (
	"slices"
	"strings"
)

// Role is a privilege claim carried in a bearer token. Clients without a
// token are plain reviewers and carry no role at all.
type Role string

const (
	RoleReviewer Role = "reviewer"
	RoleOwner    Role = "owner"
)

func (r Role) known() bool {
	return r == RoleReviewer || r == RoleOwner
}

// Roles is the role list of a token.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts the roles for the JWT claim.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings reads a JWT roles claim, dropping names it does not know.
func RolesFromStrings(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		if r := Role(strings.TrimSpace(s)); r.known() {
			out = append(out, r)
		}
	}

	return out
}

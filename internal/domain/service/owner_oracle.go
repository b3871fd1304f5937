package service

import "context"

// OwnerOracle decides whether a credential belongs to the catalog owner.
type OwnerOracle interface {
	// IsOwner returns an error when the credential cannot be checked at all.
	// Callers treat any error as "not owner".
	IsOwner(ctx context.Context, credential string) (bool, error)
}

// Package constants contains values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Store drivers.
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

// Pub/Sub providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Client identity.
const (
	ClientIDCookie = "cheese-user-id"
	ClientIDHeader = "X-Client-Id"
	ClientIDPrefix = "user-"
	CheeseIDPrefix = "cheese-"
	ReviewIDPrefix = "review-"
)

// Owner credential transport.
const (
	OwnerTokenHeader = "Authorization"
	BearerPrefix     = "Bearer "
)

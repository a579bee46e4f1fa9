package app

import (
	"saltbox/internal/domain"
	identitysvc "saltbox/internal/identity"
	"saltbox/internal/keystore"
)

// Wire bundles the stores and services for the CLI.
type Wire struct {
	Identity domain.IdentityService
	Store    domain.IdentityStore
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	// File-based store under the configured home directory
	identityStore := keystore.NewFileStore(cfg.Home)

	return &Wire{
		Identity: identitysvc.New(identityStore),
		Store:    identityStore,
	}, nil
}

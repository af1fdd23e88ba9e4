package provider

import "context"

// Catalog defines the read-only contract to the provider collaborator.
type Catalog interface {
	// FindByEmail retrieves a provider by its unique email.
	FindByEmail(ctx context.Context, email string) (*Provider, error)

	// ListAll retrieves every provider with its service catalog.
	ListAll(ctx context.Context) ([]*Provider, error)
}

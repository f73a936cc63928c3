package roster

import (
	"context"

	"github.com/google/uuid"
)

// ProviderRepository defines the interface for provider persistence.
// Each kind is backed by its own table; implementations resolve the table
// from the provider's Kind.
type ProviderRepository interface {
	// FindByID finds a provider by its ID within a roster
	FindByID(ctx context.Context, kind Kind, id uuid.UUID) (*Provider, error)

	// FindAll returns every provider of a roster ordered by name
	FindAll(ctx context.Context, kind Kind) ([]Provider, error)

	// Save creates or updates a provider
	Save(ctx context.Context, provider *Provider) error

	// Delete deletes a provider. Returns shared.ErrReferenced when service
	// records still point at it (enforced by the store's foreign keys).
	Delete(ctx context.Context, kind Kind, id uuid.UUID) error
}

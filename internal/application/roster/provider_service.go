package roster

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestiserv/backend/internal/domain/roster"
)

// ProviderService handles roster operations for both provider kinds.
// The kind comes in with every call because the two rosters share one
// service behind different routes.
type ProviderService struct {
	providerRepo roster.ProviderRepository
}

// NewProviderService creates a new ProviderService
func NewProviderService(providerRepo roster.ProviderRepository) *ProviderService {
	return &ProviderService{
		providerRepo: providerRepo,
	}
}

// List returns every provider of a roster ordered by name
func (s *ProviderService) List(ctx context.Context, kind roster.Kind) ([]ProviderResponse, error) {
	providers, err := s.providerRepo.FindAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	return ToProviderResponses(providers), nil
}

// GetByID retrieves a provider by ID within a roster
func (s *ProviderService) GetByID(ctx context.Context, kind roster.Kind, id uuid.UUID) (*ProviderResponse, error) {
	provider, err := s.providerRepo.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	response := ToProviderResponse(provider)
	return &response, nil
}

// Create registers a new provider on a roster
func (s *ProviderService) Create(ctx context.Context, kind roster.Kind, req CreateProviderRequest) (*ProviderResponse, error) {
	provider, err := roster.NewProvider(kind, req.Name, req.Phone, req.Email, req.City)
	if err != nil {
		return nil, err
	}

	if err := s.providerRepo.Save(ctx, provider); err != nil {
		return nil, err
	}

	response := ToProviderResponse(provider)
	return &response, nil
}

// Update replaces a provider's contact information
func (s *ProviderService) Update(ctx context.Context, kind roster.Kind, id uuid.UUID, req UpdateProviderRequest) (*ProviderResponse, error) {
	provider, err := s.providerRepo.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if err := provider.Update(req.Name, req.Phone, req.Email, req.City); err != nil {
		return nil, err
	}

	if err := s.providerRepo.Save(ctx, provider); err != nil {
		return nil, err
	}

	response := ToProviderResponse(provider)
	return &response, nil
}

// Delete removes a provider. Fails with shared.ErrReferenced when service
// records still point at it.
func (s *ProviderService) Delete(ctx context.Context, kind roster.Kind, id uuid.UUID) error {
	return s.providerRepo.Delete(ctx, kind, id)
}

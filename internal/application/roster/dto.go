package roster

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestiserv/backend/internal/domain/roster"
)

// CreateProviderRequest represents a request to register a provider
type CreateProviderRequest struct {
	Name  string `json:"nombre" binding:"required,min=1,max=200"`
	Phone string `json:"telefono" binding:"max=50"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
	City  string `json:"ciudad" binding:"max=100"`
}

// UpdateProviderRequest represents a request to update a provider's
// contact information
type UpdateProviderRequest struct {
	Name  string `json:"nombre" binding:"required,min=1,max=200"`
	Phone string `json:"telefono" binding:"max=50"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
	City  string `json:"ciudad" binding:"max=100"`
}

// ProviderResponse represents a provider in API responses
type ProviderResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"tipo"`
	Name      string    `json:"nombre"`
	Phone     string    `json:"telefono"`
	Email     string    `json:"email"`
	City      string    `json:"ciudad"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProviderResponse converts a domain provider to a response DTO
func ToProviderResponse(p *roster.Provider) ProviderResponse {
	return ProviderResponse{
		ID:        p.ID,
		Kind:      p.Kind.String(),
		Name:      p.Name,
		Phone:     p.Phone,
		Email:     p.Email,
		City:      p.City,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProviderResponses converts a slice of domain providers
func ToProviderResponses(providers []roster.Provider) []ProviderResponse {
	out := make([]ProviderResponse, len(providers))
	for i := range providers {
		out[i] = ToProviderResponse(&providers[i])
	}
	return out
}

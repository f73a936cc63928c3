package roster

import (
	"regexp"
	"strings"
	"time"

	"github.com/gestiserv/backend/internal/domain/shared"
)

// Kind distinguishes the two provider rosters
type Kind string

const (
	KindInstrumentadora Kind = "instrumentadora" // surgical assistant
	KindMensajero       Kind = "mensajero"       // courier
)

// IsValid checks if the kind is a valid Kind
func (k Kind) IsValid() bool {
	return k == KindInstrumentadora || k == KindMensajero
}

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// FilterParam returns the query-string parameter that carries the provider
// filter for listings of this kind
func (k Kind) FilterParam() string {
	return string(k)
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Provider represents a registered roster member (surgical assistant or
// courier) who performs billable services. It is the aggregate root for
// roster operations.
type Provider struct {
	shared.BaseEntity
	Kind  Kind
	Name  string
	Phone string
	Email string
	City  string
}

// NewProvider creates a new provider for the given roster
func NewProvider(kind Kind, name, phone, email, city string) (*Provider, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Provider kind is not valid")
	}
	if err := validateProviderFields(name, phone, email, city); err != nil {
		return nil, err
	}

	return &Provider{
		BaseEntity: shared.NewBaseEntity(),
		Kind:       kind,
		Name:       strings.TrimSpace(name),
		Phone:      strings.TrimSpace(phone),
		Email:      strings.TrimSpace(email),
		City:       strings.TrimSpace(city),
	}, nil
}

// Update replaces the provider's contact information
func (p *Provider) Update(name, phone, email, city string) error {
	if err := validateProviderFields(name, phone, email, city); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Phone = strings.TrimSpace(phone)
	p.Email = strings.TrimSpace(email)
	p.City = strings.TrimSpace(city)
	p.UpdatedAt = time.Now()

	return nil
}

func validateProviderFields(name, phone, email, city string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if email != "" && !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is not valid")
	}
	if len(city) > 100 {
		return shared.NewDomainError("INVALID_CITY", "City cannot exceed 100 characters")
	}
	return nil
}

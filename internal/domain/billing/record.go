package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gestiserv/backend/internal/domain/shared"
	"github.com/gestiserv/backend/internal/domain/shared/valueobject"
)

// DefaultUTCOffset is the fixed offset stored with every timestamp. The
// business operates in Colombia, which has no daylight saving.
const DefaultUTCOffset = "-05:00"

// Record is the common shape of the two service-record kinds. Filtering,
// batch planning and aggregation operate on this interface so the engine
// is written once for both listings.
type Record interface {
	GetID() uuid.UUID
	GetProviderID() uuid.UUID
	GetOccurredAt() string
	GetAmount() valueobject.Money
	GetStatus() Status
	GetProviderName() string
	SetStatus(Status)
	SetProviderName(string)

	// SearchFields returns the descriptive fields the free-text filter
	// matches against, provider name included
	SearchFields() []string

	// Label is the one-line description shown in batch previews
	Label() string
}

// SurgicalService is one surgical-assistance engagement performed by an
// instrumentadora.
type SurgicalService struct {
	shared.BaseEntity
	ProviderID  uuid.UUID
	Patient     string
	Institution string
	City        string
	OccurredAt  string
	Amount      valueobject.Money
	Notes       string
	Status      Status

	// ProviderName is resolved from the roster at read time, it is not
	// persisted with the record
	ProviderName string
}

// NewSurgicalService creates a surgical service record in the initial
// pendiente state
func NewSurgicalService(providerID uuid.UUID, patient, institution, city, occurredAt string, amount valueobject.Money, notes string) (*SurgicalService, error) {
	if providerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROVIDER", "Provider is required")
	}
	if strings.TrimSpace(patient) == "" {
		return nil, shared.NewDomainError("INVALID_PATIENT", "Patient cannot be empty")
	}
	if strings.TrimSpace(institution) == "" {
		return nil, shared.NewDomainError("INVALID_INSTITUTION", "Institution cannot be empty")
	}
	if err := validateOccurredAt(occurredAt); err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	return &SurgicalService{
		BaseEntity:  shared.NewBaseEntity(),
		ProviderID:  providerID,
		Patient:     strings.TrimSpace(patient),
		Institution: strings.TrimSpace(institution),
		City:        strings.TrimSpace(city),
		OccurredAt:  occurredAt,
		Amount:      amount,
		Notes:       strings.TrimSpace(notes),
		Status:      StatusPending,
	}, nil
}

// Update replaces the record's descriptive fields. Status is set directly
// here because single-record edits are not constrained to the forward
// transitions the batch executor enforces.
func (s *SurgicalService) Update(providerID uuid.UUID, patient, institution, city, occurredAt string, amount valueobject.Money, notes string, status Status) error {
	if providerID == uuid.Nil {
		return shared.NewDomainError("INVALID_PROVIDER", "Provider is required")
	}
	if strings.TrimSpace(patient) == "" {
		return shared.NewDomainError("INVALID_PATIENT", "Patient cannot be empty")
	}
	if strings.TrimSpace(institution) == "" {
		return shared.NewDomainError("INVALID_INSTITUTION", "Institution cannot be empty")
	}
	if err := validateOccurredAt(occurredAt); err != nil {
		return err
	}
	if err := validateAmount(amount); err != nil {
		return err
	}
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Status is not valid")
	}

	s.ProviderID = providerID
	s.Patient = strings.TrimSpace(patient)
	s.Institution = strings.TrimSpace(institution)
	s.City = strings.TrimSpace(city)
	s.OccurredAt = occurredAt
	s.Amount = amount
	s.Notes = strings.TrimSpace(notes)
	s.Status = status
	s.UpdatedAt = time.Now()

	return nil
}

func (s *SurgicalService) GetProviderID() uuid.UUID          { return s.ProviderID }
func (s *SurgicalService) GetOccurredAt() string             { return s.OccurredAt }
func (s *SurgicalService) GetAmount() valueobject.Money      { return s.Amount }
func (s *SurgicalService) GetStatus() Status                 { return s.Status }
func (s *SurgicalService) GetProviderName() string           { return s.ProviderName }
func (s *SurgicalService) SetStatus(st Status)               { s.Status = st; s.UpdatedAt = time.Now() }
func (s *SurgicalService) SetProviderName(name string)       { s.ProviderName = name }

// SearchFields implements Record
func (s *SurgicalService) SearchFields() []string {
	fields := []string{s.Patient, s.Institution, s.City, s.ProviderName}
	if s.Notes != "" {
		fields = append(fields, s.Notes)
	}
	return fields
}

// Label implements Record
func (s *SurgicalService) Label() string {
	return fmt.Sprintf("%s - %s (%s)", s.Patient, s.Institution, DateComponent(s.OccurredAt))
}

// CourierService is one delivery performed by a mensajero.
type CourierService struct {
	shared.BaseEntity
	ProviderID      uuid.UUID
	Origin          string
	OriginCity      string
	Destination     string
	DestinationCity string
	OccurredAt      string
	Amount          valueobject.Money
	Notes           string
	Status          Status

	ProviderName string
}

// NewCourierService creates a courier service record in the initial
// pendiente state
func NewCourierService(providerID uuid.UUID, origin, originCity, destination, destinationCity, occurredAt string, amount valueobject.Money, notes string) (*CourierService, error) {
	if providerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROVIDER", "Provider is required")
	}
	if strings.TrimSpace(origin) == "" {
		return nil, shared.NewDomainError("INVALID_ORIGIN", "Origin cannot be empty")
	}
	if strings.TrimSpace(destination) == "" {
		return nil, shared.NewDomainError("INVALID_DESTINATION", "Destination cannot be empty")
	}
	if err := validateOccurredAt(occurredAt); err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	return &CourierService{
		BaseEntity:      shared.NewBaseEntity(),
		ProviderID:      providerID,
		Origin:          strings.TrimSpace(origin),
		OriginCity:      strings.TrimSpace(originCity),
		Destination:     strings.TrimSpace(destination),
		DestinationCity: strings.TrimSpace(destinationCity),
		OccurredAt:      occurredAt,
		Amount:          amount,
		Notes:           strings.TrimSpace(notes),
		Status:          StatusPending,
	}, nil
}

// Update replaces the record's descriptive fields
func (c *CourierService) Update(providerID uuid.UUID, origin, originCity, destination, destinationCity, occurredAt string, amount valueobject.Money, notes string, status Status) error {
	if providerID == uuid.Nil {
		return shared.NewDomainError("INVALID_PROVIDER", "Provider is required")
	}
	if strings.TrimSpace(origin) == "" {
		return shared.NewDomainError("INVALID_ORIGIN", "Origin cannot be empty")
	}
	if strings.TrimSpace(destination) == "" {
		return shared.NewDomainError("INVALID_DESTINATION", "Destination cannot be empty")
	}
	if err := validateOccurredAt(occurredAt); err != nil {
		return err
	}
	if err := validateAmount(amount); err != nil {
		return err
	}
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Status is not valid")
	}

	c.ProviderID = providerID
	c.Origin = strings.TrimSpace(origin)
	c.OriginCity = strings.TrimSpace(originCity)
	c.Destination = strings.TrimSpace(destination)
	c.DestinationCity = strings.TrimSpace(destinationCity)
	c.OccurredAt = occurredAt
	c.Amount = amount
	c.Notes = strings.TrimSpace(notes)
	c.Status = status
	c.UpdatedAt = time.Now()

	return nil
}

func (c *CourierService) GetProviderID() uuid.UUID          { return c.ProviderID }
func (c *CourierService) GetOccurredAt() string             { return c.OccurredAt }
func (c *CourierService) GetAmount() valueobject.Money      { return c.Amount }
func (c *CourierService) GetStatus() Status                 { return c.Status }
func (c *CourierService) GetProviderName() string           { return c.ProviderName }
func (c *CourierService) SetStatus(st Status)               { c.Status = st; c.UpdatedAt = time.Now() }
func (c *CourierService) SetProviderName(name string)       { c.ProviderName = name }

// SearchFields implements Record
func (c *CourierService) SearchFields() []string {
	fields := []string{c.Origin, c.OriginCity, c.Destination, c.DestinationCity, c.ProviderName}
	if c.Notes != "" {
		fields = append(fields, c.Notes)
	}
	return fields
}

// Label implements Record
func (c *CourierService) Label() string {
	return fmt.Sprintf("%s a %s (%s)", c.Origin, c.Destination, DateComponent(c.OccurredAt))
}

// ComposeOccurredAt builds the stored timestamp from separate date and
// time form inputs. The offset is fixed per deployment so the literal
// calendar digits always reflect the business's local day.
func ComposeOccurredAt(date, timeOfDay, offset string) (string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", shared.NewDomainError("INVALID_DATE", "Date must be YYYY-MM-DD")
	}
	if timeOfDay == "" {
		timeOfDay = "00:00"
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return "", shared.NewDomainError("INVALID_TIME", "Time must be HH:MM")
	}
	if offset == "" {
		offset = DefaultUTCOffset
	}
	return fmt.Sprintf("%sT%s:00%s", date, timeOfDay, offset), nil
}

// DateComponent returns the literal YYYY-MM-DD part of a stored
// timestamp. Display and filtering both use this, never a parsed Date.
func DateComponent(occurredAt string) string {
	if len(occurredAt) < 10 {
		return occurredAt
	}
	return occurredAt[:10]
}

func validateOccurredAt(occurredAt string) error {
	if len(occurredAt) < 10 {
		return shared.NewDomainError("INVALID_DATE", "Timestamp is required")
	}
	if _, err := time.Parse("2006-01-02", occurredAt[:10]); err != nil {
		return shared.NewDomainError("INVALID_DATE", "Timestamp must start with YYYY-MM-DD")
	}
	return nil
}

func validateAmount(amount valueobject.Money) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	return nil
}

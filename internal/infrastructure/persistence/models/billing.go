package models

import (
	"github.com/google/uuid"

	"github.com/gestiserv/backend/internal/domain/billing"
	"github.com/gestiserv/backend/internal/domain/shared/valueobject"
)

// SurgicalServiceModel is the persistence model for surgical-assistance
// records. Column names keep the original Spanish schema. The fecha
// column stores the timestamp as text with a fixed offset so its literal
// calendar digits stay authoritative for filtering and display.
type SurgicalServiceModel struct {
	BaseModel
	ProviderID  uuid.UUID `gorm:"column:instrumentadora_id;type:uuid;not null;index"`
	Patient     string    `gorm:"column:paciente;type:varchar(200);not null"`
	Institution string    `gorm:"column:institucion;type:varchar(200);not null"`
	City        string    `gorm:"column:ciudad;type:varchar(100)"`
	OccurredAt  string    `gorm:"column:fecha;type:text;not null;index"`
	Amount      int64     `gorm:"column:valor;not null;default:0"`
	Notes       string    `gorm:"column:observaciones;type:text"`
	Status      string    `gorm:"column:estado;type:varchar(20)"`
	LegacyPaid  bool      `gorm:"column:pagado;not null;default:false"`
}

// TableName returns the table name for GORM
func (SurgicalServiceModel) TableName() string {
	return "servicios_instrumentadoras"
}

// ToDomain converts the persistence model to a domain SurgicalService.
// The status is derived defensively so rows that predate the estado
// column still resolve to a valid lifecycle state.
func (m *SurgicalServiceModel) ToDomain() *billing.SurgicalService {
	return &billing.SurgicalService{
		BaseEntity:  m.BaseModel.ToDomain(),
		ProviderID:  m.ProviderID,
		Patient:     m.Patient,
		Institution: m.Institution,
		City:        m.City,
		OccurredAt:  m.OccurredAt,
		Amount:      valueobject.NewMoneyCOP(m.Amount),
		Notes:       m.Notes,
		Status:      billing.DeriveStatusLegacy(m.Status, m.LegacyPaid),
	}
}

// SurgicalServiceModelFromDomain creates a persistence model from a
// domain SurgicalService, keeping the legacy pagado column in sync
func SurgicalServiceModelFromDomain(s *billing.SurgicalService) *SurgicalServiceModel {
	m := &SurgicalServiceModel{}
	m.FromDomainBaseEntity(s.BaseEntity)
	m.ProviderID = s.ProviderID
	m.Patient = s.Patient
	m.Institution = s.Institution
	m.City = s.City
	m.OccurredAt = s.OccurredAt
	m.Amount = s.Amount.Int64()
	m.Notes = s.Notes
	m.Status = s.Status.String()
	m.LegacyPaid = s.Status == billing.StatusPaid
	return m
}

// CourierServiceModel is the persistence model for courier delivery
// records.
type CourierServiceModel struct {
	BaseModel
	ProviderID      uuid.UUID `gorm:"column:mensajero_id;type:uuid;not null;index"`
	Origin          string    `gorm:"column:origen;type:varchar(200);not null"`
	OriginCity      string    `gorm:"column:ciudad_origen;type:varchar(100)"`
	Destination     string    `gorm:"column:destino;type:varchar(200);not null"`
	DestinationCity string    `gorm:"column:ciudad_destino;type:varchar(100)"`
	OccurredAt      string    `gorm:"column:fecha;type:text;not null;index"`
	Amount          int64     `gorm:"column:valor;not null;default:0"`
	Notes           string    `gorm:"column:observaciones;type:text"`
	Status          string    `gorm:"column:estado;type:varchar(20)"`
	LegacyPaid      bool      `gorm:"column:pagado;not null;default:false"`
}

// TableName returns the table name for GORM
func (CourierServiceModel) TableName() string {
	return "servicios_mensajeros"
}

// ToDomain converts the persistence model to a domain CourierService
func (m *CourierServiceModel) ToDomain() *billing.CourierService {
	return &billing.CourierService{
		BaseEntity:      m.BaseModel.ToDomain(),
		ProviderID:      m.ProviderID,
		Origin:          m.Origin,
		OriginCity:      m.OriginCity,
		Destination:     m.Destination,
		DestinationCity: m.DestinationCity,
		OccurredAt:      m.OccurredAt,
		Amount:          valueobject.NewMoneyCOP(m.Amount),
		Notes:           m.Notes,
		Status:          billing.DeriveStatusLegacy(m.Status, m.LegacyPaid),
	}
}

// CourierServiceModelFromDomain creates a persistence model from a
// domain CourierService
func CourierServiceModelFromDomain(c *billing.CourierService) *CourierServiceModel {
	m := &CourierServiceModel{}
	m.FromDomainBaseEntity(c.BaseEntity)
	m.ProviderID = c.ProviderID
	m.Origin = c.Origin
	m.OriginCity = c.OriginCity
	m.Destination = c.Destination
	m.DestinationCity = c.DestinationCity
	m.OccurredAt = c.OccurredAt
	m.Amount = c.Amount.Int64()
	m.Notes = c.Notes
	m.Status = c.Status.String()
	m.LegacyPaid = c.Status == billing.StatusPaid
	return m
}

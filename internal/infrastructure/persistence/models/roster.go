package models

import (
	"github.com/gestiserv/backend/internal/domain/roster"
)

// Roster table names. Each provider kind has its own table, inherited
// from the original schema.
const (
	TableInstrumentadoras = "instrumentadoras"
	TableMensajeros       = "mensajeros"
)

// ProviderTable resolves the table backing a provider kind
func ProviderTable(kind roster.Kind) string {
	if kind == roster.KindMensajero {
		return TableMensajeros
	}
	return TableInstrumentadoras
}

// ProviderModel is the persistence model shared by both rosters. The
// repository selects the table from the provider's kind, so the model
// itself carries no TableName.
type ProviderModel struct {
	BaseModel
	Name  string `gorm:"column:nombre;type:varchar(200);not null"`
	Phone string `gorm:"column:telefono;type:varchar(50)"`
	Email string `gorm:"column:email;type:varchar(200)"`
	City  string `gorm:"column:ciudad;type:varchar(100)"`
}

// ToDomain converts the persistence model to a domain Provider
func (m *ProviderModel) ToDomain(kind roster.Kind) *roster.Provider {
	return &roster.Provider{
		BaseEntity: m.BaseModel.ToDomain(),
		Kind:       kind,
		Name:       m.Name,
		Phone:      m.Phone,
		Email:      m.Email,
		City:       m.City,
	}
}

// ProviderModelFromDomain creates a persistence model from a domain Provider
func ProviderModelFromDomain(p *roster.Provider) *ProviderModel {
	m := &ProviderModel{}
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Phone = p.Phone
	m.Email = p.Email
	m.City = p.City
	return m
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/gestiserv/backend/internal/domain/roster"
	"github.com/gestiserv/backend/internal/domain/shared"
	"github.com/gestiserv/backend/internal/infrastructure/persistence/models"
)

// GormProviderRepository implements roster.ProviderRepository using GORM.
// Both rosters share one model; the kind picks the table.
type GormProviderRepository struct {
	db *gorm.DB
}

// NewGormProviderRepository creates a new GormProviderRepository
func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

// FindByID finds a provider by its ID within a roster
func (r *GormProviderRepository) FindByID(ctx context.Context, kind roster.Kind, id uuid.UUID) (*roster.Provider, error) {
	var model models.ProviderModel
	err := r.db.WithContext(ctx).
		Table(models.ProviderTable(kind)).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(kind), nil
}

// FindAll returns every provider of a roster ordered by name
func (r *GormProviderRepository) FindAll(ctx context.Context, kind roster.Kind) ([]roster.Provider, error) {
	var providerModels []models.ProviderModel
	err := r.db.WithContext(ctx).
		Table(models.ProviderTable(kind)).
		Order("nombre ASC").
		Find(&providerModels).Error
	if err != nil {
		return nil, err
	}

	providers := make([]roster.Provider, len(providerModels))
	for i, model := range providerModels {
		providers[i] = *model.ToDomain(kind)
	}
	return providers, nil
}

// Save creates or updates a provider
func (r *GormProviderRepository) Save(ctx context.Context, provider *roster.Provider) error {
	model := models.ProviderModelFromDomain(provider)
	return r.db.WithContext(ctx).
		Table(models.ProviderTable(provider.Kind)).
		Save(model).Error
}

// Delete deletes a provider. Service records keep a foreign key to their
// provider, so the store rejects deleting a referenced one.
func (r *GormProviderRepository) Delete(ctx context.Context, kind roster.Kind, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Table(models.ProviderTable(kind)).
		Where("id = ?", id).
		Delete(&models.ProviderModel{})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return shared.ErrReferenced
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// isForeignKeyViolation reports whether err is a Postgres foreign key
// constraint violation (SQLSTATE 23503). Both driver error types are
// handled: GORM connects through pgx, database/sql paths use lib/pq.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}

// Ensure GormProviderRepository implements ProviderRepository
var _ roster.ProviderRepository = (*GormProviderRepository)(nil)

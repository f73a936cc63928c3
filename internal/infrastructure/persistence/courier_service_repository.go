package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestiserv/backend/internal/domain/billing"
	"github.com/gestiserv/backend/internal/domain/shared"
	"github.com/gestiserv/backend/internal/infrastructure/persistence/models"
)

// GormCourierServiceRepository implements billing.CourierServiceRepository using GORM
type GormCourierServiceRepository struct {
	db *gorm.DB
}

// NewGormCourierServiceRepository creates a new GormCourierServiceRepository
func NewGormCourierServiceRepository(db *gorm.DB) *GormCourierServiceRepository {
	return &GormCourierServiceRepository{db: db}
}

// FindByID finds a courier service record by its ID
func (r *GormCourierServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.CourierService, error) {
	var model models.CourierServiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every record ordered newest first
func (r *GormCourierServiceRepository) FindAll(ctx context.Context) ([]*billing.CourierService, error) {
	var serviceModels []models.CourierServiceModel
	if err := r.db.WithContext(ctx).
		Order("fecha DESC").
		Find(&serviceModels).Error; err != nil {
		return nil, err
	}

	records := make([]*billing.CourierService, len(serviceModels))
	for i := range serviceModels {
		records[i] = serviceModels[i].ToDomain()
	}
	return records, nil
}

// Save creates or updates a courier service record
func (r *GormCourierServiceRepository) Save(ctx context.Context, record *billing.CourierService) error {
	model := models.CourierServiceModelFromDomain(record)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a courier service record
func (r *GormCourierServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CourierServiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// UpdateStatusByIDs sets the status for the listed records as one bulk
// statement, guarded on the from state
func (r *GormCourierServiceRepository) UpdateStatusByIDs(ctx context.Context, ids []uuid.UUID, from, to billing.Status) (int64, error) {
	if len(ids) == 0 {
		return 0, shared.ErrEmptyBatch
	}

	query := r.db.WithContext(ctx).Model(&models.CourierServiceModel{})
	if from == billing.StatusPending {
		// Rows written before the estado column have no value there and
		// read back as pendiente from the pagado flag alone.
		query = query.Where("id IN ? AND (estado = ? OR ((estado IS NULL OR estado = '') AND pagado = false))", ids, from.String())
	} else {
		query = query.Where("id IN ? AND estado = ?", ids, from.String())
	}
	result := query.Updates(map[string]interface{}{
		"estado": to.String(),
		"pagado": to == billing.StatusPaid,
	})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Ensure GormCourierServiceRepository implements CourierServiceRepository
var _ billing.CourierServiceRepository = (*GormCourierServiceRepository)(nil)

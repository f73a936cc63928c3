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

// GormSurgicalServiceRepository implements billing.SurgicalServiceRepository using GORM
type GormSurgicalServiceRepository struct {
	db *gorm.DB
}

// NewGormSurgicalServiceRepository creates a new GormSurgicalServiceRepository
func NewGormSurgicalServiceRepository(db *gorm.DB) *GormSurgicalServiceRepository {
	return &GormSurgicalServiceRepository{db: db}
}

// FindByID finds a surgical service record by its ID
func (r *GormSurgicalServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.SurgicalService, error) {
	var model models.SurgicalServiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every record ordered newest first. Filtering happens
// in memory on top of the full set.
func (r *GormSurgicalServiceRepository) FindAll(ctx context.Context) ([]*billing.SurgicalService, error) {
	var serviceModels []models.SurgicalServiceModel
	if err := r.db.WithContext(ctx).
		Order("fecha DESC").
		Find(&serviceModels).Error; err != nil {
		return nil, err
	}

	records := make([]*billing.SurgicalService, len(serviceModels))
	for i := range serviceModels {
		records[i] = serviceModels[i].ToDomain()
	}
	return records, nil
}

// Save creates or updates a surgical service record
func (r *GormSurgicalServiceRepository) Save(ctx context.Context, record *billing.SurgicalService) error {
	model := models.SurgicalServiceModelFromDomain(record)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a surgical service record
func (r *GormSurgicalServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SurgicalServiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// UpdateStatusByIDs sets the status for the listed records as one bulk
// statement. The estado guard keeps records another session already
// moved out of the from state untouched, and the legacy pagado column
// stays in sync.
func (r *GormSurgicalServiceRepository) UpdateStatusByIDs(ctx context.Context, ids []uuid.UUID, from, to billing.Status) (int64, error) {
	if len(ids) == 0 {
		return 0, shared.ErrEmptyBatch
	}

	query := r.db.WithContext(ctx).Model(&models.SurgicalServiceModel{})
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

// Ensure GormSurgicalServiceRepository implements SurgicalServiceRepository
var _ billing.SurgicalServiceRepository = (*GormSurgicalServiceRepository)(nil)

package billing

import (
	"context"

	"github.com/google/uuid"
)

// SurgicalServiceRepository defines persistence for surgical service
// records. FindAll returns the full set ordered newest first; filtering
// happens in memory on top of it.
type SurgicalServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SurgicalService, error)
	FindAll(ctx context.Context) ([]*SurgicalService, error)
	Save(ctx context.Context, record *SurgicalService) error
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateStatusByIDs sets the status for every listed record still in
	// the from state, as one bulk statement. Returns the number of rows
	// changed.
	UpdateStatusByIDs(ctx context.Context, ids []uuid.UUID, from, to Status) (int64, error)
}

// CourierServiceRepository defines persistence for courier service
// records with the same contract as the surgical repository.
type CourierServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CourierService, error)
	FindAll(ctx context.Context) ([]*CourierService, error)
	Save(ctx context.Context, record *CourierService) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatusByIDs(ctx context.Context, ids []uuid.UUID, from, to Status) (int64, error)
}

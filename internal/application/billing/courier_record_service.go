package billing

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gestiserv/backend/internal/domain/billing"
	"github.com/gestiserv/backend/internal/domain/roster"
	"github.com/gestiserv/backend/internal/domain/shared/valueobject"
	"github.com/gestiserv/backend/internal/infrastructure/config"
)

// CourierRecordService handles courier record operations, the mensajero
// counterpart of SurgicalRecordService
type CourierRecordService struct {
	core recordCore[*billing.CourierService]
}

// NewCourierRecordService creates a new CourierRecordService
func NewCourierRecordService(
	repo billing.CourierServiceRepository,
	providers roster.ProviderRepository,
	cache billing.TotalsCache,
	business config.BusinessConfig,
	logger *zap.Logger,
) *CourierRecordService {
	return &CourierRecordService{
		core: recordCore[*billing.CourierService]{
			kind:      roster.KindMensajero,
			repo:      repo,
			providers: providers,
			cache:     cache,
			business:  business,
			logger:    logger,
		},
	}
}

// List returns the filtered listing with its summary and the canonical
// filter echo
func (s *CourierRecordService) List(ctx context.Context, q url.Values) (*CourierServiceListResult, error) {
	f := s.core.decodeFilter(q)
	filtered, err := s.core.loadFiltered(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]CourierServiceResponse, len(filtered))
	for i, record := range filtered {
		items[i] = ToCourierServiceResponse(record)
	}

	return &CourierServiceListResult{
		Items:   items,
		Summary: ToSummaryResponse(billing.Aggregate(filtered)),
		Filter:  s.core.filterMeta(f),
	}, nil
}

// GetByID retrieves a single record with its provider name resolved
func (s *CourierRecordService) GetByID(ctx context.Context, id uuid.UUID) (*CourierServiceResponse, error) {
	record, err := s.core.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider, err := s.core.resolveProvider(ctx, record.ProviderID); err == nil {
		record.ProviderName = provider.Name
	}

	response := ToCourierServiceResponse(record)
	return &response, nil
}

// Create records a new courier delivery in the pendiente state
func (s *CourierRecordService) Create(ctx context.Context, req CreateCourierServiceRequest) (*CourierServiceResponse, error) {
	provider, err := s.core.resolveProvider(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	occurredAt, err := s.core.composeOccurredAt(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	record, err := billing.NewCourierService(
		provider.ID, req.Origin, req.OriginCity, req.Destination, req.DestinationCity,
		occurredAt, valueobject.NewMoneyCOP(req.Amount), req.Notes,
	)
	if err != nil {
		return nil, err
	}

	if err := s.core.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	s.core.invalidateTotals(ctx)

	record.ProviderName = provider.Name
	response := ToCourierServiceResponse(record)
	return &response, nil
}

// Update replaces a record's fields. An empty request status keeps the
// record's current state.
func (s *CourierRecordService) Update(ctx context.Context, id uuid.UUID, req UpdateCourierServiceRequest) (*CourierServiceResponse, error) {
	record, err := s.core.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	provider, err := s.core.resolveProvider(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	occurredAt, err := s.core.composeOccurredAt(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	status := record.Status
	if req.Status != "" {
		status = billing.Status(req.Status)
	}

	if err := record.Update(
		provider.ID, req.Origin, req.OriginCity, req.Destination, req.DestinationCity,
		occurredAt, valueobject.NewMoneyCOP(req.Amount), req.Notes, status,
	); err != nil {
		return nil, err
	}

	if err := s.core.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	s.core.invalidateTotals(ctx)

	record.ProviderName = provider.Name
	response := ToCourierServiceResponse(record)
	return &response, nil
}

// Delete removes a record
func (s *CourierRecordService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.core.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.core.invalidateTotals(ctx)
	return nil
}

// PlanBatch computes the confirmation plan for a bulk transition over the
// currently filtered view
func (s *CourierRecordService) PlanBatch(ctx context.Context, q url.Values, req BatchPlanRequest) (*BatchPlanResponse, error) {
	plan, f, err := s.core.planBatch(ctx, q, billing.Status(req.From))
	if err != nil {
		return nil, err
	}

	var providerName string
	if f.ProviderID != uuid.Nil {
		if provider, err := s.core.resolveProvider(ctx, f.ProviderID); err == nil {
			providerName = provider.Name
		}
	}

	response := ToBatchPlanResponse(plan, describeScope(f, providerName))
	return &response, nil
}

// ExecuteBatch runs a confirmed bulk transition
func (s *CourierRecordService) ExecuteBatch(ctx context.Context, req BatchExecuteRequest) (*BatchExecuteResponse, error) {
	updated, err := s.core.executeBatch(ctx, req.IDs, billing.Status(req.From), billing.Status(req.To))
	if err != nil {
		return nil, err
	}
	return &BatchExecuteResponse{Updated: updated, Status: req.To}, nil
}

// Totals returns the per-provider totals report for the filtered view
func (s *CourierRecordService) Totals(ctx context.Context, q url.Values) (*TotalsResponse, error) {
	snapshot, f, cached, err := s.core.totals(ctx, q)
	if err != nil {
		return nil, err
	}
	response := ToTotalsResponse(snapshot, f.Period.Describe(), cached)
	return &response, nil
}

package billing

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gestiserv/backend/internal/domain/billing"
	"github.com/gestiserv/backend/internal/domain/roster"
	"github.com/gestiserv/backend/internal/domain/shared"
	"github.com/gestiserv/backend/internal/infrastructure/config"
	"github.com/gestiserv/backend/internal/infrastructure/logger"
)

// recordRepository is the persistence contract both record kinds share
type recordRepository[T billing.Record] interface {
	FindByID(ctx context.Context, id uuid.UUID) (T, error)
	FindAll(ctx context.Context) ([]T, error)
	Save(ctx context.Context, record T) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatusByIDs(ctx context.Context, ids []uuid.UUID, from, to billing.Status) (int64, error)
}

// recordCore implements the listing, batch and totals flows shared by the
// surgical and courier services. The concrete services own the DTO
// mapping; everything below speaks domain types.
type recordCore[T billing.Record] struct {
	kind      roster.Kind
	repo      recordRepository[T]
	providers roster.ProviderRepository
	cache     billing.TotalsCache
	business  config.BusinessConfig
	logger    *zap.Logger
}

// log returns the request-scoped logger riding the context, falling back
// to the service logger outside a request
func (c *recordCore[T]) log(ctx context.Context) *logger.ContextLogger {
	return logger.WithLogger(ctx, logger.FromContextOr(ctx, c.logger))
}

// loadFiltered fetches the full record set newest first, resolves provider
// names from the roster and applies the filter
func (c *recordCore[T]) loadFiltered(ctx context.Context, f billing.FilterState) ([]T, error) {
	records, err := c.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.annotateProviderNames(ctx, records); err != nil {
		return nil, err
	}
	return billing.Apply(records, f), nil
}

// annotateProviderNames joins roster names onto records with a single
// roster fetch. Names feed both the free-text filter and the responses.
func (c *recordCore[T]) annotateProviderNames(ctx context.Context, records []T) error {
	if len(records) == 0 {
		return nil
	}
	providers, err := c.providers.FindAll(ctx, c.kind)
	if err != nil {
		return err
	}
	names := make(map[uuid.UUID]string, len(providers))
	for i := range providers {
		names[providers[i].ID] = providers[i].Name
	}
	for _, r := range records {
		r.SetProviderName(names[r.GetProviderID()])
	}
	return nil
}

// decodeFilter reads the listing filter from query parameters using this
// kind's provider parameter
func (c *recordCore[T]) decodeFilter(q url.Values) billing.FilterState {
	return billing.DecodeFilterState(q, c.kind.FilterParam())
}

// filterMeta builds the canonical filter echo for a listing response
func (c *recordCore[T]) filterMeta(f billing.FilterState) FilterMeta {
	return FilterMeta{
		Query:  f.EncodeQuery(c.kind.FilterParam()),
		Period: f.Period.Describe(),
		Active: f.HasActiveFilters(),
	}
}

// resolveProvider looks a provider up on this kind's roster
func (c *recordCore[T]) resolveProvider(ctx context.Context, id uuid.UUID) (*roster.Provider, error) {
	return c.providers.FindByID(ctx, c.kind, id)
}

// composeOccurredAt builds the stored timestamp from form inputs using
// the configured business offset
func (c *recordCore[T]) composeOccurredAt(date, timeOfDay string) (string, error) {
	return billing.ComposeOccurredAt(date, timeOfDay, c.business.UTCOffset)
}

// planBatch computes the confirmation plan for a bulk transition over the
// currently filtered view
func (c *recordCore[T]) planBatch(ctx context.Context, q url.Values, from billing.Status) (billing.BatchPlan, billing.FilterState, error) {
	f := c.decodeFilter(q)
	filtered, err := c.loadFiltered(ctx, f)
	if err != nil {
		return billing.BatchPlan{}, f, err
	}
	plan, err := billing.PlanBatch(filtered, from)
	return plan, f, err
}

// executeBatch runs a confirmed bulk transition. The repository guards on
// the from state, so records that moved since planning stay untouched.
func (c *recordCore[T]) executeBatch(ctx context.Context, ids []uuid.UUID, from, to billing.Status) (int64, error) {
	if !billing.CanBatchTransition(from, to) {
		return 0, shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("Cannot batch transition records from %s to %s", from, to))
	}
	if len(ids) == 0 {
		return 0, shared.ErrEmptyBatch
	}

	updated, err := c.repo.UpdateStatusByIDs(ctx, ids, from, to)
	if err != nil {
		return 0, err
	}
	if updated > 0 {
		c.invalidateTotals(ctx)
	}
	return updated, nil
}

// totals returns the per-provider report for the filtered view, served
// from cache when a fresh snapshot exists. The canonical filter query is
// the cache key, so equivalent filter URLs share one entry.
func (c *recordCore[T]) totals(ctx context.Context, q url.Values) (*billing.TotalsSnapshot, billing.FilterState, bool, error) {
	f := c.decodeFilter(q)
	key := f.EncodeQuery(c.kind.FilterParam())

	if c.cache != nil {
		snapshot, err := c.cache.Get(ctx, c.kind, key)
		if err != nil {
			c.log(ctx).Warn("Totals cache read failed",
				zap.String("kind", c.kind.String()), zap.Error(err))
		} else if snapshot != nil {
			return snapshot, f, true, nil
		}
	}

	filtered, err := c.loadFiltered(ctx, f)
	if err != nil {
		return nil, f, false, err
	}
	providers, err := c.providers.FindAll(ctx, c.kind)
	if err != nil {
		return nil, f, false, err
	}

	snapshot := buildTotalsSnapshot(filtered, providers)

	if c.cache != nil {
		if err := c.cache.Set(ctx, c.kind, key, snapshot, c.business.TotalsCacheTTL); err != nil {
			c.log(ctx).Warn("Totals cache write failed",
				zap.String("kind", c.kind.String()), zap.Error(err))
		}
	}
	return snapshot, f, false, nil
}

// buildTotalsSnapshot aggregates records by provider and merges in zero
// rows for roster members without matching records. Rows keep the
// roster's name ordering.
func buildTotalsSnapshot[T billing.Record](records []T, providers []roster.Provider) *billing.TotalsSnapshot {
	aggregated := billing.AggregateByProvider(records)
	byProvider := make(map[uuid.UUID]billing.ProviderSummary, len(aggregated))
	for _, row := range aggregated {
		byProvider[row.ProviderID] = row
	}

	rows := make([]billing.ProviderSummary, 0, len(providers))
	seen := make(map[uuid.UUID]bool, len(providers))
	for i := range providers {
		p := &providers[i]
		seen[p.ID] = true
		if row, ok := byProvider[p.ID]; ok {
			row.ProviderName = p.Name
			rows = append(rows, row)
			continue
		}
		rows = append(rows, billing.ProviderSummary{
			ProviderID:   p.ID,
			ProviderName: p.Name,
			Summary:      billing.Aggregate([]T{}),
		})
	}
	// records pointing at providers no longer on the roster still count
	for _, row := range aggregated {
		if !seen[row.ProviderID] {
			rows = append(rows, row)
		}
	}

	return &billing.TotalsSnapshot{
		Rows:  rows,
		Grand: billing.Aggregate(records),
	}
}

// invalidateTotals drops every cached totals snapshot for this kind.
// Best effort: a stale snapshot expires on its own TTL.
func (c *recordCore[T]) invalidateTotals(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if err := c.cache.InvalidateKind(ctx, c.kind); err != nil {
		c.log(ctx).Warn("Totals cache invalidation failed",
			zap.String("kind", c.kind.String()), zap.Error(err))
	}
}

// describeScope renders the filter restrictions for the batch
// confirmation dialog, e.g. "Enero, Marzo 2024, estado pendiente"
func describeScope(f billing.FilterState, providerName string) string {
	parts := []string{f.Period.Describe()}
	if !f.Status.IsAll() {
		parts = append(parts, "estado "+string(f.Status))
	}
	if providerName != "" {
		parts = append(parts, providerName)
	}
	if f.Text != "" {
		parts = append(parts, fmt.Sprintf("búsqueda %q", f.Text))
	}
	return strings.Join(parts, ", ")
}

package billing

import (
	"context"
	"time"

	"github.com/gestiserv/backend/internal/domain/roster"
)

// TotalsSnapshot is the standalone totals report for one record kind: a
// per-provider breakdown plus the grand totals over the same set.
type TotalsSnapshot struct {
	Rows  []ProviderSummary `json:"rows"`
	Grand Summary           `json:"grand"`
}

// TotalsCache caches totals snapshots per record kind and period key.
// Writers invalidate the whole kind, cheap given the handful of cached
// periods.
type TotalsCache interface {
	Get(ctx context.Context, kind roster.Kind, key string) (*TotalsSnapshot, error)
	Set(ctx context.Context, kind roster.Kind, key string, snapshot *TotalsSnapshot, ttl time.Duration) error
	InvalidateKind(ctx context.Context, kind roster.Kind) error
}

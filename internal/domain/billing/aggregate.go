package billing

import (
	"sort"

	"github.com/google/uuid"

	"github.com/gestiserv/backend/internal/domain/shared/valueobject"
)

// Summary holds the totals for a record set, split by lifecycle state.
type Summary struct {
	Count    int               `json:"count"`
	Gross    valueobject.Money `json:"gross"`
	Pending  valueobject.Money `json:"pending"`
	Invoiced valueobject.Money `json:"invoiced"`
	Paid     valueobject.Money `json:"paid"`
}

// Outstanding returns everything not yet paid, the pending figure of the
// legacy two-state view
func (s Summary) Outstanding() valueobject.Money {
	return valueobject.NewMoneyCOP(s.Pending.Int64() + s.Invoiced.Int64())
}

// Aggregate computes totals over a record set. Pure function, recomputed
// whenever the filtered set changes.
func Aggregate[T Record](records []T) Summary {
	var gross, pending, invoiced, paid int64
	for _, r := range records {
		amount := r.GetAmount().Int64()
		gross += amount
		switch r.GetStatus() {
		case StatusInvoiced:
			invoiced += amount
		case StatusPaid:
			paid += amount
		default:
			pending += amount
		}
	}
	return Summary{
		Count:    len(records),
		Gross:    valueobject.NewMoneyCOP(gross),
		Pending:  valueobject.NewMoneyCOP(pending),
		Invoiced: valueobject.NewMoneyCOP(invoiced),
		Paid:     valueobject.NewMoneyCOP(paid),
	}
}

// ProviderSummary is one row of the totals report.
type ProviderSummary struct {
	ProviderID   uuid.UUID `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	Summary
}

// AggregateByProvider groups the same aggregation by counterparty, sorted
// by provider name. Callers merge in zero rows for providers without
// records.
func AggregateByProvider[T Record](records []T) []ProviderSummary {
	grouped := make(map[uuid.UUID][]T)
	for _, r := range records {
		id := r.GetProviderID()
		grouped[id] = append(grouped[id], r)
	}

	out := make([]ProviderSummary, 0, len(grouped))
	for id, group := range grouped {
		out = append(out, ProviderSummary{
			ProviderID:   id,
			ProviderName: group[0].GetProviderName(),
			Summary:      Aggregate(group),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProviderName == out[j].ProviderName {
			return out[i].ProviderID.String() < out[j].ProviderID.String()
		}
		return out[i].ProviderName < out[j].ProviderName
	})
	return out
}

package billing

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	paramStatus     = "estado"
	paramLegacyPaid = "pago"
	paramText       = "busqueda"

	providerAll = "todos"
)

// FilterState is the complete listing filter. It is ephemeral view state,
// reconstructed from the query string on every page load and written back
// on every change. A Nil ProviderID means no provider restriction.
type FilterState struct {
	Period     PeriodSelection
	Status     StatusFilter
	ProviderID uuid.UUID
	Text       string
}

// DefaultFilterState returns the unfiltered state for the current year
func DefaultFilterState() FilterState {
	return FilterState{
		Period: CurrentYearPeriod(),
		Status: StatusFilterAll,
	}
}

// DecodeFilterState reads a listing's filter from its query parameters.
// providerParam names the counterparty parameter for the listing kind
// (instrumentadora or mensajero). Every parameter is optional; absence or
// a malformed value means the unrestricted default.
func DecodeFilterState(q url.Values, providerParam string) FilterState {
	f := FilterState{
		Period: DecodePeriod(q),
		Status: ParseStatusFilter(q.Get(paramStatus), q.Get(paramLegacyPaid)),
		Text:   q.Get(paramText),
	}

	if raw := q.Get(providerParam); raw != "" && raw != providerAll {
		if id, err := uuid.Parse(raw); err == nil {
			f.ProviderID = id
		}
	}

	return f
}

// EncodeQuery serializes the state back to a query string. Parameters at
// their default value are omitted, so the no-filter state is the empty
// string. The legacy pago parameter is accepted on decode but never
// written back.
func (f FilterState) EncodeQuery(providerParam string) string {
	q := url.Values{}
	f.Period.EncodeInto(q)

	if !f.Status.IsAll() {
		q.Set(paramStatus, string(f.Status))
	}
	if f.ProviderID != uuid.Nil {
		q.Set(providerParam, f.ProviderID.String())
	}
	if f.Text != "" {
		q.Set(paramText, f.Text)
	}

	return q.Encode()
}

// HasActiveFilters reports whether any parameter differs from its default
func (f FilterState) HasActiveFilters() bool {
	return !f.Period.IsDefault() || !f.Status.IsAll() || f.ProviderID != uuid.Nil || f.Text != ""
}

// Apply filters records with the four predicates ANDed together. It is
// pure and order-preserving; records arrive pre-sorted newest first and
// leave in the same relative order.
func Apply[T Record](records []T, f FilterState) []T {
	text := strings.ToLower(f.Text)

	out := make([]T, 0, len(records))
	for _, r := range records {
		if !f.Period.Matches(r.GetOccurredAt()) {
			continue
		}
		if !f.Status.Matches(r.GetStatus()) {
			continue
		}
		if f.ProviderID != uuid.Nil && r.GetProviderID() != f.ProviderID {
			continue
		}
		if !matchesText(r, text) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesText does a case-insensitive substring match over the record's
// descriptive fields. The empty needle matches everything, which is what
// an empty search box means.
func matchesText(r Record, lowered string) bool {
	if lowered == "" {
		return true
	}
	for _, field := range r.SearchFields() {
		if strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	return false
}

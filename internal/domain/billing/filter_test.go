package billing

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestiserv/backend/internal/domain/shared/valueobject"
)

func newTestSurgical(t *testing.T, providerID uuid.UUID, occurredAt string, amount int64, status Status) *SurgicalService {
	t.Helper()
	s, err := NewSurgicalService(providerID, "Paciente", "Clinica Central", "Bogotá", occurredAt, valueobject.NewMoneyCOP(amount), "")
	require.NoError(t, err)
	s.Status = status
	return s
}

func TestApplyPeriodAndStatus(t *testing.T) {
	provider := uuid.New()
	records := []*SurgicalService{
		newTestSurgical(t, provider, "2024-01-10T08:00:00-05:00", 100, StatusPending),
		newTestSurgical(t, provider, "2024-02-10T08:00:00-05:00", 200, StatusPending),
		newTestSurgical(t, provider, "2024-03-05T08:00:00-05:00", 300, StatusPaid),
	}

	f := FilterState{
		Period: PeriodSelection{Months: []int{1, 3}, Year: 2024},
		Status: StatusFilterAll,
	}
	got := Apply(records, f)
	require.Len(t, got, 2)
	assert.Equal(t, records[0].ID, got[0].ID)
	assert.Equal(t, records[2].ID, got[1].ID)

	f.Status = StatusFilter(StatusPaid)
	got = Apply(records, f)
	require.Len(t, got, 1)
	assert.Equal(t, records[2].ID, got[0].ID)
}

func TestApplyProviderFilter(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	records := []*SurgicalService{
		newTestSurgical(t, a, "2024-01-10T08:00:00-05:00", 100, StatusPending),
		newTestSurgical(t, b, "2024-01-11T08:00:00-05:00", 200, StatusPending),
	}

	f := FilterState{Period: PeriodSelection{Year: 2024}, ProviderID: b}
	got := Apply(records, f)
	require.Len(t, got, 1)
	assert.Equal(t, b, got[0].ProviderID)
}

func TestApplyTextFilter(t *testing.T) {
	provider := uuid.New()
	r := newTestSurgical(t, provider, "2024-01-10T08:00:00-05:00", 100, StatusPending)
	r.City = "Bogotá"
	other := newTestSurgical(t, provider, "2024-01-11T08:00:00-05:00", 100, StatusPending)
	other.City = "Medellín"
	records := []*SurgicalService{r, other}

	// case-insensitive substring match against descriptive fields
	f := FilterState{Period: PeriodSelection{Year: 2024}, Text: "bog"}
	got := Apply(records, f)
	require.Len(t, got, 1)
	assert.Equal(t, "Bogotá", got[0].City)

	// the provider name is searchable too
	r.ProviderName = "María García"
	f.Text = "garcía"
	got = Apply(records, f)
	require.Len(t, got, 1)
	assert.Equal(t, r.ID, got[0].ID)

	// empty text passes everything
	f.Text = ""
	assert.Len(t, Apply(records, f), 2)
}

func TestApplyPreservesOrder(t *testing.T) {
	provider := uuid.New()
	var records []*SurgicalService
	for day := 28; day >= 1; day -= 3 {
		records = append(records, newTestSurgical(t, provider,
			time.Date(2024, 5, day, 8, 0, 0, 0, time.UTC).Format("2006-01-02T15:04:05")+"-05:00",
			100, StatusPending))
	}

	got := Apply(records, FilterState{Period: PeriodSelection{Year: 2024}})
	require.Len(t, got, len(records))
	for i := range records {
		assert.Equal(t, records[i].ID, got[i].ID)
	}
}

func TestDecodeFilterState(t *testing.T) {
	id := uuid.New()
	q, err := url.ParseQuery("meses=2&anio=2024&estado=pagado&instrumentadora=" + id.String() + "&busqueda=clinica")
	require.NoError(t, err)

	f := DecodeFilterState(q, "instrumentadora")
	assert.Equal(t, PeriodSelection{Months: []int{2}, Year: 2024}, f.Period)
	assert.Equal(t, StatusFilter("pagado"), f.Status)
	assert.Equal(t, id, f.ProviderID)
	assert.Equal(t, "clinica", f.Text)
	assert.True(t, f.HasActiveFilters())
}

func TestDecodeFilterStateDefaults(t *testing.T) {
	f := DecodeFilterState(url.Values{}, "mensajero")
	assert.Equal(t, CurrentYearPeriod(), f.Period)
	assert.True(t, f.Status.IsAll())
	assert.Equal(t, uuid.Nil, f.ProviderID)
	assert.Empty(t, f.Text)
	assert.False(t, f.HasActiveFilters())

	// "todos" and malformed ids both mean no provider restriction
	q := url.Values{"mensajero": {"todos"}}
	assert.Equal(t, uuid.Nil, DecodeFilterState(q, "mensajero").ProviderID)
	q = url.Values{"mensajero": {"not-a-uuid"}}
	assert.Equal(t, uuid.Nil, DecodeFilterState(q, "mensajero").ProviderID)
}

func TestDecodeFilterStateLegacyPago(t *testing.T) {
	q := url.Values{"pago": {"pagados"}}
	f := DecodeFilterState(q, "mensajero")
	assert.Equal(t, StatusFilter(StatusPaid), f.Status)

	// the legacy parameter is never written back
	assert.Equal(t, "estado=pagado", f.EncodeQuery("mensajero"))
}

func TestEncodeQueryOmitsDefaults(t *testing.T) {
	// no filters serializes to the empty string
	assert.Empty(t, DefaultFilterState().EncodeQuery("instrumentadora"))
}

func TestFilterStateRoundTrip(t *testing.T) {
	id := uuid.New()
	states := []FilterState{
		DefaultFilterState(),
		{Period: PeriodSelection{Months: []int{1, 3}, Year: 2024}, Status: StatusFilter(StatusInvoiced), ProviderID: id, Text: "bog"},
		{Period: PeriodSelection{AllYears: true}, Status: StatusFilterAll},
	}

	for _, state := range states {
		encoded := state.EncodeQuery("instrumentadora")
		q, err := url.ParseQuery(encoded)
		require.NoError(t, err)
		assert.Equal(t, state, DecodeFilterState(q, "instrumentadora"), "round trip via %q", encoded)
	}
}

// Clearing every filter from an active state must reset the query string
// to empty and the filtered set to the full record set.
func TestClearFiltersResetsEverything(t *testing.T) {
	provider := uuid.New()
	records := []*SurgicalService{
		newTestSurgical(t, provider, "2024-01-10T08:00:00-05:00", 100, StatusPending),
		newTestSurgical(t, provider, "2023-06-10T08:00:00-05:00", 200, StatusPaid),
		newTestSurgical(t, provider, "2022-12-31T23:30:00-05:00", 300, StatusInvoiced),
	}

	active := FilterState{
		Period:     PeriodSelection{Months: []int{1}, Year: 2024},
		Status:     StatusFilter(StatusPending),
		ProviderID: provider,
	}
	require.NotEmpty(t, active.EncodeQuery("instrumentadora"))

	cleared := FilterState{Period: PeriodSelection{AllYears: true}, Status: StatusFilterAll}
	assert.Len(t, Apply(records, cleared), len(records))

	yearDefault := DefaultFilterState()
	assert.Empty(t, yearDefault.EncodeQuery("instrumentadora"))
}

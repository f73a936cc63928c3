package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	provider := uuid.New()
	records := []*SurgicalService{
		newTestSurgical(t, provider, "2024-01-10T08:00:00-05:00", 100, StatusPending),
		newTestSurgical(t, provider, "2024-01-11T08:00:00-05:00", 200, StatusInvoiced),
		newTestSurgical(t, provider, "2024-01-12T08:00:00-05:00", 300, StatusPaid),
		newTestSurgical(t, provider, "2024-01-13T08:00:00-05:00", 50, StatusPending),
	}

	s := Aggregate(records)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, int64(650), s.Gross.Int64())
	assert.Equal(t, int64(150), s.Pending.Int64())
	assert.Equal(t, int64(200), s.Invoiced.Int64())
	assert.Equal(t, int64(300), s.Paid.Int64())

	// the legacy two-state view lumps pending and invoiced together
	assert.Equal(t, int64(350), s.Outstanding().Int64())
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate([]*CourierService{})
	assert.Zero(t, s.Count)
	assert.True(t, s.Gross.IsZero())
	assert.True(t, s.Outstanding().IsZero())
}

func TestAggregateByProvider(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ra := newTestSurgical(t, a, "2024-01-10T08:00:00-05:00", 100, StatusPaid)
	ra.ProviderName = "Ana"
	ra2 := newTestSurgical(t, a, "2024-01-11T08:00:00-05:00", 50, StatusPending)
	ra2.ProviderName = "Ana"
	rb := newTestSurgical(t, b, "2024-01-12T08:00:00-05:00", 200, StatusInvoiced)
	rb.ProviderName = "Beatriz"

	rows := AggregateByProvider([]*SurgicalService{rb, ra, ra2})
	require.Len(t, rows, 2)

	// sorted by provider name
	assert.Equal(t, "Ana", rows[0].ProviderName)
	assert.Equal(t, a, rows[0].ProviderID)
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, int64(150), rows[0].Gross.Int64())
	assert.Equal(t, int64(100), rows[0].Paid.Int64())
	assert.Equal(t, int64(50), rows[0].Pending.Int64())

	assert.Equal(t, "Beatriz", rows[1].ProviderName)
	assert.Equal(t, int64(200), rows[1].Invoiced.Int64())
}

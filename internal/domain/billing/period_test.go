package billing

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePeriod(t *testing.T) {
	currentYear := time.Now().Year()

	tests := []struct {
		name     string
		query    string
		expected PeriodSelection
	}{
		{
			name:     "empty query means current year, all months",
			query:    "",
			expected: PeriodSelection{Year: currentYear},
		},
		{
			name:     "explicit months and year",
			query:    "meses=1,3&anio=2024",
			expected: PeriodSelection{Months: []int{1, 3}, Year: 2024},
		},
		{
			name:     "months come back sorted",
			query:    "meses=11,2,7&anio=2024",
			expected: PeriodSelection{Months: []int{2, 7, 11}, Year: 2024},
		},
		{
			name:     "todos lifts the year restriction",
			query:    "anio=todos",
			expected: PeriodSelection{AllYears: true},
		},
		{
			name:     "malformed month tokens are dropped",
			query:    "meses=1,abc,13,0,3&anio=2024",
			expected: PeriodSelection{Months: []int{1, 3}, Year: 2024},
		},
		{
			name:     "duplicate months collapse",
			query:    "meses=5,5,5&anio=2023",
			expected: PeriodSelection{Months: []int{5}, Year: 2023},
		},
		{
			name:     "non-numeric year falls back to current",
			query:    "anio=nope",
			expected: PeriodSelection{Year: currentYear},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, DecodePeriod(q))
		})
	}
}

func TestPeriodRoundTrip(t *testing.T) {
	currentYear := time.Now().Year()

	selections := []PeriodSelection{
		{Year: currentYear},
		{Months: []int{1, 3}, Year: 2024},
		{Months: []int{12}, Year: 2020},
		{AllYears: true},
		{Months: []int{2, 6, 9}, AllYears: true},
		{Year: 2030},
	}

	for _, sel := range selections {
		q := url.Values{}
		sel.EncodeInto(q)
		decoded := DecodePeriod(q)
		assert.Equal(t, sel, decoded, "round trip for %+v via %q", sel, q.Encode())
	}
}

func TestPeriodEncodeOmitsDefaults(t *testing.T) {
	q := url.Values{}
	CurrentYearPeriod().EncodeInto(q)
	assert.Empty(t, q.Encode())
}

func TestPeriodMatches(t *testing.T) {
	tests := []struct {
		name       string
		sel        PeriodSelection
		occurredAt string
		want       bool
	}{
		{"month not in selection", PeriodSelection{Months: []int{1, 3}, Year: 2024}, "2024-02-10T08:00:00-05:00", false},
		{"month in selection", PeriodSelection{Months: []int{1, 3}, Year: 2024}, "2024-03-05T08:00:00-05:00", true},
		{"wrong year", PeriodSelection{Months: []int{3}, Year: 2024}, "2023-03-05T08:00:00-05:00", false},
		{"all years matches any year", PeriodSelection{Months: []int{3}, AllYears: true}, "1999-03-05T08:00:00-05:00", true},
		{"empty months matches any month", PeriodSelection{Year: 2024}, "2024-07-15T00:00:00-05:00", true},
		{"malformed timestamp never matches", PeriodSelection{Year: 2024, AllYears: true}, "oops", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Matches(tt.occurredAt))
		})
	}
}

// A timestamp at 23:00 local on the last day of the month is the next
// month in UTC. Filtering reads the literal digits, so the record stays
// in the month the user wrote.
func TestPeriodMatchesIgnoresTimezoneRollover(t *testing.T) {
	sel := PeriodSelection{Months: []int{1}, Year: 2024}
	assert.True(t, sel.Matches("2024-01-31T23:00:00-05:00"))

	feb := PeriodSelection{Months: []int{2}, Year: 2024}
	assert.False(t, feb.Matches("2024-01-31T23:00:00-05:00"))
}

func TestPeriodDescribe(t *testing.T) {
	assert.Equal(t, "Enero, Marzo 2024", PeriodSelection{Months: []int{1, 3}, Year: 2024}.Describe())
	assert.Equal(t, "Todos los meses 2025", PeriodSelection{Year: 2025}.Describe())
	assert.Equal(t, "Diciembre, todos los años", PeriodSelection{Months: []int{12}, AllYears: true}.Describe())
}

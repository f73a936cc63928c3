package billing

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	paramMonths = "meses"
	paramYear   = "anio"

	yearAll = "todos"
)

var monthNames = [13]string{"",
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// PeriodSelection restricts visible records to a set of months within a
// year, or across all years. An empty month set means no month
// restriction.
type PeriodSelection struct {
	Months   []int
	Year     int
	AllYears bool
}

// CurrentYearPeriod returns the default selection: every month of the
// current calendar year
func CurrentYearPeriod() PeriodSelection {
	return PeriodSelection{Year: time.Now().Year()}
}

// DecodePeriod reconstructs a selection from query parameters. Malformed
// month tokens are dropped; a missing year means the current year and the
// literal "todos" lifts the year restriction.
func DecodePeriod(q url.Values) PeriodSelection {
	sel := CurrentYearPeriod()

	if raw := q.Get(paramMonths); raw != "" {
		seen := make(map[int]bool)
		for _, tok := range strings.Split(raw, ",") {
			m, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil || m < 1 || m > 12 || seen[m] {
				continue
			}
			seen[m] = true
			sel.Months = append(sel.Months, m)
		}
		sort.Ints(sel.Months)
	}

	switch raw := q.Get(paramYear); {
	case raw == yearAll:
		sel.AllYears = true
		sel.Year = 0
	case raw != "":
		if y, err := strconv.Atoi(raw); err == nil {
			sel.Year = y
		}
	}

	return sel
}

// EncodeInto writes the selection's non-default parameters into q. The
// current calendar year and the empty month set are omitted so default
// views keep a clean URL.
func (p PeriodSelection) EncodeInto(q url.Values) {
	if len(p.Months) > 0 {
		months := append([]int(nil), p.Months...)
		sort.Ints(months)
		toks := make([]string, len(months))
		for i, m := range months {
			toks[i] = strconv.Itoa(m)
		}
		q.Set(paramMonths, strings.Join(toks, ","))
	}

	switch {
	case p.AllYears:
		q.Set(paramYear, yearAll)
	case p.Year != time.Now().Year():
		q.Set(paramYear, strconv.Itoa(p.Year))
	}
}

// Matches reports whether a record timestamp falls inside the selection.
// The year and month are read as literal digits from the stored string so
// a midnight-boundary timestamp never rolls into the adjacent day under a
// different timezone.
func (p PeriodSelection) Matches(occurredAt string) bool {
	if len(occurredAt) < 7 || occurredAt[4] != '-' {
		return false
	}
	year, err := strconv.Atoi(occurredAt[0:4])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(occurredAt[5:7])
	if err != nil {
		return false
	}

	if !p.AllYears && year != p.Year {
		return false
	}
	if len(p.Months) == 0 {
		return true
	}
	for _, m := range p.Months {
		if m == month {
			return true
		}
	}
	return false
}

// Describe renders the selection for confirmation dialogs and filter
// buttons, e.g. "Enero, Marzo 2024" or "Todos los meses 2025".
func (p PeriodSelection) Describe() string {
	var months string
	switch len(p.Months) {
	case 0:
		months = "Todos los meses"
	case 12:
		months = "Todos los meses"
	default:
		names := make([]string, 0, len(p.Months))
		for _, m := range p.Months {
			if m >= 1 && m <= 12 {
				names = append(names, monthNames[m])
			}
		}
		months = strings.Join(names, ", ")
	}

	if p.AllYears {
		return fmt.Sprintf("%s, todos los años", months)
	}
	return fmt.Sprintf("%s %d", months, p.Year)
}

// IsDefault reports whether the selection equals the decode result of an
// empty query string
func (p PeriodSelection) IsDefault() bool {
	return len(p.Months) == 0 && !p.AllYears && p.Year == time.Now().Year()
}

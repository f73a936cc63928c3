package billing

// Status represents the payment lifecycle state of a service record.
// Records move pendiente -> facturado -> pagado; batch transitions never
// skip a state.
type Status string

const (
	StatusPending  Status = "pendiente"
	StatusInvoiced Status = "facturado"
	StatusPaid     Status = "pagado"
)

// IsValid checks if the status is one of the three lifecycle states
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusInvoiced || s == StatusPaid
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// DeriveStatus maps any persisted status value onto a valid lifecycle
// state. Unknown or empty values mean the record predates the enum and
// default to pendiente.
func DeriveStatus(raw string) Status {
	s := Status(raw)
	if s.IsValid() {
		return s
	}
	return StatusPending
}

// DeriveStatusLegacy resolves a status for rows that may carry only the
// legacy boolean paid flag. A valid enum value wins; otherwise the flag
// decides between pagado and pendiente.
func DeriveStatusLegacy(raw string, paid bool) Status {
	s := Status(raw)
	if s.IsValid() {
		return s
	}
	if paid {
		return StatusPaid
	}
	return StatusPending
}

// CanBatchTransition reports whether a bulk transition from one state to
// another is allowed. Only the two forward steps are.
func CanBatchTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusInvoiced
	case StatusInvoiced:
		return to == StatusPaid
	default:
		return false
	}
}

// BatchTarget returns the state a batch transition from the given state
// moves records into
func BatchTarget(from Status) (Status, bool) {
	switch from {
	case StatusPending:
		return StatusInvoiced, true
	case StatusInvoiced:
		return StatusPaid, true
	default:
		return "", false
	}
}

// StatusFilter is the listing-level status restriction. "todos" passes
// every record.
type StatusFilter string

const StatusFilterAll StatusFilter = "todos"

// ParseStatusFilter reads the estado query parameter, falling back to the
// legacy pago parameter when estado is absent. Unknown values mean no
// restriction.
func ParseStatusFilter(estado, legacyPago string) StatusFilter {
	if s := Status(estado); s.IsValid() {
		return StatusFilter(s)
	}
	switch legacyPago {
	case "pagados":
		return StatusFilter(StatusPaid)
	case "pendientes":
		return StatusFilter(StatusPending)
	}
	return StatusFilterAll
}

// Matches reports whether a record status passes the filter
func (f StatusFilter) Matches(s Status) bool {
	if f == StatusFilterAll || f == "" {
		return true
	}
	return Status(f) == s
}

// IsAll reports whether the filter is the unrestricted default
func (f StatusFilter) IsAll() bool {
	return f == StatusFilterAll || f == ""
}

package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestiserv/backend/internal/domain/billing"
)

// =============================================================================
// Shared DTOs
// =============================================================================

// SummaryResponse carries record-set totals. Amounts are whole COP.
type SummaryResponse struct {
	Count       int   `json:"count"`
	Gross       int64 `json:"gross"`
	Pending     int64 `json:"pending"`
	Invoiced    int64 `json:"invoiced"`
	Paid        int64 `json:"paid"`
	Outstanding int64 `json:"outstanding"`
}

// ToSummaryResponse converts a domain summary to a response DTO
func ToSummaryResponse(s billing.Summary) SummaryResponse {
	return SummaryResponse{
		Count:       s.Count,
		Gross:       s.Gross.Int64(),
		Pending:     s.Pending.Int64(),
		Invoiced:    s.Invoiced.Int64(),
		Paid:        s.Paid.Int64(),
		Outstanding: s.Outstanding().Int64(),
	}
}

// FilterMeta echoes the applied filter back to the client. Query is the
// canonical encoding, suitable for bookmarking; the empty string means
// the default view.
type FilterMeta struct {
	Query  string `json:"query"`
	Period string `json:"period"`
	Active bool   `json:"active"`
}

// =============================================================================
// Surgical service DTOs
// =============================================================================

// CreateSurgicalServiceRequest represents a request to record a surgical
// assistance service. Date is YYYY-MM-DD and Time an optional HH:MM.
type CreateSurgicalServiceRequest struct {
	ProviderID  uuid.UUID `json:"instrumentadora_id" binding:"required"`
	Patient     string    `json:"paciente" binding:"required,min=1,max=200"`
	Institution string    `json:"institucion" binding:"required,min=1,max=200"`
	City        string    `json:"ciudad" binding:"max=100"`
	Date        string    `json:"fecha" binding:"required"`
	Time        string    `json:"hora"`
	Amount      int64     `json:"valor" binding:"min=0"`
	Notes       string    `json:"observaciones"`
}

// UpdateSurgicalServiceRequest represents a full-record edit. An empty
// Status keeps the record's current state.
type UpdateSurgicalServiceRequest struct {
	ProviderID  uuid.UUID `json:"instrumentadora_id" binding:"required"`
	Patient     string    `json:"paciente" binding:"required,min=1,max=200"`
	Institution string    `json:"institucion" binding:"required,min=1,max=200"`
	City        string    `json:"ciudad" binding:"max=100"`
	Date        string    `json:"fecha" binding:"required"`
	Time        string    `json:"hora"`
	Amount      int64     `json:"valor" binding:"min=0"`
	Notes       string    `json:"observaciones"`
	Status      string    `json:"estado" binding:"omitempty,oneof=pendiente facturado pagado"`
}

// SurgicalServiceResponse represents a surgical service record in API
// responses
type SurgicalServiceResponse struct {
	ID           uuid.UUID `json:"id"`
	ProviderID   uuid.UUID `json:"instrumentadora_id"`
	ProviderName string    `json:"instrumentadora"`
	Patient      string    `json:"paciente"`
	Institution  string    `json:"institucion"`
	City         string    `json:"ciudad"`
	Date         string    `json:"fecha"`
	OccurredAt   string    `json:"fecha_hora"`
	Amount       int64     `json:"valor"`
	Notes        string    `json:"observaciones"`
	Status       string    `json:"estado"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToSurgicalServiceResponse converts a domain record to a response DTO
func ToSurgicalServiceResponse(s *billing.SurgicalService) SurgicalServiceResponse {
	return SurgicalServiceResponse{
		ID:           s.ID,
		ProviderID:   s.ProviderID,
		ProviderName: s.ProviderName,
		Patient:      s.Patient,
		Institution:  s.Institution,
		City:         s.City,
		Date:         billing.DateComponent(s.OccurredAt),
		OccurredAt:   s.OccurredAt,
		Amount:       s.Amount.Int64(),
		Notes:        s.Notes,
		Status:       s.Status.String(),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// SurgicalServiceListResult is the full listing payload: the filtered
// records, their totals and the canonical filter echo.
type SurgicalServiceListResult struct {
	Items   []SurgicalServiceResponse `json:"items"`
	Summary SummaryResponse           `json:"summary"`
	Filter  FilterMeta                `json:"filter"`
}

// =============================================================================
// Courier service DTOs
// =============================================================================

// CreateCourierServiceRequest represents a request to record a courier
// delivery
type CreateCourierServiceRequest struct {
	ProviderID      uuid.UUID `json:"mensajero_id" binding:"required"`
	Origin          string    `json:"origen" binding:"required,min=1,max=200"`
	OriginCity      string    `json:"ciudad_origen" binding:"max=100"`
	Destination     string    `json:"destino" binding:"required,min=1,max=200"`
	DestinationCity string    `json:"ciudad_destino" binding:"max=100"`
	Date            string    `json:"fecha" binding:"required"`
	Time            string    `json:"hora"`
	Amount          int64     `json:"valor" binding:"min=0"`
	Notes           string    `json:"observaciones"`
}

// UpdateCourierServiceRequest represents a full-record edit
type UpdateCourierServiceRequest struct {
	ProviderID      uuid.UUID `json:"mensajero_id" binding:"required"`
	Origin          string    `json:"origen" binding:"required,min=1,max=200"`
	OriginCity      string    `json:"ciudad_origen" binding:"max=100"`
	Destination     string    `json:"destino" binding:"required,min=1,max=200"`
	DestinationCity string    `json:"ciudad_destino" binding:"max=100"`
	Date            string    `json:"fecha" binding:"required"`
	Time            string    `json:"hora"`
	Amount          int64     `json:"valor" binding:"min=0"`
	Notes           string    `json:"observaciones"`
	Status          string    `json:"estado" binding:"omitempty,oneof=pendiente facturado pagado"`
}

// CourierServiceResponse represents a courier service record in API
// responses
type CourierServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	ProviderID      uuid.UUID `json:"mensajero_id"`
	ProviderName    string    `json:"mensajero"`
	Origin          string    `json:"origen"`
	OriginCity      string    `json:"ciudad_origen"`
	Destination     string    `json:"destino"`
	DestinationCity string    `json:"ciudad_destino"`
	Date            string    `json:"fecha"`
	OccurredAt      string    `json:"fecha_hora"`
	Amount          int64     `json:"valor"`
	Notes           string    `json:"observaciones"`
	Status          string    `json:"estado"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToCourierServiceResponse converts a domain record to a response DTO
func ToCourierServiceResponse(c *billing.CourierService) CourierServiceResponse {
	return CourierServiceResponse{
		ID:              c.ID,
		ProviderID:      c.ProviderID,
		ProviderName:    c.ProviderName,
		Origin:          c.Origin,
		OriginCity:      c.OriginCity,
		Destination:     c.Destination,
		DestinationCity: c.DestinationCity,
		Date:            billing.DateComponent(c.OccurredAt),
		OccurredAt:      c.OccurredAt,
		Amount:          c.Amount.Int64(),
		Notes:           c.Notes,
		Status:          c.Status.String(),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// CourierServiceListResult is the full listing payload for couriers
type CourierServiceListResult struct {
	Items   []CourierServiceResponse `json:"items"`
	Summary SummaryResponse          `json:"summary"`
	Filter  FilterMeta               `json:"filter"`
}

// =============================================================================
// Batch transition DTOs
// =============================================================================

// BatchPlanRequest asks for a confirmation plan over the current filtered
// view. Only the two forward transitions have a source state.
type BatchPlanRequest struct {
	From string `json:"desde" binding:"required,oneof=pendiente facturado"`
}

// BatchPlanResponse is the confirmation summary shown before a bulk
// transition executes
type BatchPlanResponse struct {
	From     string      `json:"desde"`
	To       string      `json:"hacia"`
	IDs      []uuid.UUID `json:"ids"`
	Affected int         `json:"afectados"`
	Total    int64       `json:"total"`
	Preview  []string    `json:"detalle"`
	More     int         `json:"mas"`
	Scope    string      `json:"alcance"`
}

// ToBatchPlanResponse converts a domain batch plan to a response DTO
func ToBatchPlanResponse(plan billing.BatchPlan, scope string) BatchPlanResponse {
	return BatchPlanResponse{
		From:     plan.From.String(),
		To:       plan.To.String(),
		IDs:      plan.IDs,
		Affected: plan.Affected,
		Total:    plan.Total.Int64(),
		Preview:  plan.Preview,
		More:     plan.More,
		Scope:    scope,
	}
}

// BatchExecuteRequest carries the confirmed plan back for execution. The
// IDs are the exact set the plan showed; records that changed state since
// planning are skipped by the guarded update.
type BatchExecuteRequest struct {
	From string      `json:"desde" binding:"required,oneof=pendiente facturado"`
	To   string      `json:"hacia" binding:"required,oneof=facturado pagado"`
	IDs  []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// BatchExecuteResponse reports how many records the bulk update changed
type BatchExecuteResponse struct {
	Updated int64  `json:"actualizados"`
	Status  string `json:"estado"`
}

// =============================================================================
// Totals report DTOs
// =============================================================================

// ProviderTotalsRow is one provider's line in the totals report
type ProviderTotalsRow struct {
	ProviderID   uuid.UUID `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	SummaryResponse
}

// TotalsResponse is the per-provider totals report for one record kind.
// Rows include providers without matching records, at zero.
type TotalsResponse struct {
	Rows   []ProviderTotalsRow `json:"rows"`
	Grand  SummaryResponse     `json:"grand"`
	Period string              `json:"period"`
	Cached bool                `json:"cached"`
}

// ToTotalsResponse converts a totals snapshot to a response DTO
func ToTotalsResponse(snapshot *billing.TotalsSnapshot, period string, cached bool) TotalsResponse {
	rows := make([]ProviderTotalsRow, len(snapshot.Rows))
	for i, row := range snapshot.Rows {
		rows[i] = ProviderTotalsRow{
			ProviderID:      row.ProviderID,
			ProviderName:    row.ProviderName,
			SummaryResponse: ToSummaryResponse(row.Summary),
		}
	}
	return TotalsResponse{
		Rows:   rows,
		Grand:  ToSummaryResponse(snapshot.Grand),
		Period: period,
		Cached: cached,
	}
}

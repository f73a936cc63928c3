// Package billing provides the domain model for billable service records.
//
// A service record captures one delivered service (a surgical assistance
// or a courier delivery) and tracks it through the payment lifecycle
// pendiente -> facturado -> pagado. Both record kinds share the same
// lifecycle, filtering, and aggregation rules; generic helpers operate
// over the Record interface.
//
// Key pieces:
//   - SurgicalService / CourierService: the two record aggregates
//   - Status: the payment lifecycle and its batch-transition rules
//   - FilterState: the in-memory filter engine and its URL query codec
//   - PeriodSelection: literal date-prefix period matching
//   - Summary / TotalsSnapshot: aggregation for listings and per-provider totals
package billing

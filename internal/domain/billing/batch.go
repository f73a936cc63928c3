package billing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gestiserv/backend/internal/domain/shared"
	"github.com/gestiserv/backend/internal/domain/shared/valueobject"
)

// BatchPreviewLimit caps the record list shown in the confirmation
// summary before a bulk transition
const BatchPreviewLimit = 10

// BatchPlan is the confirmation summary for a bulk status transition. It
// is computed over the currently filtered subset, never the full dataset.
type BatchPlan struct {
	From     Status
	To       Status
	IDs      []uuid.UUID
	Affected int
	Total    valueobject.Money
	Preview  []string
	More     int
}

// PlanBatch selects the records in the from state out of an already
// filtered set and computes the money total and preview for confirmation.
// Returns ErrEmptyBatch when nothing matches so no update is ever issued
// for an empty id set.
func PlanBatch[T Record](filtered []T, from Status) (BatchPlan, error) {
	to, ok := BatchTarget(from)
	if !ok {
		return BatchPlan{}, shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("No batch transition exists from status %s", from))
	}

	plan := BatchPlan{From: from, To: to, Total: valueobject.ZeroCOP()}
	var total int64
	for _, r := range filtered {
		if r.GetStatus() != from {
			continue
		}
		plan.IDs = append(plan.IDs, r.GetID())
		total += r.GetAmount().Int64()
		if len(plan.Preview) < BatchPreviewLimit {
			plan.Preview = append(plan.Preview, r.Label())
		}
	}

	plan.Affected = len(plan.IDs)
	if plan.Affected == 0 {
		return BatchPlan{}, shared.ErrEmptyBatch
	}
	plan.Total = valueobject.NewMoneyCOP(total)
	plan.More = plan.Affected - len(plan.Preview)

	return plan, nil
}

// ApplyTransition updates the in-memory records after a successful bulk
// write, so the view reflects the new states without a re-fetch
func ApplyTransition[T Record](records []T, ids []uuid.UUID, to Status) {
	idSet := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	for _, r := range records {
		if idSet[r.GetID()] {
			r.SetStatus(to)
		}
	}
}

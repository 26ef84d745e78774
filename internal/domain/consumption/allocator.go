package consumption

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pantrychef/v1/internal/domain/ingredient"
	"github.com/pantrychef/v1/internal/domain/measurement"
	"github.com/pantrychef/v1/internal/domain/pantry"
)

// Allocate runs a single requirement against a pantry snapshot. The
// caller's slice is never mutated.
func Allocate(req ingredient.Requirement, items []pantry.Item) Outcome {
	working := pantry.CloneItems(items)
	return allocate(req, working)
}

// AllocateBatch allocates every requirement in order against one shared
// working copy of the snapshot, so a later requirement sees what an
// earlier one already consumed. One outcome per requirement; a failed
// requirement never aborts the rest.
func AllocateBatch(reqs []ingredient.Requirement, items []pantry.Item) ([]Outcome, BatchSummary) {
	working := pantry.CloneItems(items)

	outcomes := make([]Outcome, 0, len(reqs))
	for _, req := range reqs {
		outcomes = append(outcomes, allocate(req, working))
	}
	return outcomes, Summarize(outcomes)
}

// allocate is the single consumption path: Pending → Satisfied |
// Insufficient | Missing, depleting the shared working copy as it goes.
func allocate(req ingredient.Requirement, working []*pantry.Item) Outcome {
	out := Outcome{
		Requirement: req,
		Warnings:    append([]string(nil), req.Warnings...),
	}

	needed := req.Quantity.Amount
	if needed < 0 {
		out.Warnings = append(out.Warnings,
			fmt.Sprintf("negative amount for %q clamped to zero", req.Name))
		needed = 0
	}
	if needed <= measurement.Epsilon {
		out.Status = StatusSatisfied
		return out
	}

	candidates := pantry.Match(req, working)
	if len(candidates) == 0 {
		out.Status = StatusMissing
		return out
	}

	remaining := needed
	for _, cand := range candidates {
		item := cand.Item

		available, err := measurement.ConvertQuantity(
			item.Quantity.Amount, item.Quantity.Unit, req.Quantity.Unit)
		if err != nil {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("unit mismatch: %s stored in %s, needed %s",
					item.Name, unitLabel(item.Quantity.UnitID()), unitLabel(req.Quantity.UnitID())))
			continue
		}

		consume := remaining
		if available < consume {
			consume = available
		}
		if consume <= 0 {
			continue
		}

		// Express the decrement in the item's native unit; the inverse
		// conversion cannot fail where the forward one succeeded.
		usedNative, err := measurement.ConvertQuantity(consume, req.Quantity.Unit, item.Quantity.Unit)
		if err != nil {
			continue
		}

		previous := item.Quantity.Amount
		next := previous - usedNative
		if next < 0 {
			// Unreachable by construction; clamp rather than propagate.
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("quantity for %s clamped to zero", item.Name))
			next = 0
		}
		item.Quantity.Amount = next

		out.Records = append(out.Records, Record{
			PantryItemID:     item.ID,
			ItemName:         item.Name,
			Unit:             item.Quantity.UnitID(),
			PreviousQuantity: previous,
			UsedQuantity:     usedNative,
			NewQuantity:      next,
		})

		remaining -= consume
		if remaining <= measurement.Epsilon {
			out.Status = StatusSatisfied
			return out
		}
	}

	if len(out.Records) == 0 {
		out.Status = StatusMissing
		return out
	}

	out.Status = StatusInsufficient
	rem := measurement.NewQuantity(remaining, req.Quantity.Unit)
	out.RemainingNeeded = &rem
	return out
}

// Summarize folds per-requirement outcomes into the batch shape. When
// several requirements draw on the same pantry item, its updated_items
// entry spans from the first record's previous quantity to the last
// record's new quantity.
func Summarize(outcomes []Outcome) BatchSummary {
	summary := BatchSummary{
		UpdatedItems:      []Record{},
		MissingItems:      []MissingItem{},
		InsufficientItems: []InsufficientItem{},
	}
	byItem := make(map[uuid.UUID]int)

	for _, out := range outcomes {
		summary.Warnings = append(summary.Warnings, out.Warnings...)

		for _, rec := range out.Records {
			if i, seen := byItem[rec.PantryItemID]; seen {
				summary.UpdatedItems[i].UsedQuantity += rec.UsedQuantity
				summary.UpdatedItems[i].NewQuantity = rec.NewQuantity
				continue
			}
			byItem[rec.PantryItemID] = len(summary.UpdatedItems)
			summary.UpdatedItems = append(summary.UpdatedItems, rec)
		}

		switch out.Status {
		case StatusMissing:
			reason := "not found in pantry"
			if len(out.Warnings) > 0 {
				reason = out.Warnings[len(out.Warnings)-1]
			}
			summary.MissingItems = append(summary.MissingItems, MissingItem{
				Ingredient: out.Requirement.Name,
				Reason:     reason,
			})
		case StatusInsufficient:
			needed := measurement.NewQuantity(out.Requirement.Quantity.Amount, out.Requirement.Quantity.Unit)
			consumed := measurement.NewQuantity(
				needed.Amount-out.RemainingNeeded.Amount, out.Requirement.Quantity.Unit)
			summary.InsufficientItems = append(summary.InsufficientItems, InsufficientItem{
				Ingredient:      out.Requirement.Name,
				Needed:          needed.String(),
				Consumed:        consumed.String(),
				RemainingNeeded: out.RemainingNeeded.String(),
				Warnings:        out.Warnings,
			})
		}
	}
	return summary
}

func unitLabel(id string) string {
	if id == "" {
		return "count"
	}
	return id
}

package consumption

import (
	"github.com/pantrychef/v1/internal/domain/ingredient"
	"github.com/pantrychef/v1/internal/domain/measurement"
)

// Aggregate merges repeated ingredient occurrences into shopping-list
// totals, grouping by canonical name. Occurrences in incompatible
// domains cannot be summed: the first occurrence is kept and the entry
// is flagged Partial, so no data is silently dropped. Independent of
// the allocator; never touches the pantry.
func Aggregate(reqs []ingredient.Requirement) []AggregatedIngredient {
	entriesByName := make(map[string][]measurement.Entry)
	var order []string

	for _, req := range reqs {
		if _, seen := entriesByName[req.Name]; !seen {
			order = append(order, req.Name)
		}
		entriesByName[req.Name] = append(entriesByName[req.Name], measurement.Entry{
			Unit:   req.Quantity.Unit,
			Amount: req.Quantity.Amount,
		})
	}

	out := make([]AggregatedIngredient, 0, len(order))
	for _, name := range order {
		total, ok := measurement.Aggregate(entriesByName[name])
		out = append(out, AggregatedIngredient{
			Name:     name,
			Quantity: measurement.NewQuantity(total.Amount, total.Unit),
			Category: ingredient.CategoryFor(name),
			Partial:  !ok,
		})
	}
	return out
}

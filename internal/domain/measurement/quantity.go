package measurement

import "fmt"

// Quantity is an amount with an optional unit. A nil unit means a bare
// count ("3 eggs").
type Quantity struct {
	Amount float64
	Unit   *Unit
}

// NewQuantity builds a quantity, clamping negative amounts to zero.
func NewQuantity(amount float64, unit *Unit) Quantity {
	if amount < 0 {
		amount = 0
	}
	return Quantity{Amount: amount, Unit: unit}
}

// UnitID returns the canonical unit id, or "" for a bare count.
func (q Quantity) UnitID() string {
	if q.Unit == nil {
		return ""
	}
	return q.Unit.ID
}

// IsZero reports whether the amount is zero (or negligibly close).
func (q Quantity) IsZero() bool {
	return q.Amount <= Epsilon
}

// String renders the quantity for display, using fraction notation for
// common cooking amounts.
func (q Quantity) String() string {
	if q.Unit == nil {
		return FormatAmount(q.Amount)
	}
	return fmt.Sprintf("%s %s", FormatAmount(q.Amount), q.Unit.ID)
}

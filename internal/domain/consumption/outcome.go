// Package consumption allocates recipe requirements against a pantry
// snapshot and reports exactly what to decrement. It is pure
// computation: the caller owns the snapshot and the write-back.
package consumption

import (
	"github.com/google/uuid"
	"github.com/pantrychef/v1/internal/domain/ingredient"
	"github.com/pantrychef/v1/internal/domain/measurement"
)

// Status is the terminal state of one requirement's allocation.
type Status string

const (
	StatusSatisfied    Status = "satisfied"
	StatusInsufficient Status = "insufficient"
	StatusMissing      Status = "missing"
)

// Record describes one decrement against one pantry item. Quantities
// are expressed in the item's native unit so the inventory write-back
// stays unit-consistent with how the item is stored.
type Record struct {
	PantryItemID     uuid.UUID `json:"pantry_item_id"`
	ItemName         string    `json:"item_name"`
	Unit             string    `json:"unit"`
	PreviousQuantity float64   `json:"previous_quantity"`
	UsedQuantity     float64   `json:"used_quantity"`
	NewQuantity      float64   `json:"new_quantity"`
}

// Outcome is the result of allocating a single requirement.
type Outcome struct {
	Requirement     ingredient.Requirement
	Status          Status
	Records         []Record
	RemainingNeeded *measurement.Quantity // set when Status is insufficient
	Warnings        []string
}

// MissingItem reports a requirement nothing in the pantry could serve.
type MissingItem struct {
	Ingredient string `json:"ingredient"`
	Reason     string `json:"reason"`
}

// InsufficientItem reports a requirement only partially covered.
type InsufficientItem struct {
	Ingredient      string   `json:"ingredient"`
	Needed          string   `json:"needed"`
	Consumed        string   `json:"consumed"`
	RemainingNeeded string   `json:"remaining_needed"`
	Warnings        []string `json:"warnings,omitempty"`
}

// BatchSummary rolls a whole recipe's outcomes into the shape existing
// callers render.
type BatchSummary struct {
	UpdatedItems      []Record           `json:"updated_items"`
	MissingItems      []MissingItem      `json:"missing_items"`
	InsufficientItems []InsufficientItem `json:"insufficient_items"`
	Warnings          []string           `json:"warnings,omitempty"`
}

// AggregatedIngredient is one consolidated shopping-list entry.
type AggregatedIngredient struct {
	Name     string
	Quantity measurement.Quantity
	Category string
	Partial  bool // true when occurrences could not all be summed
}

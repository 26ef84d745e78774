// Package pantry holds the in-memory pantry snapshot types and the
// matcher that ranks snapshot items against a recipe requirement.
package pantry

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pantrychef/v1/internal/domain/measurement"
)

// Item is one pantry entry as read from the inventory store. The
// engine only ever works on snapshot copies; the store owns the
// persistent record.
type Item struct {
	ID             uuid.UUID
	Name           string
	NormalizedName string
	Quantity       measurement.Quantity
	ExpiresAt      *time.Time
	CreatedAt      time.Time
}

// Validate checks the invariants a snapshot item must satisfy.
func (i Item) Validate() error {
	if i.Name == "" {
		return errors.New("pantry item name is required")
	}
	if i.Quantity.Amount < 0 {
		return errors.New("pantry item quantity cannot be negative")
	}
	return nil
}

// CloneItems deep-copies a snapshot so an allocation run can deplete
// its working copy without touching the caller's slice.
func CloneItems(items []Item) []*Item {
	out := make([]*Item, len(items))
	for idx := range items {
		cp := items[idx]
		out[idx] = &cp
	}
	return out
}

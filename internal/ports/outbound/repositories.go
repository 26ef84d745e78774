// Package outbound defines the interfaces for outbound ports
// (secondary/driven adapters): the external systems the application
// talks to. The inventory store is the only one this service needs.
package outbound

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pantrychef/v1/internal/domain/consumption"
	"github.com/pantrychef/v1/internal/domain/pantry"
)

// ErrVersionConflict reports that a pantry item changed between the
// snapshot read and the consumption write-back.
var ErrVersionConflict = errors.New("pantry item modified since snapshot")

// ErrNotFound reports a pantry item that does not exist.
var ErrNotFound = errors.New("pantry item not found")

// PantryRepository is the Inventory Store collaborator. It supplies
// pantry snapshots and accepts consumption write-backs; the engine
// itself never touches it.
type PantryRepository interface {
	Create(ctx context.Context, item *pantry.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*pantry.Item, error)

	// Snapshot returns the pantry contents the engine computes over.
	// Each caller owns its copy.
	Snapshot(ctx context.Context) ([]pantry.Item, error)

	// ApplyConsumption applies consumption records under an
	// optimistic-concurrency check per pantry item. Two recipe
	// completions racing on the same snapshot is the one lost-update
	// hazard in the system; a stale snapshot must surface as
	// ErrVersionConflict so the caller can re-snapshot and retry.
	ApplyConsumption(ctx context.Context, records []consumption.Record) error
}

package consumption

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pantrychef/v1/internal/domain/ingredient"
	"github.com/pantrychef/v1/internal/domain/measurement"
	"github.com/pantrychef/v1/internal/domain/pantry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var normalizer = ingredient.NewNormalizer()

func unit(t *testing.T, raw string) *measurement.Unit {
	t.Helper()
	u, ok := measurement.Normalize(raw)
	require.True(t, ok)
	return &u
}

func item(name string, amount float64, u *measurement.Unit, createdAt time.Time, expiresAt *time.Time) pantry.Item {
	return pantry.Item{
		ID:             uuid.New(),
		Name:           name,
		NormalizedName: normalizer.Normalize(name),
		Quantity:       measurement.NewQuantity(amount, u),
		CreatedAt:      createdAt,
		ExpiresAt:      expiresAt,
	}
}

func requirement(t *testing.T, line string) ingredient.Requirement {
	t.Helper()
	return ingredient.ParseRequirement(line, normalizer)
}

func expiry(t time.Time) *time.Time { return &t }

func TestAllocateUnitMismatchIsMissing(t *testing.T) {
	// "2 cups flour" against flour stored by weight: domains differ.
	req := requirement(t, "2 cups flour")
	items := []pantry.Item{
		item("all-purpose flour", 2.5, unit(t, "kg"), time.Now(), nil),
	}

	out := Allocate(req, items)

	assert.Equal(t, StatusMissing, out.Status)
	assert.Empty(t, out.Records)
	require.NotEmpty(t, out.Warnings)
	assert.Contains(t, out.Warnings[0], "unit mismatch")
}

func TestAllocateConsumesEarliestExpiryFirst(t *testing.T) {
	req := requirement(t, "400 g pasta")
	base := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	gram := unit(t, "g")
	first := item("Pasta", 500, gram, base, expiry(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	second := item("Pasta", 300, gram, base, expiry(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))

	out := Allocate(req, []pantry.Item{second, first})

	require.Equal(t, StatusSatisfied, out.Status)
	require.Len(t, out.Records, 1, "second item must be untouched")
	rec := out.Records[0]
	assert.Equal(t, first.ID, rec.PantryItemID)
	assert.InDelta(t, 500, rec.PreviousQuantity, 1e-9)
	assert.InDelta(t, 400, rec.UsedQuantity, 1e-9)
	assert.InDelta(t, 100, rec.NewQuantity, 1e-9)
	assert.Equal(t, "gram", rec.Unit)
}

func TestAllocateInsufficient(t *testing.T) {
	// "3 eggs" against 2 on hand.
	req := requirement(t, "3 eggs")
	items := []pantry.Item{
		item("Eggs", 2, unit(t, "each"), time.Now(), nil),
	}

	out := Allocate(req, items)

	require.Equal(t, StatusInsufficient, out.Status)
	require.Len(t, out.Records, 1)
	assert.InDelta(t, 2, out.Records[0].UsedQuantity, 1e-9)
	assert.InDelta(t, 0, out.Records[0].NewQuantity, 1e-9)
	require.NotNil(t, out.RemainingNeeded)
	assert.InDelta(t, 1, out.RemainingNeeded.Amount, 1e-9)
}

func TestAllocateEmptyPantryIsMissing(t *testing.T) {
	for _, line := range []string{"2 cups flour", "3 eggs", "1 tsp salt"} {
		out := Allocate(requirement(t, line), nil)
		assert.Equal(t, StatusMissing, out.Status, "line %q", line)
		assert.Empty(t, out.Records)
	}
}

func TestAllocateZeroAmountIsTriviallySatisfied(t *testing.T) {
	req := ingredient.Requirement{Name: "salt", Quantity: measurement.Quantity{}}
	items := []pantry.Item{item("Salt", 100, unit(t, "g"), time.Now(), nil)}

	out := Allocate(req, items)

	assert.Equal(t, StatusSatisfied, out.Status)
	assert.Empty(t, out.Records)
}

func TestAllocateNegativeAmountClampedWithWarning(t *testing.T) {
	req := ingredient.Requirement{Name: "salt"}
	req.Quantity.Amount = -3

	out := Allocate(req, []pantry.Item{item("Salt", 100, unit(t, "g"), time.Now(), nil)})

	assert.Equal(t, StatusSatisfied, out.Status)
	assert.Empty(t, out.Records)
	require.NotEmpty(t, out.Warnings)
	assert.Contains(t, out.Warnings[0], "clamped to zero")
}

func TestAllocateSpansMultipleItems(t *testing.T) {
	req := requirement(t, "700 g pasta")
	base := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	gram := unit(t, "g")
	first := item("Pasta", 500, gram, base, expiry(base.AddDate(0, 1, 0)))
	second := item("Pasta", 300, gram, base, expiry(base.AddDate(0, 2, 0)))

	out := Allocate(req, []pantry.Item{first, second})

	require.Equal(t, StatusSatisfied, out.Status)
	require.Len(t, out.Records, 2)
	assert.InDelta(t, 500, out.Records[0].UsedQuantity, 1e-9)
	assert.InDelta(t, 200, out.Records[1].UsedQuantity, 1e-9)
	assert.InDelta(t, 100, out.Records[1].NewQuantity, 1e-9)
}

func TestAllocateSatisfiedSumsToRequirement(t *testing.T) {
	// Satisfied outcomes must sum, in the requirement's unit, to the
	// requested amount; and no record may go below zero.
	req := requirement(t, "2 cups milk")
	base := time.Now()
	reqUnit := req.Quantity.Unit
	items := []pantry.Item{
		item("Milk", 0.3, unit(t, "l"), base, expiry(base.AddDate(0, 0, 2))),
		item("Milk", 16, unit(t, "fl oz"), base, expiry(base.AddDate(0, 0, 9))),
	}

	out := Allocate(req, items)

	require.Equal(t, StatusSatisfied, out.Status)
	sum := 0.0
	for _, rec := range out.Records {
		recUnit, ok := measurement.Normalize(rec.Unit)
		require.True(t, ok)
		converted, err := measurement.ConvertQuantity(rec.UsedQuantity, &recUnit, reqUnit)
		require.NoError(t, err)
		sum += converted
		assert.GreaterOrEqual(t, rec.NewQuantity, 0.0)
		assert.InDelta(t, rec.PreviousQuantity-rec.UsedQuantity, rec.NewQuantity, 1e-9)
	}
	assert.InDelta(t, req.Quantity.Amount, sum, measurement.Epsilon)
}

func TestAllocateSkipsMismatchedButUsesCompatible(t *testing.T) {
	req := requirement(t, "200 g butter")
	base := time.Now()
	byVolume := item("Butter", 1, unit(t, "cup"), base, expiry(base.AddDate(0, 0, 1)))
	byWeight := item("Butter", 250, unit(t, "g"), base, expiry(base.AddDate(0, 0, 5)))

	out := Allocate(req, []pantry.Item{byVolume, byWeight})

	require.Equal(t, StatusSatisfied, out.Status)
	require.Len(t, out.Records, 1)
	assert.Equal(t, byWeight.ID, out.Records[0].PantryItemID)
	require.NotEmpty(t, out.Warnings)
	assert.Contains(t, out.Warnings[0], "unit mismatch")
}

func TestAllocateDoesNotMutateCallerSnapshot(t *testing.T) {
	items := []pantry.Item{item("Pasta", 500, unit(t, "g"), time.Now(), nil)}

	out := Allocate(requirement(t, "400 g pasta"), items)

	require.Equal(t, StatusSatisfied, out.Status)
	assert.InDelta(t, 500, items[0].Quantity.Amount, 1e-9, "caller snapshot untouched")
}

func TestAllocateBatchDepletesSharedSnapshot(t *testing.T) {
	base := time.Now()
	flour := item("Flour", 3, unit(t, "cup"), base, nil)
	reqs := []ingredient.Requirement{
		requirement(t, "2 cups flour"),
		requirement(t, "2 cups flour"),
	}

	outcomes, summary := AllocateBatch(reqs, []pantry.Item{flour})

	require.Len(t, outcomes, 2)
	assert.Equal(t, StatusSatisfied, outcomes[0].Status)
	require.Equal(t, StatusInsufficient, outcomes[1].Status)
	assert.InDelta(t, 1, outcomes[1].RemainingNeeded.Amount, 1e-9)

	// Merged per item across requirements: 3 → 0, 3 used.
	require.Len(t, summary.UpdatedItems, 1)
	assert.InDelta(t, 3, summary.UpdatedItems[0].PreviousQuantity, 1e-9)
	assert.InDelta(t, 3, summary.UpdatedItems[0].UsedQuantity, 1e-9)
	assert.InDelta(t, 0, summary.UpdatedItems[0].NewQuantity, 1e-9)

	require.Len(t, summary.InsufficientItems, 1)
	assert.Equal(t, "flour", summary.InsufficientItems[0].Ingredient)
	assert.Equal(t, "1 cup", summary.InsufficientItems[0].RemainingNeeded)
}

func TestAllocateBatchIsolatesFailures(t *testing.T) {
	base := time.Now()
	items := []pantry.Item{item("Eggs", 6, unit(t, "each"), base, nil)}
	reqs := []ingredient.Requirement{
		requirement(t, "2 cups flour"), // missing
		requirement(t, "3 eggs"),       // satisfied
	}

	outcomes, summary := AllocateBatch(reqs, items)

	require.Len(t, outcomes, 2)
	assert.Equal(t, StatusMissing, outcomes[0].Status)
	assert.Equal(t, StatusSatisfied, outcomes[1].Status)

	require.Len(t, summary.MissingItems, 1)
	assert.Equal(t, "flour", summary.MissingItems[0].Ingredient)
	require.Len(t, summary.UpdatedItems, 1)
	assert.InDelta(t, 3, summary.UpdatedItems[0].UsedQuantity, 1e-9)
}

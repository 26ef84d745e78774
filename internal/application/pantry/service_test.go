package pantry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pantrychef/v1/internal/domain/consumption"
	"github.com/pantrychef/v1/internal/domain/measurement"
	"github.com/pantrychef/v1/internal/domain/pantry"
	"github.com/pantrychef/v1/internal/infrastructure/config"
	"github.com/pantrychef/v1/internal/ports/inbound"
	"github.com/pantrychef/v1/internal/ports/outbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRepo is an in-memory PantryRepository with scriptable conflicts.
type fakeRepo struct {
	items         map[uuid.UUID]pantry.Item
	conflictsLeft int
	applied       [][]consumption.Record
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[uuid.UUID]pantry.Item)}
}

func (f *fakeRepo) Create(_ context.Context, item *pantry.Item) error {
	item.CreatedAt = time.Now()
	f.items[item.ID] = *item
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return outbound.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*pantry.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return &item, nil
}

func (f *fakeRepo) Snapshot(_ context.Context) ([]pantry.Item, error) {
	out := make([]pantry.Item, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepo) ApplyConsumption(_ context.Context, records []consumption.Record) error {
	if f.conflictsLeft > 0 {
		f.conflictsLeft--
		return outbound.ErrVersionConflict
	}
	f.applied = append(f.applied, records)
	for _, rec := range records {
		item := f.items[rec.PantryItemID]
		item.Quantity.Amount = rec.NewQuantity
		f.items[rec.PantryItemID] = item
	}
	return nil
}

func newService(t *testing.T, repo outbound.PantryRepository) inbound.PantryService {
	t.Helper()
	return NewPantryService(repo, config.EngineConfig{ConsumeRetries: 1}, zap.NewNop())
}

func seedItem(t *testing.T, repo *fakeRepo, name string, amount float64, unitStr string) uuid.UUID {
	t.Helper()
	var unit *measurement.Unit
	if unitStr != "" {
		u, ok := measurement.Normalize(unitStr)
		require.True(t, ok)
		unit = &u
	}
	id := uuid.New()
	repo.items[id] = pantry.Item{
		ID:             id,
		Name:           name,
		NormalizedName: name, // tests seed pre-normalized names
		Quantity:       measurement.NewQuantity(amount, unit),
		CreatedAt:      time.Now(),
	}
	return id
}

func TestAddItemAndList(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(t, repo)

	dto, err := svc.AddItem(context.Background(), inbound.AddItemCommand{
		Name:     "All-Purpose Flour",
		Quantity: 2,
		Unit:     "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, "flour", dto.NormalizedName)
	assert.Equal(t, "kilogram", dto.Unit)

	listed, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, dto.ID, listed[0].ID)
}

func TestAddItemRejectsUnknownUnit(t *testing.T) {
	svc := newService(t, newFakeRepo())

	_, err := svc.AddItem(context.Background(), inbound.AddItemCommand{
		Name:     "Arugula",
		Quantity: 1,
		Unit:     "handful",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
}

func TestRemoveItemNotFound(t *testing.T) {
	svc := newService(t, newFakeRepo())

	err := svc.RemoveItem(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodePantryItemNotFound))
}

func TestCompleteRecipeWritesBack(t *testing.T) {
	repo := newFakeRepo()
	id := seedItem(t, repo, "pasta", 500, "g")
	svc := newService(t, repo)

	result, err := svc.CompleteRecipe(context.Background(), inbound.CompleteRecipeCommand{
		RecipeTitle: "Weeknight Pasta",
		Ingredients: []string{"400 g pasta"},
	})
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, string(consumption.StatusSatisfied), result.Outcomes[0].Status)
	require.Len(t, result.Summary.UpdatedItems, 1)
	assert.Equal(t, id, result.Summary.UpdatedItems[0].PantryItemID)

	// Store reflects the decrement.
	assert.InDelta(t, 100, repo.items[id].Quantity.Amount, 1e-9)
}

func TestCompleteRecipeRetriesOnStaleSnapshot(t *testing.T) {
	repo := newFakeRepo()
	seedItem(t, repo, "pasta", 500, "g")
	repo.conflictsLeft = 1
	svc := newService(t, repo)

	_, err := svc.CompleteRecipe(context.Background(), inbound.CompleteRecipeCommand{
		Ingredients: []string{"400 g pasta"},
	})
	require.NoError(t, err)
	require.Len(t, repo.applied, 1, "write-back succeeds on the retry")
}

func TestCompleteRecipeSurfacesPersistentConflict(t *testing.T) {
	repo := newFakeRepo()
	seedItem(t, repo, "pasta", 500, "g")
	repo.conflictsLeft = 10
	svc := newService(t, repo)

	_, err := svc.CompleteRecipe(context.Background(), inbound.CompleteRecipeCommand{
		Ingredients: []string{"400 g pasta"},
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeVersionConflict))
}

func TestCompleteRecipePartialBatch(t *testing.T) {
	repo := newFakeRepo()
	seedItem(t, repo, "egg", 2, "each")
	svc := newService(t, repo)

	result, err := svc.CompleteRecipe(context.Background(), inbound.CompleteRecipeCommand{
		Ingredients: []string{"3 eggs", "2 cups flour"},
	})
	require.NoError(t, err)

	require.Len(t, result.Summary.InsufficientItems, 1)
	assert.Equal(t, "egg", result.Summary.InsufficientItems[0].Ingredient)
	require.Len(t, result.Summary.MissingItems, 1)
	assert.Equal(t, "flour", result.Summary.MissingItems[0].Ingredient)
}

func TestAggregateShoppingList(t *testing.T) {
	svc := newService(t, newFakeRepo())

	entries, err := svc.AggregateShoppingList(context.Background(), inbound.ShoppingListCommand{
		Ingredients: []string{"1/4 cup sugar", "2 tbsp sugar", "3 eggs"},
	})
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "sugar", entries[0].Ingredient)
	assert.Equal(t, "3/8 cup", entries[0].Display)
	assert.Equal(t, "egg", entries[1].Ingredient)
	assert.InDelta(t, 3, entries[1].Quantity, 1e-9)
}

func TestCompleteRecipeRequiresIngredients(t *testing.T) {
	svc := newService(t, newFakeRepo())

	_, err := svc.CompleteRecipe(context.Background(), inbound.CompleteRecipeCommand{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
}

package consumption

import (
	"testing"

	"github.com/pantrychef/v1/internal/domain/ingredient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMergesSameIngredient(t *testing.T) {
	reqs := ingredient.ParseRequirements([]string{
		"1/4 cup sugar",
		"2 tbsp sugar",
	}, normalizer)

	got := Aggregate(reqs)

	require.Len(t, got, 1)
	assert.Equal(t, "sugar", got[0].Name)
	assert.Equal(t, "cup", got[0].Quantity.UnitID())
	assert.InDelta(t, 0.375, got[0].Quantity.Amount, 1e-9)
	assert.Equal(t, "3/8 cup", got[0].Quantity.String())
	assert.Equal(t, "Baking", got[0].Category)
	assert.False(t, got[0].Partial)
}

func TestAggregateKeepsDistinctIngredientsApart(t *testing.T) {
	reqs := ingredient.ParseRequirements([]string{
		"2 cups flour",
		"1 cup milk",
		"1 cup flour",
	}, normalizer)

	got := Aggregate(reqs)

	require.Len(t, got, 2)
	assert.Equal(t, "flour", got[0].Name)
	assert.InDelta(t, 3, got[0].Quantity.Amount, 1e-9)
	assert.Equal(t, "milk", got[1].Name)
	assert.Equal(t, "Dairy", got[1].Category)
}

func TestAggregateIncompatibleDomainsKeepsFirst(t *testing.T) {
	reqs := ingredient.ParseRequirements([]string{
		"2 cups butter",
		"100 g butter",
	}, normalizer)

	got := Aggregate(reqs)

	require.Len(t, got, 1)
	assert.True(t, got[0].Partial)
	assert.Equal(t, "cup", got[0].Quantity.UnitID())
	assert.InDelta(t, 2, got[0].Quantity.Amount, 1e-9)
}

func TestAggregateBareCounts(t *testing.T) {
	reqs := ingredient.ParseRequirements([]string{
		"3 eggs",
		"2 eggs",
	}, normalizer)

	got := Aggregate(reqs)

	require.Len(t, got, 1)
	assert.Equal(t, "egg", got[0].Name)
	assert.Nil(t, got[0].Quantity.Unit)
	assert.InDelta(t, 5, got[0].Quantity.Amount, 1e-9)
	assert.Equal(t, "Dairy", got[0].Category)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

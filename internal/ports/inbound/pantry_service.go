// Package inbound defines the interfaces for inbound ports (primary/
// driving adapters): the use cases the HTTP layer invokes.
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pantrychef/v1/internal/domain/consumption"
)

// PantryService exposes pantry management and the recipe-completion and
// shopping-list use cases built on the matching engine.
type PantryService interface {
	AddItem(ctx context.Context, cmd AddItemCommand) (*PantryItemDTO, error)
	ListItems(ctx context.Context) ([]PantryItemDTO, error)
	RemoveItem(ctx context.Context, id uuid.UUID) error

	CompleteRecipe(ctx context.Context, cmd CompleteRecipeCommand) (*CompleteRecipeResult, error)
	AggregateShoppingList(ctx context.Context, cmd ShoppingListCommand) ([]ShoppingListEntryDTO, error)
}

// AddItemCommand adds one item to the pantry.
type AddItemCommand struct {
	Name      string     `json:"name" validate:"required"`
	Quantity  float64    `json:"quantity" validate:"min=0"`
	Unit      string     `json:"unit"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// CompleteRecipeCommand consumes a recipe's ingredients from the pantry.
type CompleteRecipeCommand struct {
	RecipeTitle string   `json:"recipe_title"`
	Ingredients []string `json:"ingredients" validate:"required,min=1"`
}

// ShoppingListCommand consolidates ingredient lines into totals.
type ShoppingListCommand struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1"`
}

// PantryItemDTO is the transport representation of a pantry item.
type PantryItemDTO struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	NormalizedName string     `json:"normalized_name"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// IngredientOutcomeDTO reports one requirement's terminal state.
type IngredientOutcomeDTO struct {
	Ingredient string   `json:"ingredient"`
	RawText    string   `json:"raw_text"`
	Status     string   `json:"status"`
	Warnings   []string `json:"warnings,omitempty"`
}

// CompleteRecipeResult is the recipe-completion response. The summary
// field names are consumed by existing callers and must not change.
type CompleteRecipeResult struct {
	RecipeTitle string                    `json:"recipe_title,omitempty"`
	Outcomes    []IngredientOutcomeDTO    `json:"outcomes"`
	Summary     consumption.BatchSummary  `json:"summary"`
}

// ShoppingListEntryDTO is one consolidated shopping-list line.
type ShoppingListEntryDTO struct {
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Display    string  `json:"display"`
	Category   string  `json:"category"`
	Partial    bool    `json:"partial,omitempty"`
}

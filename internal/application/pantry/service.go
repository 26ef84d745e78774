// Package pantry provides the application layer for pantry management
// and recipe completion. It owns the read-snapshot → compute →
// write-back cycle around the pure matching engine.
package pantry

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pantrychef/v1/internal/domain/consumption"
	"github.com/pantrychef/v1/internal/domain/ingredient"
	"github.com/pantrychef/v1/internal/domain/measurement"
	"github.com/pantrychef/v1/internal/domain/pantry"
	"github.com/pantrychef/v1/internal/infrastructure/config"
	"github.com/pantrychef/v1/internal/ports/inbound"
	"github.com/pantrychef/v1/internal/ports/outbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
	"go.uber.org/zap"
)

// PantryService implements the pantry use cases.
type PantryService struct {
	repo       outbound.PantryRepository
	normalizer *ingredient.Normalizer
	retries    int
	logger     *zap.Logger
}

// NewPantryService creates a new pantry service.
func NewPantryService(
	repo outbound.PantryRepository,
	cfg config.EngineConfig,
	logger *zap.Logger,
) inbound.PantryService {
	return &PantryService{
		repo:       repo,
		normalizer: ingredient.NewNormalizer(ingredient.WithDescriptors(cfg.ExtraDescriptors...)),
		retries:    cfg.ConsumeRetries,
		logger:     logger.Named("pantry-service"),
	}
}

// AddItem stores a new pantry item.
func (s *PantryService) AddItem(ctx context.Context, cmd inbound.AddItemCommand) (*inbound.PantryItemDTO, error) {
	var unit *measurement.Unit
	if cmd.Unit != "" {
		u, ok := measurement.Normalize(cmd.Unit)
		if !ok {
			return nil, apperrors.NewValidationError("unrecognized unit: " + cmd.Unit)
		}
		unit = &u
	}

	item := &pantry.Item{
		ID:             uuid.New(),
		Name:           cmd.Name,
		NormalizedName: s.normalizer.Normalize(cmd.Name),
		Quantity:       measurement.NewQuantity(cmd.Quantity, unit),
		ExpiresAt:      cmd.ExpiresAt,
	}
	if err := item.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apperrors.NewDatabaseError("create pantry item", err)
	}

	s.logger.Info("Pantry item added",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name),
	)

	dto := itemToDTO(*item)
	return &dto, nil
}

// ListItems returns the current pantry contents.
func (s *PantryService) ListItems(ctx context.Context) ([]inbound.PantryItemDTO, error) {
	items, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("read pantry snapshot", err)
	}

	dtos := make([]inbound.PantryItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemToDTO(item))
	}
	return dtos, nil
}

// RemoveItem deletes a pantry item.
func (s *PantryService) RemoveItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return apperrors.NewPantryItemNotFoundError(id.String())
		}
		return apperrors.NewDatabaseError("delete pantry item", err)
	}
	return nil
}

// CompleteRecipe consumes a recipe's ingredients from the pantry. The
// engine computes over a snapshot; the write-back runs under the
// repository's per-item optimistic-concurrency check and is retried on
// a stale snapshot, since two completions racing on the same pantry is
// the one lost-update hazard in the system.
func (s *PantryService) CompleteRecipe(ctx context.Context, cmd inbound.CompleteRecipeCommand) (*inbound.CompleteRecipeResult, error) {
	if len(cmd.Ingredients) == 0 {
		return nil, apperrors.NewBadRequestError("recipe has no ingredient lines")
	}

	reqs := ingredient.ParseRequirements(cmd.Ingredients, s.normalizer)

	var (
		outcomes []consumption.Outcome
		summary  consumption.BatchSummary
	)
	for attempt := 0; ; attempt++ {
		snapshot, err := s.repo.Snapshot(ctx)
		if err != nil {
			return nil, apperrors.NewDatabaseError("read pantry snapshot", err)
		}

		outcomes, summary = consumption.AllocateBatch(reqs, snapshot)

		err = s.repo.ApplyConsumption(ctx, summary.UpdatedItems)
		if err == nil {
			break
		}
		if errors.Is(err, outbound.ErrVersionConflict) && attempt < s.retries {
			s.logger.Warn("Stale pantry snapshot, retrying consumption",
				zap.Int("attempt", attempt+1),
			)
			continue
		}
		if errors.Is(err, outbound.ErrVersionConflict) {
			return nil, apperrors.NewVersionConflictError("pantry")
		}
		return nil, apperrors.NewDatabaseError("apply consumption", err)
	}

	s.logger.Info("Recipe completed",
		zap.String("recipe", cmd.RecipeTitle),
		zap.Int("ingredients", len(reqs)),
		zap.Int("updated_items", len(summary.UpdatedItems)),
		zap.Int("missing", len(summary.MissingItems)),
		zap.Int("insufficient", len(summary.InsufficientItems)),
	)

	result := &inbound.CompleteRecipeResult{
		RecipeTitle: cmd.RecipeTitle,
		Outcomes:    outcomesToDTO(outcomes),
		Summary:     summary,
	}
	return result, nil
}

// AggregateShoppingList consolidates ingredient lines into totals. Pure
// read path; the pantry is never touched.
func (s *PantryService) AggregateShoppingList(ctx context.Context, cmd inbound.ShoppingListCommand) ([]inbound.ShoppingListEntryDTO, error) {
	if len(cmd.Ingredients) == 0 {
		return nil, apperrors.NewBadRequestError("shopping list has no ingredient lines")
	}

	reqs := ingredient.ParseRequirements(cmd.Ingredients, s.normalizer)
	aggregated := consumption.Aggregate(reqs)

	dtos := make([]inbound.ShoppingListEntryDTO, 0, len(aggregated))
	for _, agg := range aggregated {
		dtos = append(dtos, inbound.ShoppingListEntryDTO{
			Ingredient: agg.Name,
			Quantity:   agg.Quantity.Amount,
			Unit:       agg.Quantity.UnitID(),
			Display:    agg.Quantity.String(),
			Category:   agg.Category,
			Partial:    agg.Partial,
		})
	}
	return dtos, nil
}

func itemToDTO(item pantry.Item) inbound.PantryItemDTO {
	return inbound.PantryItemDTO{
		ID:             item.ID,
		Name:           item.Name,
		NormalizedName: item.NormalizedName,
		Quantity:       item.Quantity.Amount,
		Unit:           item.Quantity.UnitID(),
		ExpiresAt:      item.ExpiresAt,
		CreatedAt:      item.CreatedAt,
	}
}

func outcomesToDTO(outcomes []consumption.Outcome) []inbound.IngredientOutcomeDTO {
	dtos := make([]inbound.IngredientOutcomeDTO, 0, len(outcomes))
	for _, out := range outcomes {
		dtos = append(dtos, inbound.IngredientOutcomeDTO{
			Ingredient: out.Requirement.Name,
			RawText:    out.Requirement.RawText,
			Status:     string(out.Status),
			Warnings:   out.Warnings,
		})
	}
	return dtos
}

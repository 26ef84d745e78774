package gorm

import (
	"github.com/pantrychef/v1/internal/domain/measurement"
	"github.com/pantrychef/v1/internal/domain/pantry"
)

func toModel(item *pantry.Item) PantryItemModel {
	return PantryItemModel{
		ID:             item.ID,
		Name:           item.Name,
		NormalizedName: item.NormalizedName,
		Quantity:       item.Quantity.Amount,
		Unit:           item.Quantity.UnitID(),
		ExpiresAt:      item.ExpiresAt,
		CreatedAt:      item.CreatedAt,
	}
}

func toDomain(model PantryItemModel) pantry.Item {
	var unit *measurement.Unit
	if model.Unit != "" {
		if u, ok := measurement.Normalize(model.Unit); ok {
			unit = &u
		}
	}
	return pantry.Item{
		ID:             model.ID,
		Name:           model.Name,
		NormalizedName: model.NormalizedName,
		Quantity:       measurement.NewQuantity(model.Quantity, unit),
		ExpiresAt:      model.ExpiresAt,
		CreatedAt:      model.CreatedAt,
	}
}

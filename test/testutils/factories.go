// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/pantrychef/v1/internal/domain/measurement"
	"github.com/pantrychef/v1/internal/domain/pantry"
)

// PantryFactory provides methods to create test pantry items
type PantryFactory struct {
	faker *gofakeit.Faker
}

// NewPantryFactory creates a new pantry factory with seeded faker
func NewPantryFactory(seed int64) *PantryFactory {
	return &PantryFactory{
		faker: gofakeit.New(seed),
	}
}

// ItemBuilder provides a fluent interface for building test pantry items
type ItemBuilder struct {
	name      string
	amount    float64
	unit      string
	expiresAt *time.Time
	createdAt time.Time
}

// NewItemBuilder creates a new item builder with default values
func NewItemBuilder() *ItemBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &ItemBuilder{
		name:      faker.Vegetable(),
		amount:    float64(faker.Number(1, 10)),
		unit:      "",
		createdAt: time.Now(),
	}
}

// WithName sets the item name
func (ib *ItemBuilder) WithName(name string) *ItemBuilder {
	ib.name = name
	return ib
}

// WithQuantity sets the stored amount and unit
func (ib *ItemBuilder) WithQuantity(amount float64, unit string) *ItemBuilder {
	ib.amount = amount
	ib.unit = unit
	return ib
}

// WithExpiry sets the expiration date
func (ib *ItemBuilder) WithExpiry(t time.Time) *ItemBuilder {
	ib.expiresAt = &t
	return ib
}

// WithCreatedAt sets the creation timestamp
func (ib *ItemBuilder) WithCreatedAt(t time.Time) *ItemBuilder {
	ib.createdAt = t
	return ib
}

// Build constructs the pantry item
func (ib *ItemBuilder) Build() pantry.Item {
	var unit *measurement.Unit
	if ib.unit != "" {
		if u, ok := measurement.Normalize(ib.unit); ok {
			unit = &u
		}
	}
	return pantry.Item{
		ID:             uuid.New(),
		Name:           ib.name,
		NormalizedName: ib.name,
		Quantity:       measurement.NewQuantity(ib.amount, unit),
		ExpiresAt:      ib.expiresAt,
		CreatedAt:      ib.createdAt,
	}
}

// RandomItems generates n pantry items with varied names and quantities
func (pf *PantryFactory) RandomItems(n int) []pantry.Item {
	units := []string{"g", "kg", "cup", "ml", "each", ""}
	items := make([]pantry.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, NewItemBuilder().
			WithName(fmt.Sprintf("%s %d", pf.faker.Vegetable(), i)).
			WithQuantity(float64(pf.faker.Number(1, 500)), units[i%len(units)]).
			Build())
	}
	return items
}

// IngredientLines generates parseable recipe ingredient lines
func (pf *PantryFactory) IngredientLines(n int) []string {
	units := []string{"cup", "tbsp", "g", "oz", ""}
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		unit := units[i%len(units)]
		if unit == "" {
			lines = append(lines, fmt.Sprintf("%d %s", pf.faker.Number(1, 4), pf.faker.Vegetable()))
			continue
		}
		lines = append(lines, fmt.Sprintf("%d %s %s", pf.faker.Number(1, 4), unit, pf.faker.Vegetable()))
	}
	return lines
}

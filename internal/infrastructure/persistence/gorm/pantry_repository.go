package gorm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pantrychef/v1/internal/domain/consumption"
	"github.com/pantrychef/v1/internal/domain/pantry"
	"github.com/pantrychef/v1/internal/infrastructure/config"
	"github.com/pantrychef/v1/internal/ports/outbound"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// PantryRepository implements outbound.PantryRepository on GORM/SQLite.
type PantryRepository struct {
	db *gorm.DB
}

// NewDatabase opens the inventory store and migrates its schema.
func NewDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	switch cfg.LogLevel {
	case "info":
		logLevel = gormlogger.Info
	case "error":
		logLevel = gormlogger.Error
	case "silent":
		logLevel = gormlogger.Silent
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory store: %w", err)
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&PantryItemModel{}); err != nil {
			return nil, fmt.Errorf("failed to migrate inventory store: %w", err)
		}
	}
	return db, nil
}

// NewPantryRepository creates the inventory store adapter.
func NewPantryRepository(db *gorm.DB) outbound.PantryRepository {
	return &PantryRepository{db: db}
}

// Create inserts a new pantry item.
func (r *PantryRepository) Create(ctx context.Context, item *pantry.Item) error {
	model := toModel(item)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	item.CreatedAt = model.CreatedAt
	return nil
}

// Delete removes a pantry item.
func (r *PantryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&PantryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}

// FindByID loads one pantry item.
func (r *PantryRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.Item, error) {
	var model PantryItemModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, outbound.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	item := toDomain(model)
	return &item, nil
}

// Snapshot reads the full pantry in a stable order. The returned slice
// is the caller's own copy.
func (r *PantryRepository) Snapshot(ctx context.Context) ([]pantry.Item, error) {
	var models []PantryItemModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&models).Error; err != nil {
		return nil, err
	}
	items := make([]pantry.Item, 0, len(models))
	for _, m := range models {
		items = append(items, toDomain(m))
	}
	return items, nil
}

// ApplyConsumption decrements pantry items in one transaction. Each
// update is guarded on the quantity the snapshot observed; a row that
// no longer matches means another completion raced us, and the whole
// batch rolls back with ErrVersionConflict so the caller can
// re-snapshot and retry.
func (r *PantryRepository) ApplyConsumption(ctx context.Context, records []consumption.Record) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rec := range records {
			result := tx.Model(&PantryItemModel{}).
				Where("id = ? AND quantity = ?", rec.PantryItemID, rec.PreviousQuantity).
				Updates(map[string]interface{}{
					"quantity": rec.NewQuantity,
					"version":  gorm.Expr("version + 1"),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return outbound.ErrVersionConflict
			}
		}
		return nil
	})
}

package repository

import (
	"context"

	"smart-sales-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository interface {
	Create(ctx context.Context, inventory *model.Inventory) error
	FindAll(ctx context.Context) ([]model.Inventory, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Inventory, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) (*model.Inventory, error)
	Update(ctx context.Context, inventory *model.Inventory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) Create(ctx context.Context, inventory *model.Inventory) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(inventory).Error)
}

func (r *inventoryRepo) FindAll(ctx context.Context) ([]model.Inventory, error) {
	var inventories []model.Inventory
	err := r.db.WithContext(ctx).Preload("Product").Order("created_at ASC").Find(&inventories).Error
	return inventories, err
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Inventory, error) {
	var inventory model.Inventory
	if err := r.db.WithContext(ctx).Preload("Product").First(&inventory, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (r *inventoryRepo) FindByProductID(ctx context.Context, productID uuid.UUID) (*model.Inventory, error) {
	var inventory model.Inventory
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&inventory).Error; err != nil {
		return nil, err
	}
	return &inventory, nil
}

// Update saves the row; last_updated is refreshed by GORM's autoUpdateTime
func (r *inventoryRepo) Update(ctx context.Context, inventory *model.Inventory) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(inventory).Error)
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.Inventory{}, id)
}

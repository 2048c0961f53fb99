package repository

import (
	"context"

	"smart-sales-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	CreateWithInventory(ctx context.Context, product *model.Product, inventory *model.Inventory) error
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindLowStock(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// CreateWithInventory inserts the product and its inventory row atomically
func (r *productRepo) CreateWithInventory(ctx context.Context, product *model.Product, inventory *model.Inventory) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return err
		}
		inventory.ProductID = product.ID
		if err := tx.Omit(clause.Associations).Create(inventory).Error; err != nil {
			return err
		}
		product.Inventory = inventory
		return nil
	})
	return translateError(err)
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Preload("Inventory").Order("created_at ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Preload("Inventory").First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindLowStock returns products whose stock is at or below the reorder
// level, evaluated in a single join so the comparison sees one snapshot.
func (r *productRepo) FindLowStock(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Inventory").
		Joins("JOIN inventories ON inventories.product_id = products.id").
		Where("inventories.quantity_in_stock <= inventories.reorder_level").
		Order("products.created_at ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error)
}

// Delete removes the product; inventory, forecasts and sale items cascade
func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.Product{}, id)
}

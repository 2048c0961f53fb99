package repository

import (
	"context"

	"smart-sales-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *model.Sale) error
	FindAll(ctx context.Context) ([]model.Sale, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	Update(ctx context.Context, sale *model.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// withDetails preloads everything a sale response needs, items in insertion order
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("Employee").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sale_items.created_at ASC")
		}).
		Preload("Items.Product")
}

func (r *saleRepo) Create(ctx context.Context, sale *model.Sale) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(sale).Error)
}

func (r *saleRepo) FindAll(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := withDetails(r.db.WithContext(ctx)).Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	if err := withDetails(r.db.WithContext(ctx)).First(&sale, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) Update(ctx context.Context, sale *model.Sale) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(sale).Error)
}

// Delete removes the sale; its items go with it through ON DELETE CASCADE
func (r *saleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.Sale{}, id)
}

package repository

import (
	"context"

	"smart-sales-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaleItemRepository interface {
	Create(ctx context.Context, item *model.SaleItem) error
	FindAll(ctx context.Context) ([]model.SaleItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.SaleItem, error)
	Update(ctx context.Context, item *model.SaleItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type saleItemRepo struct {
	db *gorm.DB
}

func NewSaleItemRepo(db *gorm.DB) SaleItemRepository {
	return &saleItemRepo{db}
}

func (r *saleItemRepo) Create(ctx context.Context, item *model.SaleItem) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error)
}

func (r *saleItemRepo) FindAll(ctx context.Context) ([]model.SaleItem, error) {
	var items []model.SaleItem
	err := r.db.WithContext(ctx).Preload("Product").Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *saleItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SaleItem, error) {
	var item model.SaleItem
	if err := r.db.WithContext(ctx).Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *saleItemRepo) Update(ctx context.Context, item *model.SaleItem) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error)
}

func (r *saleItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.SaleItem{}, id)
}

package repository

import (
	"context"

	"smart-sales-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(ctx context.Context, customer *model.Customer) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(customer).Error)
}

func (r *customerRepo) FindAll(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) Update(ctx context.Context, customer *model.Customer) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(customer).Error)
}

// Delete removes the customer; the database cascades to its sales and their items
func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.Customer{}, id)
}

// deleteByID hard-deletes one row and reports gorm.ErrRecordNotFound when nothing matched.
func deleteByID(db *gorm.DB, value interface{}, id uuid.UUID) error {
	result := db.Delete(value, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

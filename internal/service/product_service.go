package service

import (
	"context"

	"smart-sales-api/internal/model"
	"smart-sales-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput is the create/update payload. InventoryStock and
// ReorderLevel only seed the inventory row on create; stock changes
// afterwards go through the inventory resource.
type ProductInput struct {
	Name           string           `json:"name" validate:"required,max=255"`
	Description    *string          `json:"description"`
	Price          *decimal.Decimal `json:"price" validate:"required,gte=0,lt=100000000"`
	Cost           *decimal.Decimal `json:"cost" validate:"required,gte=0,lt=100000000"`
	Category       string           `json:"category" validate:"required,max=100"`
	Unit           string           `json:"unit" validate:"max=50"`
	InventoryStock *int             `json:"inventory_stock"`
	ReorderLevel   *int             `json:"reorder_level"`
}

type ProductService interface {
	List(ctx context.Context) ([]model.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ProductResponse, error)
	Input(ctx context.Context, id uuid.UUID) (*ProductInput, error)
	Create(ctx context.Context, in *ProductInput) (*model.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, in *ProductInput) (*model.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LowStock(ctx context.Context) ([]model.ProductResponse, error)
}

type productService struct {
	repo     repository.ProductRepository
	notifier Notifier
}

func NewProductService(repo repository.ProductRepository, notifier Notifier) ProductService {
	return &productService{repo: repo, notifier: notifier}
}

func (s *productService) List(ctx context.Context) ([]model.ProductResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fromRepo("Product", err)
	}
	return productResponses(products), nil
}

func (s *productService) LowStock(ctx context.Context) ([]model.ProductResponse, error) {
	products, err := s.repo.FindLowStock(ctx)
	if err != nil {
		return nil, fromRepo("Product", err)
	}
	return productResponses(products), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Product", err)
	}
	response := product.ToResponse()
	return &response, nil
}

func (s *productService) Input(ctx context.Context, id uuid.UUID) (*ProductInput, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Product", err)
	}
	price, cost := product.Price, product.Cost
	return &ProductInput{
		Name:        product.Name,
		Description: product.Description,
		Price:       &price,
		Cost:        &cost,
		Category:    product.Category,
		Unit:        product.Unit,
	}, nil
}

// Create stores the product together with its inventory row, defaulting
// stock to 0 and the reorder level to 10 when the caller omits them.
func (s *productService) Create(ctx context.Context, in *ProductInput) (*model.ProductResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	product := &model.Product{}
	applyProduct(product, in)

	inventory := &model.Inventory{
		QuantityInStock: model.DefaultStock,
		ReorderLevel:    model.DefaultReorderLevel,
	}
	if in.InventoryStock != nil {
		inventory.QuantityInStock = *in.InventoryStock
	}
	if in.ReorderLevel != nil {
		inventory.ReorderLevel = *in.ReorderLevel
	}

	if err := s.repo.CreateWithInventory(ctx, product, inventory); err != nil {
		return nil, fromRepo("Product", err)
	}

	response := product.ToResponse()
	s.notifier.Notify(EventProductCreated, response)
	return &response, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, in *ProductInput) (*model.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Product", err)
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	applyProduct(product, in)
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fromRepo("Product", err)
	}

	response := product.ToResponse()
	s.notifier.Notify(EventProductUpdated, response)
	return &response, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fromRepo("Product", err)
	}
	s.notifier.Notify(EventProductDeleted, map[string]interface{}{"id": id})
	return nil
}

func applyProduct(product *model.Product, in *ProductInput) {
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price.Round(2)
	product.Cost = in.Cost.Round(2)
	product.Category = in.Category
	product.Unit = in.Unit
	if product.Unit == "" {
		product.Unit = model.DefaultUnit
	}
}

func productResponses(products []model.Product) []model.ProductResponse {
	responses := make([]model.ProductResponse, len(products))
	for i := range products {
		responses[i] = products[i].ToResponse()
	}
	return responses
}

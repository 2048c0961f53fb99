package service

import (
	"context"

	"smart-sales-api/internal/model"
	"smart-sales-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemInput is the create/update payload. A missing price is taken
// from the product's current price; a missing quantity means 1.
type SaleItemInput struct {
	Sale     uuid.UUID        `json:"sale" validate:"uuid_required"`
	Product  uuid.UUID        `json:"product" validate:"uuid_required"`
	Quantity int              `json:"quantity" validate:"omitempty,gt=0"`
	Price    *decimal.Decimal `json:"price" validate:"omitempty,gte=0,lt=100000000"`
}

type SaleItemService interface {
	List(ctx context.Context) ([]model.SaleItemResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.SaleItemResponse, error)
	Input(ctx context.Context, id uuid.UUID) (*SaleItemInput, error)
	Create(ctx context.Context, in *SaleItemInput) (*model.SaleItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, in *SaleItemInput) (*model.SaleItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type saleItemService struct {
	itemRepo    repository.SaleItemRepository
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

func NewSaleItemService(itemRepo repository.SaleItemRepository, saleRepo repository.SaleRepository, productRepo repository.ProductRepository) SaleItemService {
	return &saleItemService{
		itemRepo:    itemRepo,
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

func (s *saleItemService) List(ctx context.Context) ([]model.SaleItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fromRepo("Sale item", err)
	}
	responses := make([]model.SaleItemResponse, len(items))
	for i := range items {
		responses[i] = items[i].ToResponse()
	}
	return responses, nil
}

func (s *saleItemService) Get(ctx context.Context, id uuid.UUID) (*model.SaleItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Sale item", err)
	}
	response := item.ToResponse()
	return &response, nil
}

func (s *saleItemService) Input(ctx context.Context, id uuid.UUID) (*SaleItemInput, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Sale item", err)
	}
	price := item.Price
	return &SaleItemInput{
		Sale:     item.SaleID,
		Product:  item.ProductID,
		Quantity: item.Quantity,
		Price:    &price,
	}, nil
}

func (s *saleItemService) Create(ctx context.Context, in *SaleItemInput) (*model.SaleItemResponse, error) {
	product, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	item := &model.SaleItem{}
	applySaleItem(item, in, product)
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fromRepo("Sale item", err)
	}

	response := item.ToResponse()
	return &response, nil
}

func (s *saleItemService) Update(ctx context.Context, id uuid.UUID, in *SaleItemInput) (*model.SaleItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Sale item", err)
	}
	product, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	applySaleItem(item, in, product)
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, fromRepo("Sale item", err)
	}

	response := item.ToResponse()
	return &response, nil
}

func (s *saleItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return fromRepo("Sale item", s.itemRepo.Delete(ctx, id))
}

// resolve validates the input and loads the referenced product
func (s *saleItemService) resolve(ctx context.Context, in *SaleItemInput) (*model.Product, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.saleRepo.FindByID(ctx, in.Sale); err != nil {
		return nil, requireRef("sale", err)
	}
	product, err := s.productRepo.FindByID(ctx, in.Product)
	if err != nil {
		return nil, requireRef("product", err)
	}
	return product, nil
}

func applySaleItem(item *model.SaleItem, in *SaleItemInput, product *model.Product) {
	item.SaleID = in.Sale
	item.ProductID = in.Product
	item.Product = product
	item.Quantity = in.Quantity
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if in.Price != nil {
		item.Price = in.Price.Round(2)
	} else {
		item.Price = product.Price
	}
}

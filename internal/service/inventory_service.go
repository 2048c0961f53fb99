package service

import (
	"context"
	"errors"

	"smart-sales-api/internal/model"
	"smart-sales-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryInput struct {
	Product         uuid.UUID `json:"product" validate:"uuid_required"`
	QuantityInStock *int      `json:"quantity_in_stock"`
	ReorderLevel    *int      `json:"reorder_level"`
}

type InventoryService interface {
	List(ctx context.Context) ([]model.InventoryResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.InventoryResponse, error)
	Input(ctx context.Context, id uuid.UUID) (*InventoryInput, error)
	Create(ctx context.Context, in *InventoryInput) (*model.InventoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, in *InventoryInput) (*model.InventoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	notifier      Notifier
}

func NewInventoryService(inventoryRepo repository.InventoryRepository, productRepo repository.ProductRepository, notifier Notifier) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		notifier:      notifier,
	}
}

func (s *inventoryService) List(ctx context.Context) ([]model.InventoryResponse, error) {
	inventories, err := s.inventoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fromRepo("Inventory", err)
	}
	responses := make([]model.InventoryResponse, len(inventories))
	for i := range inventories {
		responses[i] = inventories[i].ToResponse()
	}
	return responses, nil
}

func (s *inventoryService) Get(ctx context.Context, id uuid.UUID) (*model.InventoryResponse, error) {
	inventory, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Inventory", err)
	}
	response := inventory.ToResponse()
	return &response, nil
}

func (s *inventoryService) Input(ctx context.Context, id uuid.UUID) (*InventoryInput, error) {
	inventory, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Inventory", err)
	}
	stock, reorder := inventory.QuantityInStock, inventory.ReorderLevel
	return &InventoryInput{
		Product:         inventory.ProductID,
		QuantityInStock: &stock,
		ReorderLevel:    &reorder,
	}, nil
}

func (s *inventoryService) Create(ctx context.Context, in *InventoryInput) (*model.InventoryResponse, error) {
	product, err := s.resolve(ctx, in, uuid.Nil)
	if err != nil {
		return nil, err
	}

	inventory := &model.Inventory{}
	applyInventory(inventory, in, product)
	if err := s.inventoryRepo.Create(ctx, inventory); err != nil {
		return nil, fromRepo("Inventory", err)
	}

	response := inventory.ToResponse()
	s.notifier.Notify(EventInventoryChanged, response)
	return &response, nil
}

func (s *inventoryService) Update(ctx context.Context, id uuid.UUID, in *InventoryInput) (*model.InventoryResponse, error) {
	inventory, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Inventory", err)
	}
	product, err := s.resolve(ctx, in, inventory.ID)
	if err != nil {
		return nil, err
	}

	applyInventory(inventory, in, product)
	if err := s.inventoryRepo.Update(ctx, inventory); err != nil {
		return nil, fromRepo("Inventory", err)
	}

	response := inventory.ToResponse()
	s.notifier.Notify(EventInventoryChanged, response)
	return &response, nil
}

func (s *inventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.inventoryRepo.Delete(ctx, id); err != nil {
		return fromRepo("Inventory", err)
	}
	s.notifier.Notify(EventInventoryDeleted, map[string]interface{}{"id": id})
	return nil
}

// resolve validates the input, loads the product and makes sure no other
// inventory row already tracks it.
func (s *inventoryService) resolve(ctx context.Context, in *InventoryInput, self uuid.UUID) (*model.Product, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, in.Product)
	if err != nil {
		return nil, requireRef("product", err)
	}

	existing, err := s.inventoryRepo.FindByProductID(ctx, in.Product)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return nil, InternalError("Failed to check inventory", err)
	case existing.ID != self:
		return nil, ValidationError("Validation failed", "inventory with this product already exists")
	}
	return product, nil
}

func applyInventory(inventory *model.Inventory, in *InventoryInput, product *model.Product) {
	inventory.ProductID = in.Product
	inventory.Product = product
	inventory.QuantityInStock = model.DefaultStock
	if in.QuantityInStock != nil {
		inventory.QuantityInStock = *in.QuantityInStock
	}
	inventory.ReorderLevel = model.DefaultReorderLevel
	if in.ReorderLevel != nil {
		inventory.ReorderLevel = *in.ReorderLevel
	}
}

package service

import (
	"context"

	"smart-sales-api/internal/model"
	"smart-sales-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleInput is the create/update payload. Items are managed through the
// sale-items resource. Total is stored as given.
type SaleInput struct {
	Customer      uuid.UUID        `json:"customer" validate:"uuid_required"`
	Employee      *uuid.UUID       `json:"employee"`
	Total         *decimal.Decimal `json:"total" validate:"required,gt=-100000000,lt=100000000"`
	Status        string           `json:"status" validate:"max=50"`
	PaymentMethod string           `json:"payment_method" validate:"max=50"`
	Notes         *string          `json:"notes"`
}

type SaleService interface {
	List(ctx context.Context) ([]model.SaleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.SaleResponse, error)
	Input(ctx context.Context, id uuid.UUID) (*SaleInput, error)
	Create(ctx context.Context, in *SaleInput) (*model.SaleResponse, error)
	Update(ctx context.Context, id uuid.UUID, in *SaleInput) (*model.SaleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type saleService struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	notifier     Notifier
}

func NewSaleService(saleRepo repository.SaleRepository, customerRepo repository.CustomerRepository, userRepo repository.UserRepository, notifier Notifier) SaleService {
	return &saleService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

func (s *saleService) List(ctx context.Context) ([]model.SaleResponse, error) {
	sales, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fromRepo("Sale", err)
	}
	responses := make([]model.SaleResponse, len(sales))
	for i := range sales {
		responses[i] = sales[i].ToResponse()
	}
	return responses, nil
}

func (s *saleService) Get(ctx context.Context, id uuid.UUID) (*model.SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Sale", err)
	}
	response := sale.ToResponse()
	return &response, nil
}

func (s *saleService) Input(ctx context.Context, id uuid.UUID) (*SaleInput, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Sale", err)
	}
	total := sale.Total
	return &SaleInput{
		Customer:      sale.CustomerID,
		Employee:      sale.EmployeeID,
		Total:         &total,
		Status:        sale.Status,
		PaymentMethod: sale.PaymentMethod,
		Notes:         sale.Notes,
	}, nil
}

func (s *saleService) Create(ctx context.Context, in *SaleInput) (*model.SaleResponse, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	sale := &model.Sale{}
	applySale(sale, in)
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, fromRepo("Sale", err)
	}

	response, err := s.Get(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(EventSaleCreated, response)
	return response, nil
}

func (s *saleService) Update(ctx context.Context, id uuid.UUID, in *SaleInput) (*model.SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Sale", err)
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	applySale(sale, in)
	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, fromRepo("Sale", err)
	}

	response, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(EventSaleUpdated, response)
	return response, nil
}

func (s *saleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.saleRepo.Delete(ctx, id); err != nil {
		return fromRepo("Sale", err)
	}
	s.notifier.Notify(EventSaleDeleted, map[string]interface{}{"id": id})
	return nil
}

// validate checks field tags first, then that the references resolve
func (s *saleService) validate(ctx context.Context, in *SaleInput) error {
	if err := validateInput(in); err != nil {
		return err
	}
	if _, err := s.customerRepo.FindByID(ctx, in.Customer); err != nil {
		return requireRef("customer", err)
	}
	if in.Employee != nil {
		if _, err := s.userRepo.FindByID(ctx, *in.Employee); err != nil {
			return requireRef("employee", err)
		}
	}
	return nil
}

func applySale(sale *model.Sale, in *SaleInput) {
	sale.CustomerID = in.Customer
	sale.EmployeeID = in.Employee
	sale.Total = in.Total.Round(2)
	sale.Status = in.Status
	if sale.Status == "" {
		sale.Status = model.DefaultSaleStatus
	}
	sale.PaymentMethod = in.PaymentMethod
	if sale.PaymentMethod == "" {
		sale.PaymentMethod = model.DefaultPaymentMethod
	}
	sale.Notes = in.Notes

	// Drop stale preloads so the saved row is what gets re-read
	sale.Customer = nil
	sale.Employee = nil
}

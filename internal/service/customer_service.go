package service

import (
	"context"
	"errors"

	"smart-sales-api/internal/model"
	"smart-sales-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerInput struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Email   string  `json:"email" validate:"required,email,max=254"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Address *string `json:"address"`
}

type CustomerService interface {
	List(ctx context.Context) ([]model.CustomerResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.CustomerResponse, error)
	Input(ctx context.Context, id uuid.UUID) (*CustomerInput, error)
	Create(ctx context.Context, in *CustomerInput) (*model.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, in *CustomerInput) (*model.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) List(ctx context.Context) ([]model.CustomerResponse, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fromRepo("Customer", err)
	}
	responses := make([]model.CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = customers[i].ToResponse()
	}
	return responses, nil
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*model.CustomerResponse, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Customer", err)
	}
	response := customer.ToResponse()
	return &response, nil
}

func (s *customerService) Input(ctx context.Context, id uuid.UUID) (*CustomerInput, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Customer", err)
	}
	return &CustomerInput{
		Name:    customer.Name,
		Email:   customer.Email,
		Phone:   customer.Phone,
		Address: customer.Address,
	}, nil
}

func (s *customerService) Create(ctx context.Context, in *CustomerInput) (*model.CustomerResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(ctx, in.Email, uuid.Nil); err != nil {
		return nil, err
	}

	customer := &model.Customer{}
	applyCustomer(customer, in)
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fromRepo("Customer", err)
	}

	response := customer.ToResponse()
	return &response, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, in *CustomerInput) (*model.CustomerResponse, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Customer", err)
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.Email != customer.Email {
		if err := s.checkEmailFree(ctx, in.Email, customer.ID); err != nil {
			return nil, err
		}
	}

	applyCustomer(customer, in)
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fromRepo("Customer", err)
	}

	response := customer.ToResponse()
	return &response, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	return fromRepo("Customer", s.repo.Delete(ctx, id))
}

func (s *customerService) checkEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return InternalError("Failed to check customer email", err)
	case existing.ID != self:
		return ValidationError("Validation failed", "customer with this email already exists")
	}
	return nil
}

func applyCustomer(customer *model.Customer, in *CustomerInput) {
	customer.Name = in.Name
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.Address = in.Address
}

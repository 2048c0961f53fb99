package service

import (
	"context"
	"time"

	"smart-sales-api/internal/model"
	"smart-sales-api/internal/repository"

	"github.com/google/uuid"
)

type ForecastInput struct {
	Product           uuid.UUID `json:"product" validate:"uuid_required"`
	ForecastDate      string    `json:"forecast_date" validate:"required,datetime=2006-01-02"`
	PredictedQuantity *int      `json:"predicted_quantity" validate:"required"`
	ModelUsed         string    `json:"model_used" validate:"max=100"`
}

type ForecastService interface {
	List(ctx context.Context) ([]model.ForecastResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ForecastResponse, error)
	Input(ctx context.Context, id uuid.UUID) (*ForecastInput, error)
	Create(ctx context.Context, in *ForecastInput) (*model.ForecastResponse, error)
	Update(ctx context.Context, id uuid.UUID, in *ForecastInput) (*model.ForecastResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type forecastService struct {
	forecastRepo repository.ForecastRepository
	productRepo  repository.ProductRepository
}

func NewForecastService(forecastRepo repository.ForecastRepository, productRepo repository.ProductRepository) ForecastService {
	return &forecastService{forecastRepo: forecastRepo, productRepo: productRepo}
}

func (s *forecastService) List(ctx context.Context) ([]model.ForecastResponse, error) {
	forecasts, err := s.forecastRepo.FindAll(ctx)
	if err != nil {
		return nil, fromRepo("Forecast", err)
	}
	responses := make([]model.ForecastResponse, len(forecasts))
	for i := range forecasts {
		responses[i] = forecasts[i].ToResponse()
	}
	return responses, nil
}

func (s *forecastService) Get(ctx context.Context, id uuid.UUID) (*model.ForecastResponse, error) {
	forecast, err := s.forecastRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Forecast", err)
	}
	response := forecast.ToResponse()
	return &response, nil
}

func (s *forecastService) Input(ctx context.Context, id uuid.UUID) (*ForecastInput, error) {
	forecast, err := s.forecastRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Forecast", err)
	}
	quantity := forecast.PredictedQuantity
	return &ForecastInput{
		Product:           forecast.ProductID,
		ForecastDate:      forecast.ForecastDate.Format(model.DateLayout),
		PredictedQuantity: &quantity,
		ModelUsed:         forecast.ModelUsed,
	}, nil
}

func (s *forecastService) Create(ctx context.Context, in *ForecastInput) (*model.ForecastResponse, error) {
	forecast := &model.Forecast{}
	if err := s.apply(ctx, forecast, in); err != nil {
		return nil, err
	}
	if err := s.forecastRepo.Create(ctx, forecast); err != nil {
		return nil, fromRepo("Forecast", err)
	}

	response := forecast.ToResponse()
	return &response, nil
}

func (s *forecastService) Update(ctx context.Context, id uuid.UUID, in *ForecastInput) (*model.ForecastResponse, error) {
	forecast, err := s.forecastRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo("Forecast", err)
	}
	if err := s.apply(ctx, forecast, in); err != nil {
		return nil, err
	}
	if err := s.forecastRepo.Update(ctx, forecast); err != nil {
		return nil, fromRepo("Forecast", err)
	}

	response := forecast.ToResponse()
	return &response, nil
}

func (s *forecastService) Delete(ctx context.Context, id uuid.UUID) error {
	return fromRepo("Forecast", s.forecastRepo.Delete(ctx, id))
}

// apply validates in and copies it onto forecast; nothing is written on failure.
func (s *forecastService) apply(ctx context.Context, forecast *model.Forecast, in *ForecastInput) error {
	if err := validateInput(in); err != nil {
		return err
	}
	date, err := time.Parse(model.DateLayout, in.ForecastDate)
	if err != nil {
		return ValidationError("Validation failed", "forecast_date must be a date in YYYY-MM-DD format")
	}
	product, err := s.productRepo.FindByID(ctx, in.Product)
	if err != nil {
		return requireRef("product", err)
	}

	forecast.ProductID = in.Product
	forecast.Product = product
	forecast.ForecastDate = date
	forecast.PredictedQuantity = *in.PredictedQuantity
	forecast.ModelUsed = in.ModelUsed
	if forecast.ModelUsed == "" {
		forecast.ModelUsed = model.DefaultForecastModel
	}
	return nil
}

package repository

import (
	"context"

	"smart-sales-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ForecastRepository interface {
	Create(ctx context.Context, forecast *model.Forecast) error
	FindAll(ctx context.Context) ([]model.Forecast, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Forecast, error)
	Update(ctx context.Context, forecast *model.Forecast) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type forecastRepo struct {
	db *gorm.DB
}

func NewForecastRepo(db *gorm.DB) ForecastRepository {
	return &forecastRepo{db}
}

func (r *forecastRepo) Create(ctx context.Context, forecast *model.Forecast) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(forecast).Error)
}

func (r *forecastRepo) FindAll(ctx context.Context) ([]model.Forecast, error) {
	var forecasts []model.Forecast
	err := r.db.WithContext(ctx).Preload("Product").Order("forecast_date ASC, created_at ASC").Find(&forecasts).Error
	return forecasts, err
}

func (r *forecastRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Forecast, error) {
	var forecast model.Forecast
	if err := r.db.WithContext(ctx).Preload("Product").First(&forecast, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &forecast, nil
}

func (r *forecastRepo) Update(ctx context.Context, forecast *model.Forecast) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(forecast).Error)
}

func (r *forecastRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.Forecast{}, id)
}

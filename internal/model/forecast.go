package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultForecastModel = "ARIMA"
	DateLayout           = "2006-01-02"
)

// Forecast is an informational demand prediction; ModelUsed is only a label.
type Forecast struct {
	BaseModel
	ProductID         uuid.UUID `gorm:"type:uuid;not null;index" json:"product"`
	Product           *Product  `json:"-"`
	ForecastDate      time.Time `gorm:"type:date;not null" json:"forecast_date"`
	PredictedQuantity int       `gorm:"not null" json:"predicted_quantity"`
	ModelUsed         string    `gorm:"type:varchar(100);not null" json:"model_used"`
}

type ForecastResponse struct {
	ID                uuid.UUID `json:"id"`
	Product           uuid.UUID `json:"product"`
	ProductName       string    `json:"product_name"`
	ForecastDate      string    `json:"forecast_date"`
	PredictedQuantity int       `json:"predicted_quantity"`
	ModelUsed         string    `json:"model_used"`
	CreatedAt         time.Time `json:"created_at"`
}

func (f *Forecast) ToResponse() ForecastResponse {
	return ForecastResponse{
		ID:                f.ID,
		Product:           f.ProductID,
		ProductName:       productName(f.Product),
		ForecastDate:      f.ForecastDate.Format(DateLayout),
		PredictedQuantity: f.PredictedQuantity,
		ModelUsed:         f.ModelUsed,
		CreatedAt:         f.CreatedAt,
	}
}

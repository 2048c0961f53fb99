package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock values reported for a product that has no inventory row.
const (
	DefaultStock        = 0
	DefaultReorderLevel = 10
	DefaultUnit         = "pcs"
)

type Product struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Cost        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"cost"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category"`
	Unit        string          `gorm:"type:varchar(50);not null" json:"unit"`

	// Optional: legacy rows may exist without inventory
	Inventory *Inventory `gorm:"constraint:OnDelete:CASCADE" json:"inventory,omitempty"`

	Forecasts []Forecast `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SaleItems []SaleItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// StockLevels returns the stock quantity and reorder threshold, falling
// back to the defaults when the inventory association is absent.
func (p *Product) StockLevels() (stock, reorderLevel int) {
	if p.Inventory == nil {
		return DefaultStock, DefaultReorderLevel
	}
	return p.Inventory.QuantityInStock, p.Inventory.ReorderLevel
}

type ProductResponse struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Description           *string   `json:"description"`
	Price                 string    `json:"price"`
	Cost                  string    `json:"cost"`
	Category              string    `json:"category"`
	Unit                  string    `json:"unit"`
	CreatedAt             time.Time `json:"created_at"`
	InventoryStock        int       `json:"inventory_stock"`
	InventoryReorderLevel int       `json:"inventory_reorder_level"`
}

func (p *Product) ToResponse() ProductResponse {
	stock, reorder := p.StockLevels()
	return ProductResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Description:           p.Description,
		Price:                 p.Price.StringFixed(2),
		Cost:                  p.Cost.StringFixed(2),
		Category:              p.Category,
		Unit:                  p.Unit,
		CreatedAt:             p.CreatedAt,
		InventoryStock:        stock,
		InventoryReorderLevel: reorder,
	}
}

// productName resolves a denormalized product name for nested responses.
func productName(p *Product) string {
	if p == nil {
		return ""
	}
	return p.Name
}

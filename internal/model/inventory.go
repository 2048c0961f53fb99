package model

import (
	"time"

	"github.com/google/uuid"
)

// Inventory is the one-to-one stock record of a product. QuantityInStock
// may go negative to represent a backorder.
type Inventory struct {
	BaseModel
	ProductID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"product"`
	Product         *Product  `json:"-"`
	QuantityInStock int       `gorm:"not null" json:"quantity_in_stock"`
	ReorderLevel    int       `gorm:"not null" json:"reorder_level"`
	LastUpdated     time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

// TableName specifies the table name for GORM
func (Inventory) TableName() string {
	return "inventories"
}

// IsLowStock reports whether stock is at or below the reorder threshold.
func (i *Inventory) IsLowStock() bool {
	return i.QuantityInStock <= i.ReorderLevel
}

type InventoryResponse struct {
	ID              uuid.UUID `json:"id"`
	Product         uuid.UUID `json:"product"`
	ProductName     string    `json:"product_name"`
	QuantityInStock int       `json:"quantity_in_stock"`
	ReorderLevel    int       `json:"reorder_level"`
	LastUpdated     time.Time `json:"last_updated"`
}

func (i *Inventory) ToResponse() InventoryResponse {
	return InventoryResponse{
		ID:              i.ID,
		Product:         i.ProductID,
		ProductName:     productName(i.Product),
		QuantityInStock: i.QuantityInStock,
		ReorderLevel:    i.ReorderLevel,
		LastUpdated:     i.LastUpdated,
	}
}

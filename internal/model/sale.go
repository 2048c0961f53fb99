package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultSaleStatus    = "Completed"
	DefaultPaymentMethod = "Cash"
)

// Sale is an order placed by a customer. CreatedAt doubles as the sale date.
// Total is caller-supplied and is not reconciled with the item subtotals.
type Sale struct {
	BaseModel
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer"`
	Customer      *Customer       `json:"-"`
	EmployeeID    *uuid.UUID      `gorm:"type:uuid;index" json:"employee"`
	Employee      *User           `gorm:"foreignKey:EmployeeID" json:"-"`
	Total         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	Status        string          `gorm:"type:varchar(50);not null" json:"status"`
	PaymentMethod string          `gorm:"type:varchar(50);not null" json:"payment_method"`
	Notes         *string         `gorm:"type:text" json:"notes"`

	Items []SaleItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// SaleItem is a line of a sale. Price is the unit price at time of sale.
type SaleItem struct {
	BaseModel
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product"`
	Product   *Product        `json:"-"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}

func (i *SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type SaleItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Sale        uuid.UUID `json:"sale"`
	Product     uuid.UUID `json:"product"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       string    `json:"price"`
	Subtotal    string    `json:"subtotal"`
}

func (i *SaleItem) ToResponse() SaleItemResponse {
	return SaleItemResponse{
		ID:          i.ID,
		Sale:        i.SaleID,
		Product:     i.ProductID,
		ProductName: productName(i.Product),
		Quantity:    i.Quantity,
		Price:       i.Price.StringFixed(2),
		Subtotal:    i.Subtotal().StringFixed(2),
	}
}

type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	Customer      uuid.UUID          `json:"customer"`
	CustomerName  string             `json:"customer_name"`
	Employee      *uuid.UUID         `json:"employee"`
	EmployeeName  *string            `json:"employee_name"`
	Total         string             `json:"total"`
	Date          time.Time          `json:"date"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	Notes         *string            `json:"notes"`
	Items         []SaleItemResponse `json:"items"`
}

// ToResponse embeds the items in the order they were loaded.
func (s *Sale) ToResponse() SaleResponse {
	response := SaleResponse{
		ID:            s.ID,
		Customer:      s.CustomerID,
		Employee:      s.EmployeeID,
		Total:         s.Total.StringFixed(2),
		Date:          s.CreatedAt,
		Status:        s.Status,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		Items:         make([]SaleItemResponse, 0, len(s.Items)),
	}

	if s.Customer != nil {
		response.CustomerName = s.Customer.Name
	}
	if s.Employee != nil {
		username := s.Employee.Username
		response.EmployeeName = &username
	}

	for i := range s.Items {
		response.Items = append(response.Items, s.Items[i].ToResponse())
	}

	return response
}

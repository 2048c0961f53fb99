package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	BaseModel
	Name    string  `gorm:"type:varchar(255);not null" json:"name"`
	Email   string  `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"`
	Phone   *string `gorm:"type:varchar(20)" json:"phone"`
	Address *string `gorm:"type:text" json:"address"`

	// Relasi
	Sales []Sale `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Customer) ToResponse() CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

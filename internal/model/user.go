package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is a staff identity. CreatedAt is the join date.
type User struct {
	BaseModel
	Username    string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email       string     `gorm:"type:varchar(254);index" json:"email"`
	Password    string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FirstName   string     `gorm:"type:varchar(150)" json:"first_name"`
	LastName    string     `gorm:"type:varchar(150)" json:"last_name"`
	IsActive    bool       `gorm:"not null" json:"is_active"`
	IsStaff     bool       `gorm:"not null" json:"is_staff"`
	IsSuperuser bool       `gorm:"not null" json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login"`

	// Sales keep their history when the issuing user is removed
	Sales []Sale `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL" json:"-"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is the public listing shape (without sensitive data)
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// ProfileResponse is returned to the authenticated user about themselves
type ProfileResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	DateJoined  time.Time  `json:"date_joined"`
	LastLogin   *time.Time `json:"last_login"`
}

func (u *User) ToProfile() ProfileResponse {
	return ProfileResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		DateJoined:  u.CreatedAt,
		LastLogin:   u.LastLogin,
	}
}

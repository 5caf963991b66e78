package model

import (
	"time"
)

// Customer is a contact of a company. At most one primary customer is
// created per intake flow; it may later be bound to a member account.
type Customer struct {
	ID        string `gorm:"primary_key:true;type:uuid" json:"id"`
	CompanyID string `gorm:"type:uuid;not null" json:"company_id"`

	FirstName string `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string `gorm:"type:varchar(100)" json:"last_name"`
	Email     string `gorm:"type:varchar(100)" json:"email"`
	Phone     string `gorm:"type:varchar(100)" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

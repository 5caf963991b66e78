package model

import (
	"time"
)

// Agent is a portal login identity. Operators and provisioned member
// accounts both authenticate as agents.
type Agent struct {
	UUID string `gorm:"primary_key:true;type:uuid" json:"uuid"`

	FirstName string `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string `gorm:"type:varchar(100)" json:"last_name"`

	Email string `gorm:"type:varchar(100);unique_index" json:"email"`

	Salt              string     `gorm:"type:varchar(100)" json:"-"`
	Password          string     `gorm:"type:varchar(100)" json:"-"`
	PasswordCreatedAt *time.Time `json:"password_created_at"`

	LastLoggedInAt *time.Time `json:"last_logged_in_at"`
	LoginCount     uint64     `json:"login_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	AgentSaltLength           = 32
	AgentGeneratedPasswordLen = 16
)

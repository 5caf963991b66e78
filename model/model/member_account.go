package model

import (
	"time"
)

const (
	MemberAccountStatusActive   = "active"
	MemberAccountStatusDisabled = "disabled"
)

// MemberAccount binds a customer to its portal login identity.
// Created idempotently per customer by the provisioning saga.
type MemberAccount struct {
	ID         string `gorm:"primary_key:true;type:uuid" json:"id"`
	CustomerID string `gorm:"type:uuid;not null;unique_index" json:"customer_id"`
	CompanyID  string `gorm:"type:uuid;not null;index" json:"company_id"`
	AgentUUID  string `gorm:"type:uuid;not null" json:"agent_uuid"`

	Status string `gorm:"type:varchar(20);not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

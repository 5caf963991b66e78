package model

import (
	"time"
)

// CustomerAgentMapping links a customer contact to its login identity.
// One mapping per customer; the agent may be shared when the same
// email signs up for several companies.
type CustomerAgentMapping struct {
	ID         string `gorm:"primary_key:true;type:uuid" json:"id"`
	CustomerID string `gorm:"type:uuid;not null;unique_index" json:"customer_id"`
	AgentUUID  string `gorm:"type:uuid;not null" json:"agent_uuid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

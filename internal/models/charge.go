package models

import (
	"time"

	"github.com/google/uuid"
)

type ChargeStatus string

const (
	ChargeNotImplemented ChargeStatus = "not_implemented"
)

// Charge records a payment attempt. Processing is not wired to a provider,
// so every row stays in ChargeNotImplemented.
type Charge struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Amount    int64        `gorm:"not null;default:0" json:"amount"`
	Currency  string       `gorm:"type:varchar(3)" json:"currency"`
	Status    ChargeStatus `gorm:"not null;default:'not_implemented'" json:"status"`
	CreatedAt time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Charge) TableName() string {
	return "charges"
}

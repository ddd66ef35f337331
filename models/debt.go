package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLender is used when a debt is recorded without naming the lender.
const DefaultLender = "Unknown"

// Debt represents money owed to a lender. Creating a debt also creates a
// mirror expense transaction; LinkedTransactionID records that pairing.
// Debts created before the column existed have it unset and fall back to
// field matching on delete.
type Debt struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	Description         string          `gorm:"size:255;not null" json:"description"`
	Amount              decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"amount"`
	Lender              string          `gorm:"size:255;not null;default:Unknown" json:"lender"`
	DueDate             time.Time       `gorm:"not null;index" json:"dueDate"`
	IsPaid              bool            `gorm:"not null;default:false" json:"isPaid"`
	DateCreated         time.Time       `gorm:"not null" json:"dateCreated"`
	LinkedTransactionID *uint           `gorm:"index" json:"linkedTransactionId,omitempty"`
}

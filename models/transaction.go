package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two admitted values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single income or expense entry. Amounts are always
// stored in the base currency (USD); display conversion never writes back.
// Transactions are immutable after creation: there is no update path.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time       `json:"-"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"amount"`
	Type        TransactionType `gorm:"size:16;not null" json:"type"`
	Tags        pq.StringArray  `gorm:"type:text[]" json:"tags"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}

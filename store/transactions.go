package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Azurakun/money-manager/models"
)

// transactionSortColumns whitelists the fields list queries may sort by.
// Unknown keys fall back to the default (date).
var transactionSortColumns = map[string]string{
	"date":        "date",
	"amount":      "amount",
	"description": "description",
	"type":        "type",
}

// TransactionListOptions carries the filter and sort parameters for listing
// transactions. Zero values mean "no filter" / defaults (date descending).
type TransactionListOptions struct {
	Type   string // exact match on type
	Tag    string // membership test against the tags array
	SortBy string
	Order  string // "asc" or "desc"; anything else means desc
}

// orderClause maps the options onto a sanitized ORDER BY expression.
func (o TransactionListOptions) orderClause() string {
	col, ok := transactionSortColumns[o.SortBy]
	if !ok {
		col = "date"
	}
	dir := "DESC"
	if strings.EqualFold(o.Order, "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}

// Transactions is the record store for income/expense entries.
type Transactions struct {
	db *gorm.DB
}

func NewTransactions(db *gorm.DB) *Transactions {
	return &Transactions{db: db}
}

func validateTransaction(t *models.Transaction) error {
	if strings.TrimSpace(t.Description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if !t.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	return nil
}

// Create validates and persists a transaction, assigning its id. The date
// defaults to now when unset.
func (s *Transactions) Create(ctx context.Context, t *models.Transaction) error {
	if err := validateTransaction(t); err != nil {
		return err
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	if t.Tags == nil {
		t.Tags = pq.StringArray{}
	}
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// List returns transactions matching the options' filters, sorted per the
// whitelisted sort field (default date descending).
func (s *Transactions) List(ctx context.Context, opts TransactionListOptions) ([]models.Transaction, error) {
	q := s.db.WithContext(ctx).Model(&models.Transaction{})
	if opts.Type != "" {
		q = q.Where("type = ?", opts.Type)
	}
	if opts.Tag != "" {
		q = q.Where("? = ANY(tags)", opts.Tag)
	}
	out := []models.Transaction{}
	if err := q.Order(opts.orderClause()).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

func (s *Transactions) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var t models.Transaction
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// Delete removes one transaction. Deleting an absent id is an error, not a
// silent success.
func (s *Transactions) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// LatestMatch finds the most recently created transaction whose description,
// amount and date all equal the given values. Used as the legacy fallback
// when a debt has no recorded linked transaction id; picking the highest id
// is the documented tie-break when several rows qualify.
func (s *Transactions) LatestMatch(ctx context.Context, description string, amount decimal.Decimal, date time.Time) (*models.Transaction, error) {
	var t models.Transaction
	err := s.db.WithContext(ctx).
		Where("description = ? AND amount = ? AND date = ?", description, amount, date).
		Order("id DESC").
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("match transaction: %w", err)
	}
	return &t, nil
}

// DistinctTags flattens every transaction's tags into a deduplicated,
// sorted list. Always computed over the full set, ignoring filters.
func (s *Transactions) DistinctTags(ctx context.Context) ([]string, error) {
	tags := []string{}
	err := s.db.WithContext(ctx).
		Raw("SELECT DISTINCT unnest(tags) AS tag FROM transactions ORDER BY tag").
		Scan(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("distinct tags: %w", err)
	}
	return tags, nil
}

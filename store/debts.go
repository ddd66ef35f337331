package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Azurakun/money-manager/models"
)

// DebtPatch carries a partial update: only non-nil fields are applied,
// everything else is retained. DateCreated and the linked transaction id
// are immutable through this path.
type DebtPatch struct {
	Description *string
	Amount      *decimal.Decimal
	Lender      *string
	DueDate     *time.Time
	IsPaid      *bool
}

// Debts is the record store for debt entries.
type Debts struct {
	db *gorm.DB
}

func NewDebts(db *gorm.DB) *Debts {
	return &Debts{db: db}
}

func validateDebt(d *models.Debt) error {
	if strings.TrimSpace(d.Description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if !d.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if d.DueDate.IsZero() {
		return &ValidationError{Field: "dueDate", Reason: "is required"}
	}
	return nil
}

// Create validates and persists a debt, assigning its id. Lender defaults
// to Unknown and DateCreated is stamped once here.
func (s *Debts) Create(ctx context.Context, d *models.Debt) error {
	if strings.TrimSpace(d.Lender) == "" {
		d.Lender = models.DefaultLender
	}
	if err := validateDebt(d); err != nil {
		return err
	}
	if d.DateCreated.IsZero() {
		d.DateCreated = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("create debt: %w", err)
	}
	return nil
}

// List returns all debts, unpaid first, soonest due first. The two-key sort
// is fixed; callers cannot configure it.
func (s *Debts) List(ctx context.Context) ([]models.Debt, error) {
	out := []models.Debt{}
	if err := s.db.WithContext(ctx).Order("is_paid ASC, due_date ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	return out, nil
}

func (s *Debts) GetByID(ctx context.Context, id uint) (*models.Debt, error) {
	var d models.Debt
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get debt: %w", err)
	}
	return &d, nil
}

// Update applies the patch on top of the stored record, re-validates the
// merged state and saves it.
func (s *Debts) Update(ctx context.Context, id uint, patch DebtPatch) (*models.Debt, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Amount != nil {
		d.Amount = *patch.Amount
	}
	if patch.Lender != nil {
		d.Lender = *patch.Lender
	}
	if patch.DueDate != nil {
		d.DueDate = *patch.DueDate
	}
	if patch.IsPaid != nil {
		d.IsPaid = *patch.IsPaid
	}
	if err := validateDebt(d); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(d).Error; err != nil {
		return nil, fmt.Errorf("update debt: %w", err)
	}
	return d, nil
}

// SetLinkedTransaction records the id of the mirror expense created
// alongside the debt.
func (s *Debts) SetLinkedTransaction(ctx context.Context, debtID, txID uint) error {
	res := s.db.WithContext(ctx).Model(&models.Debt{}).
		Where("id = ?", debtID).
		Update("linked_transaction_id", txID)
	if res.Error != nil {
		return fmt.Errorf("link debt transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Debts) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Debt{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete debt: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

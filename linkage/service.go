// Package linkage coordinates the paired writes between debts and their
// mirror expense transactions. It is the only place in the system where a
// single operation touches both record collections, so it owns the
// compensation and best-effort semantics around that.
package linkage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Azurakun/money-manager/models"
	"github.com/Azurakun/money-manager/store"
)

// TransactionStore is the slice of the transaction record store the linkage
// service needs.
//
//go:generate mockgen -destination=mocks/mock_store.go -source=service.go -package=mock_linkage
type TransactionStore interface {
	Create(ctx context.Context, t *models.Transaction) error
	Delete(ctx context.Context, id uint) error
	LatestMatch(ctx context.Context, description string, amount decimal.Decimal, date time.Time) (*models.Transaction, error)
}

// DebtStore is the slice of the debt record store the linkage service needs.
type DebtStore interface {
	Create(ctx context.Context, d *models.Debt) error
	GetByID(ctx context.Context, id uint) (*models.Debt, error)
	Update(ctx context.Context, id uint, patch store.DebtPatch) (*models.Debt, error)
	Delete(ctx context.Context, id uint) error
	SetLinkedTransaction(ctx context.Context, debtID, txID uint) error
}

// PartialFailure reports that a debt was created but its mirror transaction
// write failed AND the compensating delete of the debt failed too, leaving
// the debt in place without a mirror. It carries the debt id and the
// underlying write error so the caller can reconcile manually.
type PartialFailure struct {
	DebtID uint
	Err    error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("debt %d created but mirror transaction failed: %v", e.DebtID, e.Err)
}

func (e *PartialFailure) Unwrap() error { return e.Err }

// Service orchestrates debt writes and their mirror transactions.
type Service struct {
	transactions TransactionStore
	debts        DebtStore
}

func NewService(transactions TransactionStore, debts DebtStore) *Service {
	return &Service{transactions: transactions, debts: debts}
}

// MirrorDescription builds the deterministic description shared by a debt
// and its mirror expense. It doubles as the legacy match key for debts
// recorded before the explicit link existed.
func MirrorDescription(d *models.Debt) string {
	lender := d.Lender
	if lender == "" {
		lender = models.DefaultLender
	}
	return fmt.Sprintf("Debt added: %s (Lender: %s)", d.Description, lender)
}

// mirrorAmount is the negated magnitude of the debt: money leaving the user
// at the moment the debt is incurred.
func mirrorAmount(d *models.Debt) decimal.Decimal {
	return d.Amount.Abs().Neg()
}

// CreateDebt persists the debt and then its mirror expense, in that order.
// If the mirror write fails the debt is compensated away; only when that
// compensation also fails does the caller see a PartialFailure. The mirror
// link backfill is best-effort: a failure there is logged and the legacy
// field match covers deletion later.
func (s *Service) CreateDebt(ctx context.Context, d *models.Debt) error {
	if err := s.debts.Create(ctx, d); err != nil {
		return err
	}

	mirror := &models.Transaction{
		Description: MirrorDescription(d),
		Amount:      mirrorAmount(d),
		Type:        models.TypeExpense,
		Date:        d.DateCreated,
	}
	if err := s.transactions.Create(ctx, mirror); err != nil {
		if compErr := s.debts.Delete(ctx, d.ID); compErr != nil {
			log.Printf("linkage: compensating delete of debt %d failed: %v", d.ID, compErr)
			return &PartialFailure{DebtID: d.ID, Err: err}
		}
		return fmt.Errorf("create mirror transaction: %w", err)
	}

	if err := s.debts.SetLinkedTransaction(ctx, d.ID, mirror.ID); err != nil {
		log.Printf("linkage: recording link for debt %d -> transaction %d failed: %v", d.ID, mirror.ID, err)
	} else {
		id := mirror.ID
		d.LinkedTransactionID = &id
	}
	return nil
}

// DeleteDebt removes the debt and, best effort, its mirror transaction.
// The mirror is located by the explicit link when present, otherwise by the
// legacy three-field match (description, amount, date) with the most recent
// candidate winning. Any failure locating or deleting the mirror is logged
// and never blocks deletion of the debt itself.
func (s *Service) DeleteDebt(ctx context.Context, id uint) error {
	d, err := s.debts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.deleteMirror(ctx, d)

	return s.debts.Delete(ctx, id)
}

func (s *Service) deleteMirror(ctx context.Context, d *models.Debt) {
	if d.LinkedTransactionID != nil {
		if err := s.transactions.Delete(ctx, *d.LinkedTransactionID); err != nil {
			log.Printf("linkage: deleting linked transaction %d for debt %d: %v", *d.LinkedTransactionID, d.ID, err)
		}
		return
	}

	mirror, err := s.transactions.LatestMatch(ctx, MirrorDescription(d), mirrorAmount(d), d.DateCreated)
	if err != nil {
		log.Printf("linkage: no mirror transaction matched for debt %d: %v", d.ID, err)
		return
	}
	if err := s.transactions.Delete(ctx, mirror.ID); err != nil {
		log.Printf("linkage: deleting matched transaction %d for debt %d: %v", mirror.ID, d.ID, err)
	}
}

// UpdateDebt applies a partial update to the debt record. Changes are never
// propagated to the mirror transaction; it goes stale when amount,
// description or dates change, and flipping IsPaid has no financial side
// effect in either direction.
func (s *Service) UpdateDebt(ctx context.Context, id uint, patch store.DebtPatch) (*models.Debt, error) {
	return s.debts.Update(ctx, id, patch)
}

// TogglePaid flips the paid flag and nothing else.
func (s *Service) TogglePaid(ctx context.Context, id uint) (*models.Debt, error) {
	d, err := s.debts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	paid := !d.IsPaid
	return s.debts.Update(ctx, id, store.DebtPatch{IsPaid: &paid})
}

package linkage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azurakun/money-manager/linkage"
	mock_linkage "github.com/Azurakun/money-manager/linkage/mocks"
	"github.com/Azurakun/money-manager/models"
	"github.com/Azurakun/money-manager/store"
)

func newMocks(t *testing.T) (*gomock.Controller, *mock_linkage.MockTransactionStore, *mock_linkage.MockDebtStore, *linkage.Service) {
	ctrl := gomock.NewController(t)
	txs := mock_linkage.NewMockTransactionStore(ctrl)
	debts := mock_linkage.NewMockDebtStore(ctrl)
	return ctrl, txs, debts, linkage.NewService(txs, debts)
}

func TestCreateDebtSynthesizesMirror(t *testing.T) {
	ctrl, txs, debts, svc := newMocks(t)
	defer ctrl.Finish()

	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	d := &models.Debt{
		Description: "Rent",
		Amount:      decimal.NewFromInt(500),
		Lender:      "Bob",
		DueDate:     created.AddDate(0, 1, 0),
	}

	debts.EXPECT().Create(gomock.Any(), d).DoAndReturn(func(_ context.Context, d *models.Debt) error {
		d.ID = 11
		d.DateCreated = created
		return nil
	})
	var mirror *models.Transaction
	txs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
		tx.ID = 42
		mirror = tx
		return nil
	})
	debts.EXPECT().SetLinkedTransaction(gomock.Any(), uint(11), uint(42)).Return(nil)

	require.NoError(t, svc.CreateDebt(context.Background(), d))

	require.NotNil(t, mirror)
	assert.Equal(t, "Debt added: Rent (Lender: Bob)", mirror.Description)
	assert.True(t, mirror.Amount.Equal(decimal.NewFromInt(-500)), "mirror amount should be -500, got %s", mirror.Amount)
	assert.Equal(t, models.TypeExpense, mirror.Type)
	assert.True(t, mirror.Date.Equal(created))

	require.NotNil(t, d.LinkedTransactionID)
	assert.Equal(t, uint(42), *d.LinkedTransactionID)
}

func TestCreateDebtUnknownLender(t *testing.T) {
	ctrl, txs, debts, svc := newMocks(t)
	defer ctrl.Finish()

	d := &models.Debt{Description: "Groceries loan", Amount: decimal.NewFromInt(20), DueDate: time.Now()}

	debts.EXPECT().Create(gomock.Any(), d).DoAndReturn(func(_ context.Context, d *models.Debt) error {
		d.ID = 1
		d.DateCreated = time.Now()
		return nil
	})
	txs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
		assert.Equal(t, "Debt added: Groceries loan (Lender: Unknown)", tx.Description)
		tx.ID = 2
		return nil
	})
	debts.EXPECT().SetLinkedTransaction(gomock.Any(), uint(1), uint(2)).Return(nil)

	require.NoError(t, svc.CreateDebt(context.Background(), d))
}

func TestCreateDebtValidationAbortsBeforeMirror(t *testing.T) {
	ctrl, _, debts, svc := newMocks(t)
	defer ctrl.Finish()

	verr := &store.ValidationError{Field: "amount", Reason: "must be positive"}
	debts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(verr)

	err := svc.CreateDebt(context.Background(), &models.Debt{})
	var got *store.ValidationError
	require.ErrorAs(t, err, &got)
	// no transaction expectations were registered: any mirror write would fail the test
}

func TestCreateDebtMirrorFailureCompensated(t *testing.T) {
	ctrl, txs, debts, svc := newMocks(t)
	defer ctrl.Finish()

	writeErr := errors.New("connection reset")
	debts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *models.Debt) error {
		d.ID = 7
		return nil
	})
	txs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(writeErr)
	debts.EXPECT().Delete(gomock.Any(), uint(7)).Return(nil)

	err := svc.CreateDebt(context.Background(), &models.Debt{Description: "Rent", Amount: decimal.NewFromInt(500), DueDate: time.Now()})
	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)
	var pf *linkage.PartialFailure
	assert.False(t, errors.As(err, &pf), "compensated failure must not surface as PartialFailure")
}

func TestCreateDebtPartialFailureWhenCompensationFails(t *testing.T) {
	ctrl, txs, debts, svc := newMocks(t)
	defer ctrl.Finish()

	writeErr := errors.New("connection reset")
	debts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *models.Debt) error {
		d.ID = 7
		return nil
	})
	txs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(writeErr)
	debts.EXPECT().Delete(gomock.Any(), uint(7)).Return(errors.New("still down"))

	err := svc.CreateDebt(context.Background(), &models.Debt{Description: "Rent", Amount: decimal.NewFromInt(500), DueDate: time.Now()})
	var pf *linkage.PartialFailure
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, uint(7), pf.DebtID)
	assert.ErrorIs(t, pf, writeErr)
}

func TestCreateDebtLinkBackfillFailureIsNonFatal(t *testing.T) {
	ctrl, txs, debts, svc := newMocks(t)
	defer ctrl.Finish()

	d := &models.Debt{Description: "Rent", Amount: decimal.NewFromInt(500), DueDate: time.Now()}
	debts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *models.Debt) error {
		d.ID = 3
		return nil
	})
	txs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
		tx.ID = 9
		return nil
	})
	debts.EXPECT().SetLinkedTransaction(gomock.Any(), uint(3), uint(9)).Return(errors.New("timeout"))

	require.NoError(t, svc.CreateDebt(context.Background(), d))
	assert.Nil(t, d.LinkedTransactionID)
}

func TestDeleteDebtUsesExplicitLink(t *testing.T) {
	ctrl, txs, debts, svc := newMocks(t)
	defer ctrl.Finish()

	txID := uint(42)
	debts.EXPECT().GetByID(gomock.Any(), uint(5)).Return(&models.Debt{ID: 5, LinkedTransactionID: &txID}, nil)
	txs.EXPECT().Delete(gomock.Any(), txID).Return(nil)
	debts.EXPECT().Delete(gomock.Any(), uint(5)).Return(nil)

	require.NoError(t, svc.DeleteDebt(context.Background(), 5))
}

func TestDeleteDebtLegacyMatchPicksMostRecent(t *testing.T) {
	ctrl, txs, debts, svc := newMocks(t)
	defer ctrl.Finish()

	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	d := &models.Debt{ID: 5, Description: "Rent", Amount: decimal.NewFromInt(500), Lender: "Bob", DateCreated: created}

	debts.EXPECT().GetByID(gomock.Any(), uint(5)).Return(d, nil)
	txs.EXPECT().
		LatestMatch(gomock.Any(), "Debt added: Rent (Lender: Bob)", gomock.Any(), created).
		DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal, _ time.Time) (*models.Transaction, error) {
			assert.True(t, amount.Equal(decimal.NewFromInt(-500)))
			return &models.Transaction{ID: 99}, nil
		})
	txs.EXPECT().Delete(gomock.Any(), uint(99)).Return(nil)
	debts.EXPECT().Delete(gomock.Any(), uint(5)).Return(nil)

	require.NoError(t, svc.DeleteDebt(context.Background(), 5))
}

func TestDeleteDebtMirrorLookupFailureIsSwallowed(t *testing.T) {
	ctrl, txs, debts, svc := newMocks(t)
	defer ctrl.Finish()

	d := &models.Debt{ID: 5, Description: "Rent", Amount: decimal.NewFromInt(500), DateCreated: time.Now()}
	debts.EXPECT().GetByID(gomock.Any(), uint(5)).Return(d, nil)
	txs.EXPECT().LatestMatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrNotFound)
	debts.EXPECT().Delete(gomock.Any(), uint(5)).Return(nil)

	require.NoError(t, svc.DeleteDebt(context.Background(), 5))
}

func TestDeleteDebtNotFound(t *testing.T) {
	ctrl, _, debts, svc := newMocks(t)
	defer ctrl.Finish()

	debts.EXPECT().GetByID(gomock.Any(), uint(404)).Return(nil, store.ErrNotFound)

	err := svc.DeleteDebt(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTogglePaidTwiceRoundTrips(t *testing.T) {
	ctrl, _, debts, svc := newMocks(t)
	defer ctrl.Finish()

	state := &models.Debt{ID: 8, Description: "Rent", Amount: decimal.NewFromInt(500), DueDate: time.Now(), IsPaid: false}
	debts.EXPECT().GetByID(gomock.Any(), uint(8)).DoAndReturn(func(context.Context, uint) (*models.Debt, error) {
		snap := *state
		return &snap, nil
	}).Times(2)
	debts.EXPECT().Update(gomock.Any(), uint(8), gomock.Any()).DoAndReturn(func(_ context.Context, _ uint, patch store.DebtPatch) (*models.Debt, error) {
		require.NotNil(t, patch.IsPaid)
		state.IsPaid = *patch.IsPaid
		snap := *state
		return &snap, nil
	}).Times(2)

	first, err := svc.TogglePaid(context.Background(), 8)
	require.NoError(t, err)
	assert.True(t, first.IsPaid)

	second, err := svc.TogglePaid(context.Background(), 8)
	require.NoError(t, err)
	assert.False(t, second.IsPaid)
	// no transaction-store expectations registered: toggling must not touch transactions
}

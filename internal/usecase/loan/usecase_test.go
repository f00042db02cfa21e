package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"banking-ledger/internal/adapter/repository/gormrepo"
	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
	"banking-ledger/internal/domain/customer"
	"banking-ledger/internal/testutil/dbtest"
)

type fixture struct {
	db       *gorm.DB
	uc       *Usecase
	accounts *gormrepo.AccountRepository
	txs      *gormrepo.TransactionRepository
	crc, usd uint64
}

func newFixture(t *testing.T, crcBalance string) *fixture {
	t.Helper()
	ctx := context.Background()
	gdb := dbtest.Open(t)
	accounts := gormrepo.NewAccountRepository(gdb)

	c, err := customer.New(5, "Ana", "Mora", "", "")
	require.NoError(t, err)
	require.NoError(t, gormrepo.NewCustomerRepository(gdb).Create(ctx, c))

	crc, err := account.New(c.ID, "CRC", d(crcBalance), d("0"))
	require.NoError(t, err)
	require.NoError(t, accounts.Create(ctx, crc))
	usd, err := account.New(c.ID, "USD", d("500"), d("0"))
	require.NoError(t, err)
	require.NoError(t, accounts.Create(ctx, usd))

	uc := NewUsecase(gormrepo.NewLoanRepository(gdb), accounts, gormrepo.NewGormUoW(gdb))
	uc.now = func() time.Time { return requested }
	return &fixture{db: gdb, uc: uc, accounts: accounts, txs: gormrepo.NewTransactionRepository(gdb), crc: crc.ID, usd: usd.ID}
}

func (f *fixture) balance(t *testing.T, id uint64) string {
	t.Helper()
	a, err := f.accounts.GetByID(context.Background(), id)
	require.NoError(t, err)
	return a.Balance.StringFixed(2)
}

func TestDisburse(t *testing.T) {
	f := newFixture(t, "0")
	ctx := context.Background()

	dto, err := f.uc.Disburse(ctx, DisburseInput{AccountID: f.crc, Type: "personal", Principal: d("100000"), Rate: d("12"), TermMonths: 12})
	require.NoError(t, err)
	assert.Equal(t, "CRC", dto.Currency)
	assert.True(t, d("8884.88").Equal(dto.Installment))
	assert.Equal(t, "active", dto.State)
	assert.Equal(t, requested.AddDate(0, 1, 0), dto.NextPaymentAt)
	assert.Equal(t, "0.00", f.balance(t, f.crc), "disbursement moves no funds")

	_, err = f.uc.Disburse(ctx, DisburseInput{AccountID: f.crc, Type: "personal", Currency: "USD", Principal: d("1"), Rate: d("1"), TermMonths: 1})
	assert.ErrorIs(t, err, apperr.ErrConstraint)

	_, err = f.uc.Disburse(ctx, DisburseInput{AccountID: 999, Type: "personal", Principal: d("1"), Rate: d("1"), TermMonths: 1})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.uc.Disburse(ctx, DisburseInput{AccountID: f.crc, Type: "car", Principal: d("1"), Rate: d("1"), TermMonths: 1})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.uc.Disburse(ctx, DisburseInput{AccountID: f.crc, Type: "mortgage", Principal: d("1000"), Rate: d("5"), TermMonths: 0})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	explicit, err := f.uc.Disburse(ctx, DisburseInput{AccountID: f.usd, Type: "pledge", Principal: d("2000"), Rate: d("8"), TermMonths: 24, Installment: d("95")})
	require.NoError(t, err)
	assert.True(t, d("95").Equal(explicit.Installment))

	list, err := f.uc.ListByAccount(ctx, f.crc)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	_, err = f.uc.ListByAccount(ctx, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPay_RunsToCloseThenRejects(t *testing.T) {
	f := newFixture(t, "200000")
	ctx := context.Background()
	dto, err := f.uc.Disburse(ctx, DisburseInput{AccountID: f.crc, Type: "personal", Principal: d("100000"), Rate: d("12"), TermMonths: 12})
	require.NoError(t, err)

	for i := 1; i <= 12; i++ {
		res, err := f.uc.Pay(ctx, dto.ID)
		require.NoError(t, err, "installment %d", i)
		assert.Equal(t, i, res.Payment.Number)
		assert.True(t, d("1000").Equal(res.Payment.InterestPortion))
		assert.Equal(t, "loan-payment", res.Transaction.Type)
	}

	got, err := f.uc.Get(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, "closed", got.State)
	assert.Equal(t, 12, got.InstallmentsPaid)
	assert.True(t, d("12000").Equal(got.InterestPaid))
	assert.True(t, d("5381.44").Equal(got.RemainingBalance))

	_, err = f.uc.Pay(ctx, dto.ID)
	assert.ErrorIs(t, err, apperr.ErrConstraint)

	// 200000 - 12 * 8884.88
	assert.Equal(t, "93381.44", f.balance(t, f.crc))
	n, err := f.txs.CountByAccount(ctx, f.crc)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	ps, err := f.uc.Payments(ctx, dto.ID)
	require.NoError(t, err)
	require.Len(t, ps, 12)
	assert.True(t, d("92115.12").Equal(ps[0].RemainingBalance))
	assert.True(t, d("5381.44").Equal(ps[11].RemainingBalance))

	_, err = f.uc.Payments(ctx, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPay_InsufficientFundsLeavesLoan(t *testing.T) {
	f := newFixture(t, "8884.87")
	ctx := context.Background()
	dto, err := f.uc.Disburse(ctx, DisburseInput{AccountID: f.crc, Type: "personal", Principal: d("100000"), Rate: d("12"), TermMonths: 12})
	require.NoError(t, err)

	_, err = f.uc.Pay(ctx, dto.ID)
	assert.ErrorIs(t, err, apperr.ErrInsufficientFunds)

	got, err := f.uc.Get(ctx, dto.ID)
	require.NoError(t, err)
	assert.Zero(t, got.InstallmentsPaid)
	assert.Equal(t, "8884.87", f.balance(t, f.crc))

	_, err = f.uc.Pay(ctx, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPay_PaymentRowFailureRollsBackDebit(t *testing.T) {
	f := newFixture(t, "10000")
	ctx := context.Background()
	dto, err := f.uc.Disburse(ctx, DisburseInput{AccountID: f.crc, Type: "personal", Principal: d("100000"), Rate: d("12"), TermMonths: 12})
	require.NoError(t, err)
	dbtest.FailCreate(t, f.db, "loan_payments", errors.New("payments table locked"))

	_, err = f.uc.Pay(ctx, dto.ID)
	assert.ErrorIs(t, err, apperr.ErrPersistence)

	got, err := f.uc.Get(ctx, dto.ID)
	require.NoError(t, err)
	assert.Zero(t, got.InstallmentsPaid)
	assert.True(t, got.PrincipalPaid.IsZero())
	assert.Equal(t, "10000.00", f.balance(t, f.crc))
	n, err := f.txs.CountByAccount(ctx, f.crc)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEstimate(t *testing.T) {
	uc := NewUsecase(nil, nil, nil)
	e, err := uc.Estimate(context.Background(), EstimateInput{Principal: d("100000"), Rate: d("12"), TermMonths: 12, Currency: "crc"})
	require.NoError(t, err)
	assert.True(t, d("8884.88").Equal(e.Installment))
	assert.True(t, d("1000").Equal(e.InterestPortion))
	assert.True(t, d("6618.56").Equal(e.TotalInterest))
	assert.Equal(t, "₡8,884.88", e.Display)

	_, err = uc.Estimate(context.Background(), EstimateInput{Principal: d("100000"), Rate: d("12")})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

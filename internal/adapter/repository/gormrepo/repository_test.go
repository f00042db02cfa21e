package gormrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
	"banking-ledger/internal/domain/cdp"
	"banking-ledger/internal/domain/customer"
	"banking-ledger/internal/domain/loan"
	"banking-ledger/internal/domain/transaction"
	"banking-ledger/internal/infrastructure/db"
)

// openTestDB returns a migrated in-memory store on a single connection.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenSQLite(":memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func seedCustomer(t *testing.T, gdb *gorm.DB, nationalID uint64) *customer.Customer {
	t.Helper()
	c, err := customer.New(nationalID, "Ana", "Mora", "Solis", "88887777")
	require.NoError(t, err)
	require.NoError(t, NewCustomerRepository(gdb).Create(context.Background(), c))
	require.NotZero(t, c.ID)
	return c
}

func seedAccount(t *testing.T, gdb *gorm.DB, customerID uint64, cur string, balance int64) *account.Account {
	t.Helper()
	a, err := account.New(customerID, cur, decimal.NewFromInt(balance), decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, NewAccountRepository(gdb).Create(context.Background(), a))
	require.NotZero(t, a.ID)
	return a
}

func TestCustomerRepository(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	repo := NewCustomerRepository(gdb)
	c := seedCustomer(t, gdb, 101110111)

	got, err := repo.GetByNationalID(ctx, 101110111)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "Ana Mora Solis", got.FullName())

	ok, err := repo.ExistsByNationalID(ctx, 101110111)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, c.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	dup, _ := customer.New(101110111, "Eva", "Mora", "", "")
	err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, apperr.ErrConstraint)
}

func TestAccountRepository(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	repo := NewAccountRepository(gdb)
	c := seedCustomer(t, gdb, 7)
	crc := seedAccount(t, gdb, c.ID, "CRC", 500)
	usd := seedAccount(t, gdb, c.ID, "USD", 0)

	t.Run("one account per currency", func(t *testing.T) {
		again, err := account.New(c.ID, "crc", decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, again), apperr.ErrConstraint)

		ok, err := repo.ExistsForCurrency(ctx, c.ID, account.USD)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("list by customer", func(t *testing.T) {
		list, err := repo.ListByCustomer(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, crc.ID, list[0].ID)
		assert.Equal(t, usd.ID, list[1].ID)
	})

	t.Run("update balance keeps cents", func(t *testing.T) {
		require.NoError(t, repo.UpdateBalance(ctx, crc.ID, decimal.RequireFromString("115.12")))
		got, err := repo.GetByID(ctx, crc.ID)
		require.NoError(t, err)
		assert.Equal(t, "115.12", got.Balance.StringFixed(2))
	})

	t.Run("missing", func(t *testing.T) {
		assert.ErrorIs(t, repo.UpdateBalance(ctx, 999, decimal.NewFromInt(1)), apperr.ErrNotFound)
		_, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		_, err = repo.getForUpdate(ctx, 999)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestTransactionRepository_History(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	repo := NewTransactionRepository(gdb)
	c := seedCustomer(t, gdb, 8)
	a := seedAccount(t, gdb, c.ID, "CRC", 0)
	b := seedAccount(t, gdb, seedCustomer(t, gdb, 9).ID, "CRC", 0)

	dep, _ := transaction.NewDeposit(a.ID, decimal.NewFromInt(500))
	tr, _ := transaction.NewTransfer(a.ID, b.ID, decimal.NewFromInt(100))
	wd, _ := transaction.NewWithdrawal(b.ID, decimal.NewFromInt(50))
	for _, tx := range []*transaction.Transaction{dep, tr, wd} {
		require.NoError(t, repo.Create(ctx, tx))
	}

	list, err := repo.ListByAccount(ctx, a.ID, transaction.Page{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, dep.Type, list[0].Type)
	assert.Equal(t, tr.Reference, list[1].Reference)

	page, err := repo.ListByAccount(ctx, b.ID, transaction.Page{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, wd.Reference, page[0].Reference)

	page, err = repo.ListByAccount(ctx, a.ID, transaction.Page{Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1, "offset without limit")
	assert.Equal(t, tr.Reference, page[0].Reference)

	n, err := repo.CountByAccount(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = repo.CountByAccount(ctx, 999)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCDPRepository(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	repo := NewCDPRepository(gdb)
	a := seedAccount(t, gdb, seedCustomer(t, gdb, 10).ID, "USD", 6000)

	requested := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	cert, err := cdp.New(a.ID, a.Currency, decimal.NewFromInt(6000), 12, decimal.RequireFromString("3.83"), requested)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, cert))

	got, err := repo.GetByID(ctx, cert.ID)
	require.NoError(t, err)
	assert.Equal(t, "2757.60", got.InterestAtMaturity().StringFixed(2))
	assert.True(t, got.MaturityDate().Equal(requested.AddDate(0, 12, 0)))

	list, err := repo.ListByAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	ok, err := repo.Exists(ctx, cert.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoanRepository_SaveAndPayments(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	repo := NewLoanRepository(gdb)
	a := seedAccount(t, gdb, seedCustomer(t, gdb, 11).ID, "USD", 0)

	l, err := loan.New(a.ID, loan.TypePersonal, account.USD, decimal.NewFromInt(100000),
		decimal.NewFromInt(12), 12, decimal.Zero, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, l))

	applied := loan.ApplyInstallment(l)
	require.NoError(t, repo.Save(ctx, l))
	p := applied.Payment()
	require.NoError(t, repo.CreatePayment(ctx, p))
	assert.NotZero(t, p.ID)

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.InstallmentsPaid)
	assert.Equal(t, "92115.12", got.RemainingBalance().StringFixed(2))
	assert.True(t, got.NextPaymentAt.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))

	pays, err := repo.ListPayments(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, pays, 1)
	assert.Equal(t, "1000.00", pays[0].InterestPortion.StringFixed(2))

	list, err := repo.ListByAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil, "x"))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound, "loan %d", 1), apperr.ErrNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey, "customer"), apperr.ErrConstraint)

	disk := errors.New("disk I/O error")
	err := translate(disk, "account %d", 2)
	assert.ErrorIs(t, err, apperr.ErrPersistence)
	assert.ErrorIs(t, err, disk)
}

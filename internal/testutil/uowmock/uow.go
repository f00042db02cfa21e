package uowmock

import (
	"context"
	"errors"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/loan"
	"banking-ledger/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinAccountTxFn func(ctx context.Context, accountID uint64, fn func(r uow.Repos, a *account.Account) error) error
	WithinLoanTxFn    func(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan, a *account.Account) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough runs every callback against r with no real transaction.
// Account and loan lookups go through r.Accounts and r.Loans.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinAccountTxFn: func(ctx context.Context, id uint64, fn func(uow.Repos, *account.Account) error) error {
			a, err := r.Accounts.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return fn(r, a)
		},
		WithinLoanTxFn: func(ctx context.Context, id uint64, fn func(uow.Repos, *loan.Loan, *account.Account) error) error {
			l, err := r.Loans.GetByID(ctx, id)
			if err != nil {
				return err
			}
			a, err := r.Accounts.GetByID(ctx, l.AccountID)
			if err != nil {
				return err
			}
			return fn(r, l, a)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinAccountTx(ctx context.Context, accountID uint64, fn func(r uow.Repos, a *account.Account) error) error {
	if m.WithinAccountTxFn != nil {
		return m.WithinAccountTxFn(ctx, accountID, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan, a *account.Account) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errUnimplemented
}

package uow

import (
	"context"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/cdp"
	"banking-ledger/internal/domain/customer"
	"banking-ledger/internal/domain/loan"
	"banking-ledger/internal/domain/transaction"
)

// Repos are bound to the transaction opened by the unit of work.
type Repos struct {
	Customers    customer.Repository
	Accounts     account.Repository
	Transactions transaction.Repository
	CDPs         cdp.Repository
	Loans        loan.Repository
}

type UnitOfWork interface {
	// plain tx; fn's error rolls everything back
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the account first, then pass it in
	WithinAccountTx(ctx context.Context, accountID uint64, fn func(r Repos, a *account.Account) error) error
	// lock loan and its funding account
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan, a *account.Account) error) error
}

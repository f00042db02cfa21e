// Package ledger holds the account operations. Each one mutates a loaded
// account, persists the new balance and appends exactly one transaction row.
// A failure after the first write undoes the earlier writes before returning.
//
// The functions expect to run inside a unit of work so the store transaction
// also rolls back whatever compensation could not.
package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
	"banking-ledger/internal/domain/cdp"
	"banking-ledger/internal/domain/loan"
	"banking-ledger/internal/domain/transaction"
	"banking-ledger/internal/domain/uow"
)

func requirePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperr.Validation("amount must be > 0")
	}
	return nil
}

func requireFunds(a *account.Account, amount decimal.Decimal) error {
	if !a.Covers(amount) {
		return apperr.InsufficientFunds("account %d holds %s, needs %s",
			a.ID, a.Currency.Format(a.Balance), a.Currency.Format(amount))
	}
	return nil
}

// move applies delta to a's balance and persists it. On a failed write only
// memory is restored; on success an undo step is pushed onto c.
func move(ctx context.Context, r uow.Repos, a *account.Account, delta decimal.Decimal, c *compensation) error {
	old := a.Balance
	a.Balance = old.Add(delta)
	if err := r.Accounts.UpdateBalance(ctx, a.ID, a.Balance); err != nil {
		a.Balance = old
		return err
	}
	c.push(fmt.Sprintf("restore balance of account %d", a.ID), func(ctx context.Context) error {
		a.Balance = old
		return r.Accounts.UpdateBalance(ctx, a.ID, old)
	})
	return nil
}

func record(ctx context.Context, r uow.Repos, t *transaction.Transaction, c *compensation) (*transaction.Transaction, error) {
	if err := r.Transactions.Create(ctx, t); err != nil {
		return nil, c.unwind(ctx, err)
	}
	return t, nil
}

func Deposit(ctx context.Context, r uow.Repos, a *account.Account, amount decimal.Decimal) (*transaction.Transaction, error) {
	if err := requirePositive(amount); err != nil {
		return nil, err
	}
	t, err := transaction.NewDeposit(a.ID, amount)
	if err != nil {
		return nil, err
	}
	var c compensation
	if err := move(ctx, r, a, amount, &c); err != nil {
		return nil, err
	}
	return record(ctx, r, t, &c)
}

func Withdraw(ctx context.Context, r uow.Repos, a *account.Account, amount decimal.Decimal) (*transaction.Transaction, error) {
	if err := requirePositive(amount); err != nil {
		return nil, err
	}
	if err := requireFunds(a, amount); err != nil {
		return nil, err
	}
	t, err := transaction.NewWithdrawal(a.ID, amount)
	if err != nil {
		return nil, err
	}
	var c compensation
	if err := move(ctx, r, a, amount.Neg(), &c); err != nil {
		return nil, err
	}
	return record(ctx, r, t, &c)
}

// Transfer debits src and credits the account destinationID, recording a
// single transfer entry. The destination is loaded through r and returned.
func Transfer(ctx context.Context, r uow.Repos, src *account.Account, destinationID uint64, amount decimal.Decimal) (*transaction.Transaction, *account.Account, error) {
	if err := requirePositive(amount); err != nil {
		return nil, nil, err
	}
	if destinationID == src.ID {
		return nil, nil, apperr.Validation("cannot transfer from account %d to itself", src.ID)
	}
	dst, err := r.Accounts.GetByID(ctx, destinationID)
	if err != nil {
		return nil, nil, err
	}
	if dst.Currency != src.Currency {
		return nil, nil, apperr.Constraint("cannot transfer %s to a %s account", src.Currency, dst.Currency)
	}
	if err := requireFunds(src, amount); err != nil {
		return nil, nil, err
	}
	t, err := transaction.NewTransfer(src.ID, dst.ID, amount)
	if err != nil {
		return nil, nil, err
	}

	var c compensation
	if err := move(ctx, r, src, amount.Neg(), &c); err != nil {
		return nil, nil, err
	}
	if err := move(ctx, r, dst, amount, &c); err != nil {
		return nil, nil, c.unwind(ctx, err)
	}
	if _, err := record(ctx, r, t, &c); err != nil {
		return nil, nil, err
	}
	return t, dst, nil
}

// PayLoanInstallment debits amount from a towards l. Loan counters are not
// touched here.
func PayLoanInstallment(ctx context.Context, r uow.Repos, a *account.Account, l *loan.Loan, amount decimal.Decimal) (*transaction.Transaction, error) {
	if err := requirePositive(amount); err != nil {
		return nil, err
	}
	if a.Currency != l.Currency {
		return nil, apperr.Constraint("loan %d is in %s, account %d is in %s", l.ID, l.Currency, a.ID, a.Currency)
	}
	if err := requireFunds(a, amount); err != nil {
		return nil, err
	}
	t, err := transaction.NewLoanPayment(a.ID, amount)
	if err != nil {
		return nil, err
	}
	var c compensation
	if err := move(ctx, r, a, amount.Neg(), &c); err != nil {
		return nil, err
	}
	return record(ctx, r, t, &c)
}

// FundCDP debits the certificate deposit from a, then creates the
// certificate row. An empty certificate currency takes the account's.
func FundCDP(ctx context.Context, r uow.Repos, a *account.Account, cert *cdp.CDP) (*transaction.Transaction, error) {
	if cert.AccountID != a.ID {
		return nil, apperr.Validation("certificate belongs to account %d, not %d", cert.AccountID, a.ID)
	}
	if cert.Currency == "" {
		cert.Currency = a.Currency
	}
	if cert.Currency != a.Currency {
		return nil, apperr.Constraint("certificate in %s cannot be funded from a %s account", cert.Currency, a.Currency)
	}
	if err := requirePositive(cert.Deposit); err != nil {
		return nil, err
	}
	if err := requireFunds(a, cert.Deposit); err != nil {
		return nil, err
	}
	t, err := transaction.NewCDPFunding(a.ID, cert.Deposit)
	if err != nil {
		return nil, err
	}

	var c compensation
	if err := move(ctx, r, a, cert.Deposit.Neg(), &c); err != nil {
		return nil, err
	}
	if err := r.CDPs.Create(ctx, cert); err != nil {
		return nil, c.unwind(ctx, err)
	}
	return record(ctx, r, t, &c)
}

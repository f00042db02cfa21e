package loan

import (
	"context"
	"log"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
	domain "banking-ledger/internal/domain/loan"
	"banking-ledger/internal/domain/transaction"
	"banking-ledger/internal/domain/uow"
	"banking-ledger/internal/usecase/ledger"
)

// PayInstallment charges one installment of l to a and advances the
// amortization counters. If the debit fails nothing about the loan changes.
// If persisting the loan or its payment row fails, counters and the in-memory
// balance are restored and the caller's store transaction undoes the debit.
func PayInstallment(ctx context.Context, r uow.Repos, l *domain.Loan, a *account.Account) (*domain.Payment, *transaction.Transaction, error) {
	if !l.Active {
		return nil, nil, apperr.Constraint("loan %d is closed", l.ID)
	}
	if a.ID != l.AccountID {
		return nil, nil, apperr.Constraint("loan %d is serviced from account %d, not %d", l.ID, l.AccountID, a.ID)
	}
	if a.Currency != l.Currency {
		return nil, nil, apperr.Constraint("loan %d is in %s, account %d is in %s", l.ID, l.Currency, a.ID, a.Currency)
	}

	balance := a.Balance
	t, err := ledger.PayLoanInstallment(ctx, r, a, l, l.Installment)
	if err != nil {
		return nil, nil, err
	}

	applied := domain.ApplyInstallment(l)
	abort := func(err error) (*domain.Payment, *transaction.Transaction, error) {
		applied.Revert()
		a.Balance = balance
		log.Printf("ledger: loan %d installment %d aborted after debit: %v", l.ID, l.InstallmentsPaid+1, err)
		return nil, nil, err
	}
	if err := r.Loans.Save(ctx, l); err != nil {
		return abort(err)
	}
	p := applied.Payment()
	if err := r.Loans.CreatePayment(ctx, p); err != nil {
		return abort(err)
	}
	return p, t, nil
}

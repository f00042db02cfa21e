package gormrepo

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
	"banking-ledger/internal/domain/loan"
	"banking-ledger/internal/domain/uow"
)

// GormUoW opens one store transaction per call. A failed ROLLBACK is reported
// as a consistency error together with the cause that triggered it.
type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Customers:    &CustomerRepository{db: tx},
		Accounts:     &AccountRepository{db: tx},
		Transactions: &TransactionRepository{db: tx},
		CDPs:         &CDPRepository{db: tx},
		Loans:        &LoanRepository{db: tx},
	}
}

func (u *GormUoW) within(ctx context.Context, fn func(tx *gorm.DB) error) (err error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return apperr.Persistence(tx.Error, "begin transaction")
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			log.Printf("ledger: ROLLBACK FAILED: %v (cause: %v)", rbErr, err)
			return apperr.Consistency(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return apperr.Persistence(err, "commit transaction")
	}
	return nil
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.within(ctx, func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinAccountTx(ctx context.Context, accountID uint64, fn func(r uow.Repos, a *account.Account) error) error {
	return u.within(ctx, func(tx *gorm.DB) error {
		a, err := (&AccountRepository{db: tx}).getForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		return fn(reposFor(tx), a)
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan, a *account.Account) error) error {
	return u.within(ctx, func(tx *gorm.DB) error {
		// loan first, then the account it is serviced from
		l, err := (&LoanRepository{db: tx}).getForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		a, err := (&AccountRepository{db: tx}).getForUpdate(ctx, l.AccountID)
		if err != nil {
			return err
		}
		return fn(reposFor(tx), l, a)
	})
}

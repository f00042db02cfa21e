package account

import (
	"context"

	"github.com/shopspring/decimal"

	domain "banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
	"banking-ledger/internal/domain/customer"
	"banking-ledger/internal/domain/transaction"
	"banking-ledger/internal/domain/uow"
	"banking-ledger/internal/usecase/ledger"
)

type Usecase struct {
	accounts     domain.Repository
	customers    customer.Repository
	transactions transaction.Repository
	uow          uow.UnitOfWork
}

func NewUsecase(accounts domain.Repository, customers customer.Repository, txs transaction.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{accounts: accounts, customers: customers, transactions: txs, uow: tx}
}

// Open creates an account for an existing customer. A customer holds at most
// one account per currency.
func (u *Usecase) Open(ctx context.Context, in OpenInput) (*AccountDTO, error) {
	a, err := domain.New(in.CustomerID, in.Currency, in.Balance, in.Rate)
	if err != nil {
		return nil, err
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		ok, err := r.Customers.Exists(ctx, a.CustomerID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("customer %d not found", a.CustomerID)
		}
		dup, err := r.Accounts.ExistsForCurrency(ctx, a.CustomerID, a.Currency)
		if err != nil {
			return err
		}
		if dup {
			return apperr.Constraint("customer %d already has a %s account", a.CustomerID, a.Currency)
		}
		return r.Accounts.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	dto := ToAccountDTO(a)
	return &dto, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*AccountDTO, error) {
	a, err := u.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := ToAccountDTO(a)
	return &dto, nil
}

func (u *Usecase) ListByCustomer(ctx context.Context, customerID uint64) ([]AccountDTO, error) {
	ok, err := u.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("customer %d not found", customerID)
	}
	as, err := u.accounts.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]AccountDTO, 0, len(as))
	for i := range as {
		out = append(out, ToAccountDTO(&as[i]))
	}
	return out, nil
}

type operation func(ctx context.Context, r uow.Repos, a *domain.Account) (*transaction.Transaction, error)

func (u *Usecase) run(ctx context.Context, accountID uint64, op operation) (*OperationDTO, error) {
	var out *OperationDTO
	err := u.uow.WithinAccountTx(ctx, accountID, func(r uow.Repos, a *domain.Account) error {
		t, err := op(ctx, r, a)
		if err != nil {
			return err
		}
		out = &OperationDTO{Transaction: ToTransactionDTO(t, a.Currency), Account: ToAccountDTO(a)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Deposit(ctx context.Context, accountID uint64, amount decimal.Decimal) (*OperationDTO, error) {
	return u.run(ctx, accountID, func(ctx context.Context, r uow.Repos, a *domain.Account) (*transaction.Transaction, error) {
		return ledger.Deposit(ctx, r, a, amount)
	})
}

func (u *Usecase) Withdraw(ctx context.Context, accountID uint64, amount decimal.Decimal) (*OperationDTO, error) {
	return u.run(ctx, accountID, func(ctx context.Context, r uow.Repos, a *domain.Account) (*transaction.Transaction, error) {
		return ledger.Withdraw(ctx, r, a, amount)
	})
}

// Transfer reports the source account's balance after the move.
func (u *Usecase) Transfer(ctx context.Context, accountID uint64, in TransferInput) (*OperationDTO, error) {
	return u.run(ctx, accountID, func(ctx context.Context, r uow.Repos, a *domain.Account) (*transaction.Transaction, error) {
		t, _, err := ledger.Transfer(ctx, r, a, in.ToAccountID, in.Amount)
		return t, err
	})
}

// History pages through every log entry where the account is sender or
// receiver, oldest first. Total counts all entries regardless of the page.
func (u *Usecase) History(ctx context.Context, accountID uint64, in HistoryInput) (*HistoryDTO, error) {
	if in.Limit < 0 || in.Offset < 0 {
		return nil, apperr.Validation("limit and offset must be >= 0")
	}
	a, err := u.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	total, err := u.transactions.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	ts, err := u.transactions.ListByAccount(ctx, accountID, transaction.Page(in))
	if err != nil {
		return nil, err
	}
	out := &HistoryDTO{Total: total, Transactions: make([]TransactionDTO, 0, len(ts))}
	for i := range ts {
		out.Transactions = append(out.Transactions, ToTransactionDTO(&ts[i], a.Currency))
	}
	return out, nil
}

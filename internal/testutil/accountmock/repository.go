package accountmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "banking-ledger/internal/domain/account"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a no-op, reads to context.Canceled.
type Repo struct {
	CreateFn            func(ctx context.Context, a *domain.Account) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.Account, error)
	ExistsFn            func(ctx context.Context, id uint64) (bool, error)
	ExistsForCurrencyFn func(ctx context.Context, customerID uint64, cur domain.Currency) (bool, error)
	ListByCustomerFn    func(ctx context.Context, customerID uint64) ([]domain.Account, error)
	UpdateBalanceFn     func(ctx context.Context, id uint64, balance decimal.Decimal) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Exists(ctx context.Context, id uint64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}
	return false, context.Canceled
}

func (m *Repo) ExistsForCurrency(ctx context.Context, customerID uint64, cur domain.Currency) (bool, error) {
	if m.ExistsForCurrencyFn != nil {
		return m.ExistsForCurrencyFn(ctx, customerID, cur)
	}
	return false, context.Canceled
}

func (m *Repo) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Account, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateBalance(ctx context.Context, id uint64, balance decimal.Decimal) error {
	if m.UpdateBalanceFn != nil {
		return m.UpdateBalanceFn(ctx, id, balance)
	}
	return nil
}

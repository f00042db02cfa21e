package account

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Create inserts a and sets a.ID; a second account in the same currency
	// for the same customer is a constraint error.
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id uint64) (*Account, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	ExistsForCurrency(ctx context.Context, customerID uint64, cur Currency) (bool, error)
	ListByCustomer(ctx context.Context, customerID uint64) ([]Account, error)
	// UpdateBalance is the only write path for balances.
	UpdateBalance(ctx context.Context, id uint64, balance decimal.Decimal) error
}

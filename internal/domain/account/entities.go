package account

import (
	"time"

	"github.com/shopspring/decimal"

	"banking-ledger/internal/domain/apperr"
)

// Table: accounts. One row per (customer, currency).
type Account struct {
	ID         uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CustomerID uint64          `gorm:"column:customer_id;not null;uniqueIndex:ux_accounts_customer_currency" json:"customer_id"`
	Currency   Currency        `gorm:"column:currency;size:3;not null;uniqueIndex:ux_accounts_customer_currency" json:"currency"`
	Balance    decimal.Decimal `gorm:"column:balance;type:decimal(18,2);not null" json:"balance"`
	Rate       decimal.Decimal `gorm:"column:rate;type:decimal(8,4);not null" json:"rate"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string { return "accounts" }

func New(customerID uint64, currency string, balance, rate decimal.Decimal) (*Account, error) {
	if customerID == 0 {
		return nil, apperr.Validation("customer id is required")
	}
	cur, err := ParseCurrency(currency)
	if err != nil {
		return nil, err
	}
	if balance.IsNegative() {
		return nil, apperr.Validation("opening balance must be >= 0")
	}
	if rate.IsNegative() {
		return nil, apperr.Validation("interest rate must be >= 0")
	}
	return &Account{CustomerID: customerID, Currency: cur, Balance: balance, Rate: rate}, nil
}

// Covers reports whether the balance can absorb a debit of amount.
func (a *Account) Covers(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

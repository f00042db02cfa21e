package cdp

import (
	"time"

	"github.com/shopspring/decimal"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
	"banking-ledger/pkg/id"
)

var hundred = decimal.NewFromInt(100)

// Table: cdps. A certificate is read-only once issued.
type CDP struct {
	ID          uint64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Certificate string           `gorm:"column:certificate;size:36;not null;uniqueIndex:ux_cdps_certificate" json:"certificate"`
	AccountID   uint64           `gorm:"column:account_id;not null;index:idx_cdps_account" json:"account_id"`
	Currency    account.Currency `gorm:"column:currency;size:3;not null" json:"currency"`
	Deposit     decimal.Decimal  `gorm:"column:deposit;type:decimal(18,2);not null" json:"deposit"`
	TermMonths  int              `gorm:"column:term_months;not null" json:"term_months"`
	Rate        decimal.Decimal  `gorm:"column:rate;type:decimal(8,4);not null" json:"rate"`
	RequestedAt time.Time        `gorm:"column:requested_at;not null" json:"requested_at"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CDP) TableName() string { return "cdps" }

// New validates a certificate request. Currency may be empty, in which case
// the funding account's currency is used when the certificate is funded.
func New(accountID uint64, currency account.Currency, deposit decimal.Decimal, termMonths int, rate decimal.Decimal, requestedAt time.Time) (*CDP, error) {
	if accountID == 0 {
		return nil, apperr.Validation("account id is required")
	}
	if currency != "" && !currency.Valid() {
		return nil, apperr.Validation("unsupported currency %q", currency)
	}
	if !deposit.IsPositive() {
		return nil, apperr.Validation("deposit must be > 0")
	}
	if termMonths <= 0 {
		return nil, apperr.Validation("term must be at least one month")
	}
	if rate.IsNegative() {
		return nil, apperr.Validation("interest rate must be >= 0")
	}
	return &CDP{
		Certificate: id.NewRef("CER"),
		AccountID:   accountID,
		Currency:    currency,
		Deposit:     deposit,
		TermMonths:  termMonths,
		Rate:        rate,
		RequestedAt: requestedAt.UTC(),
	}, nil
}

// InterestAtMaturity is simple interest: deposit * rate/100 * termMonths.
// The rate is applied per month of term, not pro-rated from an annual figure.
func InterestAtMaturity(deposit, ratePercent decimal.Decimal, termMonths int) decimal.Decimal {
	return deposit.Mul(ratePercent.Div(hundred)).Mul(decimal.NewFromInt(int64(termMonths)))
}

func (c *CDP) InterestAtMaturity() decimal.Decimal {
	return InterestAtMaturity(c.Deposit, c.Rate, c.TermMonths)
}

func (c *CDP) MaturityDate() time.Time {
	return c.RequestedAt.AddDate(0, c.TermMonths, 0)
}

// PayoutAtMaturity is the deposit plus interest.
func (c *CDP) PayoutAtMaturity() decimal.Decimal {
	return c.Deposit.Add(c.InterestAtMaturity())
}

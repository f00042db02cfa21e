package account

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"banking-ledger/internal/domain/apperr"
)

// Currency is one of the two currencies an account can be held in.
type Currency string

const (
	CRC Currency = "CRC"
	USD Currency = "USD"
)

// ParseCurrency accepts a currency code in any case.
func ParseCurrency(s string) (Currency, error) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(s))); c {
	case CRC, USD:
		return c, nil
	default:
		return "", apperr.Validation("unsupported currency %q", s)
	}
}

func (c Currency) Valid() bool { return c == CRC || c == USD }

// Format renders amount with the currency's symbol and separators, e.g. "₡1,500.00".
func (c Currency) Format(amount decimal.Decimal) string {
	cur := money.GetCurrency(string(c))
	if cur == nil {
		return amount.StringFixed(2) + " " + string(c)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

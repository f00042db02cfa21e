package cdp

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
	"banking-ledger/pkg/id"
)

func TestInterestAtMaturity_SimpleInterest(t *testing.T) {
	got := InterestAtMaturity(decimal.NewFromInt(6000), decimal.RequireFromString("3.83"), 12)
	assert.True(t, got.Equal(decimal.RequireFromString("2757.6")), "got %s", got)
}

func TestNew_And_Maturity(t *testing.T) {
	at := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	c, err := New(1, account.CRC, decimal.NewFromInt(60000), 12, decimal.RequireFromString("2.5"), at)
	require.NoError(t, err)

	assert.Len(t, c.Certificate, id.RefLen)
	assert.True(t, strings.HasPrefix(c.Certificate, "CER-"), c.Certificate)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), c.MaturityDate())
	assert.True(t, c.InterestAtMaturity().Equal(decimal.NewFromInt(18000)))
	assert.True(t, c.PayoutAtMaturity().Equal(decimal.NewFromInt(78000)))
}

func TestNew_Validation(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name    string
		acc     uint64
		cur     account.Currency
		deposit decimal.Decimal
		term    int
		rate    decimal.Decimal
	}{
		{"no account", 0, account.USD, decimal.NewFromInt(1), 1, decimal.Zero},
		{"bad currency", 1, "EUR", decimal.NewFromInt(1), 1, decimal.Zero},
		{"zero deposit", 1, account.USD, decimal.Zero, 1, decimal.Zero},
		{"zero term", 1, account.USD, decimal.NewFromInt(1), 0, decimal.Zero},
		{"negative rate", 1, account.USD, decimal.NewFromInt(1), 1, decimal.NewFromInt(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.acc, tc.cur, tc.deposit, tc.term, tc.rate, now)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

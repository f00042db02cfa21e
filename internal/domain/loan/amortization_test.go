package loan

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMonthlyInstallment(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		rate      string
		term      int
		want      string
	}{
		{"reference scenario", "100000", "12", 12, "8884.88"},
		{"zero rate splits evenly", "1200", "0", 12, "100"},
		{"zero rate rounds to cents", "1000", "0", 3, "333.33"},
		{"single month", "5000", "12", 1, "5050"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MonthlyInstallment(d(tc.principal), d(tc.rate), tc.term)
			require.NoError(t, err)
			assert.True(t, d(tc.want).Equal(got), "got %s want %s", got, tc.want)
		})
	}
}

func TestMonthlyInstallment_Invalid(t *testing.T) {
	for _, term := range []int{0, -3} {
		_, err := MonthlyInstallment(d("1000"), d("5"), term)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	}
	_, err := MonthlyInstallment(decimal.Zero, d("5"), 12)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = MonthlyInstallment(d("1000"), d("-1"), 12)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func newScenarioLoan(t *testing.T) *Loan {
	t.Helper()
	l, err := New(1, TypePersonal, account.CRC, d("100000"), d("12"), 12, decimal.Zero,
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return l
}

func TestApplyInstallment_RunsToClose(t *testing.T) {
	l := newScenarioLoan(t)
	assert.True(t, d("8884.88").Equal(l.Installment))
	assert.True(t, d("1000").Equal(MonthlyInterestPortion(l)))

	for i := 1; i <= l.TermMonths; i++ {
		require.True(t, l.Active, "closed early at %d", i)
		a := ApplyInstallment(l)
		assert.True(t, d("1000").Equal(a.Split.Interest))
		assert.True(t, d("7884.88").Equal(a.Split.Principal))
		assert.Equal(t, i, a.Payment().Number)
	}
	assert.False(t, l.Active)
	assert.Equal(t, StateClosed, l.State())
	assert.True(t, d("12000").Equal(l.InterestPaid))
	assert.True(t, d("94618.56").Equal(l.PrincipalPaid))
	// flat interest leaves principal uncovered at close
	assert.True(t, d("5381.44").Equal(l.RemainingBalance()))
	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), l.NextPaymentAt)
}

func TestApplied_Revert(t *testing.T) {
	l := newScenarioLoan(t)
	before := *l
	a := ApplyInstallment(l)
	p := a.Payment()
	assert.True(t, d("92115.12").Equal(p.RemainingBalance))

	a.Revert()
	assert.Equal(t, before.InstallmentsPaid, l.InstallmentsPaid)
	assert.True(t, before.PrincipalPaid.Equal(l.PrincipalPaid))
	assert.True(t, before.InterestPaid.Equal(l.InterestPaid))
	assert.Equal(t, before.NextPaymentAt, l.NextPaymentAt)
	assert.True(t, l.Active)
}

func TestApplied_RevertReopensClosingPayment(t *testing.T) {
	l, err := New(1, TypePledge, account.USD, d("300"), d("0"), 1, decimal.Zero, time.Now())
	require.NoError(t, err)
	a := ApplyInstallment(l)
	assert.False(t, l.Active)
	a.Revert()
	assert.True(t, l.Active)
	assert.Zero(t, l.InstallmentsPaid)
}

func TestEstimatePayments(t *testing.T) {
	e, err := EstimatePayments(d("100000"), d("12"), 12)
	require.NoError(t, err)
	assert.True(t, d("8884.88").Equal(e.Installment))
	assert.True(t, d("106618.56").Equal(e.TotalPayable))
	assert.True(t, d("6618.56").Equal(e.TotalInterest))

	_, err = EstimatePayments(d("100000"), d("12"), 0)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

package loan

import (
	"github.com/shopspring/decimal"

	"banking-ledger/internal/domain/apperr"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// MonthlyRate converts an annual percentage into a monthly fraction.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(twelve)
}

// MonthlyInstallment is the fixed payment of an amortizing loan,
// P*r*(1+r)^n / ((1+r)^n - 1), rounded to cents. A zero rate spreads the
// principal evenly over the term.
func MonthlyInstallment(principal, annualRatePercent decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if termMonths <= 0 {
		return decimal.Zero, apperr.Validation("term must be at least one month")
	}
	if !principal.IsPositive() {
		return decimal.Zero, apperr.Validation("principal must be > 0")
	}
	if annualRatePercent.IsNegative() {
		return decimal.Zero, apperr.Validation("interest rate must be >= 0")
	}
	n := decimal.NewFromInt(int64(termMonths))
	r := MonthlyRate(annualRatePercent)
	if r.IsZero() {
		return principal.Div(n).Round(2), nil
	}
	f := decimal.NewFromInt(1).Add(r).Pow(n)
	return principal.Mul(r).Mul(f).Div(f.Sub(decimal.NewFromInt(1))).Round(2), nil
}

// MonthlyInterestPortion charges interest on the original principal every
// period, not on the declining balance.
func MonthlyInterestPortion(l *Loan) decimal.Decimal {
	return l.Principal.Mul(MonthlyRate(l.Rate)).Round(2)
}

// Split is the breakdown of one installment.
type Split struct {
	Interest  decimal.Decimal
	Principal decimal.Decimal
}

func SplitInstallment(l *Loan) Split {
	interest := MonthlyInterestPortion(l)
	return Split{Interest: interest, Principal: l.Installment.Sub(interest)}
}

// Applied records the loan state before an installment so it can be undone.
type Applied struct {
	Split Split
	loan  *Loan
	prev  Loan
}

// ApplyInstallment advances the loan counters by one installment and closes
// the loan when the term is reached. The caller must check l.Active first.
func ApplyInstallment(l *Loan) *Applied {
	a := &Applied{Split: SplitInstallment(l), loan: l, prev: *l}
	l.InstallmentsPaid++
	l.PrincipalPaid = l.PrincipalPaid.Add(a.Split.Principal)
	l.InterestPaid = l.InterestPaid.Add(a.Split.Interest)
	l.NextPaymentAt = l.NextPaymentAt.AddDate(0, 1, 0)
	if l.InstallmentsPaid >= l.TermMonths {
		l.Active = false
	}
	return a
}

// Revert restores the counters captured by ApplyInstallment.
func (a *Applied) Revert() {
	a.loan.InstallmentsPaid = a.prev.InstallmentsPaid
	a.loan.PrincipalPaid = a.prev.PrincipalPaid
	a.loan.InterestPaid = a.prev.InterestPaid
	a.loan.NextPaymentAt = a.prev.NextPaymentAt
	a.loan.Active = a.prev.Active
}

// Payment builds the history row for the applied installment.
func (a *Applied) Payment() *Payment {
	return &Payment{
		LoanID:           a.loan.ID,
		Number:           a.loan.InstallmentsPaid,
		Installment:      a.loan.Installment,
		PrincipalPortion: a.Split.Principal,
		InterestPortion:  a.Split.Interest,
		RemainingBalance: a.loan.RemainingBalance(),
	}
}

// Estimate summarizes the cost of a loan before it is requested.
type Estimate struct {
	Installment   decimal.Decimal
	TotalPayable  decimal.Decimal
	TotalInterest decimal.Decimal
}

func EstimatePayments(principal, annualRatePercent decimal.Decimal, termMonths int) (Estimate, error) {
	inst, err := MonthlyInstallment(principal, annualRatePercent, termMonths)
	if err != nil {
		return Estimate{}, err
	}
	total := inst.Mul(decimal.NewFromInt(int64(termMonths)))
	return Estimate{Installment: inst, TotalPayable: total, TotalInterest: total.Sub(principal)}, nil
}

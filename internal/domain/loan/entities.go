package loan

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
)

// Type is the loan product.
type Type string

const (
	TypePersonal Type = "personal"
	TypePledge   Type = "pledge"
	TypeMortgage Type = "mortgage"
)

func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypePersonal, TypePledge, TypeMortgage:
		return t, nil
	default:
		return "", apperr.Validation("unsupported loan type %q", s)
	}
}

type State string

const (
	StateActive State = "active"
	StateClosed State = "closed"
)

// Table: loans. Amortization counters are only changed by ApplyInstallment.
type Loan struct {
	ID               uint64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AccountID        uint64           `gorm:"column:account_id;not null;index:idx_loans_account" json:"account_id"`
	Type             Type             `gorm:"column:type;size:16;not null" json:"type"`
	Currency         account.Currency `gorm:"column:currency;size:3;not null" json:"currency"`
	Principal        decimal.Decimal  `gorm:"column:principal;type:decimal(18,2);not null" json:"principal"`
	Rate             decimal.Decimal  `gorm:"column:rate;type:decimal(8,4);not null" json:"rate"`
	TermMonths       int              `gorm:"column:term_months;not null" json:"term_months"`
	Installment      decimal.Decimal  `gorm:"column:installment;type:decimal(18,2);not null" json:"installment"`
	InstallmentsPaid int              `gorm:"column:installments_paid;not null;default:0" json:"installments_paid"`
	PrincipalPaid    decimal.Decimal  `gorm:"column:principal_paid;type:decimal(18,2);not null" json:"principal_paid"`
	InterestPaid     decimal.Decimal  `gorm:"column:interest_paid;type:decimal(18,2);not null" json:"interest_paid"`
	Active           bool             `gorm:"column:active;not null" json:"active"`
	RequestedAt      time.Time        `gorm:"column:requested_at;not null" json:"requested_at"`
	NextPaymentAt    time.Time        `gorm:"column:next_payment_at;not null" json:"next_payment_at"`
	CreatedAt        time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// New validates a loan request. A zero installment is computed from the
// principal, rate and term; a positive one is kept as-is (pre-existing records)
// but must exceed the first month's interest so the loan can be paid down.
func New(accountID uint64, typ Type, currency account.Currency, principal, rate decimal.Decimal, termMonths int, installment decimal.Decimal, requestedAt time.Time) (*Loan, error) {
	if accountID == 0 {
		return nil, apperr.Validation("account id is required")
	}
	if _, err := ParseType(string(typ)); err != nil {
		return nil, err
	}
	if !currency.Valid() {
		return nil, apperr.Validation("unsupported currency %q", currency)
	}
	if !principal.IsPositive() {
		return nil, apperr.Validation("principal must be > 0")
	}
	if rate.IsNegative() {
		return nil, apperr.Validation("interest rate must be >= 0")
	}
	if installment.IsNegative() {
		return nil, apperr.Validation("installment must be >= 0")
	}
	if installment.IsZero() {
		var err error
		if installment, err = MonthlyInstallment(principal, rate, termMonths); err != nil {
			return nil, err
		}
	} else if termMonths <= 0 {
		return nil, apperr.Validation("term must be at least one month")
	} else if interest := principal.Mul(MonthlyRate(rate)).Round(2); installment.LessThanOrEqual(interest) {
		return nil, apperr.Validation("installment %s does not cover monthly interest %s", installment.StringFixed(2), interest.StringFixed(2))
	}
	requestedAt = requestedAt.UTC()
	return &Loan{
		AccountID:     accountID,
		Type:          typ,
		Currency:      currency,
		Principal:     principal,
		Rate:          rate,
		TermMonths:    termMonths,
		Installment:   installment,
		PrincipalPaid: decimal.Zero,
		InterestPaid:  decimal.Zero,
		Active:        true,
		RequestedAt:   requestedAt,
		NextPaymentAt: requestedAt.AddDate(0, 1, 0),
	}, nil
}

func (l *Loan) State() State {
	if l.Active {
		return StateActive
	}
	return StateClosed
}

// RemainingBalance is the principal not yet covered by principal portions.
func (l *Loan) RemainingBalance() decimal.Decimal {
	return l.Principal.Sub(l.PrincipalPaid)
}

// Table: loan_payments. One row per installment paid, never modified.
type Payment struct {
	ID               uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LoanID           uint64          `gorm:"column:loan_id;not null;index:idx_loan_payments_loan" json:"loan_id"`
	Number           int             `gorm:"column:number;not null" json:"number"`
	Installment      decimal.Decimal `gorm:"column:installment;type:decimal(18,2);not null" json:"installment"`
	PrincipalPortion decimal.Decimal `gorm:"column:principal_portion;type:decimal(18,2);not null" json:"principal_portion"`
	InterestPortion  decimal.Decimal `gorm:"column:interest_portion;type:decimal(18,2);not null" json:"interest_portion"`
	RemainingBalance decimal.Decimal `gorm:"column:remaining_balance;type:decimal(18,2);not null" json:"remaining_balance"`
	PaidAt           time.Time       `gorm:"column:paid_at;autoCreateTime" json:"paid_at"`
}

func (Payment) TableName() string { return "loan_payments" }

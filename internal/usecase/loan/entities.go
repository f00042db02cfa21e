package loan

import (
	"time"

	"github.com/shopspring/decimal"

	domain "banking-ledger/internal/domain/loan"
	accountuc "banking-ledger/internal/usecase/account"
)

type DisburseInput struct {
	AccountID uint64 `json:"account_id"`
	Type      string `json:"type"`
	// empty means the account's currency
	Currency   string          `json:"currency"`
	Principal  decimal.Decimal `json:"principal"`
	Rate       decimal.Decimal `json:"rate"`
	TermMonths int             `json:"term_months"`
	// set only when importing a loan whose installment was agreed elsewhere
	Installment decimal.Decimal `json:"installment"`
	RequestedAt *time.Time      `json:"requested_at"`
}

type EstimateInput struct {
	Principal  decimal.Decimal `json:"principal"`
	Rate       decimal.Decimal `json:"rate"`
	TermMonths int             `json:"term_months"`
	Currency   string          `json:"currency"`
}

type LoanDTO struct {
	ID                 uint64          `json:"id"`
	AccountID          uint64          `json:"account_id"`
	Type               string          `json:"type"`
	Currency           string          `json:"currency"`
	Principal          decimal.Decimal `json:"principal"`
	Rate               decimal.Decimal `json:"rate"`
	TermMonths         int             `json:"term_months"`
	Installment        decimal.Decimal `json:"installment"`
	InstallmentDisplay string          `json:"installment_display"`
	InstallmentsPaid   int             `json:"installments_paid"`
	PrincipalPaid      decimal.Decimal `json:"principal_paid"`
	InterestPaid       decimal.Decimal `json:"interest_paid"`
	RemainingBalance   decimal.Decimal `json:"remaining_balance"`
	State              string          `json:"state"`
	RequestedAt        time.Time       `json:"requested_at"`
	NextPaymentAt      time.Time       `json:"next_payment_at"`
	CreatedAt          time.Time       `json:"created_at"`
}

type PaymentDTO struct {
	Number           int             `json:"number"`
	Installment      decimal.Decimal `json:"installment"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	PaidAt           time.Time       `json:"paid_at"`
}

type PayResultDTO struct {
	Loan        LoanDTO                  `json:"loan"`
	Payment     PaymentDTO               `json:"payment"`
	Transaction accountuc.TransactionDTO `json:"transaction"`
	Account     accountuc.AccountDTO     `json:"account"`
}

type EstimateDTO struct {
	Installment     decimal.Decimal `json:"installment"`
	InterestPortion decimal.Decimal `json:"interest_portion"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
	TotalInterest   decimal.Decimal `json:"total_interest"`
	Display         string          `json:"display,omitempty"`
}

func toDTO(l *domain.Loan) LoanDTO {
	return LoanDTO{
		ID:                 l.ID,
		AccountID:          l.AccountID,
		Type:               string(l.Type),
		Currency:           string(l.Currency),
		Principal:          l.Principal,
		Rate:               l.Rate,
		TermMonths:         l.TermMonths,
		Installment:        l.Installment,
		InstallmentDisplay: l.Currency.Format(l.Installment),
		InstallmentsPaid:   l.InstallmentsPaid,
		PrincipalPaid:      l.PrincipalPaid,
		InterestPaid:       l.InterestPaid,
		RemainingBalance:   l.RemainingBalance(),
		State:              string(l.State()),
		RequestedAt:        l.RequestedAt,
		NextPaymentAt:      l.NextPaymentAt,
		CreatedAt:          l.CreatedAt,
	}
}

func toPaymentDTO(p *domain.Payment) PaymentDTO {
	return PaymentDTO{
		Number:           p.Number,
		Installment:      p.Installment,
		PrincipalPortion: p.PrincipalPortion,
		InterestPortion:  p.InterestPortion,
		RemainingBalance: p.RemainingBalance,
		PaidAt:           p.PaidAt,
	}
}

package cdp

import (
	"time"

	"github.com/shopspring/decimal"

	domain "banking-ledger/internal/domain/cdp"
	accountuc "banking-ledger/internal/usecase/account"
)

type IssueInput struct {
	AccountID   uint64          `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	TermMonths  int             `json:"term_months"`
	Rate        decimal.Decimal `json:"rate"`
	RequestedAt *time.Time      `json:"requested_at"`
}

type CDPDTO struct {
	ID                 uint64          `json:"id"`
	Certificate        string          `json:"certificate"`
	AccountID          uint64          `json:"account_id"`
	Currency           string          `json:"currency"`
	Deposit            decimal.Decimal `json:"deposit"`
	DepositDisplay     string          `json:"deposit_display"`
	TermMonths         int             `json:"term_months"`
	Rate               decimal.Decimal `json:"rate"`
	InterestAtMaturity decimal.Decimal `json:"interest_at_maturity"`
	PayoutAtMaturity   decimal.Decimal `json:"payout_at_maturity"`
	RequestedAt        time.Time       `json:"requested_at"`
	MaturesAt          time.Time       `json:"matures_at"`
}

type IssueResultDTO struct {
	CDP         CDPDTO                   `json:"cdp"`
	Transaction accountuc.TransactionDTO `json:"transaction"`
	Account     accountuc.AccountDTO     `json:"account"`
}

func toDTO(c *domain.CDP) CDPDTO {
	return CDPDTO{
		ID:                 c.ID,
		Certificate:        c.Certificate,
		AccountID:          c.AccountID,
		Currency:           string(c.Currency),
		Deposit:            c.Deposit,
		DepositDisplay:     c.Currency.Format(c.Deposit),
		TermMonths:         c.TermMonths,
		Rate:               c.Rate,
		InterestAtMaturity: c.InterestAtMaturity(),
		PayoutAtMaturity:   c.PayoutAtMaturity(),
		RequestedAt:        c.RequestedAt,
		MaturesAt:          c.MaturityDate(),
	}
}

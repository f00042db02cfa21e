package account

import (
	"time"

	"github.com/shopspring/decimal"

	domain "banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/transaction"
)

type OpenInput struct {
	CustomerID uint64          `json:"customer_id"`
	Currency   string          `json:"currency"`
	Balance    decimal.Decimal `json:"balance"`
	Rate       decimal.Decimal `json:"rate"`
}

type AmountInput struct {
	Amount decimal.Decimal `json:"amount"`
}

type TransferInput struct {
	ToAccountID uint64          `json:"to_account_id"`
	Amount      decimal.Decimal `json:"amount"`
}

// HistoryInput pages the account history. A zero Limit returns everything.
type HistoryInput struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type AccountDTO struct {
	ID             uint64          `json:"id"`
	CustomerID     uint64          `json:"customer_id"`
	Currency       string          `json:"currency"`
	Balance        decimal.Decimal `json:"balance"`
	BalanceDisplay string          `json:"balance_display"`
	Rate           decimal.Decimal `json:"rate"`
	CreatedAt      time.Time       `json:"created_at"`
}

type TransactionDTO struct {
	ID                uint64          `json:"id"`
	Reference         string          `json:"reference"`
	Type              string          `json:"type"`
	SenderAccountID   *uint64         `json:"sender_account_id,omitempty"`
	ReceiverAccountID *uint64         `json:"receiver_account_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	AmountDisplay     string          `json:"amount_display"`
	CreatedAt         time.Time       `json:"created_at"`
}

type HistoryDTO struct {
	Total        int64            `json:"total"`
	Transactions []TransactionDTO `json:"transactions"`
}

// OperationDTO is the result of a deposit, withdrawal or transfer: the log
// entry plus the balance of the account the request addressed.
type OperationDTO struct {
	Transaction TransactionDTO `json:"transaction"`
	Account     AccountDTO     `json:"account"`
}

func ToAccountDTO(a *domain.Account) AccountDTO {
	return AccountDTO{
		ID:             a.ID,
		CustomerID:     a.CustomerID,
		Currency:       string(a.Currency),
		Balance:        a.Balance,
		BalanceDisplay: a.Currency.Format(a.Balance),
		Rate:           a.Rate,
		CreatedAt:      a.CreatedAt,
	}
}

func ToTransactionDTO(t *transaction.Transaction, cur domain.Currency) TransactionDTO {
	return TransactionDTO{
		ID:                t.ID,
		Reference:         t.Reference,
		Type:              string(t.Type),
		SenderAccountID:   t.SenderAccountID,
		ReceiverAccountID: t.ReceiverAccountID,
		Amount:            t.Amount,
		AmountDisplay:     cur.Format(t.Amount),
		CreatedAt:         t.CreatedAt,
	}
}

package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"banking-ledger/internal/domain/apperr"
	"banking-ledger/pkg/id"
)

type Type string

const (
	TypeDeposit     Type = "deposit"
	TypeWithdrawal  Type = "withdrawal"
	TypeTransfer    Type = "transfer"
	TypeLoanPayment Type = "loan-payment"
	TypeCDPFunding  Type = "cdp-funding"
)

// tags prefix public references, e.g. "DEP-…"
var tags = map[Type]string{
	TypeDeposit:     "DEP",
	TypeWithdrawal:  "RET",
	TypeTransfer:    "TRA",
	TypeLoanPayment: "ABO",
	TypeCDPFunding:  "CDP",
}

func (t Type) Tag() string { return tags[t] }

func (t Type) Valid() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeTransfer, TypeLoanPayment, TypeCDPFunding:
		return true
	}
	return false
}

// Table: transactions. Append-only; a nil sender or receiver stands for the
// outside world (cash in, cash out, loan servicing, certificate funding).
type Transaction struct {
	ID                uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Reference         string          `gorm:"column:reference;size:36;not null;uniqueIndex:ux_transactions_reference" json:"reference"`
	SenderAccountID   *uint64         `gorm:"column:sender_account_id;index:idx_transactions_sender" json:"sender_account_id"`
	ReceiverAccountID *uint64         `gorm:"column:receiver_account_id;index:idx_transactions_receiver" json:"receiver_account_id"`
	Type              Type            `gorm:"column:type;size:16;not null" json:"type"`
	Amount            decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }

// New builds a log entry and checks that the parties fit the type.
func New(typ Type, sender, receiver *uint64, amount decimal.Decimal) (*Transaction, error) {
	if !typ.Valid() {
		return nil, apperr.Validation("unknown transaction type %q", typ)
	}
	if !amount.IsPositive() {
		return nil, apperr.Validation("transaction amount must be > 0")
	}
	switch typ {
	case TypeDeposit:
		if sender != nil || receiver == nil {
			return nil, apperr.Validation("deposit needs a receiver and no sender")
		}
	case TypeTransfer:
		if sender == nil || receiver == nil {
			return nil, apperr.Validation("transfer needs both sender and receiver")
		}
	default:
		if sender == nil || receiver != nil {
			return nil, apperr.Validation("%s needs a sender and no receiver", typ)
		}
	}
	return &Transaction{
		Reference:         id.NewRef(typ.Tag()),
		SenderAccountID:   sender,
		ReceiverAccountID: receiver,
		Type:              typ,
		Amount:            amount,
	}, nil
}

func NewDeposit(receiver uint64, amount decimal.Decimal) (*Transaction, error) {
	return New(TypeDeposit, nil, &receiver, amount)
}

func NewWithdrawal(sender uint64, amount decimal.Decimal) (*Transaction, error) {
	return New(TypeWithdrawal, &sender, nil, amount)
}

func NewTransfer(sender, receiver uint64, amount decimal.Decimal) (*Transaction, error) {
	return New(TypeTransfer, &sender, &receiver, amount)
}

func NewLoanPayment(sender uint64, amount decimal.Decimal) (*Transaction, error) {
	return New(TypeLoanPayment, &sender, nil, amount)
}

func NewCDPFunding(sender uint64, amount decimal.Decimal) (*Transaction, error) {
	return New(TypeCDPFunding, &sender, nil, amount)
}

// Involves reports whether accountID is the sender or the receiver.
func (t *Transaction) Involves(accountID uint64) bool {
	return (t.SenderAccountID != nil && *t.SenderAccountID == accountID) ||
		(t.ReceiverAccountID != nil && *t.ReceiverAccountID == accountID)
}

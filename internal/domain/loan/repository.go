package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	ListByAccount(ctx context.Context, accountID uint64) ([]Loan, error)
	// Save persists the amortization counters of an existing loan.
	Save(ctx context.Context, l *Loan) error
	CreatePayment(ctx context.Context, p *Payment) error
	// ListPayments returns the payment history of a loan, oldest first.
	ListPayments(ctx context.Context, loanID uint64) ([]Payment, error)
}

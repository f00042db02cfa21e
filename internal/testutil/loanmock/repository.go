package loanmock

import (
	"context"

	domain "banking-ledger/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a no-op, reads to context.Canceled.
type Repo struct {
	CreateFn        func(ctx context.Context, l *domain.Loan) error
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.Loan, error)
	ExistsFn        func(ctx context.Context, id uint64) (bool, error)
	ListByAccountFn func(ctx context.Context, accountID uint64) ([]domain.Loan, error)
	SaveFn          func(ctx context.Context, l *domain.Loan) error
	CreatePaymentFn func(ctx context.Context, p *domain.Payment) error
	ListPaymentsFn  func(ctx context.Context, loanID uint64) ([]domain.Payment, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Exists(ctx context.Context, id uint64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}
	return false, context.Canceled
}

func (m *Repo) ListByAccount(ctx context.Context, accountID uint64) ([]domain.Loan, error) {
	if m.ListByAccountFn != nil {
		return m.ListByAccountFn(ctx, accountID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) CreatePayment(ctx context.Context, p *domain.Payment) error {
	if m.CreatePaymentFn != nil {
		return m.CreatePaymentFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListPayments(ctx context.Context, loanID uint64) ([]domain.Payment, error) {
	if m.ListPaymentsFn != nil {
		return m.ListPaymentsFn(ctx, loanID)
	}
	return nil, context.Canceled
}

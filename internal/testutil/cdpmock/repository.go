package cdpmock

import (
	"context"

	domain "banking-ledger/internal/domain/cdp"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, c *domain.CDP) error
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.CDP, error)
	ExistsFn        func(ctx context.Context, id uint64) (bool, error)
	ListByAccountFn func(ctx context.Context, accountID uint64) ([]domain.CDP, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.CDP) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.CDP, error) {
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

func (m *Repo) ListByAccount(ctx context.Context, accountID uint64) ([]domain.CDP, error) {
	if m.ListByAccountFn != nil {
		return m.ListByAccountFn(ctx, accountID)
	}
	return nil, context.Canceled
}

package customermock

import (
	"context"

	domain "banking-ledger/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, c *domain.Customer) error
	GetByIDFn            func(ctx context.Context, id uint64) (*domain.Customer, error)
	GetByNationalIDFn    func(ctx context.Context, nationalID uint64) (*domain.Customer, error)
	ExistsFn             func(ctx context.Context, id uint64) (bool, error)
	ExistsByNationalIDFn func(ctx context.Context, nationalID uint64) (bool, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByNationalID(ctx context.Context, nationalID uint64) (*domain.Customer, error) {
	if m.GetByNationalIDFn != nil {
		return m.GetByNationalIDFn(ctx, nationalID)
	}
	return nil, context.Canceled
}

func (m *Repo) Exists(ctx context.Context, id uint64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}
	return false, context.Canceled
}

func (m *Repo) ExistsByNationalID(ctx context.Context, nationalID uint64) (bool, error) {
	if m.ExistsByNationalIDFn != nil {
		return m.ExistsByNationalIDFn(ctx, nationalID)
	}
	return false, context.Canceled
}

package cdp

import "context"

type Repository interface {
	Create(ctx context.Context, c *CDP) error
	GetByID(ctx context.Context, id uint64) (*CDP, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	ListByAccount(ctx context.Context, accountID uint64) ([]CDP, error)
}

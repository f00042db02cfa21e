package customer

import "context"

type Repository interface {
	// Create inserts c and sets c.ID; a duplicate national id is a constraint error.
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uint64) (*Customer, error)
	GetByNationalID(ctx context.Context, nationalID uint64) (*Customer, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	ExistsByNationalID(ctx context.Context, nationalID uint64) (bool, error)
}

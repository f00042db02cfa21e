package transaction

import "context"

// Page selects a window of history. A zero Limit means no limit.
type Page struct {
	Limit  int
	Offset int
}

//go:generate mockgen -destination=../../testutil/transactionmock/mock_repository.go -package=transactionmock -source=repository.go Repository
type Repository interface {
	// Create appends t to the log and sets t.ID.
	Create(ctx context.Context, t *Transaction) error
	// ListByAccount returns entries where the account is sender or receiver, oldest first.
	ListByAccount(ctx context.Context, accountID uint64, page Page) ([]Transaction, error)
	// CountByAccount is the total ListByAccount pages through.
	CountByAccount(ctx context.Context, accountID uint64) (int64, error)
}

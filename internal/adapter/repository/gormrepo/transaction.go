package gormrepo

import (
	"context"
	"math"

	"gorm.io/gorm"

	"banking-ledger/internal/domain/transaction"
)

// TransactionRepository is the only writer of the transactions table.
type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	return translate(r.db.WithContext(ctx).Create(t).Error, "%s transaction %s", t.Type, t.Reference)
}

func (r *TransactionRepository) involving(ctx context.Context, accountID uint64) *gorm.DB {
	return r.db.WithContext(ctx).Model(&transaction.Transaction{}).
		Where("sender_account_id = ? OR receiver_account_id = ?", accountID, accountID)
}

func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uint64, page transaction.Page) ([]transaction.Transaction, error) {
	var out []transaction.Transaction
	q := r.involving(ctx, accountID).Order("id ASC")
	switch {
	case page.Limit > 0:
		q = q.Limit(page.Limit)
	case page.Offset > 0:
		// mysql has no OFFSET without LIMIT
		q = q.Limit(math.MaxInt32)
	}
	if page.Offset > 0 {
		q = q.Offset(page.Offset)
	}
	err := q.Find(&out).Error
	return out, translate(err, "transactions of account %d", accountID)
}

func (r *TransactionRepository) CountByAccount(ctx context.Context, accountID uint64) (int64, error) {
	var n int64
	err := r.involving(ctx, accountID).Count(&n).Error
	return n, translate(err, "transactions of account %d", accountID)
}

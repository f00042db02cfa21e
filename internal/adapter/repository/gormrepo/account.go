package gormrepo

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	return translate(r.db.WithContext(ctx).Create(a).Error,
		"%s account for customer %d", a.Currency, a.CustomerID)
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*account.Account, error) {
	var out account.Account
	if err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, translate(err, "account %d", id)
	}
	return &out, nil
}

// getForUpdate locks the row where the dialect supports it (sqlite ignores FOR UPDATE).
func (r *AccountRepository) getForUpdate(ctx context.Context, id uint64) (*account.Account, error) {
	var out account.Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "account %d", id)
	}
	return &out, nil
}

func (r *AccountRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	ok, err := exists(r.db.WithContext(ctx), &account.Account{}, "id = ?", id)
	return ok, translate(err, "account %d", id)
}

func (r *AccountRepository) ExistsForCurrency(ctx context.Context, customerID uint64, cur account.Currency) (bool, error) {
	ok, err := exists(r.db.WithContext(ctx), &account.Account{},
		"customer_id = ? AND currency = ?", customerID, cur)
	return ok, translate(err, "%s account for customer %d", cur, customerID)
}

func (r *AccountRepository) ListByCustomer(ctx context.Context, customerID uint64) ([]account.Account, error) {
	var out []account.Account
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id ASC").Find(&out).Error
	return out, translate(err, "accounts of customer %d", customerID)
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, id uint64, balance decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&account.Account{}).
		Where("id = ?", id).
		Update("balance", balance)
	if res.Error != nil {
		return translate(res.Error, "balance of account %d", id)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("account %d not found", id)
	}
	return nil
}

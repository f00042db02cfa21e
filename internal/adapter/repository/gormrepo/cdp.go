package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"banking-ledger/internal/domain/cdp"
)

type CDPRepository struct{ db *gorm.DB }

func NewCDPRepository(db *gorm.DB) *CDPRepository { return &CDPRepository{db: db} }

func (r *CDPRepository) Create(ctx context.Context, c *cdp.CDP) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, "certificate %s", c.Certificate)
}

func (r *CDPRepository) GetByID(ctx context.Context, id uint64) (*cdp.CDP, error) {
	var out cdp.CDP
	if err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, translate(err, "certificate %d", id)
	}
	return &out, nil
}

func (r *CDPRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	ok, err := exists(r.db.WithContext(ctx), &cdp.CDP{}, "id = ?", id)
	return ok, translate(err, "certificate %d", id)
}

func (r *CDPRepository) ListByAccount(ctx context.Context, accountID uint64) ([]cdp.CDP, error) {
	var out []cdp.CDP
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Order("id ASC").Find(&out).Error
	return out, translate(err, "certificates of account %d", accountID)
}

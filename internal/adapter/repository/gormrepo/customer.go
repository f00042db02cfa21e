package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"banking-ledger/internal/domain/customer"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, "customer with national id %d", c.NationalID)
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint64) (*customer.Customer, error) {
	var out customer.Customer
	if err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, translate(err, "customer %d", id)
	}
	return &out, nil
}

func (r *CustomerRepository) GetByNationalID(ctx context.Context, nationalID uint64) (*customer.Customer, error) {
	var out customer.Customer
	if err := r.db.WithContext(ctx).First(&out, "national_id = ?", nationalID).Error; err != nil {
		return nil, translate(err, "customer with national id %d", nationalID)
	}
	return &out, nil
}

func (r *CustomerRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	ok, err := exists(r.db.WithContext(ctx), &customer.Customer{}, "id = ?", id)
	return ok, translate(err, "customer %d", id)
}

func (r *CustomerRepository) ExistsByNationalID(ctx context.Context, nationalID uint64) (bool, error) {
	ok, err := exists(r.db.WithContext(ctx), &customer.Customer{}, "national_id = ?", nationalID)
	return ok, translate(err, "customer with national id %d", nationalID)
}

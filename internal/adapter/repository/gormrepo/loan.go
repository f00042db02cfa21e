package gormrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"banking-ledger/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loan.Loan) error {
	return translate(r.db.WithContext(ctx).Create(l).Error, "loan for account %d", l.AccountID)
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loan.Loan, error) {
	var out loan.Loan
	if err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, translate(err, "loan %d", id)
	}
	return &out, nil
}

func (r *LoanRepository) getForUpdate(ctx context.Context, id uint64) (*loan.Loan, error) {
	var out loan.Loan
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "loan %d", id)
	}
	return &out, nil
}

func (r *LoanRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	ok, err := exists(r.db.WithContext(ctx), &loan.Loan{}, "id = ?", id)
	return ok, translate(err, "loan %d", id)
}

func (r *LoanRepository) ListByAccount(ctx context.Context, accountID uint64) ([]loan.Loan, error) {
	var out []loan.Loan
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Order("id ASC").Find(&out).Error
	return out, translate(err, "loans of account %d", accountID)
}

func (r *LoanRepository) Save(ctx context.Context, l *loan.Loan) error {
	return translate(r.db.WithContext(ctx).Save(l).Error, "loan %d", l.ID)
}

func (r *LoanRepository) CreatePayment(ctx context.Context, p *loan.Payment) error {
	return translate(r.db.WithContext(ctx).Create(p).Error, "payment %d of loan %d", p.Number, p.LoanID)
}

func (r *LoanRepository) ListPayments(ctx context.Context, loanID uint64) ([]loan.Payment, error) {
	var out []loan.Payment
	err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Order("id ASC").Find(&out).Error
	return out, translate(err, "payments of loan %d", loanID)
}

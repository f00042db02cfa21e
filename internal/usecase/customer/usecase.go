package customer

import (
	"context"

	"banking-ledger/internal/domain/apperr"
	domain "banking-ledger/internal/domain/customer"
	"banking-ledger/internal/domain/uow"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// Register creates a customer; the national id may only be used once.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*CustomerDTO, error) {
	c, err := domain.New(in.NationalID, in.FirstName, in.LastName1, in.LastName2, in.Phone)
	if err != nil {
		return nil, err
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		taken, err := r.Customers.ExistsByNationalID(ctx, c.NationalID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Constraint("national id %d is already registered", c.NationalID)
		}
		return r.Customers.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*CustomerDTO, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) GetByNationalID(ctx context.Context, nationalID uint64) (*CustomerDTO, error) {
	c, err := u.repo.GetByNationalID(ctx, nationalID)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

package cdp

import (
	"context"
	"time"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
	domain "banking-ledger/internal/domain/cdp"
	"banking-ledger/internal/domain/uow"
	accountuc "banking-ledger/internal/usecase/account"
	"banking-ledger/internal/usecase/ledger"
)

type Usecase struct {
	cdps     domain.Repository
	accounts account.Repository
	uow      uow.UnitOfWork
	now      func() time.Time
}

func NewUsecase(cdps domain.Repository, accounts account.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{cdps: cdps, accounts: accounts, uow: tx, now: time.Now}
}

// Issue funds a certificate from the account and stores it in the account's currency.
func (u *Usecase) Issue(ctx context.Context, in IssueInput) (*IssueResultDTO, error) {
	at := u.now()
	if in.RequestedAt != nil {
		at = *in.RequestedAt
	}
	c, err := domain.New(in.AccountID, "", in.Amount, in.TermMonths, in.Rate, at)
	if err != nil {
		return nil, err
	}

	var out *IssueResultDTO
	err = u.uow.WithinAccountTx(ctx, in.AccountID, func(r uow.Repos, a *account.Account) error {
		t, err := ledger.FundCDP(ctx, r, a, c)
		if err != nil {
			return err
		}
		out = &IssueResultDTO{
			CDP:         toDTO(c),
			Transaction: accountuc.ToTransactionDTO(t, a.Currency),
			Account:     accountuc.ToAccountDTO(a),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*CDPDTO, error) {
	c, err := u.cdps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(c)
	return &dto, nil
}

func (u *Usecase) ListByAccount(ctx context.Context, accountID uint64) ([]CDPDTO, error) {
	ok, err := u.accounts.Exists(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("account %d not found", accountID)
	}
	cs, err := u.cdps.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]CDPDTO, 0, len(cs))
	for i := range cs {
		out = append(out, toDTO(&cs[i]))
	}
	return out, nil
}

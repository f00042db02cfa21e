package loan

import (
	"context"
	"time"

	"banking-ledger/internal/domain/account"
	"banking-ledger/internal/domain/apperr"
	domain "banking-ledger/internal/domain/loan"
	"banking-ledger/internal/domain/uow"
	accountuc "banking-ledger/internal/usecase/account"
)

type Usecase struct {
	loans    domain.Repository
	accounts account.Repository
	uow      uow.UnitOfWork
	now      func() time.Time
}

func NewUsecase(loans domain.Repository, accounts account.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, accounts: accounts, uow: tx, now: time.Now}
}

// Disburse records a new loan against an existing account. No funds move.
func (u *Usecase) Disburse(ctx context.Context, in DisburseInput) (*LoanDTO, error) {
	typ, err := domain.ParseType(in.Type)
	if err != nil {
		return nil, err
	}
	at := u.now()
	if in.RequestedAt != nil {
		at = *in.RequestedAt
	}

	var l *domain.Loan
	err = u.uow.WithinAccountTx(ctx, in.AccountID, func(r uow.Repos, a *account.Account) error {
		cur := a.Currency
		if in.Currency != "" {
			c, err := account.ParseCurrency(in.Currency)
			if err != nil {
				return err
			}
			if c != a.Currency {
				return apperr.Constraint("a %s loan cannot be serviced from a %s account", c, a.Currency)
			}
		}
		nl, err := domain.New(a.ID, typ, cur, in.Principal, in.Rate, in.TermMonths, in.Installment, at)
		if err != nil {
			return err
		}
		l = nl
		return r.Loans.Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	dto := toDTO(l)
	return &dto, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*LoanDTO, error) {
	l, err := u.loans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(l)
	return &dto, nil
}

func (u *Usecase) ListByAccount(ctx context.Context, accountID uint64) ([]LoanDTO, error) {
	ok, err := u.accounts.Exists(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("account %d not found", accountID)
	}
	ls, err := u.loans.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, toDTO(&ls[i]))
	}
	return out, nil
}

func (u *Usecase) Payments(ctx context.Context, loanID uint64) ([]PaymentDTO, error) {
	ok, err := u.loans.Exists(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("loan %d not found", loanID)
	}
	ps, err := u.loans.ListPayments(ctx, loanID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentDTO, 0, len(ps))
	for i := range ps {
		out = append(out, toPaymentDTO(&ps[i]))
	}
	return out, nil
}

// Pay charges the next installment to the loan's account.
func (u *Usecase) Pay(ctx context.Context, loanID uint64) (*PayResultDTO, error) {
	var out *PayResultDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan, a *account.Account) error {
		p, t, err := PayInstallment(ctx, r, l, a)
		if err != nil {
			return err
		}
		out = &PayResultDTO{
			Loan:        toDTO(l),
			Payment:     toPaymentDTO(p),
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

// Estimate prices a loan without creating it.
func (u *Usecase) Estimate(ctx context.Context, in EstimateInput) (*EstimateDTO, error) {
	e, err := domain.EstimatePayments(in.Principal, in.Rate, in.TermMonths)
	if err != nil {
		return nil, err
	}
	dto := &EstimateDTO{
		Installment:     e.Installment,
		InterestPortion: domain.MonthlyInterestPortion(&domain.Loan{Principal: in.Principal, Rate: in.Rate}),
		TotalPayable:    e.TotalPayable,
		TotalInterest:   e.TotalInterest,
	}
	if in.Currency != "" {
		cur, err := account.ParseCurrency(in.Currency)
		if err != nil {
			return nil, err
		}
		dto.Display = cur.Format(e.Installment)
	}
	return dto, nil
}

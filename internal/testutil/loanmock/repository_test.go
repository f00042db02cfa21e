package loanmock

import (
	"context"
	"errors"
	"testing"

	domain "banking-ledger/internal/domain/loan"
)

func TestRepo_Save(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{ID: 1}

	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		SaveFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Save ctx mismatch")
			}
			if got != l {
				t.Fatalf("Save arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Save(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Save: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("SaveFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Save(ctx, l); err != nil {
		t.Fatalf("Save default: want nil, got %v", err)
	}
	if err := m.CreatePayment(ctx, &domain.Payment{}); err != nil {
		t.Fatalf("CreatePayment default: want nil, got %v", err)
	}
}

func TestRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{ID: 2}

	m := &Repo{
		GetByIDFn: func(gotCtx context.Context, id uint64) (*domain.Loan, error) {
			if id != 2 {
				t.Fatalf("GetByID id mismatch: got %d", id)
			}
			return want, nil
		},
	}
	got, err := m.GetByID(ctx, 2)
	if err != nil || got != want {
		t.Fatalf("GetByID: got %+v, %v", got, err)
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	if got, err := m.GetByID(ctx, 2); err != context.Canceled || got != nil {
		t.Fatalf("GetByID default: got %+v, %v", got, err)
	}
	if _, err := m.ListPayments(ctx, 2); err != context.Canceled {
		t.Fatalf("ListPayments default: %v", err)
	}
}

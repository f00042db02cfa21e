package accountmock

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domain "banking-ledger/internal/domain/account"
)

func TestRepo_UpdateBalance(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("boom")

	called := false
	m := &Repo{
		UpdateBalanceFn: func(gotCtx context.Context, id uint64, bal decimal.Decimal) error {
			called = true
			if gotCtx != ctx || id != 3 || !bal.Equal(decimal.NewFromInt(10)) {
				t.Fatalf("arg mismatch: %d %s", id, bal)
			}
			return wantErr
		},
	}
	if err := m.UpdateBalance(ctx, 3, decimal.NewFromInt(10)); !errors.Is(err, wantErr) {
		t.Fatalf("UpdateBalance: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("UpdateBalanceFn not called")
	}

	// Default (nil func) → no-op
	m = &Repo{}
	if err := m.UpdateBalance(ctx, 3, decimal.Zero); err != nil {
		t.Fatalf("UpdateBalance default: want nil, got %v", err)
	}
}

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}
	if err := m.Create(ctx, &domain.Account{}); err != nil {
		t.Fatalf("Create default: %v", err)
	}
	if a, err := m.GetByID(ctx, 1); err != context.Canceled || a != nil {
		t.Fatalf("GetByID default: %v %v", a, err)
	}
	if _, err := m.Exists(ctx, 1); err != context.Canceled {
		t.Fatalf("Exists default: %v", err)
	}
	if _, err := m.ExistsForCurrency(ctx, 1, domain.CRC); err != context.Canceled {
		t.Fatalf("ExistsForCurrency default: %v", err)
	}
	if _, err := m.ListByCustomer(ctx, 1); err != context.Canceled {
		t.Fatalf("ListByCustomer default: %v", err)
	}
}

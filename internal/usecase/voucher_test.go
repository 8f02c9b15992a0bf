package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sugarline/cakeshop/internal/domain/model"
	testhelpers "github.com/sugarline/cakeshop/internal/test"
)

func TestAvailableMergesAndDeduplicates(t *testing.T) {
	now := time.Now()
	shared := model.Voucher{Code: "SHARED", Quantity: 1, ExpiresAt: now.Add(2 * time.Hour)}

	uc := NewVoucherUseCase(testhelpers.VoucherServiceStub{
		BakeryVal: []model.Voucher{
			shared,
			{Code: "BAKERY", Quantity: 1, ExpiresAt: now.Add(3 * time.Hour)},
		},
		CustomerVal: []model.Voucher{
			shared,
			{Code: "MINE", Quantity: 1, ExpiresAt: now.Add(time.Hour)},
		},
	})

	offers, err := uc.Available(context.Background(), "token", "bakery-1", decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 3 {
		t.Fatalf("expected 3 deduplicated offers, got %d", len(offers))
	}

	// Sorted by soonest expiry first.
	wantOrder := []string{"MINE", "SHARED", "BAKERY"}
	for i, code := range wantOrder {
		if offers[i].Voucher.Code != code {
			t.Fatalf("expected order %v, got %s at %d", wantOrder, offers[i].Voucher.Code, i)
		}
	}
}

func TestAvailableDropsUnusableVouchers(t *testing.T) {
	now := time.Now()
	uc := NewVoucherUseCase(testhelpers.VoucherServiceStub{
		BakeryVal: []model.Voucher{
			{Code: "EXPIRED", Quantity: 1, ExpiresAt: now.Add(-time.Hour)},
			{Code: "EXHAUSTED", Quantity: 0, ExpiresAt: now.Add(time.Hour)},
			{Code: "OK", Quantity: 1, ExpiresAt: now.Add(time.Hour)},
		},
	})

	offers, err := uc.Available(context.Background(), "token", "bakery-1", decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 1 || offers[0].Voucher.Code != "OK" {
		t.Fatalf("expected only OK voucher, got %+v", offers)
	}
}

func TestAvailableAnnotatesApplicability(t *testing.T) {
	now := time.Now()
	uc := NewVoucherUseCase(testhelpers.VoucherServiceStub{
		BakeryVal: []model.Voucher{
			{Code: "LOW", Quantity: 1, ExpiresAt: now.Add(time.Hour), MinOrderAmount: decimal.NewFromInt(50)},
			{Code: "HIGH", Quantity: 1, ExpiresAt: now.Add(2 * time.Hour), MinOrderAmount: decimal.NewFromInt(500)},
		},
	})

	offers, err := uc.Available(context.Background(), "token", "bakery-1", decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byCode := make(map[string]bool, len(offers))
	for _, o := range offers {
		byCode[o.Voucher.Code] = o.Applicable
	}
	if !byCode["LOW"] {
		t.Fatal("expected LOW voucher applicable at subtotal 100")
	}
	if byCode["HIGH"] {
		t.Fatal("expected HIGH voucher listed but not applicable")
	}
}

func TestAvailablePropagatesServiceErrors(t *testing.T) {
	uc := NewVoucherUseCase(testhelpers.VoucherServiceStub{Err: errors.New("platform down")})

	if _, err := uc.Available(context.Background(), "token", "bakery-1", decimal.Zero); err == nil {
		t.Fatal("expected error from voucher service")
	}
}

package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sugarline/cakeshop/internal/domain/model"
)

// VoucherService lists vouchers from the bakery platform.
type VoucherService interface {
	BakeryVouchers(ctx context.Context, bakeryID string) ([]model.Voucher, error)
	CustomerVouchers(ctx context.Context, token string) ([]model.Voucher, error)
}

// VoucherOffer is a usable voucher annotated with whether the current subtotal
// reaches its minimum order amount.
type VoucherOffer struct {
	Voucher    model.Voucher `json:"voucher"`
	Applicable bool          `json:"applicable"`
}

// VoucherUseCase merges bakery-wide and customer vouchers, dropping expired
// and out-of-stock entries.
type VoucherUseCase struct {
	vouchers VoucherService
}

// NewVoucherUseCase constructs VoucherUseCase.
func NewVoucherUseCase(vouchers VoucherService) *VoucherUseCase {
	return &VoucherUseCase{vouchers: vouchers}
}

// Available returns usable vouchers for the bakery and customer, annotated
// against the given subtotal. Inapplicable vouchers are listed but must not be
// selectable.
func (u *VoucherUseCase) Available(ctx context.Context, token, bakeryID string, subtotal decimal.Decimal) ([]VoucherOffer, error) {
	bakeryWide, err := u.vouchers.BakeryVouchers(ctx, bakeryID)
	if err != nil {
		return nil, err
	}
	personal, err := u.vouchers.CustomerVouchers(ctx, token)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	seen := make(map[string]struct{})
	offers := make([]VoucherOffer, 0, len(bakeryWide)+len(personal))
	for _, v := range append(bakeryWide, personal...) {
		if _, dup := seen[v.Code]; dup {
			continue
		}
		seen[v.Code] = struct{}{}
		if !v.Usable(now) {
			continue
		}
		offers = append(offers, VoucherOffer{Voucher: v, Applicable: v.AppliesTo(subtotal)})
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Voucher.ExpiresAt.Before(offers[j].Voucher.ExpiresAt)
	})
	return offers, nil
}

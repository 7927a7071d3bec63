//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coupon-market/internal/pkg/clock"
	"coupon-market/internal/usecase/commands"
	"coupon-market/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newCouponUseCase(store *fakeStore) commands.CouponCommands {
	return commands.NewCouponUseCase(newFakeUoW(store), clock.NewMockClock(fixedNow))
}

func futureDate(days int) time.Time {
	return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
}

func TestCouponCreate(t *testing.T) {
	t.Run("creates and assigns id", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		uc := newCouponUseCase(store)

		draft := builder.NewCouponBuilder().WithCompanyID(companyID).BuildDraft()
		id, err := uc.Create(context.Background(), draft)
		require.NoError(t, err)
		assert.Greater(t, id, int64(0))
		assert.Equal(t, "Summer Discount", store.coupons[id].Title)
	})

	t.Run("rejects duplicate title", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		store.seedCoupon(companyID, "Summer Discount", 10, futureDate(30))
		uc := newCouponUseCase(store)

		draft := builder.NewCouponBuilder().WithCompanyID(companyID).BuildDraft()
		_, err := uc.Create(context.Background(), draft)
		require.ErrorIs(t, err, commands.ErrCouponTitleTaken)
	})

	t.Run("rejects unknown company", func(t *testing.T) {
		store := newFakeStore()
		uc := newCouponUseCase(store)

		draft := builder.NewCouponBuilder().WithCompanyID(999).BuildDraft()
		_, err := uc.Create(context.Background(), draft)
		require.ErrorIs(t, err, commands.ErrCompanyNotFoundCmd)
		assert.Empty(t, store.coupons)
	})

	t.Run("rejects invalid draft before touching the store", func(t *testing.T) {
		store := newFakeStore()
		uc := newCouponUseCase(store)

		draft := builder.NewCouponBuilder().WithTitle("").WithType("groceries").BuildDraft()
		_, err := uc.Create(context.Background(), draft)
		require.Error(t, err)
		assert.Empty(t, store.coupons)
	})
}

func TestCouponUpdate(t *testing.T) {
	t.Run("requires a positive id", func(t *testing.T) {
		uc := newCouponUseCase(newFakeStore())
		err := uc.Update(context.Background(), 0, builder.NewCouponBuilder().BuildDraft())
		require.ErrorIs(t, err, commands.ErrCouponIDRequired)
	})

	t.Run("keeping own title is not a conflict", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		couponID := store.seedCoupon(companyID, "Summer Discount", 10, futureDate(30))
		uc := newCouponUseCase(store)

		draft := builder.NewCouponBuilder().WithCompanyID(companyID).WithAmount(25).BuildDraft()
		err := uc.Update(context.Background(), couponID, draft)
		require.NoError(t, err)
		assert.Equal(t, 25, store.coupons[couponID].Amount)
	})

	t.Run("rejects title held by another coupon", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		couponID := store.seedCoupon(companyID, "Summer Discount", 10, futureDate(30))
		store.seedCoupon(companyID, "Winter Discount", 10, futureDate(30))
		uc := newCouponUseCase(store)

		draft := builder.NewCouponBuilder().WithCompanyID(companyID).WithTitle("Winter Discount").BuildDraft()
		err := uc.Update(context.Background(), couponID, draft)
		require.ErrorIs(t, err, commands.ErrCouponTitleTaken)
		assert.Equal(t, "Summer Discount", store.coupons[couponID].Title)
	})

	t.Run("unknown coupon", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		uc := newCouponUseCase(store)

		err := uc.Update(context.Background(), 999, builder.NewCouponBuilder().WithCompanyID(companyID).BuildDraft())
		require.ErrorIs(t, err, commands.ErrCouponNotFoundCmd)
	})
}

func TestCouponBuy(t *testing.T) {
	t.Run("decrements stock and records the purchase", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		customerID := store.seedCustomer("Jordan Diaz", "jordan@example.com")
		couponID := store.seedCoupon(companyID, "Summer Discount", 5, futureDate(30))
		uc := newCouponUseCase(store)

		err := uc.Buy(context.Background(), customerID, couponID)
		require.NoError(t, err)
		assert.Equal(t, 4, store.coupons[couponID].Amount)
		assert.True(t, store.purchases[purchaseKey{CustomerID: customerID, CouponID: couponID}])
	})

	t.Run("second buy by the same customer fails with one net decrement", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		customerID := store.seedCustomer("Jordan Diaz", "jordan@example.com")
		couponID := store.seedCoupon(companyID, "Summer Discount", 5, futureDate(30))
		uc := newCouponUseCase(store)

		require.NoError(t, uc.Buy(context.Background(), customerID, couponID))
		err := uc.Buy(context.Background(), customerID, couponID)
		require.ErrorIs(t, err, commands.ErrAlreadyPurchased)
		assert.Equal(t, 4, store.coupons[couponID].Amount)
	})

	t.Run("out of stock leaves no writes", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		customerID := store.seedCustomer("Jordan Diaz", "jordan@example.com")
		couponID := store.seedCoupon(companyID, "Summer Discount", 0, futureDate(30))
		uc := newCouponUseCase(store)

		err := uc.Buy(context.Background(), customerID, couponID)
		require.ErrorIs(t, err, commands.ErrOutOfStock)
		assert.Equal(t, 0, store.coupons[couponID].Amount)
		assert.Empty(t, store.purchases)
	})

	t.Run("stock never goes negative under repeated buys", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		first := store.seedCustomer("Jordan Diaz", "jordan@example.com")
		second := store.seedCustomer("Kim Lee", "kim@example.com")
		couponID := store.seedCoupon(companyID, "Summer Discount", 1, futureDate(30))
		uc := newCouponUseCase(store)

		require.NoError(t, uc.Buy(context.Background(), first, couponID))
		err := uc.Buy(context.Background(), second, couponID)
		require.ErrorIs(t, err, commands.ErrOutOfStock)
		assert.Equal(t, 0, store.coupons[couponID].Amount)
	})

	t.Run("unknown coupon", func(t *testing.T) {
		store := newFakeStore()
		customerID := store.seedCustomer("Jordan Diaz", "jordan@example.com")
		uc := newCouponUseCase(store)

		err := uc.Buy(context.Background(), customerID, 999)
		require.ErrorIs(t, err, commands.ErrCouponNotFoundCmd)
	})

	t.Run("unknown customer rolls the transaction back", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		couponID := store.seedCoupon(companyID, "Summer Discount", 5, futureDate(30))
		uc := newCouponUseCase(store)

		err := uc.Buy(context.Background(), 999, couponID)
		require.ErrorIs(t, err, commands.ErrCustomerNotFoundCmd)
		assert.Equal(t, 5, store.coupons[couponID].Amount)
		assert.Empty(t, store.purchases)
	})

	t.Run("rejects non-positive ids", func(t *testing.T) {
		uc := newCouponUseCase(newFakeStore())
		require.ErrorIs(t, uc.Buy(context.Background(), 0, 1), commands.ErrPurchaseIDRequired)
		require.ErrorIs(t, uc.Buy(context.Background(), 1, -1), commands.ErrPurchaseIDRequired)
	})
}

func TestCouponCancelPurchase(t *testing.T) {
	t.Run("restores the counter", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		customerID := store.seedCustomer("Jordan Diaz", "jordan@example.com")
		couponID := store.seedCoupon(companyID, "Summer Discount", 5, futureDate(30))
		uc := newCouponUseCase(store)

		require.NoError(t, uc.Buy(context.Background(), customerID, couponID))
		require.NoError(t, uc.CancelPurchase(context.Background(), couponID, customerID))
		assert.Equal(t, 5, store.coupons[couponID].Amount)
		assert.Empty(t, store.purchases)
	})

	t.Run("cancel without a purchase is a no-op", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		customerID := store.seedCustomer("Jordan Diaz", "jordan@example.com")
		couponID := store.seedCoupon(companyID, "Summer Discount", 5, futureDate(30))
		uc := newCouponUseCase(store)

		require.NoError(t, uc.CancelPurchase(context.Background(), couponID, customerID))
		assert.Equal(t, 5, store.coupons[couponID].Amount)
	})

	t.Run("buy cancel buy round-trips the counter", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		customerID := store.seedCustomer("Jordan Diaz", "jordan@example.com")
		couponID := store.seedCoupon(companyID, "Summer Discount", 5, futureDate(30))
		uc := newCouponUseCase(store)

		require.NoError(t, uc.Buy(context.Background(), customerID, couponID))
		require.NoError(t, uc.CancelPurchase(context.Background(), couponID, customerID))
		require.NoError(t, uc.Buy(context.Background(), customerID, couponID))
		assert.Equal(t, 4, store.coupons[couponID].Amount)
		assert.True(t, store.purchases[purchaseKey{CustomerID: customerID, CouponID: couponID}])
	})

	t.Run("rejects non-positive ids", func(t *testing.T) {
		uc := newCouponUseCase(newFakeStore())
		require.ErrorIs(t, uc.CancelPurchase(context.Background(), 0, 1), commands.ErrPurchaseIDRequired)
	})
}

func TestCouponSweepExpired(t *testing.T) {
	t.Run("removes coupons ending on or before today", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		expired := store.seedCoupon(companyID, "Ended Yesterday", 5, futureDate(-1))
		endingToday := store.seedCoupon(companyID, "Ends Today", 5, futureDate(0))
		active := store.seedCoupon(companyID, "Still Running", 5, futureDate(10))
		uc := newCouponUseCase(store)

		removed, err := uc.SweepExpired(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)
		assert.NotContains(t, store.coupons, expired)
		assert.NotContains(t, store.coupons, endingToday)
		assert.Contains(t, store.coupons, active)
	})

	t.Run("purchase relations of swept coupons go away too", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		customerID := store.seedCustomer("Jordan Diaz", "jordan@example.com")
		expired := store.seedCoupon(companyID, "Ended Yesterday", 5, futureDate(-1))
		store.purchases[purchaseKey{CustomerID: customerID, CouponID: expired}] = true
		uc := newCouponUseCase(store)

		removed, err := uc.SweepExpired(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)
		assert.Empty(t, store.purchases)
	})

	t.Run("nothing to sweep", func(t *testing.T) {
		store := newFakeStore()
		companyID := store.seedCompany("Acme Retail", "contact@acme.example.com")
		store.seedCoupon(companyID, "Still Running", 5, futureDate(10))
		uc := newCouponUseCase(store)

		removed, err := uc.SweepExpired(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(0), removed)
	})
}

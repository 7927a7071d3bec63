//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/apperr"
	"coupon-market/internal/usecase/queries"
	"coupon-market/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCouponReadStore records the arguments of the last call so tests can
// check what the query layer forwards after validating its inputs.
type stubCouponReadStore struct {
	views   []*queries.CouponView
	err     error
	lastOp  string
	lastArg any
}

func (s *stubCouponReadStore) FindByID(_ context.Context, id int64) (*queries.CouponView, error) {
	s.lastOp, s.lastArg = "FindByID", id
	if s.err != nil {
		return nil, s.err
	}
	return s.views[0], nil
}

func (s *stubCouponReadStore) ListAll(_ context.Context) ([]*queries.CouponView, error) {
	s.lastOp = "ListAll"
	return s.views, s.err
}

func (s *stubCouponReadStore) ListByType(_ context.Context, couponType string) ([]*queries.CouponView, error) {
	s.lastOp, s.lastArg = "ListByType", couponType
	return s.views, s.err
}

func (s *stubCouponReadStore) ListByMaxPrice(_ context.Context, maxPrice float64) ([]*queries.CouponView, error) {
	s.lastOp, s.lastArg = "ListByMaxPrice", maxPrice
	return s.views, s.err
}

func (s *stubCouponReadStore) ListUpToEndDate(_ context.Context, endDate time.Time) ([]*queries.CouponView, error) {
	s.lastOp, s.lastArg = "ListUpToEndDate", endDate
	return s.views, s.err
}

func (s *stubCouponReadStore) ListByCompany(_ context.Context, companyID int64) ([]*queries.CouponView, error) {
	s.lastOp, s.lastArg = "ListByCompany", companyID
	return s.views, s.err
}

func (s *stubCouponReadStore) ListByCustomer(_ context.Context, customerID int64) ([]*queries.CouponView, error) {
	s.lastOp, s.lastArg = "ListByCustomer", customerID
	return s.views, s.err
}

func (s *stubCouponReadStore) ListNewest(_ context.Context, limit int) ([]*queries.CouponView, error) {
	s.lastOp, s.lastArg = "ListNewest", limit
	return s.views, s.err
}

func TestCouponQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByID maps store misses to not found", func(t *testing.T) {
		store := &stubCouponReadStore{err: infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)}
		q := queries.NewCouponQueries(store)

		_, err := q.GetByID(ctx, 42)
		require.ErrorIs(t, err, queries.ErrCouponNotFound)
	})

	t.Run("GetByID rejects non-positive ids without a store call", func(t *testing.T) {
		store := &stubCouponReadStore{}
		q := queries.NewCouponQueries(store)

		_, err := q.GetByID(ctx, 0)
		require.ErrorIs(t, err, queries.ErrInvalidCouponID)
		assert.Empty(t, store.lastOp)
	})

	t.Run("GetByID returns the view untouched", func(t *testing.T) {
		view := builder.NewCouponBuilder().WithID(42).BuildView()
		store := &stubCouponReadStore{views: []*queries.CouponView{view}}
		q := queries.NewCouponQueries(store)

		got, err := q.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("ListByType validates the category first", func(t *testing.T) {
		store := &stubCouponReadStore{}
		q := queries.NewCouponQueries(store)

		_, err := q.ListByType(ctx, "groceries")
		require.Error(t, err)

		appErr, ok := err.(*apperr.Error)
		require.True(t, ok)
		assert.Equal(t, apperr.InvalidParameter, appErr.Category)
		assert.Empty(t, store.lastOp)
	})

	t.Run("ListByMaxPrice rejects out-of-range prices", func(t *testing.T) {
		store := &stubCouponReadStore{}
		q := queries.NewCouponQueries(store)

		_, err := q.ListByMaxPrice(ctx, -1)
		require.Error(t, err)
		assert.Empty(t, store.lastOp)

		_, err = q.ListByMaxPrice(ctx, 25.5)
		require.NoError(t, err)
		assert.Equal(t, 25.5, store.lastArg)
	})

	t.Run("ListUpToEndDate parses the calendar date", func(t *testing.T) {
		store := &stubCouponReadStore{}
		q := queries.NewCouponQueries(store)

		_, err := q.ListUpToEndDate(ctx, "30-06-2026")
		require.Error(t, err)
		assert.Empty(t, store.lastOp)

		_, err = q.ListUpToEndDate(ctx, "2026-06-30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), store.lastArg)
	})

	t.Run("ListNewest always asks for the fixed page size", func(t *testing.T) {
		store := &stubCouponReadStore{}
		q := queries.NewCouponQueries(store)

		_, err := q.ListNewest(ctx)
		require.NoError(t, err)
		assert.Equal(t, queries.NewestCouponCount, store.lastArg)
	})
}

//go:build e2e

package purchase_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"coupon-market/internal/handler/dto/response"
	"coupon-market/tests/common/authtest"
	"coupon-market/tests/common/dbtest"
	"coupon-market/tests/common/httptest"
	"coupon-market/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	purchaseURL        = "/api/coupons/%d/purchase"
	customerCouponsURL = "/api/customers/%d/coupons"
	sweepURL           = "/api/admin/coupons/expired"
)

type PurchaseSuite struct {
	e2e.SharedSuite
}

func TestPurchaseSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PurchaseSuite))
}

func (s *PurchaseSuite) seedCoupon(amount int, daysUntilEnd int) (companyID, couponID int64) {
	t := s.T()
	companyID = dbtest.CreateTestCompany(t, s.DB, "Acme Retail", "contact@acme.example.com")
	start := time.Now().AddDate(0, 0, -1)
	end := time.Now().AddDate(0, 0, daysUntilEnd)
	couponID = dbtest.CreateTestCoupon(t, s.DB, companyID, "Summer Discount", amount, start, end)
	return companyID, couponID
}

// =============================================================================
// TestBuy - purchase API tests
// =============================================================================

func (s *PurchaseSuite) TestBuy() {
	s.Run("Normal case: customer buys a coupon and stock decreases", func() {
		t := s.T()

		_, couponID := s.seedCoupon(3, 30)
		customerID, token := authtest.CreateCustomerAndLogin(t, s.DB, s.Router, "Jordan Diaz", "jordan@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(purchaseURL, couponID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Equal(t, 2, dbtest.CouponAmount(t, s.DB, couponID))
		require.Equal(t, 1, dbtest.CountPurchases(t, s.DB, couponID))

		// The purchased coupon shows up in the customer's list
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(customerCouponsURL, customerID), nil, token)
		require.Equal(t, http.StatusOK, lw.Code)

		var listed []response.CouponResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &listed))
		require.Len(t, listed, 1)

		expected := []response.CouponResponse{{
			ID:      couponID,
			Title:   "Summer Discount",
			Type:    "restaurants",
			Price:   9.99,
			Amount:  2,
			Message: "seeded for tests",
		}}
		diff := cmp.Diff(expected, listed,
			cmpopts.IgnoreFields(response.CouponResponse{}, "CompanyID", "StartDate", "EndDate", "CreatedAt"))
		require.Empty(t, diff, "unexpected coupon list: %s", diff)
	})

	s.Run("Error case: buying the same coupon twice is rejected", func() {
		t := s.T()

		_, couponID := s.seedCoupon(3, 30)
		_, token := authtest.CreateCustomerAndLogin(t, s.DB, s.Router, "Jordan Diaz", "jordan@example.com")
		url := fmt.Sprintf(purchaseURL, couponID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// Exactly one net decrement
		require.Equal(t, 2, dbtest.CouponAmount(t, s.DB, couponID))
		require.Equal(t, 1, dbtest.CountPurchases(t, s.DB, couponID))
	})

	s.Run("Error case: sold-out coupon cannot be bought", func() {
		t := s.T()

		_, couponID := s.seedCoupon(0, 30)
		_, token := authtest.CreateCustomerAndLogin(t, s.DB, s.Router, "Jordan Diaz", "jordan@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(purchaseURL, couponID), nil, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		require.Equal(t, 0, dbtest.CouponAmount(t, s.DB, couponID))
		require.Equal(t, 0, dbtest.CountPurchases(t, s.DB, couponID))
	})

	s.Run("Error case: the last unit goes to exactly one customer", func() {
		t := s.T()

		_, couponID := s.seedCoupon(1, 30)
		_, first := authtest.CreateCustomerAndLogin(t, s.DB, s.Router, "Jordan Diaz", "jordan@example.com")
		_, second := authtest.CreateCustomerAndLogin(t, s.DB, s.Router, "Kim Lee", "kim@example.com")
		url := fmt.Sprintf(purchaseURL, couponID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, first)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, second)
		require.Equal(t, http.StatusConflict, w.Code)

		require.Equal(t, 0, dbtest.CouponAmount(t, s.DB, couponID))
		require.Equal(t, 1, dbtest.CountPurchases(t, s.DB, couponID))
	})

	s.Run("Error case: unknown coupon returns 404", func() {
		t := s.T()

		_, token := authtest.CreateCustomerAndLogin(t, s.DB, s.Router, "Jordan Diaz", "jordan@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(purchaseURL, int64(9999)), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: companies cannot buy coupons", func() {
		t := s.T()

		_, couponID := s.seedCoupon(3, 30)
		_, token := authtest.CreateCompanyAndLogin(t, s.DB, s.Router, "Globex", "globex@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(purchaseURL, couponID), nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: unauthenticated request is rejected", func() {
		t := s.T()

		_, couponID := s.seedCoupon(3, 30)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(purchaseURL, couponID), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestCancel - purchase cancellation tests
// =============================================================================

func (s *PurchaseSuite) TestCancel() {
	s.Run("Normal case: cancelling restores the stock counter", func() {
		t := s.T()

		_, couponID := s.seedCoupon(3, 30)
		_, token := authtest.CreateCustomerAndLogin(t, s.DB, s.Router, "Jordan Diaz", "jordan@example.com")
		url := fmt.Sprintf(purchaseURL, couponID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, 2, dbtest.CouponAmount(t, s.DB, couponID))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		require.Equal(t, 3, dbtest.CouponAmount(t, s.DB, couponID))
		require.Equal(t, 0, dbtest.CountPurchases(t, s.DB, couponID))
	})

	s.Run("Normal case: cancelling a never-bought coupon changes nothing", func() {
		t := s.T()

		_, couponID := s.seedCoupon(3, 30)
		_, token := authtest.CreateCustomerAndLogin(t, s.DB, s.Router, "Jordan Diaz", "jordan@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(purchaseURL, couponID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, 3, dbtest.CouponAmount(t, s.DB, couponID))
	})

	s.Run("Normal case: buy-cancel-buy ends with one purchase", func() {
		t := s.T()

		_, couponID := s.seedCoupon(3, 30)
		_, token := authtest.CreateCustomerAndLogin(t, s.DB, s.Router, "Jordan Diaz", "jordan@example.com")
		url := fmt.Sprintf(purchaseURL, couponID)

		require.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token).Code)
		require.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, token).Code)
		require.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token).Code)

		require.Equal(t, 2, dbtest.CouponAmount(t, s.DB, couponID))
		require.Equal(t, 1, dbtest.CountPurchases(t, s.DB, couponID))
	})
}

// =============================================================================
// TestSweepExpired - admin expiry sweep tests
// =============================================================================

func (s *PurchaseSuite) TestSweepExpired() {
	s.Run("Normal case: admin sweep removes expired coupons and their purchases", func() {
		t := s.T()

		companyID := dbtest.CreateTestCompany(t, s.DB, "Acme Retail", "contact@acme.example.com")
		expired := dbtest.CreateTestCoupon(t, s.DB, companyID, "Ended Last Week", 5,
			time.Now().AddDate(0, 0, -14), time.Now().AddDate(0, 0, -7))
		active := dbtest.CreateTestCoupon(t, s.DB, companyID, "Still Running", 5,
			time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 30))

		customerID, _ := authtest.CreateCustomerAndLogin(t, s.DB, s.Router, "Jordan Diaz", "jordan@example.com")
		dbtest.CreateTestPurchase(t, s.DB, customerID, expired)

		adminToken := authtest.LoginCompany(t, s.Router, s.Config.Admin.Name, s.Config.Admin.Password)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, sweepURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]int64
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, int64(1), body["removed"])

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/coupons/%d", expired), nil, "")
		require.Equal(t, http.StatusNotFound, gw.Code)

		require.Equal(t, 5, dbtest.CouponAmount(t, s.DB, active))
		require.Equal(t, 0, dbtest.CountPurchases(t, s.DB, expired))
	})

	s.Run("Error case: customers cannot trigger the sweep", func() {
		t := s.T()

		_, token := authtest.CreateCustomerAndLogin(t, s.DB, s.Router, "Jordan Diaz", "jordan@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, sweepURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

//go:build unit || e2e

package authtest

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"coupon-market/internal/handler/dto/request"
	"coupon-market/internal/pkg/cookie"
	"coupon-market/tests/common/dbtest"
	"coupon-market/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginCompany(t *testing.T, router *gin.Engine, name, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/company/login",
		request.CompanyLoginRequest{Name: name, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return extractSessionToken(t, w)
}

func LoginCustomer(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/customer/login",
		request.CustomerLoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return extractSessionToken(t, w)
}

func extractSessionToken(t *testing.T, w *nethttptest.ResponseRecorder) string {
	t.Helper()

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Session token not found in cookies")
	require.NotEmpty(t, sessionCookie.Value, "Session token cookie is empty")
	return sessionCookie.Value
}

// CreateCompanyAndLogin seeds a company row and returns its id plus a token.
func CreateCompanyAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, email string) (int64, string) {
	t.Helper()
	id := dbtest.CreateTestCompany(t, db, name, email)
	return id, LoginCompany(t, router, name, dbtest.SeedPassword)
}

// CreateCustomerAndLogin seeds a customer row and returns its id plus a token.
func CreateCustomerAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, email string) (int64, string) {
	t.Helper()
	id := dbtest.CreateTestCustomer(t, db, name, email)
	return id, LoginCustomer(t, router, email, dbtest.SeedPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

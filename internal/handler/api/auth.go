package api

import (
	"errors"
	"net/http"

	reqdto "coupon-market/internal/handler/dto/request"
	resdto "coupon-market/internal/handler/dto/response"
	"coupon-market/internal/handler/httperr"
	"coupon-market/internal/pkg/config"
	"coupon-market/internal/pkg/cookie"
	"coupon-market/internal/pkg/jwt"
	"coupon-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth       commands.AuthCommands
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
}

func NewAuthHandler(auth commands.AuthCommands, jwtService *jwt.Service, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		jwtService: jwtService,
		cookieCfg:  cookieCfg,
	}
}

// @Summary Company login
// @Description Login with company name and password; admin credentials ride the same endpoint
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.CompanyLoginRequest true "Company login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /auth/company/login [post]
func (h *AuthHandler) CompanyLogin(c *gin.Context) {
	var req reqdto.CompanyLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.auth.CompanyLogin(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		h.abortLoginError(c, err)
		return
	}
	h.respondLoggedIn(c, result)
}

// @Summary Customer login
// @Description Login with customer email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerLoginRequest true "Customer login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /auth/customer/login [post]
func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var req reqdto.CustomerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.auth.CustomerLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.abortLoginError(c, err)
		return
	}
	h.respondLoggedIn(c, result)
}

// @Summary Logout
// @Description Clear the session cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) respondLoggedIn(c *gin.Context, result *commands.LoginResult) {
	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

func (h *AuthHandler) abortLoginError(c *gin.Context, err error) {
	if errors.Is(err, commands.ErrInvalidCredentials) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}
	httperr.AbortWithAppError(c, err)
}

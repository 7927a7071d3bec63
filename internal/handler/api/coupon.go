package api

import (
	"net/http"
	"strconv"

	reqdto "coupon-market/internal/handler/dto/request"
	resdto "coupon-market/internal/handler/dto/response"
	"coupon-market/internal/handler/httperr"
	"coupon-market/internal/handler/middleware"
	"coupon-market/internal/pkg/jwt"
	"coupon-market/internal/usecase/commands"
	"coupon-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Issue coupon
// @Description Create a new coupon for the authenticated company
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CouponRequest true "Coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	draft := req.ToDraft()
	// Companies always issue under their own id; admins name the owner.
	if role, _ := middleware.GetActorRole(c); role == jwt.RoleCompany {
		actorID, _ := middleware.GetActorID(c)
		draft.CompanyID = actorID
	}

	id, err := h.cmds.Create(c.Request.Context(), draft)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCouponView(view))
}

// @Summary Update coupon
// @Description Update an own coupon (admins can update any); the owning company never changes
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Param request body reqdto.CouponRequest true "Coupon request"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existing, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	if !middleware.CanActFor(c, existing.CompanyID) {
		httperr.AbortWithError(c, http.StatusForbidden, errAccessDenied, "Access denied", nil)
		return
	}

	var req reqdto.CouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	draft := req.ToDraft()
	draft.CompanyID = existing.CompanyID

	if err := h.cmds.Update(c.Request.Context(), id, draft); err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Delete coupon
// @Description Delete an own coupon and its purchase relations (admins can delete any)
// @Tags coupons
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existing, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	if !middleware.CanActFor(c, existing.CompanyID) {
		httperr.AbortWithError(c, http.StatusForbidden, errAccessDenied, "Access denied", nil)
		return
	}

	if err := h.cmds.Remove(c.Request.Context(), id); err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get coupon
// @Description Get a coupon by ID
// @Tags coupons
// @Produce json
// @Param id path int true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary List coupons
// @Description List coupons, optionally filtered by type, maximum price, or latest end date
// @Tags coupons
// @Produce json
// @Param type query string false "Coupon type"
// @Param max_price query number false "Maximum price"
// @Param end_date query string false "Latest end date (YYYY-MM-DD)"
// @Success 200 {array} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var views []*queries.CouponView
	var err error
	switch {
	case c.Query("type") != "":
		views, err = h.q.ListByType(ctx, c.Query("type"))
	case c.Query("max_price") != "":
		price, perr := strconv.ParseFloat(c.Query("max_price"), 64)
		if perr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, perr, "Invalid max price", nil)
			return
		}
		views, err = h.q.ListByMaxPrice(ctx, price)
	case c.Query("end_date") != "":
		views, err = h.q.ListUpToEndDate(ctx, c.Query("end_date"))
	default:
		views, err = h.q.ListAll(ctx)
	}
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponList(views))
}

// @Summary Newest coupons
// @Description Get the five most recently issued coupons
// @Tags coupons
// @Produce json
// @Success 200 {array} resdto.CouponResponse
// @Router /coupons/newest [get]
func (h *CouponHandler) Newest(c *gin.Context) {
	views, err := h.q.ListNewest(c.Request.Context())
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponList(views))
}

// @Summary List coupons by company
// @Description List all coupons issued by a company
// @Tags coupons
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {array} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Router /companies/{id}/coupons [get]
func (h *CouponHandler) ListByCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	views, err := h.q.ListByCompany(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponList(views))
}

// @Summary List purchased coupons
// @Description List coupons purchased by a customer (own account; admins can list any)
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {array} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /customers/{id}/coupons [get]
func (h *CouponHandler) ListByCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !middleware.CanActFor(c, id) {
		httperr.AbortWithError(c, http.StatusForbidden, errAccessDenied, "Access denied", nil)
		return
	}
	views, err := h.q.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponList(views))
}

// @Summary Buy coupon
// @Description Purchase one unit of a coupon for the authenticated customer
// @Tags coupons
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons/{id}/purchase [post]
func (h *CouponHandler) Buy(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customerID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errAccessDenied, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Buy(c.Request.Context(), customerID, id); err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel purchase
// @Description Return a purchased coupon; cancelling a never-bought coupon is a no-op
// @Tags coupons
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /coupons/{id}/purchase [delete]
func (h *CouponHandler) CancelPurchase(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customerID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errAccessDenied, "Unauthorized", nil)
		return
	}

	if err := h.cmds.CancelPurchase(c.Request.Context(), id, customerID); err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Sweep expired coupons
// @Description Delete every coupon whose end date has passed (admin maintenance)
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /admin/coupons/expired [delete]
func (h *CouponHandler) SweepExpired(c *gin.Context) {
	removed, err := h.cmds.SweepExpired(c.Request.Context())
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

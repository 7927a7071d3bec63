package api

import (
	"net/http"

	reqdto "coupon-market/internal/handler/dto/request"
	resdto "coupon-market/internal/handler/dto/response"
	"coupon-market/internal/handler/httperr"
	"coupon-market/internal/handler/middleware"
	"coupon-market/internal/usecase/commands"
	"coupon-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Register customer
// @Description Create a new customer account
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerRequest true "Customer registration request"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToProfile())
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load customer", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCustomerView(view))
}

// @Summary Update customer
// @Description Update own customer account (admins can update any)
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Param request body reqdto.CustomerRequest true "Customer update request"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !middleware.CanActFor(c, id) {
		httperr.AbortWithError(c, http.StatusForbidden, errAccessDenied, "Access denied", nil)
		return
	}

	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToProfile()); err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load customer", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Delete customer
// @Description Delete own customer account (admins can delete any)
// @Tags customers
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !middleware.CanActFor(c, id) {
		httperr.AbortWithError(c, http.StatusForbidden, errAccessDenied, "Access denied", nil)
		return
	}

	if err := h.cmds.Remove(c.Request.Context(), id); err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get customer
// @Description Get own customer account by ID (admins can get any)
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !middleware.CanActFor(c, id) {
		httperr.AbortWithError(c, http.StatusForbidden, errAccessDenied, "Access denied", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary List customers
// @Description Look up a customer by email or list all (admin only)
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param email query string false "Customer email"
// @Success 200 {array} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if email := c.Query("email"); email != "" {
		view, err := h.q.GetByEmail(ctx, email)
		if err != nil {
			httperr.AbortWithAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromCustomerView(view))
		return
	}

	views, err := h.q.ListAll(ctx)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerList(views))
}

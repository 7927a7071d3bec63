package api

import (
	"net/http"

	reqdto "coupon-market/internal/handler/dto/request"
	resdto "coupon-market/internal/handler/dto/response"
	"coupon-market/internal/handler/httperr"
	"coupon-market/internal/handler/middleware"
	"coupon-market/internal/pkg/jwt"
	"coupon-market/internal/usecase/commands"
	"coupon-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	cmds commands.CompanyCommands
	q    queries.CompanyQueries
}

func NewCompanyHandler(cmds commands.CompanyCommands, q queries.CompanyQueries) *CompanyHandler {
	return &CompanyHandler{cmds: cmds, q: q}
}

// @Summary Register company
// @Description Create a new company account
// @Tags companies
// @Accept json
// @Produce json
// @Param request body reqdto.CompanyRequest true "Company registration request"
// @Success 201 {object} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req reqdto.CompanyRequest
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
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load company", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCompanyView(view))
}

// @Summary Update company
// @Description Update own company account (admins can update any)
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Param request body reqdto.CompanyRequest true "Company update request"
// @Success 200 {object} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !middleware.CanActFor(c, id) {
		httperr.AbortWithError(c, http.StatusForbidden, errAccessDenied, "Access denied", nil)
		return
	}

	var req reqdto.CompanyRequest
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
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load company", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompanyView(view))
}

// @Summary Delete company
// @Description Delete own company account and all its coupons (admins can delete any)
// @Tags companies
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
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

// @Summary Get company
// @Description Get a company by ID
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompanyView(view))
}

// @Summary List or look up companies
// @Description Look up a company by name or email, or list all (admin only)
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param name query string false "Company name"
// @Param email query string false "Company email"
// @Success 200 {array} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if name := c.Query("name"); name != "" {
		view, err := h.q.GetByName(ctx, name)
		if err != nil {
			httperr.AbortWithAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromCompanyView(view))
		return
	}
	if email := c.Query("email"); email != "" {
		view, err := h.q.GetByEmail(ctx, email)
		if err != nil {
			httperr.AbortWithAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromCompanyView(view))
		return
	}

	if role, _ := middleware.GetActorRole(c); role != jwt.RoleAdmin {
		httperr.AbortWithError(c, http.StatusForbidden, errAccessDenied, "Access denied", nil)
		return
	}
	views, err := h.q.ListAll(ctx)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompanyList(views))
}

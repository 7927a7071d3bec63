package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coupon-market/internal/handler/api"
	"coupon-market/internal/handler/middleware"
	"coupon-market/internal/pkg/config"
	"coupon-market/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	companyHandler *api.CompanyHandler,
	customerHandler *api.CustomerHandler,
	couponHandler *api.CouponHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, companyHandler, customerHandler, couponHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	companyHandler *api.CompanyHandler,
	customerHandler *api.CustomerHandler,
	couponHandler *api.CouponHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/company/login", Handler: authHandler.CompanyLogin},
				{Method: http.MethodPost, Path: "/customer/login", Handler: authHandler.CustomerLogin},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})
		}

		companies := apiGroup.Group("/companies")
		{
			addRoutes(companies, []route{
				{Method: http.MethodPost, Path: "", Handler: companyHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: companyHandler.Get},
				{Method: http.MethodGet, Path: "/:id/coupons", Handler: couponHandler.ListByCompany},
			})

			authed := companies.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "", Handler: companyHandler.List},
				{Method: http.MethodPut, Path: "/:id", Handler: companyHandler.Update, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RoleCompany)}},
				{Method: http.MethodDelete, Path: "/:id", Handler: companyHandler.Delete, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RoleCompany)}},
			})
		}

		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: customerHandler.Create},
			})

			authed := customers.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "", Handler: customerHandler.List, Mw: []gin.HandlerFunc{authMiddleware.RequireRole()}},
				{Method: http.MethodGet, Path: "/:id", Handler: customerHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: customerHandler.Update, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RoleCustomer)}},
				{Method: http.MethodDelete, Path: "/:id", Handler: customerHandler.Delete, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RoleCustomer)}},
				{Method: http.MethodGet, Path: "/:id/coupons", Handler: couponHandler.ListByCustomer},
			})
		}

		coupons := apiGroup.Group("/coupons")
		{
			addRoutes(coupons, []route{
				{Method: http.MethodGet, Path: "", Handler: couponHandler.List},
				{Method: http.MethodGet, Path: "/newest", Handler: couponHandler.Newest},
				{Method: http.MethodGet, Path: "/:id", Handler: couponHandler.Get},
			})

			authed := coupons.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "", Handler: couponHandler.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RoleCompany)}},
				{Method: http.MethodPut, Path: "/:id", Handler: couponHandler.Update, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RoleCompany)}},
				{Method: http.MethodDelete, Path: "/:id", Handler: couponHandler.Delete, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RoleCompany)}},
				{Method: http.MethodPost, Path: "/:id/purchase", Handler: couponHandler.Buy, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RoleCustomer)}},
				{Method: http.MethodDelete, Path: "/:id/purchase", Handler: couponHandler.CancelPurchase, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RoleCustomer)}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole())
		{
			addRoutes(admin, []route{
				{Method: http.MethodDelete, Path: "/coupons/expired", Handler: couponHandler.SweepExpired},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

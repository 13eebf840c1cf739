package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"autopneu-api/internal/handler/api"
	"autopneu-api/internal/handler/middleware"
	"autopneu-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, siteHandler *api.SiteHandler, bookingHandler *api.BookingHandler, adminHandler *api.AdminHandler, adminAuth *middleware.AdminAuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, siteHandler, bookingHandler, adminHandler, adminAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, siteHandler *api.SiteHandler, bookingHandler *api.BookingHandler, adminHandler *api.AdminHandler, adminAuth *middleware.AdminAuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/site", Handler: siteHandler.GetSite},
			{Method: http.MethodGet, Path: "/services", Handler: siteHandler.ListServices},
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.CreateBooking},
		})

		admin := apiGroup.Group("/admin")
		{
			// Login is the gate itself and must stay reachable without the header.
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
			})

			authRequired := admin.Group("")
			authRequired.Use(adminAuth.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListBookings},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: adminHandler.SetBookingStatus},
				{Method: http.MethodPatch, Path: "/bookings/:id", Handler: adminHandler.UpdateBooking},
				{Method: http.MethodGet, Path: "/config", Handler: adminHandler.GetConfig},
				{Method: http.MethodPut, Path: "/config", Handler: adminHandler.UpdateConfig},
				{Method: http.MethodPut, Path: "/services", Handler: adminHandler.ReplaceServices},
				{Method: http.MethodPost, Path: "/reset", Handler: adminHandler.FactoryReset},
				{Method: http.MethodPost, Path: "/generate/description", Handler: adminHandler.GenerateDescription},
				{Method: http.MethodPost, Path: "/generate/seo", Handler: adminHandler.GenerateSeo},
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

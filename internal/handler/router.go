package handler

import (
	"net/http"

	"venue-booking/internal/domain/staff"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Tickets      *api.TicketHandler
	Staff        *api.StaffHandler
	GiftCodes    *api.GiftCodeHandler
	Webhooks     *api.WebhookHandler
	Sweeps       *api.SweepHandler
}

// Observability carries the pieces mounted outside /api.
type Observability struct {
	Logger         *middleware.Logger
	RequestMetrics middleware.RequestObserver
	MetricsHandler http.Handler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, obs Observability, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, obs)
	setupRoutes(engine, h, obs, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, obs Observability) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(obs.Logger.LoggingMiddleware())
	if obs.RequestMetrics != nil {
		engine.Use(middleware.RequestMetrics(obs.RequestMetrics))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, obs Observability, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	if obs.MetricsHandler != nil {
		engine.GET("/metrics", gin.WrapH(obs.MetricsHandler))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.Get},
			{Method: http.MethodGet, Path: "/availability/stream", Handler: h.Availability.Stream},
			{Method: http.MethodPost, Path: "/tickets", Handler: h.Tickets.Create},
			{Method: http.MethodGet, Path: "/tickets/:code", Handler: h.Tickets.GetByCode},
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Tickets.Checkout},
			{Method: http.MethodGet, Path: "/gift-codes/:code", Handler: h.GiftCodes.Validate},
			{Method: http.MethodPost, Path: "/webhooks/stripe", Handler: h.Webhooks.Stripe},
		})

		staffGroup := apiGroup.Group("/staff")
		staffGroup.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(staff.RoleDoor))
		{
			addRoutes(staffGroup, []route{
				{Method: http.MethodPost, Path: "/tickets/:code/validate", Handler: h.Staff.ValidateTicket},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(staff.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/tickets/:id/cancel", Handler: h.Tickets.Cancel},
				{Method: http.MethodPost, Path: "/tickets/:id/mark-paid", Handler: h.Tickets.MarkPaid},
				{Method: http.MethodPost, Path: "/gift-code-packs", Handler: h.GiftCodes.CreatePack},
				{Method: http.MethodPost, Path: "/gift-codes/:code/redeem", Handler: h.GiftCodes.Redeem},
				{Method: http.MethodPost, Path: "/sweeps", Handler: h.Sweeps.Run},
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

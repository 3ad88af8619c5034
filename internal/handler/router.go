package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gateops/internal/domain/user"
	"gateops/internal/handler/api"
	"gateops/internal/handler/middleware"
	"gateops/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Request *api.RequestHandler
	Visit   *api.VisitHandler
	Bay     *api.BayHandler
	Client  *api.ClientHandler
	Stats   *api.StatsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Submissions and the duration calculator are open: visitors file
		// requests from the public kiosk without an operator session.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/requests/appointments", Handler: h.Request.SubmitAppointment},
			{Method: http.MethodPost, Path: "/requests/trucks", Handler: h.Request.SubmitTruck},
			{Method: http.MethodPost, Path: "/durations/compute", Handler: h.Visit.ComputeDuration},
		})

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Request.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Request.Get},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Request.Approve},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Request.Reject},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Request.Accept},
			})
		}

		visits := apiGroup.Group("/visits")
		visits.Use(authMiddleware.RequireAuth())
		{
			addRoutes(visits, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Visit.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Visit.Get},
				{Method: http.MethodPost, Path: "/:id/close", Handler: h.Visit.Close},
				{Method: http.MethodPost, Path: "/walk-ins", Handler: h.Visit.AddWalkIn},
				{Method: http.MethodPost, Path: "/truck-logs", Handler: h.Visit.LogTruck},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			addRoutes(protected, []route{
				{Method: http.MethodGet, Path: "/bays/available", Handler: h.Bay.ListAvailable},
				{Method: http.MethodGet, Path: "/clients", Handler: h.Client.List},
				{Method: http.MethodGet, Path: "/clients/:plate", Handler: h.Client.GetByPlate},
				// Branch stats are a management view, not part of the gate flow.
				{Method: http.MethodGet, Path: "/stats", Handler: h.Stats.BranchStats, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}},
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

package components

import (
	"gateops/internal/handler"
	"gateops/internal/handler/api"
	"gateops/internal/handler/middleware"
	"gateops/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewRequestHandler,
		api.NewVisitHandler,
		api.NewBayHandler,
		api.NewClientHandler,
		api.NewStatsHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	request *api.RequestHandler,
	visit *api.VisitHandler,
	bay *api.BayHandler,
	client *api.ClientHandler,
	stats *api.StatsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Request: request,
		Visit:   visit,
		Bay:     bay,
		Client:  client,
		Stats:   stats,
	}
}

package components

import (
	"autopneu-api/internal/handler"
	"autopneu-api/internal/handler/api"
	"autopneu-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSiteHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		middleware.NewAdminAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

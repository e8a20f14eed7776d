package components

import (
	"freebusy/internal/handler"
	"freebusy/internal/handler/api"
	"freebusy/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCalendarHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

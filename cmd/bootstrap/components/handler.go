package components

import (
	"dealdesk/internal/handler"
	"dealdesk/internal/handler/api"
	"dealdesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDraftHandler,
		api.NewDealHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

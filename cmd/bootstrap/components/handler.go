package components

import (
	"receipt-points/internal/handler"
	"receipt-points/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReceiptHandler,
	),
	fx.Invoke(handler.NewRouter),
)

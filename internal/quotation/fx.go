package quotation

import (
	"github.com/shutoken-mobility/ryokin/internal/quotation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quotation.service",
	fx.Provide(service.NewService),
)

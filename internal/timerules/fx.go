package timerules

import (
	"github.com/shutoken-mobility/ryokin/internal/timerules/repository"
	"github.com/shutoken-mobility/ryokin/internal/timerules/service"
	"go.uber.org/fx"
)

var Module = fx.Module("timerules.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)

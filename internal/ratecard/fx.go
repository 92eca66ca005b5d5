package ratecard

import (
	"github.com/shutoken-mobility/ryokin/internal/ratecard/repository"
	"github.com/shutoken-mobility/ryokin/internal/ratecard/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ratecard.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)

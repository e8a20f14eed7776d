package components

import (
	"freebusy/internal/pkg/clock"
	"freebusy/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAvailabilityUseCase,
		usecase.NewCalendarUseCase,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)

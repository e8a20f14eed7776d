package components

import (
	"freebusy/internal/infra/repository"
	"freebusy/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCalendarRepository,
			fx.As(new(usecase.CalendarRepository)),
		),
		fx.Annotate(
			repository.NewScheduleRepository,
			fx.As(new(usecase.ScheduleRepository)),
		),
	),
)

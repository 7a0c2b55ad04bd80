package components

import (
	"time"

	"deskbook/internal/pkg/clock"
	"deskbook/internal/pkg/config"
	"deskbook/internal/usecase"
	"deskbook/internal/usecase/commands"
	"deskbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewDeskCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewDeskQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingPolicy(cfg config.Config) (commands.BookingPolicy, error) {
	loc, err := time.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		return commands.BookingPolicy{}, err
	}
	return commands.BookingPolicy{
		HorizonWeeks: cfg.Booking.HorizonWeeks,
		Location:     loc,
	}, nil
}

package components

import (
	"deskbook/internal/infra/readstore"
	"deskbook/internal/infra/repository"
	"deskbook/internal/usecase/commands"
	"deskbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewOccurrenceRepository,
			fx.As(new(commands.OccurrenceRepository)),
		),
		fx.Annotate(
			repository.NewDeskRepository,
			fx.As(new(commands.DeskRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read-side stores for both command-side lookups and query views
		fx.Annotate(
			readstore.NewOccurrenceReadStore,
			fx.As(new(commands.OccurrenceReads)),
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewDeskReadStore,
			fx.As(new(queries.DeskReadStore)),
		),
	),
)

package components

import (
	"dealdesk/internal/pkg/clock"
	"dealdesk/internal/pkg/config"
	"dealdesk/internal/usecase"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"

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
	func(cfg config.Config) config.DealConfig { return cfg.Deal },
	func(cfg config.Config) config.AuthConfig { return cfg.Auth },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewDraftCommands,
		commands.NewOwnerCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDraftQueries,
		queries.NewDealQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

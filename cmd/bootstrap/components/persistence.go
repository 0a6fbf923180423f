package components

import (
	"dealdesk/internal/domain/owner"
	"dealdesk/internal/infra/dealrepo"
	"dealdesk/internal/infra/draftstore"
	"dealdesk/internal/infra/ownerdir"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Draft sessions (in-memory)
		fx.Annotate(
			draftstore.NewStore,
			fx.As(new(commands.DraftStore)),
			fx.As(new(queries.DraftStore)),
		),
		// Accepted deals (postgres)
		fx.Annotate(
			dealrepo.NewRepository,
			fx.As(new(commands.DealRepository)),
			fx.As(new(queries.DealReadStore)),
		),
		// Owner directory (postgres)
		fx.Annotate(
			ownerdir.NewPostgresDirectory,
			fx.As(new(owner.Directory)),
		),
	),
)

package components

import (
	"catalog-sync/internal/infra/readstore"
	"catalog-sync/internal/infra/repository"
	"catalog-sync/internal/infra/uow"
	"catalog-sync/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(shared.SettingsReader)),
		),
	),
)

// Repositories bound to the pool run in autocommit. Multi-statement writes go
// through the UnitOfWork, which rebinds them to its transaction.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewQueueRepository,
			fx.As(new(shared.QueueRepository)),
		),
		fx.Annotate(
			repository.NewSnapshotRepository,
			fx.As(new(shared.SnapshotRepository)),
		),
		fx.Annotate(
			repository.NewIdentityRepository,
			fx.As(new(shared.IdentityRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}

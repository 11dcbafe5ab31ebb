package components

import (
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories are built per transaction by the unit of work, so only the
// query set and the UoW itself are provided here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

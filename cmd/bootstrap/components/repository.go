package components

import (
	"autopneu-api/internal/infra/docstore"
	"autopneu-api/internal/infra/repository"
	"autopneu-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewDocStoreIface,
			fx.As(new(repository.DocStore)),
		),
		fx.Annotate(
			repository.NewConfigRepository,
			fx.As(new(usecase.ConfigRepository)),
		),
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(usecase.ServiceRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			NewDocStoreIface,
			fx.As(new(usecase.StoreResetter)),
		),
	),
)

func NewDocStoreIface(store *docstore.Store) *docstore.Store {
	return store
}

package components

import (
	"autopneu-api/internal/infra/ai"
	"autopneu-api/internal/infra/emailjs"
	"autopneu-api/internal/pkg/clock"
	"autopneu-api/internal/pkg/config"
	"autopneu-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			emailjs.NewDispatcher,
			fx.As(new(usecase.Notifier)),
		),
		fx.Annotate(
			NewTextGenerator,
			fx.As(new(usecase.TextGenerator)),
		),
		usecase.NewBookingUseCase,
		usecase.NewAdminUseCase,
		usecase.NewSiteUseCase,
	),
)

func NewTextGenerator(cfg config.Config) (*ai.Generator, error) {
	return ai.NewGenerator(cfg.AI)
}

package usecase

import (
	"context"

	"autopneu-api/internal/domain/catalog"
	"autopneu-api/internal/domain/site"
	"autopneu-api/internal/pkg/errs"
)

// SiteUseCase serves the public, read-only view of the site documents.
type SiteUseCase interface {
	GetConfig(ctx context.Context) (site.Config, error)
	ListServices(ctx context.Context) ([]catalog.Service, error)
}

type siteUseCaseImpl struct {
	configRepo  ConfigRepository
	serviceRepo ServiceRepository
}

func NewSiteUseCase(configRepo ConfigRepository, serviceRepo ServiceRepository) SiteUseCase {
	return &siteUseCaseImpl{
		configRepo:  configRepo,
		serviceRepo: serviceRepo,
	}
}

func (u *siteUseCaseImpl) GetConfig(ctx context.Context) (site.Config, error) {
	cfg, err := u.configRepo.Load(ctx)
	if err != nil {
		return site.Config{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return cfg, nil
}

func (u *siteUseCaseImpl) ListServices(ctx context.Context) ([]catalog.Service, error) {
	services, err := u.serviceRepo.Load(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return services, nil
}

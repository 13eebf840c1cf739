package usecase

import (
	"context"
	"errors"
	"log/slog"

	"autopneu-api/internal/domain/catalog"
	"autopneu-api/internal/domain/site"
	"autopneu-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAuthMismatch      = errors.New("admin password mismatch")
	ErrResetNotConfirmed = errors.New("factory reset not confirmed")
	ErrGeneratorDisabled = errors.New("text generator not configured")
	ErrInvalidCatalog    = errors.New("invalid service catalog")
)

// StoreResetter wipes every persisted document (factory reset).
type StoreResetter interface {
	Reset(ctx context.Context) error
}

// TextGenerator is the admin panel's AI copy helper.
type TextGenerator interface {
	Enabled() bool
	ServiceDescription(ctx context.Context, serviceName string) (string, error)
	SeoText(ctx context.Context, topic string) (string, error)
}

type AdminUseCase interface {
	VerifyPassword(ctx context.Context, password string) error
	GetConfig(ctx context.Context) (site.Config, error)
	UpdateConfig(ctx context.Context, cfg site.Config) error
	ReplaceServices(ctx context.Context, services []catalog.Service) ([]catalog.Service, error)
	FactoryReset(ctx context.Context, confirm bool) error
	GenerateServiceDescription(ctx context.Context, serviceName string) (string, error)
	GenerateSeoText(ctx context.Context, topic string) (string, error)
}

type adminUseCaseImpl struct {
	configRepo  ConfigRepository
	serviceRepo ServiceRepository
	resetter    StoreResetter
	generator   TextGenerator
}

func NewAdminUseCase(
	configRepo ConfigRepository,
	serviceRepo ServiceRepository,
	resetter StoreResetter,
	generator TextGenerator,
) AdminUseCase {
	return &adminUseCaseImpl{
		configRepo:  configRepo,
		serviceRepo: serviceRepo,
		resetter:    resetter,
		generator:   generator,
	}
}

// VerifyPassword compares the given password against the stored one (or the
// well-known default). Plain string comparison, by product decision: this
// gates a UI, it is not an authentication boundary. No lockout, no rate
// limit.
func (u *adminUseCaseImpl) VerifyPassword(ctx context.Context, password string) error {
	cfg, err := u.configRepo.Load(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if password != cfg.EffectiveAdminPassword() {
		return ErrAuthMismatch
	}
	return nil
}

func (u *adminUseCaseImpl) GetConfig(ctx context.Context) (site.Config, error) {
	cfg, err := u.configRepo.Load(ctx)
	if err != nil {
		return site.Config{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return cfg, nil
}

// UpdateConfig commits the operator's working copy wholesale. The booking
// list is deliberately not part of this commit; booking mutations persist
// immediately (see BookingUseCase).
func (u *adminUseCaseImpl) UpdateConfig(ctx context.Context, cfg site.Config) error {
	if err := u.configRepo.Save(ctx, cfg); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// ReplaceServices commits the catalog working copy, assigning IDs to newly
// created entries.
func (u *adminUseCaseImpl) ReplaceServices(ctx context.Context, services []catalog.Service) ([]catalog.Service, error) {
	for i := range services {
		if services[i].ID == "" {
			services[i].ID = uuid.NewString()
		}
		if !services[i].Category.IsValid() {
			return nil, ErrInvalidCatalog
		}
	}
	if err := u.serviceRepo.Save(ctx, services); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return services, nil
}

// FactoryReset wipes all three documents. Destructive and irreversible, so
// it refuses to run without an explicit confirmation from the operator.
func (u *adminUseCaseImpl) FactoryReset(ctx context.Context, confirm bool) error {
	if !confirm {
		return ErrResetNotConfirmed
	}
	if err := u.resetter.Reset(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	slog.Warn("factory reset executed, all documents wiped")
	return nil
}

func (u *adminUseCaseImpl) GenerateServiceDescription(ctx context.Context, serviceName string) (string, error) {
	if !u.generator.Enabled() {
		return "", ErrGeneratorDisabled
	}
	return u.generator.ServiceDescription(ctx, serviceName)
}

func (u *adminUseCaseImpl) GenerateSeoText(ctx context.Context, topic string) (string, error) {
	if !u.generator.Enabled() {
		return "", ErrGeneratorDisabled
	}
	return u.generator.SeoText(ctx, topic)
}

//go:build unit

package api_test

import (
	"context"

	"autopneu-api/internal/domain/booking"
	"autopneu-api/internal/domain/catalog"
	"autopneu-api/internal/domain/site"
	"autopneu-api/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) SubmitBooking(ctx context.Context, params usecase.SubmitBookingParams) (*booking.Booking, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListBookings(ctx context.Context) ([]*booking.Booking, int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*booking.Booking), args.Int(1), args.Error(2)
}

func (m *MockBookingUseCase) SetStatus(ctx context.Context, id string, status booking.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingUseCase) UpdateFields(ctx context.Context, id string, p booking.Patch) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) VerifyPassword(ctx context.Context, password string) error {
	args := m.Called(ctx, password)
	return args.Error(0)
}

func (m *MockAdminUseCase) GetConfig(ctx context.Context) (site.Config, error) {
	args := m.Called(ctx)
	return args.Get(0).(site.Config), args.Error(1)
}

func (m *MockAdminUseCase) UpdateConfig(ctx context.Context, cfg site.Config) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockAdminUseCase) ReplaceServices(ctx context.Context, services []catalog.Service) ([]catalog.Service, error) {
	args := m.Called(ctx, services)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Service), args.Error(1)
}

func (m *MockAdminUseCase) FactoryReset(ctx context.Context, confirm bool) error {
	args := m.Called(ctx, confirm)
	return args.Error(0)
}

func (m *MockAdminUseCase) GenerateServiceDescription(ctx context.Context, serviceName string) (string, error) {
	args := m.Called(ctx, serviceName)
	return args.String(0), args.Error(1)
}

func (m *MockAdminUseCase) GenerateSeoText(ctx context.Context, topic string) (string, error) {
	args := m.Called(ctx, topic)
	return args.String(0), args.Error(1)
}

type MockSiteUseCase struct {
	mock.Mock
}

func (m *MockSiteUseCase) GetConfig(ctx context.Context) (site.Config, error) {
	args := m.Called(ctx)
	return args.Get(0).(site.Config), args.Error(1)
}

func (m *MockSiteUseCase) ListServices(ctx context.Context) ([]catalog.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Service), args.Error(1)
}

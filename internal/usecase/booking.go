package usecase

import (
	"context"
	"errors"
	"log/slog"

	"autopneu-api/internal/domain/booking"
	"autopneu-api/internal/domain/catalog"
	"autopneu-api/internal/domain/schedule"
	"autopneu-api/internal/domain/site"
	"autopneu-api/internal/pkg/clock"
	"autopneu-api/internal/pkg/errs"
)

var (
	ErrMissingFields = errors.New("missing required booking fields")
	ErrDayClosed     = errors.New("selected day is closed")
	ErrInvalidStatus = errors.New("invalid booking status")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type ConfigRepository interface {
	Load(ctx context.Context) (site.Config, error)
	Save(ctx context.Context, cfg site.Config) error
}

type ServiceRepository interface {
	Load(ctx context.Context) ([]catalog.Service, error)
	Save(ctx context.Context, services []catalog.Service) error
}

type BookingRepository interface {
	Load(ctx context.Context) ([]*booking.Booking, error)
	Save(ctx context.Context, bookings []*booking.Booking) error
}

// Notifier is the outbound email relay. Implementations must be safe to
// call from a detached goroutine and must swallow their own failures.
type Notifier interface {
	Notify(ctx context.Context, b *booking.Booking, services []catalog.Service, cfg site.Config)
}

type SubmitBookingParams struct {
	CustomerName string
	Email        string
	Phone        string
	ServiceID    string
	Date         string
	Time         string
	Note         string
}

type BookingUseCase interface {
	SubmitBooking(ctx context.Context, params SubmitBookingParams) (*booking.Booking, error)
	ListBookings(ctx context.Context) ([]*booking.Booking, int, error)
	SetStatus(ctx context.Context, id string, status booking.Status) error
	UpdateFields(ctx context.Context, id string, p booking.Patch) error
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	configRepo  ConfigRepository
	notifier    Notifier
	clock       clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	configRepo ConfigRepository,
	notifier Notifier,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		configRepo:  configRepo,
		notifier:    notifier,
		clock:       clock,
	}
}

// SubmitBooking validates and appends a new booking. Validation order is
// fixed: required fields first, then day availability; the first failure
// wins and nothing is persisted. On success the booking is prepended
// (newest-first), saved, and handed to the notifier without waiting.
// Intake succeeds the moment the list is persisted, independent of
// notification outcome.
func (u *bookingUseCaseImpl) SubmitBooking(ctx context.Context, params SubmitBookingParams) (*booking.Booking, error) {
	cfg, err := u.configRepo.Load(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	services, err := u.serviceRepo.Load(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// The form may have mounted against an empty catalog; fall back to the
	// first available service.
	serviceID := params.ServiceID
	if serviceID == "" && len(services) > 0 {
		serviceID = services[0].ID
	}

	timeSlot := params.Time
	if timeSlot == "" {
		timeSlot = schedule.DefaultSlot(cfg.CustomTimeSlots)
	}

	b, err := booking.NewBooking(
		u.clock.Now(),
		params.CustomerName, params.Email, params.Phone,
		serviceID, params.Date, timeSlot, params.Note,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrMissingFields)
	}

	if !schedule.IsDateBookable(b.Date(), cfg.AvailableDays) {
		return nil, ErrDayClosed
	}

	bookings, err := u.bookingRepo.Load(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	bookings = append([]*booking.Booking{b}, bookings...)
	if err := u.bookingRepo.Save(ctx, bookings); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Fire-and-forget: the dispatch outlives the request and its result is
	// observed only in logs.
	go u.notifier.Notify(context.WithoutCancel(ctx), b, services, cfg)

	slog.Info("booking created", "booking_id", b.ID(), "date", b.Date(), "time", b.Time())
	return b, nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context) ([]*booking.Booking, int, error) {
	bookings, err := u.bookingRepo.Load(ctx)
	if err != nil {
		return nil, 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	pending := 0
	for _, b := range bookings {
		if b.IsPending() {
			pending++
		}
	}
	return bookings, pending, nil
}

// SetStatus replaces the status of the matching booking and persists the
// list immediately. Unknown IDs are a no-op, not an error, and transitions
// are unrestricted (operator override model, not a state machine).
func (u *bookingUseCaseImpl) SetStatus(ctx context.Context, id string, status booking.Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	bookings, err := u.bookingRepo.Load(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	for _, b := range bookings {
		if b.ID() == id {
			if err := b.SetStatus(status); err != nil {
				return ErrInvalidStatus
			}
			if err := u.bookingRepo.Save(ctx, bookings); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			slog.Info("booking status changed", "booking_id", id, "status", status.String())
			return nil
		}
	}
	return nil
}

// UpdateFields merges the given fields into the matching booking. Same
// immediate-persist, no-op-on-unknown-ID semantics as SetStatus.
func (u *bookingUseCaseImpl) UpdateFields(ctx context.Context, id string, p booking.Patch) error {
	bookings, err := u.bookingRepo.Load(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	for _, b := range bookings {
		if b.ID() == id {
			b.Apply(p)
			if err := u.bookingRepo.Save(ctx, bookings); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			return nil
		}
	}
	return nil
}

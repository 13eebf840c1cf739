package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"autopneu-api/internal/domain/booking"
	"autopneu-api/internal/infra"
	"autopneu-api/internal/infra/converter"
	"autopneu-api/internal/infra/docstore"
)

type BookingRepository struct {
	store DocStore
}

func NewBookingRepository(store DocStore) *BookingRepository {
	return &BookingRepository{store: store}
}

// Load returns the persisted booking list, newest-first. An absent or
// unreadable document yields the empty list.
func (r *BookingRepository) Load(ctx context.Context) ([]*booking.Booking, error) {
	raw, err := r.store.Load(ctx, docstore.KeyBookings)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return []*booking.Booking{}, nil
		}
		return nil, err
	}

	var docs []converter.BookingDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		slog.Warn("booking list document unreadable, using empty list", "key", docstore.KeyBookings, "error", err.Error())
		return []*booking.Booking{}, nil
	}
	return converter.BookingsFromDocs(docs), nil
}

// Save replaces the whole booking list document. The list is small by
// design; write amplification is accepted in exchange for the single-writer
// document model.
func (r *BookingRepository) Save(ctx context.Context, bookings []*booking.Booking) error {
	raw, err := json.Marshal(converter.BookingsToDocs(bookings))
	if err != nil {
		return infra.WrapRepoErr("failed to marshal booking list", err, infra.KindUnmarshalFailed)
	}
	return r.store.Save(ctx, docstore.KeyBookings, raw)
}

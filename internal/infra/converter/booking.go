package converter

import "autopneu-api/internal/domain/booking"

// BookingDoc is the stored shape of a booking inside the bookings document.
// Field names match the persisted JSON and must stay stable within a storage
// key version.
type BookingDoc struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ServiceID    string `json:"serviceId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	Note         string `json:"note,omitempty"`
}

func BookingToDoc(b *booking.Booking) BookingDoc {
	return BookingDoc{
		ID:           b.ID(),
		CustomerName: b.CustomerName(),
		Email:        b.Email(),
		Phone:        b.Phone(),
		ServiceID:    b.ServiceID(),
		Date:         b.Date(),
		Time:         b.Time(),
		Status:       b.Status().String(),
		Note:         b.Note(),
	}
}

func BookingFromDoc(d BookingDoc) *booking.Booking {
	return booking.ReconstructBooking(
		d.ID, d.CustomerName, d.Email, d.Phone, d.ServiceID,
		d.Date, d.Time, booking.Status(d.Status), d.Note,
	)
}

func BookingsToDocs(bs []*booking.Booking) []BookingDoc {
	docs := make([]BookingDoc, len(bs))
	for i, b := range bs {
		docs[i] = BookingToDoc(b)
	}
	return docs
}

func BookingsFromDocs(docs []BookingDoc) []*booking.Booking {
	bs := make([]*booking.Booking, len(docs))
	for i, d := range docs {
		bs[i] = BookingFromDoc(d)
	}
	return bs
}

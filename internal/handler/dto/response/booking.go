package response

import "autopneu-api/internal/domain/booking"

type BookingResponse struct {
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

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
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

// BookingListResponse is the operator's view: the full list newest-first
// plus the pending count shown as the badge on the admin trigger.
type BookingListResponse struct {
	Bookings     []*BookingResponse `json:"bookings"`
	PendingCount int                `json:"pendingCount"`
}

func FromBookingList(bs []*booking.Booking, pendingCount int) *BookingListResponse {
	out := make([]*BookingResponse, len(bs))
	for i, b := range bs {
		out[i] = FromBooking(b)
	}
	return &BookingListResponse{
		Bookings:     out,
		PendingCount: pendingCount,
	}
}

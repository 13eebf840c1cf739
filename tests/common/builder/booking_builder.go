//go:build unit || e2e

package builder

import (
	"time"

	dombooking "autopneu-api/internal/domain/booking"
	reqdto "autopneu-api/internal/handler/dto/request"
	"autopneu-api/internal/usecase"
)

type BookingBuilder struct {
	Now          time.Time
	CustomerName string
	Email        string
	Phone        string
	ServiceID    string
	Date         string
	Time         string
	Note         string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Now:          time.Date(2024, 6, 3, 10, 30, 0, 0, time.UTC), // Monday
		CustomerName: "Jan Novák",
		Email:        "jan.novak@example.com",
		Phone:        "+420 777 123 456",
		ServiceID:    "1",
		Date:         "2024-06-10", // Monday
		Time:         "09:00",
		Note:         "Zimní pneumatiky jsou v kufru",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.Now, b.CustomerName, b.Email, b.Phone, b.ServiceID, b.Date, b.Time, b.Note)
}

func (b *BookingBuilder) BuildParams() usecase.SubmitBookingParams {
	return usecase.SubmitBookingParams{
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		ServiceID:    b.ServiceID,
		Date:         b.Date,
		Time:         b.Time,
		Note:         b.Note,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		ServiceID:    b.ServiceID,
		Date:         b.Date,
		Time:         b.Time,
		Note:         b.Note,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.Phone = phone
	return b
}

func (b *BookingBuilder) WithServiceID(serviceID string) *BookingBuilder {
	b.ServiceID = serviceID
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTime(timeSlot string) *BookingBuilder {
	b.Time = timeSlot
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.Note = note
	return b
}

package booking

import (
	"errors"
	"strconv"
	"time"

	"autopneu-api/internal/pkg/patch"
)

var (
	ErrMissingFields = errors.New("missing required booking fields")
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Booking is a customer-submitted reservation request. It references a
// catalog service by ID only; the reference is not enforced and readers must
// tolerate a dangling serviceID.
type Booking struct {
	id           string
	customerName string
	email        string
	phone        string
	serviceID    string
	date         string
	timeSlot     string
	status       Status
	note         string
}

// NewBooking constructs a pending booking from submitted fields. Name, phone,
// date and serviceID are required; email and note are not. Field values are
// copied verbatim, without trimming or normalization. The ID is derived from
// the creation timestamp (millisecond precision).
func NewBooking(now time.Time, customerName, email, phone, serviceID, date, timeSlot, note string) (*Booking, error) {
	if date == "" || serviceID == "" || customerName == "" || phone == "" {
		return nil, ErrMissingFields
	}

	return &Booking{
		id:           strconv.FormatInt(now.UnixMilli(), 10),
		customerName: customerName,
		email:        email,
		phone:        phone,
		serviceID:    serviceID,
		date:         date,
		timeSlot:     timeSlot,
		status:       StatusPending,
		note:         note,
	}, nil
}

func ReconstructBooking(id, customerName, email, phone, serviceID, date, timeSlot string, status Status, note string) *Booking {
	return &Booking{
		id:           id,
		customerName: customerName,
		email:        email,
		phone:        phone,
		serviceID:    serviceID,
		date:         date,
		timeSlot:     timeSlot,
		status:       status,
		note:         note,
	}
}

// SetStatus replaces the status. Transitions are intentionally unrestricted:
// an operator may move a booking between any two statuses, including
// reopening a cancelled one.
func (b *Booking) SetStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	b.status = s
	return nil
}

// Patch carries an operator's partial edit; nil fields are left untouched.
type Patch struct {
	CustomerName *string
	Email        *string
	Phone        *string
	ServiceID    *string
	Date         *string
	Time         *string
	Note         *string
}

func (b *Booking) Apply(p Patch) {
	b.customerName = patch.Coalesce(p.CustomerName, b.customerName)
	b.email = patch.Coalesce(p.Email, b.email)
	b.phone = patch.Coalesce(p.Phone, b.phone)
	b.serviceID = patch.Coalesce(p.ServiceID, b.serviceID)
	b.date = patch.Coalesce(p.Date, b.date)
	b.timeSlot = patch.Coalesce(p.Time, b.timeSlot)
	b.note = patch.Coalesce(p.Note, b.note)
}

func (b *Booking) IsPending() bool {
	return b.status == StatusPending
}

func (b *Booking) ID() string           { return b.id }
func (b *Booking) CustomerName() string { return b.customerName }
func (b *Booking) Email() string        { return b.email }
func (b *Booking) Phone() string        { return b.phone }
func (b *Booking) ServiceID() string    { return b.serviceID }
func (b *Booking) Date() string         { return b.date }
func (b *Booking) Time() string         { return b.timeSlot }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Note() string         { return b.note }

package request

import "autopneu-api/internal/usecase"

// CreateBookingRequest carries the public booking form. Required-field
// enforcement deliberately lives in the usecase (first-failure-wins order),
// not in binding tags, so the error taxonomy stays in one place.
type CreateBookingRequest struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ServiceID    string `json:"serviceId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Note         string `json:"note"`
}

func (r CreateBookingRequest) ToParams() usecase.SubmitBookingParams {
	return usecase.SubmitBookingParams{
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Phone:        r.Phone,
		ServiceID:    r.ServiceID,
		Date:         r.Date,
		Time:         r.Time,
		Note:         r.Note,
	}
}

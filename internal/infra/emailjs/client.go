package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"autopneu-api/internal/domain/booking"
	"autopneu-api/internal/domain/catalog"
	"autopneu-api/internal/domain/site"

	"github.com/google/uuid"
)

const defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

const unknownServiceName = "Neznámá služba"
const emptyNotePlaceholder = "Bez poznámky"

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerPhone  string `json:"customer_phone"`
	ServiceName    string `json:"service_name"`
	BookingDate    string `json:"booking_date"`
	BookingTime    string `json:"booking_time"`
	BookingNote    string `json:"booking_note"`
	RecipientEmail string `json:"recipient_email"`
}

// Dispatcher forwards a freshly created booking to the EmailJS relay.
// Delivery is best-effort: one attempt, no retry, every failure is logged
// and swallowed. Callers never wait on the outcome; the booking is valid
// whether or not the mail goes out.
type Dispatcher struct {
	client   *http.Client
	endpoint string
}

func NewDispatcher() *Dispatcher {
	// No client timeout on purpose: delivery runs detached from the request
	// and relies on transport defaults.
	return &Dispatcher{
		client:   &http.Client{},
		endpoint: defaultEndpoint,
	}
}

// NewDispatcherWithEndpoint is for tests pointing at a local relay stub.
func NewDispatcherWithEndpoint(client *http.Client, endpoint string) *Dispatcher {
	return &Dispatcher{client: client, endpoint: endpoint}
}

// Notify performs at most one delivery attempt for b. It is a no-op unless
// notifications are enabled and a public key is configured.
func (d *Dispatcher) Notify(ctx context.Context, b *booking.Booking, services []catalog.Service, cfg site.Config) {
	if !cfg.EmailNotificationsEnabled || cfg.EmailJSPublicKey == "" {
		return
	}

	dispatchID := uuid.NewString()

	serviceName := unknownServiceName
	if svc, ok := catalog.FindByID(services, b.ServiceID()); ok {
		serviceName = svc.Name
	}

	note := b.Note()
	if note == "" {
		note = emptyNotePlaceholder
	}

	payload := sendRequest{
		ServiceID:  cfg.EmailJSServiceID,
		TemplateID: cfg.EmailJSTemplateID,
		UserID:     cfg.EmailJSPublicKey,
		TemplateParams: templateParams{
			CustomerName:   b.CustomerName(),
			CustomerEmail:  b.Email(),
			CustomerPhone:  b.Phone(),
			ServiceName:    serviceName,
			BookingDate:    b.Date(),
			BookingTime:    b.Time(),
			BookingNote:    note,
			RecipientEmail: cfg.NotificationRecipient(),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to build email notification payload", "dispatch_id", dispatchID, "booking_id", b.ID(), "error", err.Error())
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Error("failed to build email notification request", "dispatch_id", dispatchID, "booking_id", b.ID(), "error", err.Error())
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		slog.Error("email notification delivery failed", "dispatch_id", dispatchID, "booking_id", b.ID(), "error", err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		slog.Error("email relay rejected notification",
			"dispatch_id", dispatchID,
			"booking_id", b.ID(),
			"status", resp.StatusCode,
			"response", string(respBody))
		return
	}

	slog.Info("email notification delivered", "dispatch_id", dispatchID, "booking_id", b.ID())
}

//go:build unit

package emailjs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autopneu-api/internal/domain/catalog"
	"autopneu-api/internal/domain/site"
	"autopneu-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relayConfig() site.Config {
	return site.Config{
		ContactEmail:              "info@autopneu-pro.cz",
		EmailNotificationsEnabled: true,
		EmailJSServiceID:          "service_x1",
		EmailJSTemplateID:         "template_y2",
		EmailJSPublicKey:          "public_z3",
	}
}

func relayCatalog() []catalog.Service {
	return []catalog.Service{
		{ID: "1", Name: "Kompletní přezutí kol", Category: catalog.CategoryTire},
	}
}

func TestNotify(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers full payload", func(t *testing.T) {
		var got sendRequest
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		d := NewDispatcherWithEndpoint(server.Client(), server.URL)
		d.Notify(ctx, b, relayCatalog(), relayConfig())

		require.Equal(t, 1, requests)
		assert.Equal(t, "service_x1", got.ServiceID)
		assert.Equal(t, "template_y2", got.TemplateID)
		assert.Equal(t, "public_z3", got.UserID)
		assert.Equal(t, "Jan Novák", got.TemplateParams.CustomerName)
		assert.Equal(t, "jan.novak@example.com", got.TemplateParams.CustomerEmail)
		assert.Equal(t, "+420 777 123 456", got.TemplateParams.CustomerPhone)
		assert.Equal(t, "Kompletní přezutí kol", got.TemplateParams.ServiceName)
		assert.Equal(t, "2024-06-10", got.TemplateParams.BookingDate)
		assert.Equal(t, "09:00", got.TemplateParams.BookingTime)
		assert.Equal(t, "Zimní pneumatiky jsou v kufru", got.TemplateParams.BookingNote)
		assert.Equal(t, "info@autopneu-pro.cz", got.TemplateParams.RecipientEmail)
	})

	t.Run("no request when notifications disabled", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests++
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		cfg := relayConfig()
		cfg.EmailNotificationsEnabled = false

		NewDispatcherWithEndpoint(server.Client(), server.URL).Notify(ctx, b, relayCatalog(), cfg)
		assert.Equal(t, 0, requests)
	})

	t.Run("no request without public key", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests++
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		cfg := relayConfig()
		cfg.EmailJSPublicKey = ""

		NewDispatcherWithEndpoint(server.Client(), server.URL).Notify(ctx, b, relayCatalog(), cfg)
		assert.Equal(t, 0, requests)
	})

	t.Run("dangling service resolves to fallback label", func(t *testing.T) {
		var got sendRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		b, err := builder.NewBookingBuilder().WithServiceID("deleted-service").BuildDomain()
		require.NoError(t, err)

		NewDispatcherWithEndpoint(server.Client(), server.URL).Notify(ctx, b, relayCatalog(), relayConfig())
		assert.Equal(t, "Neznámá služba", got.TemplateParams.ServiceName)
	})

	t.Run("empty note gets placeholder", func(t *testing.T) {
		var got sendRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		b, err := builder.NewBookingBuilder().WithNote("").BuildDomain()
		require.NoError(t, err)

		NewDispatcherWithEndpoint(server.Client(), server.URL).Notify(ctx, b, relayCatalog(), relayConfig())
		assert.Equal(t, "Bez poznámky", got.TemplateParams.BookingNote)
	})

	t.Run("configured recipient overrides contact email", func(t *testing.T) {
		var got sendRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		cfg := relayConfig()
		cfg.RecipientEmail = "objednavky@autopneu-pro.cz"

		NewDispatcherWithEndpoint(server.Client(), server.URL).Notify(ctx, b, relayCatalog(), cfg)
		assert.Equal(t, "objednavky@autopneu-pro.cz", got.TemplateParams.RecipientEmail)
	})

	t.Run("relay rejection is swallowed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		// Must not panic or block; the failure is only logged.
		NewDispatcherWithEndpoint(server.Client(), server.URL).Notify(ctx, b, relayCatalog(), relayConfig())
	})

	t.Run("unreachable relay is swallowed", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		d := NewDispatcherWithEndpoint(&http.Client{}, "http://127.0.0.1:1/unreachable")
		d.Notify(ctx, b, relayCatalog(), relayConfig())
	})
}

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"eventrental-backend/internal/domain"
)

func invoiceFixture() InvoiceDetails {
	return InvoiceDetails{
		BookingID:    42,
		CustomerName: "Ravi",
		Items: []domain.BookingItem{
			{ProductName: "Plastic Chair", Quantity: 2, ItemTotal: 400},
			{ProductName: "Round Table", Quantity: 1, ItemTotal: 1000},
		},
		TotalAmount: 1400,
		BookingDate: "2025-01-10",
		ReturnDate:  "2025-01-12",
	}
}

func TestWhatsAppService_SendInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled reports success without sending", func(t *testing.T) {
		svc := NewWhatsAppService("https://example.invalid", "12345", "token", false)
		assert.True(t, svc.SendInvoice(ctx, "+91 98000-00001", invoiceFixture()))
	})

	t.Run("Posts to the messages endpoint", func(t *testing.T) {
		var got whatsappMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.True(t, strings.HasSuffix(r.URL.Path, "/12345/messages"))
			assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		svc := NewWhatsAppService(server.URL, "12345", "token", true)
		sent := svc.SendInvoice(ctx, "+91 98000-00001", invoiceFixture())
		assert.True(t, sent)
		assert.Equal(t, "whatsapp", got.MessagingProduct)
		assert.Equal(t, "919800000001", got.To)
		assert.Contains(t, got.Text.Body, "Booking ID: 42")
		assert.Contains(t, got.Text.Body, "Plastic Chair x 2")
	})

	t.Run("API rejection reports failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		svc := NewWhatsAppService(server.URL, "12345", "bad-token", true)
		assert.False(t, svc.SendInvoice(ctx, "+919800000001", invoiceFixture()))
	})

	t.Run("Unreachable API reports failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		svc := NewWhatsAppService(server.URL, "12345", "token", true)
		assert.False(t, svc.SendInvoice(ctx, "+919800000001", invoiceFixture()))
	})
}

func TestFormatInvoiceMessage(t *testing.T) {
	body := formatInvoiceMessage(invoiceFixture())
	assert.Contains(t, body, "Hello Ravi!")
	assert.Contains(t, body, "1. Plastic Chair x 2 - ₹400")
	assert.Contains(t, body, "2. Round Table x 1 - ₹1000")
	assert.Contains(t, body, "*Total Amount: ₹1400*")
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "919800000001", digitsOnly("+91 98000-00001"))
	assert.Equal(t, "", digitsOnly("abc"))
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"eventrental-backend/internal/logger"
)

// whatsappService sends booking invoices through the Meta Graph messages
// API. Delivery is best-effort: every failure is logged and folded into the
// returned flag, never surfaced as an error to the booking flow.
type whatsappService struct {
	apiURL      string
	accessToken string
	enabled     bool
	client      *http.Client
}

func NewWhatsAppService(apiBase, phoneNumberID, accessToken string, enabled bool) NotifierService {
	return &whatsappService{
		apiURL:      fmt.Sprintf("%s/%s/messages", strings.TrimRight(apiBase, "/"), phoneNumberID),
		accessToken: accessToken,
		enabled:     enabled,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type whatsappMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsappText `json:"text"`
}

type whatsappText struct {
	Body string `json:"body"`
}

func (s *whatsappService) SendInvoice(ctx context.Context, phone string, details InvoiceDetails) bool {
	message := formatInvoiceMessage(details)

	if !s.enabled {
		logger.Info("WhatsApp disabled, invoice logged only", "booking_id", details.BookingID, "phone", phone)
		return true
	}

	payload := whatsappMessage{
		MessagingProduct: "whatsapp",
		To:               digitsOnly(phone),
		Type:             "text",
		Text:             whatsappText{Body: message},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to encode WhatsApp message", "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		logger.Error("Failed to build WhatsApp request", "error", err)
		return false
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error("WhatsApp send failed", "booking_id", details.BookingID, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("WhatsApp send rejected", "booking_id", details.BookingID, "status", resp.StatusCode)
		return false
	}
	logger.Debug("WhatsApp invoice sent", "booking_id", details.BookingID)
	return true
}

func formatInvoiceMessage(details InvoiceDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Booking Confirmation*\n\n")
	fmt.Fprintf(&b, "Hello %s!\n\n", details.CustomerName)
	fmt.Fprintf(&b, "Booking ID: %d\n", details.BookingID)
	fmt.Fprintf(&b, "Booking Date: %s\n", details.BookingDate)
	fmt.Fprintf(&b, "Return Date: %s\n\n", details.ReturnDate)
	b.WriteString("*Items Rented:*\n")
	for i, item := range details.Items {
		fmt.Fprintf(&b, "%d. %s x %d - ₹%d\n", i+1, item.ProductName, item.Quantity, item.ItemTotal)
	}
	fmt.Fprintf(&b, "\n*Total Amount: ₹%d*\n\n", details.TotalAmount)
	b.WriteString("Thank you for your business!")
	return b.String()
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

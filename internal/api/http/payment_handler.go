package http

import (
	"net/http"

	"eventrental-backend/internal/service"
)

// PaymentHandler serves ledgered payments and manual ledger entries
type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req service.RecordPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	entry, err := h.paymentSvc.RecordPayment(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, entry)
}

func (h *PaymentHandler) AddManualEntry(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req service.ManualEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.CustomerID = customerID
	entry, err := h.paymentSvc.AddManualEntry(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, entry)
}

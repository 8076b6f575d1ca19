package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"eventrental-backend/internal/domain"
	"eventrental-backend/internal/service"
)

// BookingHandler serves the booking endpoints
type BookingHandler struct {
	bookingSvc service.BookingService
	paymentSvc service.PaymentService
}

func NewBookingHandler(bookingSvc service.BookingService, paymentSvc service.PaymentService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc, paymentSvc: paymentSvc}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrorf("invalid id %q", raw)
	}
	return int32(id), nil
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result, err := h.bookingSvc.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, result)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	booking, err := h.bookingSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.bookingSvc.List)
}

func (h *BookingHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.bookingSvc.ListActive)
}

func (h *BookingHandler) ListDueToday(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.bookingSvc.ListDueToday)
}

func (h *BookingHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.bookingSvc.ListOverdue)
}

func (h *BookingHandler) ListReturned(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.bookingSvc.ListReturned)
}

func (h *BookingHandler) ListPendingReturns(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.bookingSvc.ListPendingReturns)
}

func (h *BookingHandler) respondList(w http.ResponseWriter, r *http.Request, list func(ctx context.Context) ([]domain.Booking, error)) {
	bookings, err := list(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	writeSuccess(w, http.StatusOK, bookings)
}

// UpdatePayment handles the raw payment correction path for a booking.
func (h *BookingHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req service.UpdatePaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	booking, err := h.paymentSvc.UpdatePayment(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, booking)
}

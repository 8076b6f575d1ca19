package http

import (
	"net/http"

	"eventrental-backend/internal/service"
)

// ReturnHandler serves full and partial return endpoints
type ReturnHandler struct {
	returnSvc service.ReturnService
}

func NewReturnHandler(returnSvc service.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnSvc: returnSvc}
}

func (h *ReturnHandler) ReturnBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "bookingID")
	if err != nil {
		writeError(w, err)
		return
	}
	booking, err := h.returnSvc.ReturnBooking(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, booking)
}

func (h *ReturnHandler) PartialReturn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "bookingID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req service.PartialReturnRequest
	if !decodeBody(w, r, &req) {
		return
	}
	booking, err := h.returnSvc.PartialReturn(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, booking)
}

func (h *ReturnHandler) RestockItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "bookingID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		Items []service.ReturnedItemRequest `json:"items"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	booking, err := h.returnSvc.RestockItems(r.Context(), id, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, booking)
}

package http

import (
	"net/http"
	"strconv"

	"eventrental-backend/internal/domain"
	"eventrental-backend/internal/service"
)

// CustomerHandler serves customer profiles and their ledger views
type CustomerHandler struct {
	customerSvc service.CustomerService
	ledgerSvc   service.LedgerService
}

func NewCustomerHandler(customerSvc service.CustomerService, ledgerSvc service.LedgerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc, ledgerSvc: ledgerSvc}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if !decodeBody(w, r, &customer) {
		return
	}
	if err := h.customerSvc.Create(r.Context(), &customer); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	detail, err := h.customerSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, detail)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var customer domain.Customer
	if !decodeBody(w, r, &customer) {
		return
	}
	customer.ID = id
	if err := h.customerSvc.Update(r.Context(), &customer); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, customer)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	if query := r.URL.Query().Get("search"); query != "" {
		customers, err := h.customerSvc.Search(r.Context(), query)
		if err != nil {
			writeError(w, err)
			return
		}
		if customers == nil {
			customers = []domain.Customer{}
		}
		writeSuccess(w, http.StatusOK, customers)
		return
	}
	customers, err := h.customerSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeSuccess(w, http.StatusOK, customers)
}

func (h *CustomerHandler) ListFrequent(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerSvc.ListFrequent(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeSuccess(w, http.StatusOK, customers)
}

// ledgerPage is the paged ledger response shape.
type ledgerPage struct {
	Entries  []domain.CustomerTransaction `json:"entries"`
	Total    int32                        `json:"total"`
	Page     int32                        `json:"page"`
	PageSize int32                        `json:"page_size"`
}

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v <= 0 {
		return fallback
	}
	return int32(v)
}

func (h *CustomerHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)
	entries, total, err := h.ledgerSvc.GetCustomerLedger(r.Context(), id, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.CustomerTransaction{}
	}
	writeSuccess(w, http.StatusOK, ledgerPage{Entries: entries, Total: total, Page: page, PageSize: pageSize})
}

func (h *CustomerHandler) GetLedgerSummary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	summary, err := h.ledgerSvc.GetLedgerSummary(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, summary)
}

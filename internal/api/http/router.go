package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"eventrental-backend/internal/service"
)

// Handlers groups the endpoint handlers wired into the router.
type Handlers struct {
	Booking  *BookingHandler
	Return   *ReturnHandler
	Payment  *PaymentHandler
	Product  *ProductHandler
	Customer *CustomerHandler
}

// NewHandlers builds the handler set from the service layer.
func NewHandlers(
	bookingSvc service.BookingService,
	returnSvc service.ReturnService,
	paymentSvc service.PaymentService,
	ledgerSvc service.LedgerService,
	productSvc service.ProductService,
	customerSvc service.CustomerService,
) *Handlers {
	return &Handlers{
		Booking:  NewBookingHandler(bookingSvc, paymentSvc),
		Return:   NewReturnHandler(returnSvc),
		Payment:  NewPaymentHandler(paymentSvc),
		Product:  NewProductHandler(productSvc),
		Customer: NewCustomerHandler(customerSvc, ledgerSvc),
	}
}

// NewRouter registers all API routes.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging)

	api := r.PathPrefix("/api").Subrouter()

	// Products
	api.HandleFunc("/products", h.Product.Create).Methods(http.MethodPost)
	api.HandleFunc("/products", h.Product.List).Methods(http.MethodGet)
	api.HandleFunc("/products/available", h.Product.ListAvailable).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.Product.Get).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.Product.Update).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", h.Product.Delete).Methods(http.MethodDelete)

	// Customers and ledger
	api.HandleFunc("/customers", h.Customer.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers", h.Customer.List).Methods(http.MethodGet)
	api.HandleFunc("/customers/frequent", h.Customer.ListFrequent).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.Customer.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.Customer.Update).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}/ledger", h.Customer.GetLedger).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}/ledger/summary", h.Customer.GetLedgerSummary).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}/transactions/manual", h.Payment.AddManualEntry).Methods(http.MethodPost)

	// Bookings
	api.HandleFunc("/bookings", h.Booking.Create).Methods(http.MethodPost)
	api.HandleFunc("/bookings", h.Booking.List).Methods(http.MethodGet)
	api.HandleFunc("/bookings/active", h.Booking.ListActive).Methods(http.MethodGet)
	api.HandleFunc("/bookings/due-today", h.Booking.ListDueToday).Methods(http.MethodGet)
	api.HandleFunc("/bookings/overdue", h.Booking.ListOverdue).Methods(http.MethodGet)
	api.HandleFunc("/bookings/returned", h.Booking.ListReturned).Methods(http.MethodGet)
	api.HandleFunc("/bookings/pending-returns", h.Booking.ListPendingReturns).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", h.Booking.Get).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/payment", h.Booking.UpdatePayment).Methods(http.MethodPut)

	// Returns
	api.HandleFunc("/returns/{bookingID}", h.Return.ReturnBooking).Methods(http.MethodPost)
	api.HandleFunc("/returns/{bookingID}/partial", h.Return.PartialReturn).Methods(http.MethodPost)
	api.HandleFunc("/returns/{bookingID}/restock", h.Return.RestockItems).Methods(http.MethodPost)

	// Payments
	api.HandleFunc("/payments", h.Payment.RecordPayment).Methods(http.MethodPost)

	return r
}

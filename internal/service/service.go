package service

import (
	"context"

	"eventrental-backend/internal/domain"
)

// CreateBookingRequest carries the booking creation payload. Dates arrive as
// strings (yyyy-mm-dd or RFC 3339) and are validated by the service.
type CreateBookingRequest struct {
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	BookingDate   string               `json:"booking_date"`
	ReturnDate    string               `json:"return_date"`
	Items         []BookingItemRequest `json:"items"`
	Notes         string               `json:"notes"`
}

type BookingItemRequest struct {
	ProductID int32 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

// CreateBookingResult reports the persisted booking plus whether the invoice
// notification went out. Delivery failure is metadata, never an error.
type CreateBookingResult struct {
	Booking      *domain.Booking `json:"booking"`
	WhatsappSent bool            `json:"whatsapp_sent"`
}

// ReturnedItemRequest is one line of a partial return. Quantity is the
// cumulative units handed back for the product in this submission; entries
// with Returned false are ignored.
type ReturnedItemRequest struct {
	ProductID int32 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
	Returned  bool  `json:"returned"`
}

type PartialReturnRequest struct {
	ReturnedItems  []ReturnedItemRequest `json:"returned_items"`
	AmountReceived int64                 `json:"amount_received"`
	Notes          string                `json:"notes"`
}

type RecordPaymentRequest struct {
	CustomerID    int32                `json:"customer_id"`
	Amount        int64                `json:"amount"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	BookingID     *int32               `json:"booking_id"`
	Notes         string               `json:"notes"`
}

type ManualEntryRequest struct {
	CustomerID  int32  `json:"customer_id"`
	Type        string `json:"type"` // "debit" or "credit"
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type UpdatePaymentRequest struct {
	AmountPaid    *int64  `json:"amount_paid"`
	PaymentStatus *string `json:"payment_status"`
}

// CustomerDetail pairs a customer profile with their most recent bookings.
type CustomerDetail struct {
	Customer       *domain.Customer `json:"customer"`
	RecentBookings []domain.Booking `json:"recent_bookings"`
}

type BookingService interface {
	Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error)
	Get(ctx context.Context, id int32) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListActive(ctx context.Context) ([]domain.Booking, error)
	ListDueToday(ctx context.Context) ([]domain.Booking, error)
	ListOverdue(ctx context.Context) ([]domain.Booking, error)
	ListReturned(ctx context.Context) ([]domain.Booking, error)
	ListPendingReturns(ctx context.Context) ([]domain.Booking, error)
}

type ReturnService interface {
	ReturnBooking(ctx context.Context, bookingID int32) (*domain.Booking, error)
	PartialReturn(ctx context.Context, bookingID int32, req PartialReturnRequest) (*domain.Booking, error)
	RestockItems(ctx context.Context, bookingID int32, items []ReturnedItemRequest) (*domain.Booking, error)
}

type PaymentService interface {
	UpdatePayment(ctx context.Context, bookingID int32, req UpdatePaymentRequest) (*domain.Booking, error)
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (*domain.CustomerTransaction, error)
	AddManualEntry(ctx context.Context, req ManualEntryRequest) (*domain.CustomerTransaction, error)
}

type LedgerService interface {
	GetCustomerLedger(ctx context.Context, customerID, page, pageSize int32) ([]domain.CustomerTransaction, int32, error)
	GetLedgerSummary(ctx context.Context, customerID int32) (*domain.LedgerSummary, error)
}

type ProductService interface {
	Create(ctx context.Context, product *domain.Product) error
	Get(ctx context.Context, id int32) (*domain.Product, error)
	Update(ctx context.Context, id int32, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Product, error)
	ListAvailable(ctx context.Context) ([]domain.Product, error)
}

// ProductUpdate carries optional product edits; nil fields are untouched.
type ProductUpdate struct {
	Name          *string `json:"name"`
	TotalQuantity *int32  `json:"total_quantity"`
	PerDayRent    *int64  `json:"per_day_rent"`
	Category      *string `json:"category"`
	Description   *string `json:"description"`
}

type CustomerService interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Get(ctx context.Context, id int32) (*CustomerDetail, error)
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
	Search(ctx context.Context, query string) ([]domain.Customer, error)
	ListFrequent(ctx context.Context) ([]domain.Customer, error)
}

// InvoiceDetails is the payload handed to the notification collaborator.
type InvoiceDetails struct {
	BookingID    int32
	CustomerName string
	Items        []domain.BookingItem
	TotalAmount  int64
	BookingDate  string
	ReturnDate   string
}

// NotifierService is the outbound notification boundary. SendInvoice never
// makes the caller fail; it reports delivery as a boolean.
type NotifierService interface {
	SendInvoice(ctx context.Context, phone string, details InvoiceDetails) bool
}

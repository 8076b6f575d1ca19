package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive   BookingStatus = "active"
	BookingStatusOverdue  BookingStatus = "overdue"
	BookingStatusReturned BookingStatus = "returned"
)

// CanTransitionTo encodes the forward-only lifecycle:
// active -> overdue -> returned, or active -> returned directly.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusActive:
		return next == BookingStatusOverdue || next == BookingStatusReturned
	case BookingStatusOverdue:
		return next == BookingStatusReturned
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusFull    PaymentStatus = "full"
)

// DerivePaymentStatus holds the payment status invariant:
// full iff paid >= total and total > 0, partial iff paid > 0, else pending.
// A zero-total booking has nothing to collect and never reports full.
func DerivePaymentStatus(amountPaid, totalAmount int64) PaymentStatus {
	switch {
	case amountPaid >= totalAmount && totalAmount > 0:
		return PaymentStatusFull
	case amountPaid > 0:
		return PaymentStatusPartial
	default:
		return PaymentStatusPending
	}
}

// BookingItem is a booking line. PerDayRent and ProductName are snapshots
// taken at booking time and do not track later product edits.
type BookingItem struct {
	ID               int32  `json:"id"`
	ProductID        int32  `json:"product_id"`
	ProductName      string `json:"product_name"`
	Quantity         int32  `json:"quantity"`
	ReturnedQuantity int32  `json:"returned_quantity"`
	PendingQuantity  int32  `json:"pending_quantity"`
	PerDayRent       int64  `json:"per_day_rent"`
	TotalDays        int32  `json:"total_days"`
	ItemTotal        int64  `json:"item_total"`
}

// Booking is a rental order. CustomerName and CustomerPhone are point-in-time
// copies of the customer profile.
type Booking struct {
	ID               int32         `json:"id"`
	CustomerID       int32         `json:"customer_id"`
	CustomerName     string        `json:"customer_name"`
	CustomerPhone    string        `json:"customer_phone"`
	BookingDate      time.Time     `json:"booking_date"`
	ReturnDate       time.Time     `json:"return_date"`
	ActualReturnDate *time.Time    `json:"actual_return_date,omitempty"`
	Items            []BookingItem `json:"items"`
	TotalAmount      int64         `json:"total_amount"`
	AmountPaid       int64         `json:"amount_paid"`
	AmountPending    int64         `json:"amount_pending"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	Status           BookingStatus `json:"status"`
	Notes            string        `json:"notes,omitempty"`
	CreatedOn        time.Time     `json:"created_on"`
	UpdatedOn        time.Time     `json:"updated_on"`
}

// ApplyPayment adds amount to AmountPaid and rederives AmountPending
// (clamped at zero) and PaymentStatus.
func (b *Booking) ApplyPayment(amount int64) {
	b.SetAmountPaid(b.AmountPaid + amount)
}

// SetAmountPaid overwrites AmountPaid and rederives the dependent fields.
func (b *Booking) SetAmountPaid(amountPaid int64) {
	b.AmountPaid = amountPaid
	b.AmountPending = b.TotalAmount - b.AmountPaid
	if b.AmountPending < 0 {
		b.AmountPending = 0
	}
	b.PaymentStatus = DerivePaymentStatus(b.AmountPaid, b.TotalAmount)
}

// IsReturned reports whether the booking is closed to further item or
// payment mutation.
func (b *Booking) IsReturned() bool {
	return b.Status == BookingStatusReturned
}

// ItemByProduct returns the line for productID, or nil.
func (b *Booking) ItemByProduct(productID int32) *BookingItem {
	for i := range b.Items {
		if b.Items[i].ProductID == productID {
			return &b.Items[i]
		}
	}
	return nil
}

package domain

import "time"

// Customer is identified externally by phone number; booking creation
// resolves customers with find-or-create-by-phone. Balance is the
// incrementally maintained fold of the customer's transaction log and is
// only ever written inside the same database transaction that appends a
// ledger entry.
type Customer struct {
	ID            int32     `json:"id"`
	Name          string    `json:"name"`
	PhoneNumber   string    `json:"phone_number"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	AadharNumber  string    `json:"aadhar_number,omitempty"`
	TotalBookings int32     `json:"total_bookings"`
	Balance       int64     `json:"balance"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}

package domain

import "time"

// Product is a rental inventory line. AvailableQuantity tracks units not
// currently out on a booking; the store invariant
// 0 <= available_quantity <= total_quantity is enforced by conditional
// updates in the repository, never by read-then-write checks.
type Product struct {
	ID                int32     `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Description       string    `json:"description"`
	TotalQuantity     int32     `json:"total_quantity"`
	AvailableQuantity int32     `json:"available_quantity"`
	PerDayRent        int64     `json:"per_day_rent"`
	CreatedOn         time.Time `json:"created_on"`
	UpdatedOn         time.Time `json:"updated_on"`
}

// Rented reports how many units are currently out.
func (p *Product) Rented() int32 {
	return p.TotalQuantity - p.AvailableQuantity
}

package repository

import (
	"context"
	"time"

	"eventrental-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Product, error)
	ListAvailable(ctx context.Context) ([]domain.Product, error)

	// Reserve atomically decrements available stock, failing with
	// domain.ErrInsufficientStock when fewer than qty units are free.
	Reserve(ctx context.Context, id, qty int32) error
	// Release atomically increments available stock, failing when the
	// increment would exceed total_quantity (over-restock guard).
	Release(ctx context.Context, id, qty int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	IncrementBookings(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Customer, error)
	Search(ctx context.Context, query string) ([]domain.Customer, error)
	ListFrequent(ctx context.Context, limit int32) ([]domain.Customer, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	// Update persists booking-level fields (status, dates, payment totals,
	// notes); items are written through UpdateItems.
	Update(ctx context.Context, booking *domain.Booking) error
	UpdateItems(ctx context.Context, bookingID int32, items []domain.BookingItem) error
	List(ctx context.Context) ([]domain.Booking, error)
	ListByStatus(ctx context.Context, statuses ...domain.BookingStatus) ([]domain.Booking, error)
	ListDueOn(ctx context.Context, day time.Time) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID, limit int32) ([]domain.Booking, error)
	// MarkOverdue flips active bookings whose return date is strictly
	// before day to overdue and reports how many rows changed. Idempotent.
	MarkOverdue(ctx context.Context, day time.Time) (int64, error)
}

type TransactionRepository interface {
	// Append writes one ledger entry and the customer's maintained balance
	// in a single database transaction, locking the customer row so
	// concurrent appends for one customer serialize. It fills in
	// BalanceBefore, BalanceAfter, CustomerName, ID and CreatedOn.
	Append(ctx context.Context, tx *domain.CustomerTransaction) error
	ListByCustomer(ctx context.Context, customerID, page, pageSize int32) ([]domain.CustomerTransaction, int32, error)
	ListRecent(ctx context.Context, customerID, limit int32) ([]domain.CustomerTransaction, error)
	// FoldBalance replays the customer's full log; audit check against the
	// maintained balance.
	FoldBalance(ctx context.Context, customerID int32) (int64, error)
	TotalsByType(ctx context.Context, customerID int32) (map[domain.TransactionType]int64, error)
}

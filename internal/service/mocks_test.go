package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"eventrental-backend/internal/domain"
)

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) Reserve(ctx context.Context, id, qty int32) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}
func (m *MockProductRepo) Release(ctx context.Context, id, qty int32) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) IncrementBookings(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) ListFrequent(ctx context.Context, limit int32) ([]domain.Customer, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) UpdateItems(ctx context.Context, bookingID int32, items []domain.BookingItem) error {
	args := m.Called(ctx, bookingID, items)
	return args.Error(0)
}
func (m *MockBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByStatus(ctx context.Context, statuses ...domain.BookingStatus) ([]domain.Booking, error) {
	callArgs := make([]any, 0, len(statuses)+1)
	callArgs = append(callArgs, ctx)
	for _, s := range statuses {
		callArgs = append(callArgs, s)
	}
	args := m.Called(callArgs...)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListDueOn(ctx context.Context, day time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, day)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByCustomer(ctx context.Context, customerID, limit int32) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID, limit)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) MarkOverdue(ctx context.Context, day time.Time) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Append(ctx context.Context, tx *domain.CustomerTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) ListByCustomer(ctx context.Context, customerID, page, pageSize int32) ([]domain.CustomerTransaction, int32, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	return args.Get(0).([]domain.CustomerTransaction), args.Get(1).(int32), args.Error(2)
}
func (m *MockTransactionRepo) ListRecent(ctx context.Context, customerID, limit int32) ([]domain.CustomerTransaction, error) {
	args := m.Called(ctx, customerID, limit)
	return args.Get(0).([]domain.CustomerTransaction), args.Error(1)
}
func (m *MockTransactionRepo) FoldBalance(ctx context.Context, customerID int32) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTransactionRepo) TotalsByType(ctx context.Context, customerID int32) (map[domain.TransactionType]int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(map[domain.TransactionType]int64), args.Error(1)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendInvoice(ctx context.Context, phone string, details InvoiceDetails) bool {
	args := m.Called(ctx, phone, details)
	return args.Bool(0)
}

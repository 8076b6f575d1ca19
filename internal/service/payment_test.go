package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventrental-backend/internal/domain"
)

func newPaymentFixture() (*MockBookingRepo, *MockCustomerRepo, *MockTransactionRepo, PaymentService) {
	bookingRepo := new(MockBookingRepo)
	customerRepo := new(MockCustomerRepo)
	txRepo := new(MockTransactionRepo)
	svc := NewPaymentService(bookingRepo, customerRepo, txRepo)
	return bookingRepo, customerRepo, txRepo, svc
}

func TestPaymentService_UpdatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Overwrites amount and rederives status", func(t *testing.T) {
		bookingRepo, _, txRepo, svc := newPaymentFixture()

		booking := &domain.Booking{ID: 42, TotalAmount: 1400, PaymentStatus: domain.PaymentStatusPending, AmountPending: 1400}
		bookingRepo.On("GetByID", ctx, int32(42)).Return(booking, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		amount := int64(1400)
		got, err := svc.UpdatePayment(ctx, 42, UpdatePaymentRequest{AmountPaid: &amount})
		assert.NoError(t, err)
		assert.Equal(t, int64(1400), got.AmountPaid)
		assert.Equal(t, int64(0), got.AmountPending)
		assert.Equal(t, domain.PaymentStatusFull, got.PaymentStatus)
		// Correction path never touches the ledger.
		txRepo.AssertNotCalled(t, "Append", ctx, mock.Anything)
	})

	t.Run("Caller status must agree with derivation", func(t *testing.T) {
		bookingRepo, _, _, svc := newPaymentFixture()

		booking := &domain.Booking{ID: 42, TotalAmount: 1400, AmountPaid: 0, AmountPending: 1400, PaymentStatus: domain.PaymentStatusPending}
		bookingRepo.On("GetByID", ctx, int32(42)).Return(booking, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		status := "full"
		got, err := svc.UpdatePayment(ctx, 42, UpdatePaymentRequest{PaymentStatus: &status})
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, got.PaymentStatus)
	})

	t.Run("Nothing to update", func(t *testing.T) {
		_, _, _, svc := newPaymentFixture()
		_, err := svc.UpdatePayment(ctx, 42, UpdatePaymentRequest{})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Negative amount rejected", func(t *testing.T) {
		_, _, _, svc := newPaymentFixture()
		amount := int64(-1)
		_, err := svc.UpdatePayment(ctx, 42, UpdatePaymentRequest{AmountPaid: &amount})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestPaymentService_RecordPayment(t *testing.T) {
	ctx := context.Background()
	customer := &domain.Customer{ID: 7, Name: "Ravi", Balance: 1400}

	t.Run("Standalone payment", func(t *testing.T) {
		bookingRepo, customerRepo, txRepo, svc := newPaymentFixture()

		customerRepo.On("GetByID", ctx, int32(7)).Return(customer, nil)
		txRepo.On("Append", ctx, mock.AnythingOfType("*domain.CustomerTransaction")).Return(nil)

		entry, err := svc.RecordPayment(ctx, RecordPaymentRequest{
			CustomerID:    7,
			Amount:        500,
			PaymentMethod: domain.PaymentMethodUPI,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionTypePayment, entry.Type)
		assert.Equal(t, int64(500), entry.Amount)
		assert.Nil(t, entry.BookingID)
		bookingRepo.AssertNotCalled(t, "GetByID", ctx, mock.Anything)
	})

	t.Run("Booking payment updates the booking", func(t *testing.T) {
		bookingRepo, customerRepo, txRepo, svc := newPaymentFixture()

		booking := &domain.Booking{ID: 42, CustomerID: 7, TotalAmount: 1400, AmountPending: 1400, PaymentStatus: domain.PaymentStatusPending}
		customerRepo.On("GetByID", ctx, int32(7)).Return(customer, nil)
		txRepo.On("Append", ctx, mock.AnythingOfType("*domain.CustomerTransaction")).Return(nil)
		bookingRepo.On("GetByID", ctx, int32(42)).Return(booking, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		bookingID := int32(42)
		entry, err := svc.RecordPayment(ctx, RecordPaymentRequest{
			CustomerID:    7,
			Amount:        900,
			PaymentMethod: domain.PaymentMethodCash,
			BookingID:     &bookingID,
		})
		assert.NoError(t, err)
		assert.Equal(t, int32(42), *entry.BookingID)

		updated := bookingRepo.Calls[1].Arguments.Get(1).(*domain.Booking)
		assert.Equal(t, int64(900), updated.AmountPaid)
		assert.Equal(t, int64(500), updated.AmountPending)
		assert.Equal(t, domain.PaymentStatusPartial, updated.PaymentStatus)
	})

	t.Run("Unknown booking leaves the ledger untouched", func(t *testing.T) {
		bookingRepo, customerRepo, txRepo, svc := newPaymentFixture()

		customerRepo.On("GetByID", ctx, int32(7)).Return(customer, nil)
		bookingRepo.On("GetByID", ctx, int32(999)).Return(nil, domain.NotFoundErrorf("booking 999"))

		bookingID := int32(999)
		_, err := svc.RecordPayment(ctx, RecordPaymentRequest{
			CustomerID:    7,
			Amount:        500,
			PaymentMethod: domain.PaymentMethodCash,
			BookingID:     &bookingID,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		txRepo.AssertNotCalled(t, "Append", ctx, mock.Anything)
		bookingRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	})

	t.Run("Zero amount rejected", func(t *testing.T) {
		_, _, _, svc := newPaymentFixture()
		_, err := svc.RecordPayment(ctx, RecordPaymentRequest{CustomerID: 7, PaymentMethod: domain.PaymentMethodCash})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Missing method rejected", func(t *testing.T) {
		_, _, _, svc := newPaymentFixture()
		_, err := svc.RecordPayment(ctx, RecordPaymentRequest{CustomerID: 7, Amount: 500})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Unsupported method rejected", func(t *testing.T) {
		_, _, _, svc := newPaymentFixture()
		_, err := svc.RecordPayment(ctx, RecordPaymentRequest{CustomerID: 7, Amount: 500, PaymentMethod: "cheque"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Unknown customer", func(t *testing.T) {
		_, customerRepo, _, svc := newPaymentFixture()
		customerRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.NotFoundErrorf("customer 99 not found"))
		_, err := svc.RecordPayment(ctx, RecordPaymentRequest{CustomerID: 99, Amount: 500, PaymentMethod: domain.PaymentMethodCash})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPaymentService_AddManualEntry(t *testing.T) {
	ctx := context.Background()
	customer := &domain.Customer{ID: 7, Name: "Ravi"}

	t.Run("Debit", func(t *testing.T) {
		_, customerRepo, txRepo, svc := newPaymentFixture()

		customerRepo.On("GetByID", ctx, int32(7)).Return(customer, nil)
		txRepo.On("Append", ctx, mock.AnythingOfType("*domain.CustomerTransaction")).Return(nil)

		entry, err := svc.AddManualEntry(ctx, ManualEntryRequest{CustomerID: 7, Type: "debit", Amount: 200, Description: "Damaged chair"})
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionTypeManualDebit, entry.Type)
		assert.Equal(t, "Damaged chair", entry.Notes)
	})

	t.Run("Credit", func(t *testing.T) {
		_, customerRepo, txRepo, svc := newPaymentFixture()

		customerRepo.On("GetByID", ctx, int32(7)).Return(customer, nil)
		txRepo.On("Append", ctx, mock.AnythingOfType("*domain.CustomerTransaction")).Return(nil)

		entry, err := svc.AddManualEntry(ctx, ManualEntryRequest{CustomerID: 7, Type: "credit", Amount: 200, Description: "Goodwill discount"})
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionTypeManualCredit, entry.Type)
	})

	t.Run("Unknown type rejected", func(t *testing.T) {
		_, _, _, svc := newPaymentFixture()
		_, err := svc.AddManualEntry(ctx, ManualEntryRequest{CustomerID: 7, Type: "refund", Amount: 200, Description: "x"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Missing description rejected", func(t *testing.T) {
		_, _, _, svc := newPaymentFixture()
		_, err := svc.AddManualEntry(ctx, ManualEntryRequest{CustomerID: 7, Type: "debit", Amount: 200})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

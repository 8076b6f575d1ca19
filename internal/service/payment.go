package service

import (
	"context"

	"eventrental-backend/internal/domain"
	"eventrental-backend/internal/repository"
)

type paymentService struct {
	bookingRepo  repository.BookingRepository
	customerRepo repository.CustomerRepository
	txRepo       repository.TransactionRepository
}

func NewPaymentService(
	bookingRepo repository.BookingRepository,
	customerRepo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
) PaymentService {
	return &paymentService{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		txRepo:       txRepo,
	}
}

// UpdatePayment is the raw correction path: it overwrites the booking's
// payment fields without a ledger entry. The payment status is rederived
// from the paid/total comparison; a caller-supplied status only survives
// when it agrees with the derivation.
func (s *paymentService) UpdatePayment(ctx context.Context, bookingID int32, req UpdatePaymentRequest) (*domain.Booking, error) {
	if req.AmountPaid == nil && req.PaymentStatus == nil {
		return nil, domain.ValidationErrorf("nothing to update")
	}
	if req.AmountPaid != nil && *req.AmountPaid < 0 {
		return nil, domain.ValidationErrorf("amount paid cannot be negative")
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if req.AmountPaid != nil {
		booking.SetAmountPaid(*req.AmountPaid)
	} else if req.PaymentStatus != nil {
		booking.PaymentStatus = domain.DerivePaymentStatus(booking.AmountPaid, booking.TotalAmount)
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// RecordPayment appends a ledgered payment and, when tied to a booking,
// updates that booking's payment fields in lockstep.
func (s *paymentService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*domain.CustomerTransaction, error) {
	if req.Amount <= 0 {
		return nil, domain.ValidationErrorf("payment amount must be greater than zero")
	}
	if req.PaymentMethod == "" {
		return nil, domain.ValidationErrorf("payment method is required")
	}
	if !req.PaymentMethod.Valid() {
		return nil, domain.ValidationErrorf("unsupported payment method %q", req.PaymentMethod)
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	// Resolve the booking before anything is written so a bad booking id
	// cannot leave a ledger entry behind.
	var booking *domain.Booking
	if req.BookingID != nil {
		b, err := s.bookingRepo.GetByID(ctx, *req.BookingID)
		if err != nil {
			return nil, err
		}
		booking = b
	}

	entry := &domain.CustomerTransaction{
		CustomerID:    req.CustomerID,
		BookingID:     req.BookingID,
		Type:          domain.TransactionTypePayment,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if err := s.txRepo.Append(ctx, entry); err != nil {
		return nil, err
	}

	if booking != nil {
		booking.ApplyPayment(req.Amount)
		if err := s.bookingRepo.Update(ctx, booking); err != nil {
			return nil, err
		}
	}
	return entry, nil
}

// AddManualEntry records a debit or credit independent of any booking.
func (s *paymentService) AddManualEntry(ctx context.Context, req ManualEntryRequest) (*domain.CustomerTransaction, error) {
	if req.Amount <= 0 {
		return nil, domain.ValidationErrorf("amount must be greater than zero")
	}
	if req.Description == "" {
		return nil, domain.ValidationErrorf("description is required")
	}

	var txType domain.TransactionType
	switch req.Type {
	case "debit":
		txType = domain.TransactionTypeManualDebit
	case "credit":
		txType = domain.TransactionTypeManualCredit
	default:
		return nil, domain.ValidationErrorf("entry type must be debit or credit, got %q", req.Type)
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	entry := &domain.CustomerTransaction{
		CustomerID: req.CustomerID,
		Type:       txType,
		Amount:     req.Amount,
		Notes:      req.Description,
	}
	if err := s.txRepo.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

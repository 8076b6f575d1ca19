package service

import (
	"context"
	"errors"
	"time"

	"eventrental-backend/internal/domain"
	"eventrental-backend/internal/logger"
	"eventrental-backend/internal/repository"
	"eventrental-backend/internal/utils"
)

type bookingService struct {
	bookingRepo  repository.BookingRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	txRepo       repository.TransactionRepository
	notifier     NotifierService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
	notifier NotifierService,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		txRepo:       txRepo,
		notifier:     notifier,
	}
}

func (s *bookingService) Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" || req.BookingDate == "" || req.ReturnDate == "" || len(req.Items) == 0 {
		return nil, domain.ValidationErrorf("missing required fields")
	}
	for _, item := range req.Items {
		if item.ProductID <= 0 || item.Quantity < 1 {
			return nil, domain.ValidationErrorf("item quantity must be at least 1")
		}
	}

	bookingDate, err := utils.ParseDate(req.BookingDate)
	if err != nil {
		return nil, domain.ValidationErrorf("invalid booking date %q", req.BookingDate)
	}
	returnDate, err := utils.ParseDate(req.ReturnDate)
	if err != nil {
		return nil, domain.ValidationErrorf("invalid return date %q", req.ReturnDate)
	}
	totalDays := utils.TotalDays(bookingDate, returnDate)
	if totalDays <= 0 {
		return nil, domain.ValidationErrorf("return date must be after booking date")
	}

	customer, err := s.findOrCreateCustomer(ctx, req.CustomerName, req.CustomerPhone)
	if err != nil {
		return nil, err
	}

	// Phase one: validate every line before touching stock, so a failing
	// line cannot leave earlier lines reserved with no booking behind them.
	items := make([]domain.BookingItem, 0, len(req.Items))
	var totalAmount int64
	for _, reqItem := range req.Items {
		product, err := s.productRepo.GetByID(ctx, reqItem.ProductID)
		if err != nil {
			return nil, err
		}
		if product.AvailableQuantity < reqItem.Quantity {
			return nil, domain.InsufficientStockErrorf("insufficient stock for %s, available: %d", product.Name, product.AvailableQuantity)
		}
		itemTotal := utils.ItemTotal(product.PerDayRent, reqItem.Quantity, totalDays)
		items = append(items, domain.BookingItem{
			ProductID:       product.ID,
			ProductName:     product.Name,
			Quantity:        reqItem.Quantity,
			PendingQuantity: reqItem.Quantity,
			PerDayRent:      product.PerDayRent,
			TotalDays:       totalDays,
			ItemTotal:       itemTotal,
		})
		totalAmount += itemTotal
	}

	// Phase two: reserve all lines, rolling back on any failure (stock may
	// have moved since validation; Reserve re-checks atomically).
	reserved := make([]domain.BookingItem, 0, len(items))
	for _, item := range items {
		if err := s.productRepo.Reserve(ctx, item.ProductID, item.Quantity); err != nil {
			s.rollbackReservations(ctx, reserved)
			return nil, err
		}
		reserved = append(reserved, item)
	}

	booking := &domain.Booking{
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerPhone: customer.PhoneNumber,
		BookingDate:   bookingDate,
		ReturnDate:    returnDate,
		Items:         items,
		TotalAmount:   totalAmount,
		AmountPaid:    0,
		AmountPending: totalAmount,
		PaymentStatus: domain.PaymentStatusPending,
		Status:        domain.BookingStatusActive,
		Notes:         req.Notes,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		s.rollbackReservations(ctx, reserved)
		return nil, err
	}

	if err := s.customerRepo.IncrementBookings(ctx, customer.ID); err != nil {
		return nil, err
	}

	charge := &domain.CustomerTransaction{
		CustomerID: customer.ID,
		BookingID:  &booking.ID,
		Type:       domain.TransactionTypeBooking,
		Amount:     totalAmount,
		Notes:      "Booking charge",
	}
	if err := s.txRepo.Append(ctx, charge); err != nil {
		return nil, err
	}

	sent := s.notifier.SendInvoice(ctx, customer.PhoneNumber, InvoiceDetails{
		BookingID:    booking.ID,
		CustomerName: customer.Name,
		Items:        booking.Items,
		TotalAmount:  totalAmount,
		BookingDate:  req.BookingDate,
		ReturnDate:   req.ReturnDate,
	})

	return &CreateBookingResult{Booking: booking, WhatsappSent: sent}, nil
}

// findOrCreateCustomer resolves by phone, creating a customer on first
// contact and refreshing the stored name when the caller sends a new one.
func (s *bookingService) findOrCreateCustomer(ctx context.Context, name, phone string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByPhone(ctx, phone)
	if errors.Is(err, domain.ErrNotFound) {
		customer = &domain.Customer{Name: name, PhoneNumber: phone}
		if err := s.customerRepo.Create(ctx, customer); err != nil {
			return nil, err
		}
		return customer, nil
	}
	if err != nil {
		return nil, err
	}
	if customer.Name != name {
		customer.Name = name
		if err := s.customerRepo.Update(ctx, customer); err != nil {
			return nil, err
		}
	}
	return customer, nil
}

func (s *bookingService) rollbackReservations(ctx context.Context, reserved []domain.BookingItem) {
	for _, item := range reserved {
		if err := s.productRepo.Release(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Error("Failed to roll back reservation", "product_id", item.ProductID, "quantity", item.Quantity, "error", err)
		}
	}
}

func (s *bookingService) Get(ctx context.Context, id int32) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *bookingService) ListActive(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.ListByStatus(ctx, domain.BookingStatusActive)
}

func (s *bookingService) ListDueToday(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.ListDueOn(ctx, time.Now())
}

// ListOverdue sweeps qualifying active bookings to overdue before reading,
// so listing observably flips them the way the overdue endpoint always has.
func (s *bookingService) ListOverdue(ctx context.Context) ([]domain.Booking, error) {
	if err := s.sweepOverdue(ctx); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByStatus(ctx, domain.BookingStatusOverdue)
}

func (s *bookingService) ListReturned(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.ListByStatus(ctx, domain.BookingStatusReturned)
}

func (s *bookingService) ListPendingReturns(ctx context.Context) ([]domain.Booking, error) {
	if err := s.sweepOverdue(ctx); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByStatus(ctx, domain.BookingStatusActive, domain.BookingStatusOverdue)
}

func (s *bookingService) sweepOverdue(ctx context.Context) error {
	count, err := s.bookingRepo.MarkOverdue(ctx, time.Now())
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Marked bookings as overdue", "count", count)
	}
	return nil
}

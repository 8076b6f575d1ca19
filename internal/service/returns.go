package service

import (
	"context"
	"fmt"
	"time"

	"eventrental-backend/internal/domain"
	"eventrental-backend/internal/repository"
)

type returnService struct {
	bookingRepo repository.BookingRepository
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
}

func NewReturnService(
	bookingRepo repository.BookingRepository,
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
) ReturnService {
	return &returnService{
		bookingRepo: bookingRepo,
		productRepo: productRepo,
		txRepo:      txRepo,
	}
}

// ReturnBooking closes a booking and restocks every item's outstanding
// quantity. Only the pending quantity is released, so a full return after
// earlier partial returns cannot restock the same units twice.
func (s *returnService) ReturnBooking(ctx context.Context, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.IsReturned() {
		return nil, fmt.Errorf("booking %d: %w", bookingID, domain.ErrAlreadyReturned)
	}

	for i := range booking.Items {
		item := &booking.Items[i]
		if item.PendingQuantity > 0 {
			if err := s.productRepo.Release(ctx, item.ProductID, item.PendingQuantity); err != nil {
				return nil, err
			}
			item.ReturnedQuantity = item.Quantity
			item.PendingQuantity = 0
		}
	}
	if err := s.bookingRepo.UpdateItems(ctx, booking.ID, booking.Items); err != nil {
		return nil, err
	}

	now := time.Now()
	booking.Status = domain.BookingStatusReturned
	booking.ActualReturnDate = &now
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// PartialReturn restocks the submitted items and optionally records a
// payment against the booking and the customer ledger.
func (s *returnService) PartialReturn(ctx context.Context, bookingID int32, req PartialReturnRequest) (*domain.Booking, error) {
	if len(req.ReturnedItems) == 0 {
		return nil, domain.ValidationErrorf("no returned items provided")
	}
	if req.AmountReceived < 0 {
		return nil, domain.ValidationErrorf("amount received cannot be negative")
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.IsReturned() {
		return nil, fmt.Errorf("booking %d: %w", bookingID, domain.ErrAlreadyReturned)
	}

	allReturned, err := s.applyReturns(ctx, booking, req.ReturnedItems)
	if err != nil {
		return nil, err
	}

	if req.AmountReceived > 0 {
		booking.ApplyPayment(req.AmountReceived)
		credit := &domain.CustomerTransaction{
			CustomerID: booking.CustomerID,
			BookingID:  &booking.ID,
			Type:       domain.TransactionTypeReturn,
			Amount:     req.AmountReceived,
			Notes:      req.Notes,
		}
		if err := s.txRepo.Append(ctx, credit); err != nil {
			return nil, err
		}
	}

	if allReturned {
		now := time.Now()
		booking.Status = domain.BookingStatusReturned
		booking.ActualReturnDate = &now
	}
	if req.Notes != "" {
		booking.Notes = req.Notes
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// RestockItems is a quantity-only partial return: same clamping and
// completion rules, no money movement.
func (s *returnService) RestockItems(ctx context.Context, bookingID int32, items []ReturnedItemRequest) (*domain.Booking, error) {
	if len(items) == 0 {
		return nil, domain.ValidationErrorf("no items provided")
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.IsReturned() {
		return nil, fmt.Errorf("booking %d: %w", bookingID, domain.ErrAlreadyReturned)
	}

	allReturned, err := s.applyReturns(ctx, booking, items)
	if err != nil {
		return nil, err
	}
	if allReturned {
		now := time.Now()
		booking.Status = domain.BookingStatusReturned
		booking.ActualReturnDate = &now
		if err := s.bookingRepo.Update(ctx, booking); err != nil {
			return nil, err
		}
	}
	return booking, nil
}

// applyReturns credits each submitted entry against its booking item,
// clamped to the item's outstanding quantity, and restocks the clamped
// amount. Item quantities in the request are cumulative: completion is
// judged from the submitted set, not from the stored pending field, so a
// caller must resubmit an item's full return state on every call.
func (s *returnService) applyReturns(ctx context.Context, booking *domain.Booking, entries []ReturnedItemRequest) (bool, error) {
	for _, entry := range entries {
		if !entry.Returned {
			continue
		}
		item := booking.ItemByProduct(entry.ProductID)
		if item == nil {
			continue
		}
		credited := entry.Quantity
		if remaining := item.Quantity - item.ReturnedQuantity; credited > remaining {
			credited = remaining
		}
		if credited <= 0 {
			continue
		}
		if err := s.productRepo.Release(ctx, item.ProductID, credited); err != nil {
			return false, err
		}
		item.ReturnedQuantity += credited
		item.PendingQuantity = item.Quantity - item.ReturnedQuantity
	}
	if err := s.bookingRepo.UpdateItems(ctx, booking.ID, booking.Items); err != nil {
		return false, err
	}

	allReturned := true
	for i := range booking.Items {
		item := &booking.Items[i]
		covered := false
		for _, entry := range entries {
			if entry.ProductID == item.ProductID && entry.Returned && entry.Quantity >= item.Quantity {
				covered = true
				break
			}
		}
		if !covered {
			allReturned = false
			break
		}
	}
	return allReturned, nil
}

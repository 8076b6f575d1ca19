package service

import (
	"context"

	"eventrental-backend/internal/domain"
	"eventrental-backend/internal/repository"
)

// recentEntriesCap bounds the transaction window on the ledger summary.
const recentEntriesCap = 10

type ledgerService struct {
	customerRepo repository.CustomerRepository
	txRepo       repository.TransactionRepository
}

func NewLedgerService(customerRepo repository.CustomerRepository, txRepo repository.TransactionRepository) LedgerService {
	return &ledgerService{customerRepo: customerRepo, txRepo: txRepo}
}

func (s *ledgerService) GetCustomerLedger(ctx context.Context, customerID, page, pageSize int32) ([]domain.CustomerTransaction, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, 0, err
	}
	return s.txRepo.ListByCustomer(ctx, customerID, page, pageSize)
}

func (s *ledgerService) GetLedgerSummary(ctx context.Context, customerID int32) (*domain.LedgerSummary, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	recent, err := s.txRepo.ListRecent(ctx, customerID, recentEntriesCap)
	if err != nil {
		return nil, err
	}
	totals, err := s.txRepo.TotalsByType(ctx, customerID)
	if err != nil {
		return nil, err
	}

	status := "clear"
	if customer.Balance > 0 {
		status = "pending"
	}

	return &domain.LedgerSummary{
		CustomerID:         customer.ID,
		CustomerName:       customer.Name,
		CurrentBalance:     customer.Balance,
		Status:             status,
		TotalCharged:       totals[domain.TransactionTypeBooking] + totals[domain.TransactionTypeManualDebit],
		TotalPaid:          totals[domain.TransactionTypePayment] + totals[domain.TransactionTypeReturn] + totals[domain.TransactionTypeManualCredit],
		RecentTransactions: recent,
	}, nil
}

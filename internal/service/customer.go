package service

import (
	"context"
	"regexp"

	"eventrental-backend/internal/domain"
	"eventrental-backend/internal/repository"
)

// recentBookingsLimit bounds the booking history on the customer detail view.
const recentBookingsLimit = 10

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
var aadharPattern = regexp.MustCompile(`^\d{12}$`)

type customerService struct {
	customerRepo repository.CustomerRepository
	bookingRepo  repository.BookingRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, bookingRepo repository.BookingRepository) CustomerService {
	return &customerService{customerRepo: customerRepo, bookingRepo: bookingRepo}
}

func validateCustomer(c *domain.Customer) error {
	if c.Name == "" {
		return domain.ValidationErrorf("customer name is required")
	}
	if c.PhoneNumber == "" {
		return domain.ValidationErrorf("phone number is required")
	}
	if !phonePattern.MatchString(c.PhoneNumber) {
		return domain.ValidationErrorf("invalid phone number %q", c.PhoneNumber)
	}
	if c.AadharNumber != "" && !aadharPattern.MatchString(c.AadharNumber) {
		return domain.ValidationErrorf("aadhar number must be 12 digits")
	}
	return nil
}

func (s *customerService) Create(ctx context.Context, c *domain.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	if _, err := s.customerRepo.GetByPhone(ctx, c.PhoneNumber); err == nil {
		return domain.ValidationErrorf("customer with phone %s already exists", c.PhoneNumber)
	}
	return s.customerRepo.Create(ctx, c)
}

func (s *customerService) Get(ctx context.Context, id int32) (*CustomerDetail, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByCustomer(ctx, id, recentBookingsLimit)
	if err != nil {
		return nil, err
	}
	return &CustomerDetail{Customer: customer, RecentBookings: bookings}, nil
}

func (s *customerService) Update(ctx context.Context, c *domain.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, c)
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	if query == "" {
		return nil, domain.ValidationErrorf("search query is required")
	}
	return s.customerRepo.Search(ctx, query)
}

func (s *customerService) ListFrequent(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListFrequent(ctx, 20)
}

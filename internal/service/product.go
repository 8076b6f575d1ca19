package service

import (
	"context"

	"eventrental-backend/internal/domain"
	"eventrental-backend/internal/repository"
)

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) Create(ctx context.Context, p *domain.Product) error {
	if p.Name == "" {
		return domain.ValidationErrorf("product name is required")
	}
	if p.TotalQuantity < 0 {
		return domain.ValidationErrorf("total quantity cannot be negative")
	}
	if p.PerDayRent < 0 {
		return domain.ValidationErrorf("per day rent cannot be negative")
	}
	if p.Category == "" {
		p.Category = "General"
	}
	// A new product starts with every unit on the shelf.
	p.AvailableQuantity = p.TotalQuantity
	return s.productRepo.Create(ctx, p)
}

func (s *productService) Get(ctx context.Context, id int32) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// Update applies partial edits. A total-quantity change shifts the available
// count by the same difference, floored at zero; it does not reconcile
// against outstanding bookings.
func (s *productService) Update(ctx context.Context, id int32, update ProductUpdate) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.TotalQuantity != nil && *update.TotalQuantity != product.TotalQuantity {
		if *update.TotalQuantity < 0 {
			return nil, domain.ValidationErrorf("total quantity cannot be negative")
		}
		difference := *update.TotalQuantity - product.TotalQuantity
		product.AvailableQuantity += difference
		if product.AvailableQuantity < 0 {
			product.AvailableQuantity = 0
		}
		product.TotalQuantity = *update.TotalQuantity
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.PerDayRent != nil {
		if *update.PerDayRent < 0 {
			return nil, domain.ValidationErrorf("per day rent cannot be negative")
		}
		product.PerDayRent = *update.PerDayRent
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Description != nil {
		product.Description = *update.Description
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id int32) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product.AvailableQuantity < product.TotalQuantity {
		return domain.ValidationErrorf("cannot delete product with active rentals")
	}
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productService) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListAvailable(ctx)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventrental-backend/internal/domain"
)

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults category and fills availability", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewProductService(productRepo)

		productRepo.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

		p := &domain.Product{Name: "Plastic Chair", TotalQuantity: 50, PerDayRent: 100}
		err := svc.Create(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, "General", p.Category)
		assert.Equal(t, int32(50), p.AvailableQuantity)
	})

	t.Run("Missing name", func(t *testing.T) {
		svc := NewProductService(new(MockProductRepo))
		err := svc.Create(ctx, &domain.Product{TotalQuantity: 10})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Negative rent", func(t *testing.T) {
		svc := NewProductService(new(MockProductRepo))
		err := svc.Create(ctx, &domain.Product{Name: "Chair", PerDayRent: -1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Resizing shifts availability by the difference", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewProductService(productRepo)

		// 10 of 50 are out on bookings.
		existing := &domain.Product{ID: 1, Name: "Plastic Chair", TotalQuantity: 50, AvailableQuantity: 40, PerDayRent: 100}
		productRepo.On("GetByID", ctx, int32(1)).Return(existing, nil)
		productRepo.On("Update", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

		total := int32(60)
		p, err := svc.Update(ctx, 1, ProductUpdate{TotalQuantity: &total})
		assert.NoError(t, err)
		assert.Equal(t, int32(60), p.TotalQuantity)
		assert.Equal(t, int32(50), p.AvailableQuantity)
	})

	t.Run("Shrinking floors availability at zero", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewProductService(productRepo)

		existing := &domain.Product{ID: 1, Name: "Plastic Chair", TotalQuantity: 50, AvailableQuantity: 5, PerDayRent: 100}
		productRepo.On("GetByID", ctx, int32(1)).Return(existing, nil)
		productRepo.On("Update", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

		total := int32(40)
		p, err := svc.Update(ctx, 1, ProductUpdate{TotalQuantity: &total})
		assert.NoError(t, err)
		assert.Equal(t, int32(40), p.TotalQuantity)
		assert.Equal(t, int32(0), p.AvailableQuantity)
	})

	t.Run("Nil fields untouched", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewProductService(productRepo)

		existing := &domain.Product{ID: 1, Name: "Plastic Chair", Category: "Furniture", TotalQuantity: 50, AvailableQuantity: 40, PerDayRent: 100}
		productRepo.On("GetByID", ctx, int32(1)).Return(existing, nil)
		productRepo.On("Update", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

		rent := int64(120)
		p, err := svc.Update(ctx, 1, ProductUpdate{PerDayRent: &rent})
		assert.NoError(t, err)
		assert.Equal(t, int64(120), p.PerDayRent)
		assert.Equal(t, "Plastic Chair", p.Name)
		assert.Equal(t, int32(50), p.TotalQuantity)
	})

	t.Run("Unknown product", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewProductService(productRepo)
		productRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.NotFoundErrorf("product 99"))

		name := "x"
		_, err := svc.Update(ctx, 99, ProductUpdate{Name: &name})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Refuses while units are out", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewProductService(productRepo)

		existing := &domain.Product{ID: 1, TotalQuantity: 50, AvailableQuantity: 45}
		productRepo.On("GetByID", ctx, int32(1)).Return(existing, nil)

		err := svc.Delete(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "active rentals")
		productRepo.AssertNotCalled(t, "Delete", ctx, int32(1))
	})

	t.Run("Deletes idle product", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewProductService(productRepo)

		existing := &domain.Product{ID: 1, TotalQuantity: 50, AvailableQuantity: 50}
		productRepo.On("GetByID", ctx, int32(1)).Return(existing, nil)
		productRepo.On("Delete", ctx, int32(1)).Return(nil)

		err := svc.Delete(ctx, 1)
		assert.NoError(t, err)
	})
}

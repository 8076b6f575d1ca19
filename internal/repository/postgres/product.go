package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventrental-backend/internal/domain"
	"eventrental-backend/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, COALESCE(category, 'General'), COALESCE(description, ''), total_quantity, available_quantity, per_day_rent, created_on, updated_on`

func scanProduct(row interface{ Scan(...any) error }, p *domain.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Category, &p.Description, &p.TotalQuantity, &p.AvailableQuantity, &p.PerDayRent, &p.CreatedOn, &p.UpdatedOn)
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (name, category, description, total_quantity, available_quantity, per_day_rent, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id, created_on, updated_on`
	return r.db.QueryRowContext(ctx, query, p.Name, p.Category, p.Description, p.TotalQuantity, p.AvailableQuantity, p.PerDayRent, time.Now()).
		Scan(&p.ID, &p.CreatedOn, &p.UpdatedOn)
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	err := scanProduct(r.db.QueryRowContext(ctx, query, id), p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundErrorf("product %d", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET name=$1, category=$2, description=$3, total_quantity=$4, available_quantity=$5, per_day_rent=$6, updated_on=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, p.Name, p.Category, p.Description, p.TotalQuantity, p.AvailableQuantity, p.PerDayRent, time.Now(), p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundErrorf("product %d", p.ID)
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundErrorf("product %d", id)
	}
	return nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY name ASC`)
}

func (r *productRepository) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE available_quantity > 0 ORDER BY name ASC`)
}

func (r *productRepository) list(ctx context.Context, query string) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Reserve holds qty units with a conditional decrement so two concurrent
// bookings cannot both pass a stock check and over-reserve.
func (r *productRepository) Reserve(ctx context.Context, id, qty int32) error {
	query := `UPDATE products SET available_quantity = available_quantity - $2, updated_on = $3
	          WHERE id = $1 AND available_quantity >= $2`
	res, err := r.db.ExecContext(ctx, query, id, qty, time.Now())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return domain.InsufficientStockErrorf("insufficient stock for %s, available: %d", p.Name, p.AvailableQuantity)
	}
	return nil
}

// Release restocks qty units. The guard against exceeding total_quantity is
// deliberate: a silent clamp would hide double-restock bugs.
func (r *productRepository) Release(ctx context.Context, id, qty int32) error {
	query := `UPDATE products SET available_quantity = available_quantity + $2, updated_on = $3
	          WHERE id = $1 AND available_quantity + $2 <= total_quantity`
	res, err := r.db.ExecContext(ctx, query, id, qty, time.Now())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.InternalErrorf("restock of %d units on product %d would exceed total quantity", qty, id)
	}
	return nil
}

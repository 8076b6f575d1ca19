package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventrental-backend/internal/domain"
	"eventrental-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, name, phone_number, COALESCE(email, ''), COALESCE(address, ''), COALESCE(aadhar_number, ''), total_bookings, balance, created_on, updated_on`

func scanCustomer(row interface{ Scan(...any) error }, c *domain.Customer) error {
	return row.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.Email, &c.Address, &c.AadharNumber, &c.TotalBookings, &c.Balance, &c.CreatedOn, &c.UpdatedOn)
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, phone_number, email, address, aadhar_number, total_bookings, balance, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, 0, 0, $6, $6) RETURNING id, created_on, updated_on`
	return r.db.QueryRowContext(ctx, query, c.Name, c.PhoneNumber, c.Email, c.Address, c.AadharNumber, time.Now()).
		Scan(&c.ID, &c.CreatedOn, &c.UpdatedOn)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := scanCustomer(r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id), c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundErrorf("customer %d", id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := scanCustomer(r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE phone_number = $1`, phone), c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundErrorf("customer with phone %s", phone)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, phone_number=$2, email=$3, address=$4, aadhar_number=$5, updated_on=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.PhoneNumber, c.Email, c.Address, c.AadharNumber, time.Now(), c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundErrorf("customer %d", c.ID)
	}
	return nil
}

func (r *customerRepository) IncrementBookings(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE customers SET total_bookings = total_bookings + 1, updated_on = $2 WHERE id = $1`, id, time.Now())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundErrorf("customer %d", id)
	}
	return nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	return r.list(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY name ASC`)
}

func (r *customerRepository) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	q := `SELECT ` + customerColumns + ` FROM customers WHERE name ILIKE '%' || $1 || '%' OR phone_number LIKE '%' || $1 || '%' ORDER BY name ASC`
	return r.list(ctx, q, query)
}

func (r *customerRepository) ListFrequent(ctx context.Context, limit int32) ([]domain.Customer, error) {
	q := `SELECT ` + customerColumns + ` FROM customers WHERE total_bookings > 0 ORDER BY total_bookings DESC, name ASC LIMIT $1`
	return r.list(ctx, q, limit)
}

func (r *customerRepository) list(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

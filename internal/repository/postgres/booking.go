package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventrental-backend/internal/domain"
	"eventrental-backend/internal/repository"

	"github.com/lib/pq"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, customer_id, customer_name, customer_phone, booking_date, return_date, actual_return_date, total_amount, amount_paid, amount_pending, payment_status, status, COALESCE(notes, ''), created_on, updated_on`

func scanBooking(row interface{ Scan(...any) error }, b *domain.Booking) error {
	var actualReturn sql.NullTime
	err := row.Scan(&b.ID, &b.CustomerID, &b.CustomerName, &b.CustomerPhone, &b.BookingDate, &b.ReturnDate, &actualReturn,
		&b.TotalAmount, &b.AmountPaid, &b.AmountPending, &b.PaymentStatus, &b.Status, &b.Notes, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return err
	}
	if actualReturn.Valid {
		t := actualReturn.Time
		b.ActualReturnDate = &t
	}
	return nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (customer_id, customer_name, customer_phone, booking_date, return_date, total_amount, amount_paid, amount_pending, payment_status, status, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12) RETURNING id, created_on, updated_on`
	err = tx.QueryRowContext(ctx, query,
		b.CustomerID, b.CustomerName, b.CustomerPhone, b.BookingDate, b.ReturnDate,
		b.TotalAmount, b.AmountPaid, b.AmountPending, b.PaymentStatus, b.Status, b.Notes, time.Now()).
		Scan(&b.ID, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return err
	}

	itemQuery := `INSERT INTO booking_items (booking_id, product_id, product_name, quantity, returned_quantity, pending_quantity, per_day_rent, total_days, item_total)
	              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	for i := range b.Items {
		item := &b.Items[i]
		err = tx.QueryRowContext(ctx, itemQuery,
			b.ID, item.ProductID, item.ProductName, item.Quantity, item.ReturnedQuantity, item.PendingQuantity,
			item.PerDayRent, item.TotalDays, item.ItemTotal).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := scanBooking(r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id), b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundErrorf("booking %d", id)
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, []*domain.Booking{b}); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET status=$1, actual_return_date=$2, total_amount=$3, amount_paid=$4, amount_pending=$5, payment_status=$6, notes=$7, updated_on=$8 WHERE id=$9`
	var actualReturn sql.NullTime
	if b.ActualReturnDate != nil {
		actualReturn = sql.NullTime{Time: *b.ActualReturnDate, Valid: true}
	}
	res, err := r.db.ExecContext(ctx, query, b.Status, actualReturn, b.TotalAmount, b.AmountPaid, b.AmountPending, b.PaymentStatus, b.Notes, time.Now(), b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundErrorf("booking %d", b.ID)
	}
	return nil
}

func (r *bookingRepository) UpdateItems(ctx context.Context, bookingID int32, items []domain.BookingItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE booking_items SET returned_quantity=$1, pending_quantity=$2 WHERE booking_id=$3 AND product_id=$4`
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, query, item.ReturnedQuantity, item.PendingQuantity, bookingID, item.ProductID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_on DESC`)
}

func (r *bookingRepository) ListByStatus(ctx context.Context, statuses ...domain.BookingStatus) ([]domain.Booking, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = ANY($1) ORDER BY return_date ASC`
	return r.list(ctx, query, pq.Array(values))
}

func (r *bookingRepository) ListDueOn(ctx context.Context, day time.Time) ([]domain.Booking, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = 'active' AND return_date >= $1 AND return_date < $2 ORDER BY return_date ASC`
	return r.list(ctx, query, start, end)
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID, limit int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY created_on DESC LIMIT $2`
	return r.list(ctx, query, customerID, limit)
}

// MarkOverdue truncates the cutoff in UTC so the cron sweep and the
// just-in-time sweep agree on "today" regardless of the process timezone.
func (r *bookingRepository) MarkOverdue(ctx context.Context, day time.Time) (int64, error) {
	day = day.UTC()
	today := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	query := `UPDATE bookings SET status = 'overdue', updated_on = $2 WHERE status = 'active' AND return_date < $1`
	res, err := r.db.ExecContext(ctx, query, today, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *bookingRepository) list(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Booking, len(bookings))
	for i := range bookings {
		refs[i] = &bookings[i]
	}
	if err := r.loadItems(ctx, refs); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) loadItems(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	ids := make([]int32, len(bookings))
	byID := make(map[int32]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	query := `SELECT id, booking_id, product_id, product_name, quantity, returned_quantity, pending_quantity, per_day_rent, total_days, item_total
	          FROM booking_items WHERE booking_id = ANY($1) ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.BookingItem
		var bookingID int32
		if err := rows.Scan(&item.ID, &bookingID, &item.ProductID, &item.ProductName, &item.Quantity,
			&item.ReturnedQuantity, &item.PendingQuantity, &item.PerDayRent, &item.TotalDays, &item.ItemTotal); err != nil {
			return err
		}
		if b, ok := byID[bookingID]; ok {
			b.Items = append(b.Items, item)
		}
	}
	return rows.Err()
}

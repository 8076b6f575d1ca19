package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventrental-backend/internal/domain"
	"eventrental-backend/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `id, customer_id, customer_name, booking_id, transaction_type, amount, balance_before, balance_after, COALESCE(payment_method, ''), COALESCE(notes, ''), created_on`

func scanTransaction(row interface{ Scan(...any) error }, t *domain.CustomerTransaction) error {
	var bookingID sql.NullInt32
	err := row.Scan(&t.ID, &t.CustomerID, &t.CustomerName, &bookingID, &t.Type, &t.Amount,
		&t.BalanceBefore, &t.BalanceAfter, &t.PaymentMethod, &t.Notes, &t.CreatedOn)
	if err != nil {
		return err
	}
	if bookingID.Valid {
		id := bookingID.Int32
		t.BookingID = &id
	}
	return nil
}

// Append writes the ledger entry and the maintained customer balance in one
// database transaction. The customer row is locked for the duration, so
// balance snapshots on concurrent appends never interleave.
func (r *transactionRepository) Append(ctx context.Context, entry *domain.CustomerTransaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var name string
	var before int64
	err = tx.QueryRowContext(ctx, `SELECT name, balance FROM customers WHERE id = $1 FOR UPDATE`, entry.CustomerID).
		Scan(&name, &before)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundErrorf("customer %d", entry.CustomerID)
	}
	if err != nil {
		return err
	}

	entry.CustomerName = name
	entry.BalanceBefore = before
	entry.BalanceAfter = before + entry.Type.BalanceDelta(entry.Amount)

	var bookingID sql.NullInt32
	if entry.BookingID != nil {
		bookingID = sql.NullInt32{Int32: *entry.BookingID, Valid: true}
	}
	var method sql.NullString
	if entry.PaymentMethod != "" {
		method = sql.NullString{String: string(entry.PaymentMethod), Valid: true}
	}

	query := `INSERT INTO customer_transactions (customer_id, customer_name, booking_id, transaction_type, amount, balance_before, balance_after, payment_method, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_on`
	err = tx.QueryRowContext(ctx, query,
		entry.CustomerID, entry.CustomerName, bookingID, entry.Type, entry.Amount,
		entry.BalanceBefore, entry.BalanceAfter, method, entry.Notes, time.Now()).
		Scan(&entry.ID, &entry.CreatedOn)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE customers SET balance = $1, updated_on = $2 WHERE id = $3`,
		entry.BalanceAfter, time.Now(), entry.CustomerID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *transactionRepository) ListByCustomer(ctx context.Context, customerID, page, pageSize int32) ([]domain.CustomerTransaction, int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM customer_transactions WHERE customer_id = $1`, customerID).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + transactionColumns + ` FROM customer_transactions WHERE customer_id = $1 ORDER BY created_on DESC, id DESC LIMIT $2 OFFSET $3`
	entries, err := r.list(ctx, query, customerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	return entries, count, nil
}

func (r *transactionRepository) ListRecent(ctx context.Context, customerID, limit int32) ([]domain.CustomerTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM customer_transactions WHERE customer_id = $1 ORDER BY created_on DESC, id DESC LIMIT $2`
	return r.list(ctx, query, customerID, limit)
}

// FoldBalance replays the whole log in append order. The result must equal
// the maintained customers.balance column; disagreement means an entry was
// written outside Append.
func (r *transactionRepository) FoldBalance(ctx context.Context, customerID int32) (int64, error) {
	query := `SELECT ` + transactionColumns + ` FROM customer_transactions WHERE customer_id = $1 ORDER BY created_on ASC, id ASC`
	entries, err := r.list(ctx, query, customerID)
	if err != nil {
		return 0, err
	}
	return domain.FoldBalance(entries), nil
}

func (r *transactionRepository) TotalsByType(ctx context.Context, customerID int32) (map[domain.TransactionType]int64, error) {
	query := `SELECT transaction_type, COALESCE(SUM(amount), 0) FROM customer_transactions WHERE customer_id = $1 GROUP BY transaction_type`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[domain.TransactionType]int64)
	for rows.Next() {
		var t domain.TransactionType
		var sum int64
		if err := rows.Scan(&t, &sum); err != nil {
			return nil, err
		}
		totals[t] = sum
	}
	return totals, rows.Err()
}

func (r *transactionRepository) list(ctx context.Context, query string, args ...any) ([]domain.CustomerTransaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CustomerTransaction
	for rows.Next() {
		var t domain.CustomerTransaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}
		entries = append(entries, t)
	}
	return entries, rows.Err()
}

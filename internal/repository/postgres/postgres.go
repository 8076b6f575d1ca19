package postgres

import (
	"database/sql"

	"eventrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ProductRepository
	repository.CustomerRepository
	repository.BookingRepository
	repository.TransactionRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ProductRepository:     NewProductRepository(db),
		CustomerRepository:    NewCustomerRepository(db),
		BookingRepository:     NewBookingRepository(db),
		TransactionRepository: NewTransactionRepository(db),
	}
}

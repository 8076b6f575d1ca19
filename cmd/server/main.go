package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "eventrental-backend/internal/api/http"
	"eventrental-backend/internal/config"
	"eventrental-backend/internal/logger"
	"eventrental-backend/internal/repository/postgres"
	"eventrental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Event Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	notifier := service.NewWhatsAppService(
		cfg.WhatsApp.APIBase,
		cfg.WhatsApp.PhoneNumberID,
		cfg.WhatsApp.AccessToken,
		cfg.WhatsApp.Enabled,
	)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.ProductRepository,
		store.CustomerRepository,
		store.TransactionRepository,
		notifier,
	)
	returnSvc := service.NewReturnService(
		store.BookingRepository,
		store.ProductRepository,
		store.TransactionRepository,
	)
	paymentSvc := service.NewPaymentService(
		store.BookingRepository,
		store.CustomerRepository,
		store.TransactionRepository,
	)
	ledgerSvc := service.NewLedgerService(store.CustomerRepository, store.TransactionRepository)
	productSvc := service.NewProductService(store.ProductRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository, store.BookingRepository)

	// Initialize HTTP handlers and router
	handlers := httpapi.NewHandlers(bookingSvc, returnSvc, paymentSvc, ledgerSvc, productSvc, customerSvc)
	router := httpapi.NewRouter(handlers)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

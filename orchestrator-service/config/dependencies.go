package config

import (
	"context"
	"fmt"
	"log"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/application"
	"github.com/draftea/vehicle-sales-system/orchestrator-service/handlers"
	"github.com/draftea/vehicle-sales-system/orchestrator-service/infrastructure"
	"github.com/draftea/vehicle-sales-system/orchestrator-service/saga"
	sharedinfra "github.com/draftea/vehicle-sales-system/shared/infrastructure"
	"github.com/draftea/vehicle-sales-system/shared/telemetry"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type Dependencies struct {
	// Logger
	Logger *zap.Logger

	// Database
	DB *sqlx.DB

	// Repositories
	TransactionRepository infrastructure.PostgresTransactionRepository

	// Saga
	PurchaseSaga *saga.VehiclePurchaseSaga

	// Use Cases
	StartVehiclePurchase   *application.StartVehiclePurchase
	GetTransactionStatus   *application.GetTransactionStatus
	GetTransactionEvents   *application.GetTransactionEvents
	ProcessTransactions    *application.ProcessTransactions
	RetryFailedTransaction *application.RetryFailedTransaction
	StartCompensation      *application.StartCompensation
	TransactionStatistics  *application.TransactionStatistics

	// HTTP Handlers
	TransactionHandlers *handlers.TransactionHandlers

	// Infrastructure
	EventPublisher *sharedinfra.SNSPublisherAdapter
	EventLog       *sharedinfra.PostgresEventLog

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize logger
	logger, err := buildLogger(config.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	deps.Logger = logger

	// Initialize telemetry first
	if config.Telemetry.Enabled {
		telConfig := telemetry.OrchestratorServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			log.Printf("Failed to initialize telemetry: %v", err)
			// Continue without telemetry rather than failing
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	deps.DB = db

	// Initialize AWS infrastructure
	eventPublisher, err := sharedinfra.NewSNSPublisherAdapter(ctx, config.AWS.SNSTopicArn)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	// Initialize event log
	deps.EventLog = sharedinfra.NewPostgresEventLog(db)

	// Initialize repositories
	deps.TransactionRepository = *infrastructure.NewPostgresTransactionRepository(db)

	// Initialize downstream service gateways
	inventory := infrastructure.NewHTTPInventoryGateway(config.Services.InventoryURL, config.Services.RequestTimeout)
	reservations := infrastructure.NewHTTPReservationGateway(config.Services.ReservationURL, config.Services.RequestTimeout)
	payments := infrastructure.NewHTTPPaymentGateway(config.Services.PaymentURL, config.Services.RequestTimeout)
	sales := infrastructure.NewHTTPSalesGateway(config.Services.SalesURL, config.Services.RequestTimeout)

	// Initialize saga
	deps.PurchaseSaga = saga.NewVehiclePurchaseSaga(
		&deps.TransactionRepository,
		inventory,
		reservations,
		payments,
		sales,
		eventPublisher,
		deps.EventLog,
		logger,
	)

	// Initialize use cases
	deps.StartVehiclePurchase = application.NewStartVehiclePurchase(deps.PurchaseSaga)
	deps.GetTransactionStatus = application.NewGetTransactionStatus(&deps.TransactionRepository)
	deps.GetTransactionEvents = application.NewGetTransactionEvents(&deps.TransactionRepository, deps.EventLog)
	deps.ProcessTransactions = application.NewProcessTransactions(&deps.TransactionRepository, deps.PurchaseSaga, config.Processor.LeaseDuration, logger)
	deps.RetryFailedTransaction = application.NewRetryFailedTransaction(&deps.TransactionRepository, deps.ProcessTransactions, logger)
	deps.StartCompensation = application.NewStartCompensation(&deps.TransactionRepository, logger)
	deps.TransactionStatistics = application.NewTransactionStatistics(&deps.TransactionRepository)

	// Initialize handlers
	deps.TransactionHandlers = handlers.NewTransactionHandlers(
		deps.StartVehiclePurchase,
		deps.GetTransactionStatus,
		deps.GetTransactionEvents,
		deps.ProcessTransactions,
		deps.RetryFailedTransaction,
		deps.StartCompensation,
		deps.TransactionStatistics,
	)

	return deps, nil
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if d.Logger != nil {
		d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}

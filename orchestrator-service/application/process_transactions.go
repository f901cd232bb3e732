package application

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/orchestrator-service/saga"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/draftea/vehicle-sales-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Per-transaction processing outcomes
const (
	ProcessStatusProcessed = "processed"
	ProcessStatusError     = "error"
	ProcessStatusSkipped   = "skipped"
)

// TransactionProcessResult summarizes one transaction's advancement within a
// batch scan, comparing the persisted state before and after.
type TransactionProcessResult struct {
	TransactionID models.ID                `json:"transaction_id"`
	Status        string                   `json:"status"`
	StatusBefore  domain.TransactionStatus `json:"status_before"`
	StatusAfter   domain.TransactionStatus `json:"status_after"`
	StepBefore    string                   `json:"step_before,omitempty"`
	StepAfter     string                   `json:"step_after,omitempty"`
	Error         string                   `json:"error,omitempty"`
}

// ProcessTransactions is the batch processor: it scans every non-terminal
// transaction and advances each by exactly one forward step or one
// compensation step. One transaction's failure never aborts the batch.
type ProcessTransactions struct {
	transactions domain.TransactionRepository
	purchaseSaga *saga.VehiclePurchaseSaga
	owner        string
	lease        time.Duration
	logger       *zap.Logger
}

// NewProcessTransactions creates a new ProcessTransactions use case. The
// worker identity is derived from the hostname plus a random suffix so that
// concurrently running orchestrator instances hold distinguishable leases.
func NewProcessTransactions(
	transactions domain.TransactionRepository,
	purchaseSaga *saga.VehiclePurchaseSaga,
	lease time.Duration,
	logger *zap.Logger,
) *ProcessTransactions {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "orchestrator"
	}

	return &ProcessTransactions{
		transactions: transactions,
		purchaseSaga: purchaseSaga,
		owner:        fmt.Sprintf("%s/%s", hostname, models.GenerateUUID()),
		lease:        lease,
		logger:       logger,
	}
}

// Execute runs one batch scan over all pending transactions, returning one
// result entry per transaction.
func (uc *ProcessTransactions) Execute(ctx context.Context) ([]*TransactionProcessResult, error) {
	pending, err := uc.transactions.FindPendingTransactions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending transactions")
	}

	results := make([]*TransactionProcessResult, 0, len(pending))
	for _, transaction := range pending {
		results = append(results, uc.ProcessClaimed(ctx, transaction))
	}

	telemetry.RecordCounter(ctx, "saga_batch_scans_total", "Batch processor scans", 1)
	telemetry.RecordHistogram(ctx, "saga_batch_size", "Transactions per batch scan", float64(len(pending)))

	return results, nil
}

// ProcessClaimed takes a lease on the transaction before advancing it so
// that at most one processor instance executes a given step, then releases
// the lease. Unclaimable transactions are skipped, not failed. Every
// advancement path, scan or manual, must go through this lease.
func (uc *ProcessTransactions) ProcessClaimed(ctx context.Context, transaction *domain.Transaction) *TransactionProcessResult {
	claimed, err := uc.transactions.Claim(ctx, transaction.ID, uc.owner, uc.lease)
	if err != nil {
		return uc.errorResult(transaction, err)
	}
	if !claimed {
		return &TransactionProcessResult{
			TransactionID: transaction.ID,
			Status:        ProcessStatusSkipped,
			StatusBefore:  transaction.Status,
			StatusAfter:   transaction.Status,
		}
	}

	defer func() {
		if releaseErr := uc.transactions.Release(ctx, transaction.ID, uc.owner); releaseErr != nil {
			uc.logger.Warn("failed to release transaction lease",
				zap.String("transaction_id", transaction.ID.String()),
				zap.Error(releaseErr))
		}
	}()

	return uc.ProcessSingle(ctx, transaction)
}

// ProcessSingle advances one transaction: compensating transactions are
// driven backwards, everything else forwards. The transaction is re-read
// afterwards so the summary reflects persisted state.
func (uc *ProcessTransactions) ProcessSingle(ctx context.Context, transaction *domain.Transaction) *TransactionProcessResult {
	statusBefore := transaction.Status
	stepBefore := currentStepLabel(transaction)

	// A started transaction means creation persisted the record but never
	// flipped it to in_progress. The scan cannot tell a wedged creation from
	// one still in flight, so it is skipped and logged rather than advanced.
	if transaction.Status == domain.TransactionStatusStarted {
		uc.logger.Warn("transaction stuck in started status",
			zap.String("transaction_id", transaction.ID.String()))
		return &TransactionProcessResult{
			TransactionID: transaction.ID,
			Status:        ProcessStatusSkipped,
			StatusBefore:  statusBefore,
			StatusAfter:   statusBefore,
			StepBefore:    stepBefore,
			StepAfter:     stepBefore,
		}
	}

	var err error
	if transaction.IsCompensating() {
		err = uc.purchaseSaga.CompensateTransaction(ctx, transaction)
	} else {
		err = uc.purchaseSaga.ProcessNextStep(ctx, transaction)
	}
	if err != nil {
		uc.logger.Error("failed to process transaction",
			zap.String("transaction_id", transaction.ID.String()),
			zap.Error(err))
		telemetry.RecordCounter(ctx, "saga_transactions_processed_total", "Transactions processed by the batch scan", 1,
			attribute.String("result", ProcessStatusError))
		return uc.errorResult(transaction, err)
	}

	after, err := uc.transactions.FindByID(ctx, transaction.ID)
	if err != nil {
		return uc.errorResult(transaction, errors.Wrap(err, "failed to reload transaction"))
	}
	if after == nil {
		after = transaction
	}

	telemetry.RecordCounter(ctx, "saga_transactions_processed_total", "Transactions processed by the batch scan", 1,
		attribute.String("result", ProcessStatusProcessed))

	return &TransactionProcessResult{
		TransactionID: transaction.ID,
		Status:        ProcessStatusProcessed,
		StatusBefore:  statusBefore,
		StatusAfter:   after.Status,
		StepBefore:    stepBefore,
		StepAfter:     currentStepLabel(after),
	}
}

func (uc *ProcessTransactions) errorResult(transaction *domain.Transaction, err error) *TransactionProcessResult {
	return &TransactionProcessResult{
		TransactionID: transaction.ID,
		Status:        ProcessStatusError,
		StatusBefore:  transaction.Status,
		StatusAfter:   transaction.Status,
		StepBefore:    currentStepLabel(transaction),
		Error:         err.Error(),
	}
}

func currentStepLabel(transaction *domain.Transaction) string {
	if transaction.IsCompensating() {
		if step, ok := transaction.NextCompensationStep(); ok {
			return step
		}
		return ""
	}
	if step, ok := transaction.CurrentStep(); ok {
		return step
	}
	return ""
}

package application

import (
	"context"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RetryFailedTransaction use case resets a failed transaction back to
// in_progress, clearing the recorded failure, and immediately re-drives it
// by one step.
type RetryFailedTransaction struct {
	transactions domain.TransactionRepository
	processor    *ProcessTransactions
	logger       *zap.Logger
}

// NewRetryFailedTransaction creates a new RetryFailedTransaction use case
func NewRetryFailedTransaction(
	transactions domain.TransactionRepository,
	processor *ProcessTransactions,
	logger *zap.Logger,
) *RetryFailedTransaction {
	return &RetryFailedTransaction{
		transactions: transactions,
		processor:    processor,
		logger:       logger,
	}
}

// Execute retries a failed transaction. Unknown ids surface
// ErrTransactionNotFound; transactions in any status other than failed
// surface ErrTransactionNotRetryable.
func (uc *RetryFailedTransaction) Execute(ctx context.Context, id models.ID) (*TransactionProcessResult, error) {
	transaction, err := uc.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find transaction")
	}
	if transaction == nil {
		return nil, domain.ErrTransactionNotFound
	}

	if err := transaction.ResetForRetry(); err != nil {
		return nil, err
	}

	if err := uc.transactions.Update(ctx, transaction); err != nil {
		return nil, errors.Wrap(err, "failed to update transaction")
	}

	uc.logger.Info("retrying failed transaction",
		zap.String("transaction_id", transaction.ID.String()))

	// The retry shares the batch processor's lease so it cannot race a
	// concurrent scan into executing the same step twice.
	return uc.processor.ProcessClaimed(ctx, transaction), nil
}

package application

import (
	"context"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// StartCompensation use case moves a failed transaction into compensating.
// There is deliberately no automatic edge from failed to compensating:
// rolling back completed steps against the peer services is an operator
// decision, triggered through this use case only.
type StartCompensation struct {
	transactions domain.TransactionRepository
	logger       *zap.Logger
}

// NewStartCompensation creates a new StartCompensation use case
func NewStartCompensation(transactions domain.TransactionRepository, logger *zap.Logger) *StartCompensation {
	return &StartCompensation{transactions: transactions, logger: logger}
}

// Execute starts compensation for a failed transaction. The batch processor
// picks it up on the next scan and unwinds completed steps one per call.
func (uc *StartCompensation) Execute(ctx context.Context, id models.ID) error {
	transaction, err := uc.transactions.FindByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to find transaction")
	}
	if transaction == nil {
		return domain.ErrTransactionNotFound
	}

	if transaction.Status != domain.TransactionStatusFailed {
		return errors.Wrap(domain.ErrTransactionNotCompensatable, string(transaction.Status))
	}

	if err := transaction.StartCompensation(); err != nil {
		return err
	}

	if err := uc.transactions.Update(ctx, transaction); err != nil {
		return errors.Wrap(err, "failed to update transaction")
	}

	uc.logger.Info("compensation started",
		zap.String("transaction_id", transaction.ID.String()))

	return nil
}

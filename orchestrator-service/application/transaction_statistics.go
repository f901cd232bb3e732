package application

import (
	"context"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/pkg/errors"
)

// TransactionStatisticsResponse aggregates outcome counts over the full
// known transaction population.
type TransactionStatisticsResponse struct {
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	Failed      int     `json:"failed"`
	Compensated int     `json:"compensated"`
	Pending     int     `json:"pending"`
	SuccessRate float64 `json:"success_rate"`
}

// TransactionStatistics use case computes aggregate saga outcomes
type TransactionStatistics struct {
	transactions domain.TransactionRepository
}

// NewTransactionStatistics creates a new TransactionStatistics use case
func NewTransactionStatistics(transactions domain.TransactionRepository) *TransactionStatistics {
	return &TransactionStatistics{transactions: transactions}
}

// Execute counts transactions per terminal outcome. Pending covers every
// non-terminal status (started, in_progress, compensating).
func (uc *TransactionStatistics) Execute(ctx context.Context) (*TransactionStatisticsResponse, error) {
	completed, err := uc.transactions.FindByStatus(ctx, domain.TransactionStatusCompleted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count completed transactions")
	}

	failed, err := uc.transactions.FindByStatus(ctx, domain.TransactionStatusFailed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count failed transactions")
	}

	compensated, err := uc.transactions.FindByStatus(ctx, domain.TransactionStatusCompensated)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count compensated transactions")
	}

	pending, err := uc.transactions.FindPendingTransactions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending transactions")
	}

	total := len(completed) + len(failed) + len(compensated) + len(pending)

	successRate := 0.0
	if total > 0 {
		successRate = float64(len(completed)) / float64(total) * 100
	}

	return &TransactionStatisticsResponse{
		Total:       total,
		Completed:   len(completed),
		Failed:      len(failed),
		Compensated: len(compensated),
		Pending:     len(pending),
		SuccessRate: successRate,
	}, nil
}

package application

import (
	"context"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/shared/events"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/pkg/errors"
)

// GetTransactionEvents use case reads the audit trail of saga notifications
// recorded for one transaction.
type GetTransactionEvents struct {
	transactions domain.TransactionRepository
	eventLog     events.EventLog
}

// NewGetTransactionEvents creates a new GetTransactionEvents use case
func NewGetTransactionEvents(transactions domain.TransactionRepository, eventLog events.EventLog) *GetTransactionEvents {
	return &GetTransactionEvents{transactions: transactions, eventLog: eventLog}
}

// Execute lists the recorded events for a transaction in append order
func (uc *GetTransactionEvents) Execute(ctx context.Context, id models.ID) ([]*events.Event, error) {
	transaction, err := uc.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find transaction")
	}
	if transaction == nil {
		return nil, domain.ErrTransactionNotFound
	}

	evts, err := uc.eventLog.ListByAggregate(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transaction events")
	}

	return evts, nil
}

package application

import (
	"context"
	"time"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/pkg/errors"
)

// GetTransactionStatusQuery represents the query for a transaction's state
type GetTransactionStatusQuery struct {
	TransactionID string `json:"transaction_id"`
	CustomerID    string `json:"customer_id"`
}

// TransactionStatusResponse is the caller-facing view of a transaction
type TransactionStatusResponse struct {
	TransactionID  string                 `json:"transaction_id"`
	CustomerID     string                 `json:"customer_id"`
	VehicleID      string                 `json:"vehicle_id"`
	Type           string                 `json:"type"`
	Status         string                 `json:"status"`
	Steps          []string               `json:"steps"`
	CompletedSteps []string               `json:"completed_steps"`
	CurrentStep    string                 `json:"current_step,omitempty"`
	FailedStep     *string                `json:"failed_step,omitempty"`
	FailureReason  *string                `json:"failure_reason,omitempty"`
	Context        map[string]interface{} `json:"context"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// GetTransactionStatus use case returns the authoritative recorded state of
// a transaction, restricted to the customer that initiated it.
type GetTransactionStatus struct {
	transactions domain.TransactionRepository
}

// NewGetTransactionStatus creates a new GetTransactionStatus use case
func NewGetTransactionStatus(transactions domain.TransactionRepository) *GetTransactionStatus {
	return &GetTransactionStatus{transactions: transactions}
}

// Execute returns a transaction's state after checking ownership
func (uc *GetTransactionStatus) Execute(ctx context.Context, query *GetTransactionStatusQuery) (*TransactionStatusResponse, error) {
	if query.TransactionID == "" {
		return nil, errors.New("transaction ID is required")
	}
	if query.CustomerID == "" {
		return nil, errors.New("customer ID is required")
	}

	transaction, err := uc.transactions.FindByID(ctx, models.ID(query.TransactionID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find transaction")
	}
	if transaction == nil {
		return nil, domain.ErrTransactionNotFound
	}

	if transaction.CustomerID.String() != query.CustomerID {
		return nil, domain.ErrTransactionAccessDenied
	}

	currentStep, _ := transaction.CurrentStep()

	return &TransactionStatusResponse{
		TransactionID:  transaction.ID.String(),
		CustomerID:     transaction.CustomerID.String(),
		VehicleID:      transaction.VehicleID.String(),
		Type:           string(transaction.Type),
		Status:         string(transaction.Status),
		Steps:          transaction.Steps(),
		CompletedSteps: transaction.CompletedSteps,
		CurrentStep:    currentStep,
		FailedStep:     transaction.FailedStep,
		FailureReason:  transaction.FailureReason,
		Context:        transaction.Context,
		CreatedAt:      transaction.Timestamps.CreatedAt,
		UpdatedAt:      transaction.Timestamps.UpdatedAt,
	}, nil
}

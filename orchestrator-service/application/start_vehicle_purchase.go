package application

import (
	"context"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/saga"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/pkg/errors"
)

// ErrInvalidCommand indicates a command that failed validation
var ErrInvalidCommand = errors.New("invalid command")

// StartVehiclePurchaseCommand represents the command to start a purchase
type StartVehiclePurchaseCommand struct {
	CustomerID   string                 `json:"customer_id"`
	VehicleID    string                 `json:"vehicle_id"`
	CustomerData map[string]interface{} `json:"customer_data,omitempty"`
	AuthToken    string                 `json:"-"`
}

// StartVehiclePurchaseResponse represents the response after starting
type StartVehiclePurchaseResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	CurrentStep   string `json:"current_step"`
}

// StartVehiclePurchase use case creates a new purchase transaction
type StartVehiclePurchase struct {
	purchaseSaga *saga.VehiclePurchaseSaga
}

// NewStartVehiclePurchase creates a new StartVehiclePurchase use case
func NewStartVehiclePurchase(purchaseSaga *saga.VehiclePurchaseSaga) *StartVehiclePurchase {
	return &StartVehiclePurchase{purchaseSaga: purchaseSaga}
}

// Execute starts a vehicle purchase transaction
func (uc *StartVehiclePurchase) Execute(ctx context.Context, cmd *StartVehiclePurchaseCommand) (*StartVehiclePurchaseResponse, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	transaction, err := uc.purchaseSaga.StartTransaction(
		ctx,
		models.ID(cmd.CustomerID),
		models.ID(cmd.VehicleID),
		cmd.CustomerData,
		cmd.AuthToken,
	)
	if err != nil {
		return nil, err
	}

	currentStep, _ := transaction.CurrentStep()

	return &StartVehiclePurchaseResponse{
		TransactionID: transaction.ID.String(),
		Status:        string(transaction.Status),
		CurrentStep:   currentStep,
	}, nil
}

func (uc *StartVehiclePurchase) validateCommand(cmd *StartVehiclePurchaseCommand) error {
	if cmd.CustomerID == "" {
		return errors.Wrap(ErrInvalidCommand, "customer ID is required")
	}

	if cmd.VehicleID == "" {
		return errors.Wrap(ErrInvalidCommand, "vehicle ID is required")
	}

	if cmd.AuthToken == "" {
		return errors.Wrap(ErrInvalidCommand, "auth token is required")
	}

	return nil
}

package saga

import (
	"context"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/shared/events"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/draftea/vehicle-sales-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// VehiclePurchaseSaga encodes the fixed forward workflow for the
// purchase_vehicle transaction type and its reverse compensations, executing
// each step against the peer services through the injected gateways.
type VehiclePurchaseSaga struct {
	transactions domain.TransactionRepository
	inventory    domain.InventoryGateway
	reservations domain.ReservationGateway
	payments     domain.PaymentGateway
	sales        domain.SalesGateway
	publisher    events.Publisher
	eventLog     events.EventLog
	logger       *zap.Logger
}

// NewVehiclePurchaseSaga creates a new VehiclePurchaseSaga
func NewVehiclePurchaseSaga(
	transactions domain.TransactionRepository,
	inventory domain.InventoryGateway,
	reservations domain.ReservationGateway,
	payments domain.PaymentGateway,
	sales domain.SalesGateway,
	publisher events.Publisher,
	eventLog events.EventLog,
	logger *zap.Logger,
) *VehiclePurchaseSaga {
	return &VehiclePurchaseSaga{
		transactions: transactions,
		inventory:    inventory,
		reservations: reservations,
		payments:     payments,
		sales:        sales,
		publisher:    publisher,
		eventLog:     eventLog,
		logger:       logger,
	}
}

// StartTransaction creates a new purchase transaction, fetches the vehicle
// pricing data synchronously and leaves the transaction in_progress for the
// batch processor to drive. The vehicle lookup is the one operation executed
// before in_progress; its failure is terminal for the creation call and is
// propagated to the caller.
func (s *VehiclePurchaseSaga) StartTransaction(
	ctx context.Context,
	customerID, vehicleID models.ID,
	customerData map[string]interface{},
	authToken string,
) (*domain.Transaction, error) {
	transaction, err := domain.NewTransaction(customerID, vehicleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	transaction.AddToContext(domain.ContextKeyCustomerData, customerData)
	transaction.AddToContext(domain.ContextKeyAuthToken, authToken)

	vehicle, err := s.inventory.GetVehicleDetails(ctx, vehicleID, authToken)
	if err != nil {
		if failErr := transaction.FailStep(domain.StepGetVehicleDetails, err.Error()); failErr != nil {
			s.logger.Error("failed to record vehicle lookup failure",
				zap.String("transaction_id", transaction.ID.String()),
				zap.Error(failErr))
		}
		if saveErr := s.transactions.Save(ctx, transaction); saveErr != nil {
			s.logger.Error("failed to persist failed transaction",
				zap.String("transaction_id", transaction.ID.String()),
				zap.Error(saveErr))
		}
		s.flushEvents(ctx, transaction)
		return nil, errors.Wrap(err, "failed to fetch vehicle details")
	}

	transaction.AddToContext(domain.ContextKeyVehicleData, vehicle)
	transaction.AddToContext(domain.ContextKeyVehiclePrice, vehicle.Price)

	if err := s.transactions.Save(ctx, transaction); err != nil {
		return nil, errors.Wrap(err, "failed to save transaction")
	}

	if err := transaction.StartProgress(); err != nil {
		return nil, err
	}

	if err := s.transactions.Update(ctx, transaction); err != nil {
		return nil, errors.Wrap(err, "failed to update transaction")
	}

	s.flushEvents(ctx, transaction)

	s.logger.Info("vehicle purchase transaction started",
		zap.String("transaction_id", transaction.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("vehicle_id", vehicleID.String()))

	return transaction, nil
}

// ProcessNextStep executes exactly one forward step for the transaction. A
// step failure, whether a business decline or a gateway fault, is captured
// into transaction state and never re-raised: the returned error reflects
// persistence problems only.
func (s *VehiclePurchaseSaga) ProcessNextStep(ctx context.Context, transaction *domain.Transaction) error {
	// Only in_progress transactions advance. This guard makes a retried
	// processor call a no-op once a failure has been recorded.
	if transaction.Status != domain.TransactionStatusInProgress {
		return nil
	}

	step, ok := transaction.CurrentStep()
	if !ok {
		return nil
	}

	result, err := s.executeStep(ctx, transaction, step)
	if err != nil {
		return s.failStep(ctx, transaction, step, err.Error())
	}
	if result.Failed() {
		return s.failStep(ctx, transaction, step, result.Reason())
	}

	transaction.CompleteStep(step, result.Data())
	telemetry.RecordCounter(ctx, "saga_steps_executed_total", "Forward saga steps executed", 1,
		attribute.String("step", step))

	if _, remaining := transaction.CurrentStep(); !remaining {
		if err := transaction.Complete(); err != nil {
			return err
		}
		s.logger.Info("vehicle purchase transaction completed",
			zap.String("transaction_id", transaction.ID.String()))
	}

	if err := s.transactions.Update(ctx, transaction); err != nil {
		return errors.Wrap(err, "failed to update transaction")
	}

	s.flushEvents(ctx, transaction)
	return nil
}

// CompensateTransaction executes exactly one compensation step, walking the
// completed steps in reverse. When nothing is left to compensate the
// transaction is marked compensated. A compensation failure is logged and
// swallowed: the transaction stays compensating and the same step is
// retried on the next scan.
func (s *VehiclePurchaseSaga) CompensateTransaction(ctx context.Context, transaction *domain.Transaction) error {
	if !transaction.IsCompensating() {
		return nil
	}

	step, ok := transaction.NextCompensationStep()
	if !ok {
		if err := transaction.CompleteCompensation(); err != nil {
			return err
		}
		if err := s.transactions.Update(ctx, transaction); err != nil {
			return errors.Wrap(err, "failed to update transaction")
		}
		s.flushEvents(ctx, transaction)
		s.logger.Info("transaction fully compensated",
			zap.String("transaction_id", transaction.ID.String()))
		return nil
	}

	if err := s.compensateStep(ctx, transaction, step); err != nil {
		s.logger.Error("compensation step failed",
			zap.String("transaction_id", transaction.ID.String()),
			zap.String("step", step),
			zap.Error(err))
		telemetry.RecordCounter(ctx, "saga_compensation_failures_total", "Failed compensation attempts", 1,
			attribute.String("step", step))
		return nil
	}

	transaction.CompleteStep(domain.CompensatedStepName(step), nil)
	telemetry.RecordCounter(ctx, "saga_steps_compensated_total", "Saga steps compensated", 1,
		attribute.String("step", step))

	if err := s.transactions.Update(ctx, transaction); err != nil {
		return errors.Wrap(err, "failed to update transaction")
	}

	s.flushEvents(ctx, transaction)
	return nil
}

// executeStep invokes the peer-service operation for one forward step and
// returns its tagged outcome. Returned errors are transport or service
// faults; expected business declines come back as StepFailure values.
func (s *VehiclePurchaseSaga) executeStep(ctx context.Context, transaction *domain.Transaction, step string) (domain.StepResult, error) {
	authToken, err := s.authToken(transaction)
	if err != nil {
		return domain.StepResult{}, err
	}

	switch step {
	case domain.StepCreateReservation:
		reservation, err := s.reservations.CreateReservation(ctx, transaction.CustomerID, transaction.VehicleID, authToken)
		if err != nil {
			return domain.StepResult{}, err
		}
		return domain.StepSuccess(map[string]interface{}{
			"reservation_id": reservation.ReservationID,
			"expires_at":     reservation.ExpiresAt,
		}), nil

	case domain.StepGeneratePaymentCode:
		var reservation domain.Reservation
		if err := transaction.ContextValue(domain.StepDataKey(domain.StepCreateReservation), &reservation); err != nil {
			return domain.StepResult{}, err
		}
		price, err := s.vehiclePrice(transaction)
		if err != nil {
			return domain.StepResult{}, err
		}

		code, err := s.payments.GeneratePaymentCode(ctx, reservation.ReservationID, price, authToken)
		if err != nil {
			return domain.StepResult{}, err
		}
		return domain.StepSuccess(map[string]interface{}{
			"payment_code": code.PaymentCode,
		}), nil

	case domain.StepProcessPayment:
		var code domain.PaymentCode
		if err := transaction.ContextValue(domain.StepDataKey(domain.StepGeneratePaymentCode), &code); err != nil {
			return domain.StepResult{}, err
		}
		price, err := s.vehiclePrice(transaction)
		if err != nil {
			return domain.StepResult{}, err
		}

		intent, err := s.payments.CreatePayment(ctx, code.PaymentCode, price, authToken)
		if err != nil {
			return domain.StepResult{}, err
		}

		execution, err := s.payments.ExecutePayment(ctx, intent.PaymentID, authToken)
		if err != nil {
			return domain.StepResult{}, err
		}
		if !execution.Success {
			// Declined payment is an expected business outcome reported by
			// the gateway, carried into the failure reason as-is.
			return domain.StepFailure(execution.Message), nil
		}
		return domain.StepSuccess(map[string]interface{}{
			"payment_id":     execution.PaymentID,
			"transaction_id": execution.TransactionID,
			"amount_paid":    execution.AmountPaid,
		}), nil

	case domain.StepCreateSale:
		var reservation domain.Reservation
		if err := transaction.ContextValue(domain.StepDataKey(domain.StepCreateReservation), &reservation); err != nil {
			return domain.StepResult{}, err
		}
		var payment struct {
			PaymentID  models.ID    `json:"payment_id"`
			AmountPaid models.Money `json:"amount_paid"`
		}
		if err := transaction.ContextValue(domain.StepDataKey(domain.StepProcessPayment), &payment); err != nil {
			return domain.StepResult{}, err
		}
		var customerData map[string]interface{}
		if err := transaction.ContextValue(domain.ContextKeyCustomerData, &customerData); err != nil {
			return domain.StepResult{}, err
		}

		sale, err := s.sales.CreateSale(ctx, &domain.CreateSaleRequest{
			CustomerID:    transaction.CustomerID,
			VehicleID:     transaction.VehicleID,
			ReservationID: reservation.ReservationID,
			PaymentID:     payment.PaymentID,
			Amount:        payment.AmountPaid,
			CustomerData:  customerData,
		}, authToken)
		if err != nil {
			return domain.StepResult{}, err
		}
		return domain.StepSuccess(map[string]interface{}{
			"sale_id":      sale.SaleID,
			"contract_pdf": sale.ContractPDF,
			"invoice_pdf":  sale.InvoicePDF,
		}), nil

	case domain.StepUpdateVehicleStatus:
		if err := s.inventory.UpdateVehicleStatus(ctx, transaction.VehicleID, domain.VehicleStatusSold, authToken); err != nil {
			return domain.StepResult{}, err
		}
		return domain.StepSuccess(nil), nil

	default:
		return domain.StepResult{}, errors.Errorf("unknown step %q", step)
	}
}

// compensateStep semantically undoes one completed forward step
func (s *VehiclePurchaseSaga) compensateStep(ctx context.Context, transaction *domain.Transaction, step string) error {
	authToken, err := s.authToken(transaction)
	if err != nil {
		return err
	}

	switch step {
	case domain.StepUpdateVehicleStatus:
		return s.inventory.UpdateVehicleStatus(ctx, transaction.VehicleID, domain.VehicleStatusAvailable, authToken)

	case domain.StepCreateSale:
		var sale domain.Sale
		if err := transaction.ContextValue(domain.StepDataKey(domain.StepCreateSale), &sale); err != nil {
			return err
		}
		return s.sales.CancelSale(ctx, sale.SaleID, authToken)

	case domain.StepProcessPayment:
		var payment struct {
			PaymentID models.ID `json:"payment_id"`
		}
		if err := transaction.ContextValue(domain.StepDataKey(domain.StepProcessPayment), &payment); err != nil {
			return err
		}
		return s.payments.RefundPayment(ctx, payment.PaymentID, authToken)

	case domain.StepCreateReservation:
		var reservation domain.Reservation
		if err := transaction.ContextValue(domain.StepDataKey(domain.StepCreateReservation), &reservation); err != nil {
			return err
		}
		return s.reservations.CancelReservation(ctx, reservation.ReservationID, authToken)

	case domain.StepGeneratePaymentCode:
		// Payment codes expire on their own, nothing to undo remotely
		return nil

	default:
		return errors.Errorf("unknown compensation step %q", step)
	}
}

// failStep records a step failure into transaction state. The failure is
// not propagated: it is visible through the transaction status only.
func (s *VehiclePurchaseSaga) failStep(ctx context.Context, transaction *domain.Transaction, step, reason string) error {
	s.logger.Warn("saga step failed",
		zap.String("transaction_id", transaction.ID.String()),
		zap.String("step", step),
		zap.String("reason", reason))

	if err := transaction.FailStep(step, reason); err != nil {
		return err
	}

	telemetry.RecordCounter(ctx, "saga_steps_failed_total", "Forward saga steps failed", 1,
		attribute.String("step", step))

	if err := s.transactions.Update(ctx, transaction); err != nil {
		return errors.Wrap(err, "failed to update transaction")
	}

	s.flushEvents(ctx, transaction)
	return nil
}

// flushEvents appends recorded domain events to the audit log and publishes
// them. Publication is fire-and-forget: failures are logged, never raised.
func (s *VehiclePurchaseSaga) flushEvents(ctx context.Context, transaction *domain.Transaction) {
	evts := transaction.Events()
	if len(evts) == 0 {
		return
	}

	if err := s.eventLog.Append(ctx, evts...); err != nil {
		s.logger.Warn("failed to append saga events to audit log",
			zap.String("transaction_id", transaction.ID.String()),
			zap.Error(err))
	}

	if err := s.publisher.Publish(ctx, evts...); err != nil {
		s.logger.Warn("failed to publish saga events",
			zap.String("transaction_id", transaction.ID.String()),
			zap.Error(err))
	}

	transaction.ClearEvents()
}

func (s *VehiclePurchaseSaga) authToken(transaction *domain.Transaction) (string, error) {
	var token string
	if err := transaction.ContextValue(domain.ContextKeyAuthToken, &token); err != nil {
		return "", err
	}
	return token, nil
}

func (s *VehiclePurchaseSaga) vehiclePrice(transaction *domain.Transaction) (models.Money, error) {
	var price models.Money
	if err := transaction.ContextValue(domain.ContextKeyVehiclePrice, &price); err != nil {
		return models.Money{}, err
	}
	return price, nil
}

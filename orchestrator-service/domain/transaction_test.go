package domain

import (
	"testing"

	"github.com/draftea/vehicle-sales-system/shared/events"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(t *testing.T) *Transaction {
	t.Helper()
	transaction, err := NewTransaction("customer-123", "vehicle-456")
	require.NoError(t, err)
	return transaction
}

func TestNewTransaction(t *testing.T) {
	tests := []struct {
		name          string
		customerID    models.ID
		vehicleID     models.ID
		expectedError string
	}{
		{
			name:       "creates transaction with valid ids",
			customerID: "customer-123",
			vehicleID:  "vehicle-456",
		},
		{
			name:          "rejects empty customer ID",
			customerID:    "",
			vehicleID:     "vehicle-456",
			expectedError: "customer ID is required",
		},
		{
			name:          "rejects empty vehicle ID",
			customerID:    "customer-123",
			vehicleID:     "",
			expectedError: "vehicle ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transaction, err := NewTransaction(tt.customerID, tt.vehicleID)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, transaction)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, transaction.ID)
			assert.Equal(t, tt.customerID, transaction.CustomerID)
			assert.Equal(t, tt.vehicleID, transaction.VehicleID)
			assert.Equal(t, TransactionTypePurchaseVehicle, transaction.Type)
			assert.Equal(t, TransactionStatusStarted, transaction.Status)
			assert.Empty(t, transaction.CompletedSteps)
			assert.Empty(t, transaction.Context)
		})
	}
}

func TestTransaction_Steps(t *testing.T) {
	transaction := newTestTransaction(t)

	expected := []string{
		StepCreateReservation,
		StepGeneratePaymentCode,
		StepProcessPayment,
		StepCreateSale,
		StepUpdateVehicleStatus,
	}
	assert.Equal(t, expected, transaction.Steps())
}

func TestTransaction_CurrentStep(t *testing.T) {
	transaction := newTestTransaction(t)

	step, ok := transaction.CurrentStep()
	require.True(t, ok)
	assert.Equal(t, StepCreateReservation, step)

	transaction.CompleteStep(StepCreateReservation, nil)
	step, ok = transaction.CurrentStep()
	require.True(t, ok)
	assert.Equal(t, StepGeneratePaymentCode, step)

	for _, s := range transaction.Steps() {
		transaction.CompleteStep(s, nil)
	}
	_, ok = transaction.CurrentStep()
	assert.False(t, ok)
}

func TestTransaction_StartProgress(t *testing.T) {
	transaction := newTestTransaction(t)

	err := transaction.StartProgress()
	require.NoError(t, err)
	assert.Equal(t, TransactionStatusInProgress, transaction.Status)

	recorded := transaction.Events()
	require.Len(t, recorded, 1)
	assert.Equal(t, events.SagaTransactionStartedEvent, recorded[0].Topic)

	// Second start is a state machine violation
	err = transaction.StartProgress()
	assert.Error(t, err)
}

func TestTransaction_CompleteStep(t *testing.T) {
	t.Run("records step and result data", func(t *testing.T) {
		transaction := newTestTransaction(t)
		require.NoError(t, transaction.StartProgress())

		data := map[string]interface{}{"reservation_id": "res-1"}
		transaction.CompleteStep(StepCreateReservation, data)

		assert.True(t, transaction.HasCompletedStep(StepCreateReservation))
		stored, ok := transaction.FromContext(StepDataKey(StepCreateReservation))
		require.True(t, ok)
		assert.Equal(t, data, stored)
	})

	t.Run("is idempotent", func(t *testing.T) {
		transaction := newTestTransaction(t)
		require.NoError(t, transaction.StartProgress())

		transaction.CompleteStep(StepCreateReservation, map[string]interface{}{"reservation_id": "res-1"})
		transaction.CompleteStep(StepCreateReservation, map[string]interface{}{"reservation_id": "res-2"})

		assert.Equal(t, []string{StepCreateReservation}, transaction.CompletedSteps)
		stored, _ := transaction.FromContext(StepDataKey(StepCreateReservation))
		assert.Equal(t, map[string]interface{}{"reservation_id": "res-1"}, stored)
	})

	t.Run("skips context write for nil data", func(t *testing.T) {
		transaction := newTestTransaction(t)
		require.NoError(t, transaction.StartProgress())

		transaction.CompleteStep(StepUpdateVehicleStatus, nil)

		_, ok := transaction.FromContext(StepDataKey(StepUpdateVehicleStatus))
		assert.False(t, ok)
	})
}

func TestTransaction_FailStep(t *testing.T) {
	t.Run("records failure with step and reason", func(t *testing.T) {
		transaction := newTestTransaction(t)
		require.NoError(t, transaction.StartProgress())

		err := transaction.FailStep(StepProcessPayment, "Pagamento recusado")
		require.NoError(t, err)

		assert.Equal(t, TransactionStatusFailed, transaction.Status)
		require.NotNil(t, transaction.FailedStep)
		assert.Equal(t, StepProcessPayment, *transaction.FailedStep)
		require.NotNil(t, transaction.FailureReason)
		assert.Equal(t, "Pagamento recusado", *transaction.FailureReason)

		recorded := transaction.Events()
		require.Len(t, recorded, 2)
		assert.Equal(t, events.SagaStepFailedEvent, recorded[1].Topic)
	})

	t.Run("allowed from started status", func(t *testing.T) {
		transaction := newTestTransaction(t)

		err := transaction.FailStep(StepGetVehicleDetails, "inventory service returned 404: not found")
		require.NoError(t, err)
		assert.Equal(t, TransactionStatusFailed, transaction.Status)
	})

	t.Run("rejected once already failed", func(t *testing.T) {
		transaction := newTestTransaction(t)
		require.NoError(t, transaction.StartProgress())
		require.NoError(t, transaction.FailStep(StepProcessPayment, "first failure"))

		err := transaction.FailStep(StepCreateSale, "second failure")
		assert.Error(t, err)
		assert.Equal(t, "first failure", *transaction.FailureReason)
	})
}

func TestTransaction_Complete(t *testing.T) {
	t.Run("completes when every step is done", func(t *testing.T) {
		transaction := newTestTransaction(t)
		require.NoError(t, transaction.StartProgress())
		for _, step := range transaction.Steps() {
			transaction.CompleteStep(step, nil)
		}

		err := transaction.Complete()
		require.NoError(t, err)
		assert.Equal(t, TransactionStatusCompleted, transaction.Status)
		assert.True(t, transaction.IsTerminal())

		recorded := transaction.Events()
		assert.Equal(t, events.SagaTransactionCompletedEvent, recorded[len(recorded)-1].Topic)
	})

	t.Run("rejects completion with pending steps", func(t *testing.T) {
		transaction := newTestTransaction(t)
		require.NoError(t, transaction.StartProgress())
		transaction.CompleteStep(StepCreateReservation, nil)

		err := transaction.Complete()
		assert.Error(t, err)
		assert.Equal(t, TransactionStatusInProgress, transaction.Status)
	})
}

func TestTransaction_Compensation(t *testing.T) {
	failedAfter := func(t *testing.T, steps ...string) *Transaction {
		t.Helper()
		transaction := newTestTransaction(t)
		require.NoError(t, transaction.StartProgress())
		for _, step := range steps {
			transaction.CompleteStep(step, nil)
		}
		require.NoError(t, transaction.FailStep(StepCreateSale, "sales service returned 500: boom"))
		return transaction
	}

	t.Run("only a failed transaction can start compensation", func(t *testing.T) {
		transaction := newTestTransaction(t)
		require.NoError(t, transaction.StartProgress())
		assert.Error(t, transaction.StartCompensation())

		failed := failedAfter(t, StepCreateReservation)
		require.NoError(t, failed.StartCompensation())
		assert.Equal(t, TransactionStatusCompensating, failed.Status)
		assert.True(t, failed.IsCompensating())
	})

	t.Run("walks completed steps in reverse order", func(t *testing.T) {
		transaction := failedAfter(t, StepCreateReservation, StepGeneratePaymentCode, StepProcessPayment)
		require.NoError(t, transaction.StartCompensation())

		step, ok := transaction.NextCompensationStep()
		require.True(t, ok)
		assert.Equal(t, StepProcessPayment, step)
		transaction.CompleteStep(CompensatedStepName(step), nil)

		step, ok = transaction.NextCompensationStep()
		require.True(t, ok)
		assert.Equal(t, StepGeneratePaymentCode, step)
		transaction.CompleteStep(CompensatedStepName(step), nil)

		step, ok = transaction.NextCompensationStep()
		require.True(t, ok)
		assert.Equal(t, StepCreateReservation, step)
		transaction.CompleteStep(CompensatedStepName(step), nil)

		_, ok = transaction.NextCompensationStep()
		assert.False(t, ok)
	})

	t.Run("nothing to unwind when no step completed", func(t *testing.T) {
		transaction := failedAfter(t)
		require.NoError(t, transaction.StartCompensation())

		_, ok := transaction.NextCompensationStep()
		assert.False(t, ok)

		require.NoError(t, transaction.CompleteCompensation())
		assert.Equal(t, TransactionStatusCompensated, transaction.Status)
		assert.True(t, transaction.IsTerminal())
	})

	t.Run("compensation markers are not forward steps", func(t *testing.T) {
		transaction := failedAfter(t, StepCreateReservation)
		require.NoError(t, transaction.StartCompensation())
		transaction.CompleteStep(CompensatedStepName(StepCreateReservation), nil)

		assert.True(t, IsCompensationMarker(CompensatedStepName(StepCreateReservation)))
		assert.False(t, IsCompensationMarker(StepCreateReservation))

		_, ok := transaction.NextCompensationStep()
		assert.False(t, ok)
	})
}

func TestTransaction_ResetForRetry(t *testing.T) {
	t.Run("clears failure and resumes from current step", func(t *testing.T) {
		transaction := newTestTransaction(t)
		require.NoError(t, transaction.StartProgress())
		transaction.CompleteStep(StepCreateReservation, nil)
		require.NoError(t, transaction.FailStep(StepGeneratePaymentCode, "payment service returned 503: unavailable"))

		err := transaction.ResetForRetry()
		require.NoError(t, err)

		assert.Equal(t, TransactionStatusInProgress, transaction.Status)
		assert.Nil(t, transaction.FailureReason)
		assert.Nil(t, transaction.FailedStep)

		step, ok := transaction.CurrentStep()
		require.True(t, ok)
		assert.Equal(t, StepGeneratePaymentCode, step)
	})

	t.Run("rejected for non-failed statuses", func(t *testing.T) {
		transaction := newTestTransaction(t)
		require.NoError(t, transaction.StartProgress())

		err := transaction.ResetForRetry()
		assert.True(t, errors.Is(err, ErrTransactionNotRetryable))
	})
}

func TestTransaction_AddToContext(t *testing.T) {
	transaction := newTestTransaction(t)

	transaction.AddToContext(ContextKeyAuthToken, "token-1")
	transaction.AddToContext(ContextKeyAuthToken, "token-2")

	value, ok := transaction.FromContext(ContextKeyAuthToken)
	require.True(t, ok)
	assert.Equal(t, "token-1", value)

	_, ok = transaction.FromContext("missing")
	assert.False(t, ok)
}

func TestRestoreTransaction(t *testing.T) {
	restored := RestoreTransaction(
		"tx-1", "customer-123", "vehicle-456",
		TransactionTypePurchaseVehicle,
		TransactionStatusInProgress,
		nil, nil,
		nil, nil,
		nil, nil,
		models.NewTimestamps(),
		models.NewVersion(),
	)

	assert.Equal(t, models.ID("tx-1"), restored.ID)
	assert.NotNil(t, restored.CompletedSteps)
	assert.NotNil(t, restored.Context)
	assert.Empty(t, restored.Events())
}

func TestTransaction_PersistedVersion(t *testing.T) {
	t.Run("survives multiple version bumps per persist cycle", func(t *testing.T) {
		restored := RestoreTransaction(
			"tx-1", "customer-123", "vehicle-456",
			TransactionTypePurchaseVehicle,
			TransactionStatusInProgress,
			[]string{StepCreateReservation, StepGeneratePaymentCode, StepProcessPayment, StepCreateSale},
			nil,
			nil, nil,
			nil, nil,
			models.NewTimestamps(),
			models.Version{Value: 7},
		)

		// The final forward step completes and closes the transaction in the
		// same persist cycle, bumping the in-memory version more than once.
		restored.CompleteStep(StepUpdateVehicleStatus, map[string]interface{}{"status": "sold"})
		require.NoError(t, restored.Complete())

		assert.Greater(t, restored.Version.Value, 8)
		assert.Equal(t, 7, restored.PersistedVersion())

		restored.MarkPersisted()
		assert.Equal(t, restored.Version.Value, restored.PersistedVersion())
	})

	t.Run("zero until first saved", func(t *testing.T) {
		transaction := newTestTransaction(t)
		assert.Equal(t, 0, transaction.PersistedVersion())

		transaction.MarkPersisted()
		assert.Equal(t, transaction.Version.Value, transaction.PersistedVersion())
	})
}

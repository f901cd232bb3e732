package application

import (
	"context"
	"testing"
	"time"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/orchestrator-service/mocks"
	"github.com/draftea/vehicle-sales-system/orchestrator-service/saga"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testFixture wires a real saga over mocked ports, the way the processor
// runs in production.
type testFixture struct {
	transactions *mocks.MockTransactionRepository
	inventory    *mocks.MockInventoryGateway
	reservations *mocks.MockReservationGateway
	payments     *mocks.MockPaymentGateway
	sales        *mocks.MockSalesGateway
	publisher    *mocks.MockPublisher
	eventLog     *mocks.MockEventLog
	purchaseSaga *saga.VehiclePurchaseSaga
	processor    *ProcessTransactions
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		transactions: mocks.NewMockTransactionRepository(t),
		inventory:    mocks.NewMockInventoryGateway(t),
		reservations: mocks.NewMockReservationGateway(t),
		payments:     mocks.NewMockPaymentGateway(t),
		sales:        mocks.NewMockSalesGateway(t),
		publisher:    mocks.NewMockPublisher(t),
		eventLog:     mocks.NewMockEventLog(t),
	}

	f.purchaseSaga = saga.NewVehiclePurchaseSaga(
		f.transactions,
		f.inventory,
		f.reservations,
		f.payments,
		f.sales,
		f.publisher,
		f.eventLog,
		zap.NewNop(),
	)
	f.processor = NewProcessTransactions(f.transactions, f.purchaseSaga, 30*time.Second, zap.NewNop())

	f.eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	return f
}

func inProgressTransaction(t *testing.T) *domain.Transaction {
	t.Helper()

	transaction, err := domain.NewTransaction("customer-123", "vehicle-456")
	require.NoError(t, err)

	transaction.AddToContext(domain.ContextKeyCustomerData, map[string]interface{}{"name": "Maria Silva"})
	transaction.AddToContext(domain.ContextKeyAuthToken, "test-token")
	transaction.AddToContext(domain.ContextKeyVehiclePrice, models.NewMoney(4500000, "BRL"))

	require.NoError(t, transaction.StartProgress())
	transaction.ClearEvents()
	return transaction
}

func failedTransaction(t *testing.T) *domain.Transaction {
	t.Helper()

	transaction := inProgressTransaction(t)
	transaction.CompleteStep(domain.StepCreateReservation, map[string]interface{}{"reservation_id": "res-1"})
	require.NoError(t, transaction.FailStep(domain.StepGeneratePaymentCode, "payment service returned 503: unavailable"))
	transaction.ClearEvents()
	return transaction
}

func TestProcessTransactions_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("advances each pending transaction by one step", func(t *testing.T) {
		f := newTestFixture(t)
		transaction := inProgressTransaction(t)

		f.transactions.EXPECT().FindPendingTransactions(mock.Anything).
			Return([]*domain.Transaction{transaction}, nil).Once()
		f.transactions.EXPECT().Claim(mock.Anything, transaction.ID, mock.Anything, 30*time.Second).
			Return(true, nil).Once()
		f.transactions.EXPECT().Release(mock.Anything, transaction.ID, mock.Anything).
			Return(nil).Once()
		f.reservations.EXPECT().CreateReservation(mock.Anything, models.ID("customer-123"), models.ID("vehicle-456"), "test-token").
			Return(&domain.Reservation{ReservationID: "res-1", ExpiresAt: time.Now().Add(30 * time.Minute)}, nil).Once()
		f.transactions.EXPECT().Update(mock.Anything, transaction).Return(nil).Once()
		f.transactions.EXPECT().FindByID(mock.Anything, transaction.ID).Return(transaction, nil).Once()

		results, err := f.processor.Execute(ctx)
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, ProcessStatusProcessed, results[0].Status)
		assert.Equal(t, domain.TransactionStatusInProgress, results[0].StatusBefore)
		assert.Equal(t, domain.TransactionStatusInProgress, results[0].StatusAfter)
		assert.Equal(t, domain.StepCreateReservation, results[0].StepBefore)
		assert.Equal(t, domain.StepGeneratePaymentCode, results[0].StepAfter)
	})

	t.Run("one transaction's failure does not abort the batch", func(t *testing.T) {
		f := newTestFixture(t)
		broken := inProgressTransaction(t)
		healthy := inProgressTransaction(t)

		f.transactions.EXPECT().FindPendingTransactions(mock.Anything).
			Return([]*domain.Transaction{broken, healthy}, nil).Once()
		f.transactions.EXPECT().Claim(mock.Anything, broken.ID, mock.Anything, mock.Anything).
			Return(false, errors.New("database gone")).Once()
		f.transactions.EXPECT().Claim(mock.Anything, healthy.ID, mock.Anything, mock.Anything).
			Return(true, nil).Once()
		f.transactions.EXPECT().Release(mock.Anything, healthy.ID, mock.Anything).
			Return(nil).Once()
		f.reservations.EXPECT().CreateReservation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.Reservation{ReservationID: "res-2", ExpiresAt: time.Now().Add(30 * time.Minute)}, nil).Once()
		f.transactions.EXPECT().Update(mock.Anything, healthy).Return(nil).Once()
		f.transactions.EXPECT().FindByID(mock.Anything, healthy.ID).Return(healthy, nil).Once()

		results, err := f.processor.Execute(ctx)
		require.NoError(t, err)

		require.Len(t, results, 2)
		assert.Equal(t, ProcessStatusError, results[0].Status)
		assert.Contains(t, results[0].Error, "database gone")
		assert.Equal(t, ProcessStatusProcessed, results[1].Status)
	})

	t.Run("reports a transaction stranded in started status as skipped", func(t *testing.T) {
		f := newTestFixture(t)
		transaction, err := domain.NewTransaction("customer-123", "vehicle-456")
		require.NoError(t, err)

		f.transactions.EXPECT().FindPendingTransactions(mock.Anything).
			Return([]*domain.Transaction{transaction}, nil).Once()
		f.transactions.EXPECT().Claim(mock.Anything, transaction.ID, mock.Anything, mock.Anything).
			Return(true, nil).Once()
		f.transactions.EXPECT().Release(mock.Anything, transaction.ID, mock.Anything).
			Return(nil).Once()

		results, err := f.processor.Execute(ctx)
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, ProcessStatusSkipped, results[0].Status)
		assert.Equal(t, domain.TransactionStatusStarted, results[0].StatusAfter)
		assert.Empty(t, transaction.CompletedSteps)
	})

	t.Run("skips transactions leased by another instance", func(t *testing.T) {
		f := newTestFixture(t)
		transaction := inProgressTransaction(t)

		f.transactions.EXPECT().FindPendingTransactions(mock.Anything).
			Return([]*domain.Transaction{transaction}, nil).Once()
		f.transactions.EXPECT().Claim(mock.Anything, transaction.ID, mock.Anything, mock.Anything).
			Return(false, nil).Once()

		results, err := f.processor.Execute(ctx)
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, ProcessStatusSkipped, results[0].Status)
	})

	t.Run("propagates scan failures", func(t *testing.T) {
		f := newTestFixture(t)

		f.transactions.EXPECT().FindPendingTransactions(mock.Anything).
			Return(nil, errors.New("connection refused")).Once()

		results, err := f.processor.Execute(ctx)
		assert.Error(t, err)
		assert.Nil(t, results)
	})
}

func TestProcessTransactions_ProcessSingle(t *testing.T) {
	ctx := context.Background()

	t.Run("drives a compensating transaction backwards", func(t *testing.T) {
		f := newTestFixture(t)
		transaction := failedTransaction(t)
		require.NoError(t, transaction.StartCompensation())
		transaction.ClearEvents()

		f.reservations.EXPECT().CancelReservation(mock.Anything, models.ID("res-1"), "test-token").
			Return(nil).Once()
		f.transactions.EXPECT().Update(mock.Anything, transaction).Return(nil).Once()
		f.transactions.EXPECT().FindByID(mock.Anything, transaction.ID).Return(transaction, nil).Once()

		result := f.processor.ProcessSingle(ctx, transaction)

		assert.Equal(t, ProcessStatusProcessed, result.Status)
		assert.Equal(t, domain.TransactionStatusCompensating, result.StatusBefore)
		assert.Equal(t, domain.StepCreateReservation, result.StepBefore)
		assert.True(t, transaction.HasCompletedStep(domain.CompensatedStepName(domain.StepCreateReservation)))
	})

	t.Run("reload failure becomes an error result", func(t *testing.T) {
		f := newTestFixture(t)
		transaction := inProgressTransaction(t)

		f.reservations.EXPECT().CreateReservation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.Reservation{ReservationID: "res-1", ExpiresAt: time.Now().Add(30 * time.Minute)}, nil).Once()
		f.transactions.EXPECT().Update(mock.Anything, transaction).Return(nil).Once()
		f.transactions.EXPECT().FindByID(mock.Anything, transaction.ID).
			Return(nil, errors.New("connection refused")).Once()

		result := f.processor.ProcessSingle(ctx, transaction)

		assert.Equal(t, ProcessStatusError, result.Status)
		assert.Contains(t, result.Error, "failed to reload transaction")
	})
}

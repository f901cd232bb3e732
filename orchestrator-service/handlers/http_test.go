package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/application"
	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/orchestrator-service/mocks"
	"github.com/draftea/vehicle-sales-system/orchestrator-service/saga"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type handlerFixture struct {
	transactions *mocks.MockTransactionRepository
	inventory    *mocks.MockInventoryGateway
	router       *chi.Mux
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	transactions := mocks.NewMockTransactionRepository(t)
	inventory := mocks.NewMockInventoryGateway(t)
	reservations := mocks.NewMockReservationGateway(t)
	payments := mocks.NewMockPaymentGateway(t)
	sales := mocks.NewMockSalesGateway(t)
	publisher := mocks.NewMockPublisher(t)
	eventLog := mocks.NewMockEventLog(t)

	eventLog.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Maybe()
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	logger := zap.NewNop()
	purchaseSaga := saga.NewVehiclePurchaseSaga(
		transactions, inventory, reservations, payments, sales, publisher, eventLog, logger)
	processor := application.NewProcessTransactions(transactions, purchaseSaga, 30*time.Second, logger)

	h := NewTransactionHandlers(
		application.NewStartVehiclePurchase(purchaseSaga),
		application.NewGetTransactionStatus(transactions),
		application.NewGetTransactionEvents(transactions, eventLog),
		processor,
		application.NewRetryFailedTransaction(transactions, processor, logger),
		application.NewStartCompensation(transactions, logger),
		application.NewTransactionStatistics(transactions),
	)

	router := chi.NewRouter()
	h.RegisterRoutes(router)

	return &handlerFixture{transactions: transactions, inventory: inventory, router: router}
}

func (f *handlerFixture) do(t *testing.T, method, target, body, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func failedTestTransaction(t *testing.T) *domain.Transaction {
	t.Helper()

	transaction, err := domain.NewTransaction("customer-123", "vehicle-456")
	require.NoError(t, err)
	transaction.AddToContext(domain.ContextKeyAuthToken, "test-token")
	require.NoError(t, transaction.StartProgress())
	require.NoError(t, transaction.FailStep(domain.StepCreateReservation, "reservation service returned 409: already reserved"))
	transaction.ClearEvents()
	return transaction
}

func TestTransactionHandlers_StartPurchase(t *testing.T) {
	t.Run("creates a transaction", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.inventory.EXPECT().GetVehicleDetails(mock.Anything, models.ID("vehicle-456"), "test-token").
			Return(&domain.VehicleDetails{
				ID:    "vehicle-456",
				Price: models.NewMoney(4500000, "BRL"),
			}, nil).Once()
		f.transactions.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		f.transactions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		recorder := f.do(t, http.MethodPost, "/transactions",
			`{"customer_id":"customer-123","vehicle_id":"vehicle-456"}`, "test-token")

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.NotEmpty(t, response["transaction_id"])
		assert.Equal(t, "in_progress", response["status"])
		assert.Equal(t, domain.StepCreateReservation, response["current_step"])
	})

	t.Run("missing credential is a bad request", func(t *testing.T) {
		f := newHandlerFixture(t)

		recorder := f.do(t, http.MethodPost, "/transactions",
			`{"customer_id":"customer-123","vehicle_id":"vehicle-456"}`, "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		f := newHandlerFixture(t)

		recorder := f.do(t, http.MethodPost, "/transactions", "{not json", "test-token")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestTransactionHandlers_GetStatus(t *testing.T) {
	t.Run("unknown transaction is 404", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.transactions.EXPECT().FindByID(mock.Anything, models.ID("missing")).Return(nil, nil).Once()

		recorder := f.do(t, http.MethodGet, "/transactions/missing?customer_id=customer-123", "", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("foreign transaction is 403", func(t *testing.T) {
		f := newHandlerFixture(t)
		transaction := failedTestTransaction(t)

		f.transactions.EXPECT().FindByID(mock.Anything, transaction.ID).Return(transaction, nil).Once()

		recorder := f.do(t, http.MethodGet, "/transactions/"+transaction.ID.String()+"?customer_id=customer-999", "", "")
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("owner reads the full state", func(t *testing.T) {
		f := newHandlerFixture(t)
		transaction := failedTestTransaction(t)

		f.transactions.EXPECT().FindByID(mock.Anything, transaction.ID).Return(transaction, nil).Once()

		recorder := f.do(t, http.MethodGet, "/transactions/"+transaction.ID.String()+"?customer_id=customer-123", "", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var response application.TransactionStatusResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "failed", response.Status)
		require.NotNil(t, response.FailedStep)
		assert.Equal(t, domain.StepCreateReservation, *response.FailedStep)
	})
}

func TestTransactionHandlers_RetryTransaction(t *testing.T) {
	t.Run("non-failed transaction is a conflict", func(t *testing.T) {
		f := newHandlerFixture(t)
		transaction, err := domain.NewTransaction("customer-123", "vehicle-456")
		require.NoError(t, err)
		require.NoError(t, transaction.StartProgress())
		transaction.ClearEvents()

		f.transactions.EXPECT().FindByID(mock.Anything, transaction.ID).Return(transaction, nil).Once()

		recorder := f.do(t, http.MethodPost, "/transactions/"+transaction.ID.String()+"/retry", "", "")
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestTransactionHandlers_CompensateTransaction(t *testing.T) {
	t.Run("failed transaction is accepted", func(t *testing.T) {
		f := newHandlerFixture(t)
		transaction := failedTestTransaction(t)

		f.transactions.EXPECT().FindByID(mock.Anything, transaction.ID).Return(transaction, nil).Once()
		f.transactions.EXPECT().Update(mock.Anything, transaction).Return(nil).Once()

		recorder := f.do(t, http.MethodPost, "/transactions/"+transaction.ID.String()+"/compensate", "", "")
		assert.Equal(t, http.StatusAccepted, recorder.Code)
		assert.Equal(t, domain.TransactionStatusCompensating, transaction.Status)
	})

	t.Run("completed transaction is a conflict", func(t *testing.T) {
		f := newHandlerFixture(t)
		transaction, err := domain.NewTransaction("customer-123", "vehicle-456")
		require.NoError(t, err)
		require.NoError(t, transaction.StartProgress())
		for _, step := range transaction.Steps() {
			transaction.CompleteStep(step, nil)
		}
		require.NoError(t, transaction.Complete())
		transaction.ClearEvents()

		f.transactions.EXPECT().FindByID(mock.Anything, transaction.ID).Return(transaction, nil).Once()

		recorder := f.do(t, http.MethodPost, "/transactions/"+transaction.ID.String()+"/compensate", "", "")
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestTransactionHandlers_GetStatistics(t *testing.T) {
	f := newHandlerFixture(t)

	f.transactions.EXPECT().FindByStatus(mock.Anything, mock.Anything).Return(nil, nil).Times(3)
	f.transactions.EXPECT().FindPendingTransactions(mock.Anything).Return(nil, nil).Once()

	recorder := f.do(t, http.MethodGet, "/transactions/statistics", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response application.TransactionStatisticsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 0, response.Total)
	assert.Equal(t, 0.0, response.SuccessRate)
}

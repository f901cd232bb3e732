package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPInventoryGateway_GetVehicleDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the vehicle response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/vehicles/vehicle-456", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":     "vehicle-456",
				"make":   "Toyota",
				"model":  "Corolla",
				"year":   2024,
				"price":  map[string]interface{}{"amount": 4500000, "currency": "BRL"},
				"status": "available",
			})
		}))
		defer server.Close()

		gateway := NewHTTPInventoryGateway(server.URL, 5*time.Second)
		vehicle, err := gateway.GetVehicleDetails(ctx, "vehicle-456", "test-token")
		require.NoError(t, err)

		assert.Equal(t, models.ID("vehicle-456"), vehicle.ID)
		assert.Equal(t, models.NewMoney(4500000, "BRL"), vehicle.Price)
		assert.Equal(t, domain.VehicleStatusAvailable, vehicle.Status)
	})

	t.Run("non-2xx becomes a GatewayError with the response message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "vehicle not found"})
		}))
		defer server.Close()

		gateway := NewHTTPInventoryGateway(server.URL, 5*time.Second)
		vehicle, err := gateway.GetVehicleDetails(ctx, "vehicle-456", "test-token")
		assert.Nil(t, vehicle)

		var gatewayErr *domain.GatewayError
		require.True(t, errors.As(err, &gatewayErr))
		assert.Equal(t, "inventory", gatewayErr.Service)
		assert.Equal(t, http.StatusNotFound, gatewayErr.StatusCode)
		assert.Equal(t, "vehicle not found", gatewayErr.Message)
	})

	t.Run("falls back to the status text for unparseable error bodies", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		gateway := NewHTTPInventoryGateway(server.URL, 5*time.Second)
		_, err := gateway.GetVehicleDetails(ctx, "vehicle-456", "test-token")

		var gatewayErr *domain.GatewayError
		require.True(t, errors.As(err, &gatewayErr))
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), gatewayErr.Message)
	})
}

func TestHTTPInventoryGateway_UpdateVehicleStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/vehicles/vehicle-456/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sold", body["status"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	gateway := NewHTTPInventoryGateway(server.URL, 5*time.Second)
	err := gateway.UpdateVehicleStatus(context.Background(), "vehicle-456", domain.VehicleStatusSold, "test-token")
	assert.NoError(t, err)
}

func TestHTTPReservationGateway(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a reservation", func(t *testing.T) {
		expiresAt := time.Now().Add(30 * time.Minute).UTC().Truncate(time.Second)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/reservations", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "customer-123", body["customer_id"])
			assert.Equal(t, "vehicle-456", body["vehicle_id"])

			json.NewEncoder(w).Encode(domain.Reservation{ReservationID: "res-1", ExpiresAt: expiresAt})
		}))
		defer server.Close()

		gateway := NewHTTPReservationGateway(server.URL, 5*time.Second)
		reservation, err := gateway.CreateReservation(ctx, "customer-123", "vehicle-456", "test-token")
		require.NoError(t, err)

		assert.Equal(t, models.ID("res-1"), reservation.ReservationID)
		assert.True(t, expiresAt.Equal(reservation.ExpiresAt))
	})

	t.Run("cancels a reservation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/reservations/res-1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		gateway := NewHTTPReservationGateway(server.URL, 5*time.Second)
		assert.NoError(t, gateway.CancelReservation(ctx, "res-1", "test-token"))
	})
}

func TestHTTPPaymentGateway(t *testing.T) {
	ctx := context.Background()
	price := models.NewMoney(4500000, "BRL")

	t.Run("generates a payment code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/payment-codes", r.URL.Path)
			json.NewEncoder(w).Encode(domain.PaymentCode{PaymentCode: "PAY-001"})
		}))
		defer server.Close()

		gateway := NewHTTPPaymentGateway(server.URL, 5*time.Second)
		code, err := gateway.GeneratePaymentCode(ctx, "res-1", price, "test-token")
		require.NoError(t, err)
		assert.Equal(t, "PAY-001", code.PaymentCode)
	})

	t.Run("executes a payment and reports a decline in-band", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/payments/pay-1/execute", r.URL.Path)
			json.NewEncoder(w).Encode(domain.PaymentExecution{Success: false, Message: "Pagamento recusado"})
		}))
		defer server.Close()

		gateway := NewHTTPPaymentGateway(server.URL, 5*time.Second)
		execution, err := gateway.ExecutePayment(ctx, "pay-1", "test-token")
		require.NoError(t, err)

		assert.False(t, execution.Success)
		assert.Equal(t, "Pagamento recusado", execution.Message)
	})

	t.Run("refunds a payment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/payments/pay-1/refund", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		gateway := NewHTTPPaymentGateway(server.URL, 5*time.Second)
		assert.NoError(t, gateway.RefundPayment(ctx, "pay-1", "test-token"))
	})
}

func TestHTTPSalesGateway(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a sale with the full request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sales", r.URL.Path)

			var req domain.CreateSaleRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, models.ID("customer-123"), req.CustomerID)
			assert.Equal(t, models.ID("res-1"), req.ReservationID)
			assert.Equal(t, models.ID("pay-1"), req.PaymentID)

			json.NewEncoder(w).Encode(domain.Sale{SaleID: "sale-1", ContractPDF: "contract.pdf", InvoicePDF: "invoice.pdf"})
		}))
		defer server.Close()

		gateway := NewHTTPSalesGateway(server.URL, 5*time.Second)
		sale, err := gateway.CreateSale(ctx, &domain.CreateSaleRequest{
			CustomerID:    "customer-123",
			VehicleID:     "vehicle-456",
			ReservationID: "res-1",
			PaymentID:     "pay-1",
			Amount:        models.NewMoney(4500000, "BRL"),
		}, "test-token")
		require.NoError(t, err)

		assert.Equal(t, models.ID("sale-1"), sale.SaleID)
		assert.Equal(t, "contract.pdf", sale.ContractPDF)
	})

	t.Run("cancels a sale", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sales/sale-1/cancel", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		gateway := NewHTTPSalesGateway(server.URL, 5*time.Second)
		assert.NoError(t, gateway.CancelSale(ctx, "sale-1", "test-token"))
	})
}

package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/shared/models"
)

// HTTPPaymentGateway is the HTTP client for the payment service
type HTTPPaymentGateway struct {
	client serviceClient
}

var _ domain.PaymentGateway = (*HTTPPaymentGateway)(nil)

// NewHTTPPaymentGateway creates a new HTTPPaymentGateway
func NewHTTPPaymentGateway(baseURL string, timeout time.Duration) *HTTPPaymentGateway {
	return &HTTPPaymentGateway{client: newServiceClient("payment", baseURL, timeout)}
}

// GeneratePaymentCode obtains a payment code bound to a reservation
func (g *HTTPPaymentGateway) GeneratePaymentCode(ctx context.Context, reservationID models.ID, amount models.Money, authToken string) (*domain.PaymentCode, error) {
	body := map[string]interface{}{
		"reservation_id": reservationID.String(),
		"amount":         amount,
	}

	var code domain.PaymentCode
	if err := g.client.do(ctx, http.MethodPost, "/payment-codes", authToken, body, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

// CreatePayment creates a payment for a previously generated code
func (g *HTTPPaymentGateway) CreatePayment(ctx context.Context, paymentCode string, amount models.Money, authToken string) (*domain.PaymentIntent, error) {
	body := map[string]interface{}{
		"payment_code": paymentCode,
		"amount":       amount,
	}

	var intent domain.PaymentIntent
	if err := g.client.do(ctx, http.MethodPost, "/payments", authToken, body, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// ExecutePayment executes a created payment. A declined payment comes back
// with Success=false and the decline message, not as an error.
func (g *HTTPPaymentGateway) ExecutePayment(ctx context.Context, paymentID models.ID, authToken string) (*domain.PaymentExecution, error) {
	var execution domain.PaymentExecution
	if err := g.client.do(ctx, http.MethodPost, "/payments/"+paymentID.String()+"/execute", authToken, nil, &execution); err != nil {
		return nil, err
	}
	return &execution, nil
}

// RefundPayment refunds an executed payment
func (g *HTTPPaymentGateway) RefundPayment(ctx context.Context, paymentID models.ID, authToken string) error {
	return g.client.do(ctx, http.MethodPost, "/payments/"+paymentID.String()+"/refund", authToken, nil, nil)
}

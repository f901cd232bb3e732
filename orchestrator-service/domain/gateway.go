package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/draftea/vehicle-sales-system/shared/models"
)

// GatewayError carries the HTTP status and message of a non-2xx peer-service
// response.
type GatewayError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s service returned %d: %s", e.Service, e.StatusCode, e.Message)
}

// VehicleDetails is the inventory service's view of a vehicle
type VehicleDetails struct {
	ID     models.ID    `json:"id"`
	Make   string       `json:"make"`
	Model  string       `json:"model"`
	Year   int          `json:"year"`
	Price  models.Money `json:"price"`
	Status string       `json:"status"`
}

// Vehicle status values understood by the inventory service
const (
	VehicleStatusAvailable = "available"
	VehicleStatusSold      = "sold"
)

// Reservation is the reservation service's confirmation of a held vehicle
type Reservation struct {
	ReservationID models.ID `json:"reservation_id"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// PaymentCode binds a payable code to a reservation
type PaymentCode struct {
	PaymentCode string `json:"payment_code"`
}

// PaymentIntent is a created, not yet executed, payment
type PaymentIntent struct {
	PaymentID models.ID `json:"payment_id"`
}

// PaymentExecution is the payment service's business outcome for an executed
// payment. A declined payment is reported through Success/Message, not as an
// error: errors are reserved for transport and service faults.
type PaymentExecution struct {
	Success       bool         `json:"success"`
	Message       string       `json:"message"`
	PaymentID     models.ID    `json:"payment_id"`
	TransactionID models.ID    `json:"transaction_id"`
	AmountPaid    models.Money `json:"amount_paid"`
}

// Sale is the sales service's record of a finalized purchase
type Sale struct {
	SaleID      models.ID `json:"sale_id"`
	ContractPDF string    `json:"contract_pdf"`
	InvoicePDF  string    `json:"invoice_pdf"`
}

// CreateSaleRequest carries everything the sales service needs to finalize
type CreateSaleRequest struct {
	CustomerID    models.ID              `json:"customer_id"`
	VehicleID     models.ID              `json:"vehicle_id"`
	ReservationID models.ID              `json:"reservation_id"`
	PaymentID     models.ID              `json:"payment_id"`
	Amount        models.Money           `json:"amount"`
	CustomerData  map[string]interface{} `json:"customer_data"`
}

// InventoryGateway is the HTTP client contract for the inventory service
type InventoryGateway interface {
	GetVehicleDetails(ctx context.Context, vehicleID models.ID, authToken string) (*VehicleDetails, error)
	UpdateVehicleStatus(ctx context.Context, vehicleID models.ID, status string, authToken string) error
}

// ReservationGateway is the HTTP client contract for the reservation service
type ReservationGateway interface {
	CreateReservation(ctx context.Context, customerID, vehicleID models.ID, authToken string) (*Reservation, error)
	CancelReservation(ctx context.Context, reservationID models.ID, authToken string) error
}

// PaymentGateway is the HTTP client contract for the payment service
type PaymentGateway interface {
	GeneratePaymentCode(ctx context.Context, reservationID models.ID, amount models.Money, authToken string) (*PaymentCode, error)
	CreatePayment(ctx context.Context, paymentCode string, amount models.Money, authToken string) (*PaymentIntent, error)
	ExecutePayment(ctx context.Context, paymentID models.ID, authToken string) (*PaymentExecution, error)
	RefundPayment(ctx context.Context, paymentID models.ID, authToken string) error
}

// SalesGateway is the HTTP client contract for the sales service
type SalesGateway interface {
	CreateSale(ctx context.Context, request *CreateSaleRequest, authToken string) (*Sale, error)
	CancelSale(ctx context.Context, saleID models.ID, authToken string) error
}

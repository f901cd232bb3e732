package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/shared/models"
)

// HTTPReservationGateway is the HTTP client for the reservation service
type HTTPReservationGateway struct {
	client serviceClient
}

var _ domain.ReservationGateway = (*HTTPReservationGateway)(nil)

// NewHTTPReservationGateway creates a new HTTPReservationGateway
func NewHTTPReservationGateway(baseURL string, timeout time.Duration) *HTTPReservationGateway {
	return &HTTPReservationGateway{client: newServiceClient("reservation", baseURL, timeout)}
}

// CreateReservation holds a vehicle for a customer
func (g *HTTPReservationGateway) CreateReservation(ctx context.Context, customerID, vehicleID models.ID, authToken string) (*domain.Reservation, error) {
	body := map[string]string{
		"customer_id": customerID.String(),
		"vehicle_id":  vehicleID.String(),
	}

	var reservation domain.Reservation
	if err := g.client.do(ctx, http.MethodPost, "/reservations", authToken, body, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CancelReservation releases a held vehicle
func (g *HTTPReservationGateway) CancelReservation(ctx context.Context, reservationID models.ID, authToken string) error {
	return g.client.do(ctx, http.MethodDelete, "/reservations/"+reservationID.String(), authToken, nil, nil)
}

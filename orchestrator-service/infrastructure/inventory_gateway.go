package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/shared/models"
)

// HTTPInventoryGateway is the HTTP client for the inventory service
type HTTPInventoryGateway struct {
	client serviceClient
}

var _ domain.InventoryGateway = (*HTTPInventoryGateway)(nil)

// NewHTTPInventoryGateway creates a new HTTPInventoryGateway
func NewHTTPInventoryGateway(baseURL string, timeout time.Duration) *HTTPInventoryGateway {
	return &HTTPInventoryGateway{client: newServiceClient("inventory", baseURL, timeout)}
}

// GetVehicleDetails fetches a vehicle's details and pricing
func (g *HTTPInventoryGateway) GetVehicleDetails(ctx context.Context, vehicleID models.ID, authToken string) (*domain.VehicleDetails, error) {
	var vehicle domain.VehicleDetails
	err := g.client.do(ctx, http.MethodGet, "/vehicles/"+vehicleID.String(), authToken, nil, &vehicle)
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// UpdateVehicleStatus marks a vehicle sold or available again
func (g *HTTPInventoryGateway) UpdateVehicleStatus(ctx context.Context, vehicleID models.ID, status string, authToken string) error {
	body := map[string]string{"status": status}
	return g.client.do(ctx, http.MethodPatch, "/vehicles/"+vehicleID.String()+"/status", authToken, body, nil)
}

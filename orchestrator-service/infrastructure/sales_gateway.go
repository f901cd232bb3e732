package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/shared/models"
)

// HTTPSalesGateway is the HTTP client for the sales service
type HTTPSalesGateway struct {
	client serviceClient
}

var _ domain.SalesGateway = (*HTTPSalesGateway)(nil)

// NewHTTPSalesGateway creates a new HTTPSalesGateway
func NewHTTPSalesGateway(baseURL string, timeout time.Duration) *HTTPSalesGateway {
	return &HTTPSalesGateway{client: newServiceClient("sales", baseURL, timeout)}
}

// CreateSale finalizes the sale record and produces the contract documents
func (g *HTTPSalesGateway) CreateSale(ctx context.Context, request *domain.CreateSaleRequest, authToken string) (*domain.Sale, error) {
	var sale domain.Sale
	if err := g.client.do(ctx, http.MethodPost, "/sales", authToken, request, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// CancelSale cancels a finalized sale
func (g *HTTPSalesGateway) CancelSale(ctx context.Context, saleID models.ID, authToken string) error {
	return g.client.do(ctx, http.MethodPost, "/sales/"+saleID.String()+"/cancel", authToken, nil, nil)
}

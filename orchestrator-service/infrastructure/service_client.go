package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/pkg/errors"
)

// serviceClient is the shared HTTP plumbing for the peer-service gateways:
// JSON bodies, bearer credential, fixed per-call timeout, and non-2xx
// responses surfaced as GatewayError carrying the response message.
type serviceClient struct {
	service    string
	baseURL    string
	httpClient *http.Client
}

func newServiceClient(service, baseURL string, timeout time.Duration) serviceClient {
	return serviceClient{
		service:    service,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// errorResponse is the error body shape shared by all peer services
type errorResponse struct {
	Message string `json:"message"`
}

// do performs one JSON request. A nil out skips response decoding.
func (c *serviceClient) do(ctx context.Context, method, path, authToken string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal %s request", c.service)
		}
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s request", c.service)
	}

	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s service call failed", c.service)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr != nil || errResp.Message == "" {
			errResp.Message = http.StatusText(resp.StatusCode)
		}
		return &domain.GatewayError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Message:    errResp.Message,
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", c.service)
	}

	return nil
}

package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"storefront-gateway/internal/domain"
)

// Client posts GraphQL payloads to per-tenant storefront endpoints. A non-2xx
// status is not treated as a failure by itself; the storefront reports domain
// failures through customerUserErrors, which callers check after decoding.
type Client struct {
	httpClient *http.Client
	apiVersion string
	logger     *log.Logger
}

// NewClient builds a Client for the given API version. A nil httpClient gets
// a default with a request timeout.
func NewClient(httpClient *http.Client, apiVersion string, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		apiVersion: apiVersion,
		logger:     logger,
	}
}

// Post executes one GraphQL call against the tenant's endpoint and decodes
// the response's data object into out. Network failures and non-JSON bodies
// come back as *domain.TransportError.
func (c *Client) Post(ctx context.Context, tenant domain.Tenant, payload Payload, out any) error {
	const op = "storefront: post"

	body, err := json.Marshal(payload)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}

	endpoint := fmt.Sprintf("https://%s/api/%s/graphql", tenant.CustomStoreDomain, c.apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	for name, value := range tenant.StorefrontConfig {
		req.Header.Set(name, value)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("storefront call to %s failed: %v", tenant.CustomStoreDomain, err)
		return &domain.TransportError{Op: op, Err: err}
	}
	defer res.Body.Close()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		c.logger.Printf("storefront response from %s is not valid JSON: %v", tenant.CustomStoreDomain, err)
		return &domain.TransportError{Op: op, Err: err}
	}

	// A missing or null data object leaves out zeroed; callers treat absent
	// payloads as a consistency failure, not a transport one.
	if out == nil || len(envelope.Data) == 0 || bytes.Equal(envelope.Data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	return nil
}

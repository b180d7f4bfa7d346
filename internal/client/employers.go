package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerkit/plaid-client/internal/http"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// EmployersClient implements plaid.EmployersClient.
type EmployersClient struct {
	httpClient *http.Client
}

// NewEmployersClient creates a new employers client.
func NewEmployersClient(httpClient *http.Client) *EmployersClient {
	return &EmployersClient{
		httpClient: httpClient,
	}
}

// Search implements plaid.EmployersClient.Search.
func (c *EmployersClient) Search(ctx context.Context, request *plaid.SearchEmployersRequest) ([]plaid.Employer, error) {
	resp, err := c.httpClient.Post(ctx, "/employers/search", request)
	if err != nil {
		return nil, fmt.Errorf("searching employers: %w", err)
	}

	var result plaid.SearchEmployersResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing employers response", Err: err}
	}

	return result.Employers, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerkit/plaid-client/internal/http"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// InstitutionsClient implements plaid.InstitutionsClient.
type InstitutionsClient struct {
	httpClient *http.Client
}

// NewInstitutionsClient creates a new institutions client.
func NewInstitutionsClient(httpClient *http.Client) *InstitutionsClient {
	return &InstitutionsClient{
		httpClient: httpClient,
	}
}

// Search implements plaid.InstitutionsClient.Search.
func (c *InstitutionsClient) Search(ctx context.Context, request *plaid.InstitutionsSearchRequest) ([]plaid.Institution, error) {
	resp, err := c.httpClient.Post(ctx, "/institutions/search", request)
	if err != nil {
		return nil, fmt.Errorf("searching institutions: %w", err)
	}

	var result plaid.InstitutionsSearchResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing institutions search response", Err: err}
	}

	return result.Institutions, nil
}

// Get implements plaid.InstitutionsClient.Get.
func (c *InstitutionsClient) Get(ctx context.Context, request *plaid.InstitutionGetRequest) (*plaid.Institution, error) {
	resp, err := c.httpClient.Post(ctx, "/institutions/get_by_id", request)
	if err != nil {
		return nil, fmt.Errorf("getting institution: %w", err)
	}

	var result plaid.InstitutionGetResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing institution response", Err: err}
	}

	return &result.Institution, nil
}

// List implements plaid.InstitutionsClient.List.
func (c *InstitutionsClient) List(ctx context.Context, request *plaid.InstitutionsGetRequest) ([]plaid.Institution, error) {
	resp, err := c.httpClient.Post(ctx, "/institutions/get", request)
	if err != nil {
		return nil, fmt.Errorf("listing institutions: %w", err)
	}

	var result plaid.InstitutionsGetResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing institutions response", Err: err}
	}

	return result.Institutions, nil
}

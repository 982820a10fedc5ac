package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"molstd/pkg/contracts"
	"molstd/pkg/model"
)

// StandardizerClient talks to the standardizer REST API.
type StandardizerClient struct {
	httpClient *HttpClient
}

func NewStandardizerClient(baseURL string) *StandardizerClient {
	return &StandardizerClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *StandardizerClient) List(ctx context.Context) ([]contracts.StepInfo, error) {
	resp, err := c.httpClient.GET(ctx, "/api/v1/standardizations")
	if err != nil {
		return nil, err
	}

	var steps []contracts.StepInfo
	if err := decodeData(resp, &steps); err != nil {
		return nil, err
	}
	return steps, nil
}

func (c *StandardizerClient) Get(ctx context.Context, name string) (contracts.StepInfo, error) {
	resp, err := c.httpClient.GET(ctx, "/api/v1/standardizations/"+url.PathEscape(name))
	if err != nil {
		return contracts.StepInfo{}, err
	}

	var step contracts.StepInfo
	if err := decodeData(resp, &step); err != nil {
		return contracts.StepInfo{}, err
	}
	return step, nil
}

// Standardize returns the outcome for accepted and rejected molecules alike.
// Request failures come back as *APIError.
func (c *StandardizerClient) Standardize(ctx context.Context, mol *model.Molecule, steps ...string) (*contracts.StandardizeResult, error) {
	resp, err := c.httpClient.POST(ctx, "/api/v1/standardize", contracts.StandardizeRequest{
		Molecule: mol,
		Steps:    steps,
	})
	if err != nil {
		return nil, err
	}

	var result contracts.StandardizeResult
	if err := decodeData(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func decodeData(resp *Response, target any) error {
	if resp.StatusCode != http.StatusOK {
		return asAPIError(resp)
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := json.Unmarshal(wrapper.Data, target); err != nil {
		return fmt.Errorf("failed to decode data: %w", err)
	}
	return nil
}

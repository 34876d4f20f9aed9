package client

import (
	"context"
	"fmt"

	"github.com/vonix-io/vapi/internal/http"
	"github.com/vonix-io/vapi/pkg/vapi"
)

// SubaccountsClient implements vapi.SubaccountsClient.
type SubaccountsClient struct {
	httpClient *http.Client
}

// NewSubaccountsClient creates a new subaccounts client.
func NewSubaccountsClient(httpClient *http.Client) *SubaccountsClient {
	return &SubaccountsClient{
		httpClient: httpClient,
	}
}

// Create implements vapi.SubaccountsClient.Create.
func (c *SubaccountsClient) Create(ctx context.Context, accountID string, params *vapi.Params) (*vapi.SubaccountCreateResponse, error) {
	path := "Account/" + accountID + "/Subaccount/"

	result, err := c.httpClient.Post(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("creating subaccount: %w", err)
	}

	var response vapi.SubaccountCreateResponse

	err = decodeResult(result, &response)
	if err != nil {
		return nil, fmt.Errorf("creating subaccount: %w", err)
	}

	return &response, nil
}

// Get implements vapi.SubaccountsClient.Get.
func (c *SubaccountsClient) Get(ctx context.Context, accountID, subauthID string) (*vapi.Subaccount, error) {
	path := "Account/" + accountID + "/Subaccount/" + subauthID + "/"

	result, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting subaccount: %w", err)
	}

	var subaccount vapi.Subaccount

	err = decodeResult(result, &subaccount)
	if err != nil {
		return nil, fmt.Errorf("getting subaccount: %w", err)
	}

	return &subaccount, nil
}

// List implements vapi.SubaccountsClient.List. The limit and offset
// pagination parameters pass through verbatim.
func (c *SubaccountsClient) List(ctx context.Context, accountID string, params *vapi.Params) (*vapi.ListResponse[vapi.Subaccount], error) {
	path := "Account/" + accountID + "/Subaccount/"

	result, err := c.httpClient.Get(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing subaccounts: %w", err)
	}

	var list vapi.ListResponse[vapi.Subaccount]

	err = decodeResult(result, &list)
	if err != nil {
		return nil, fmt.Errorf("listing subaccounts: %w", err)
	}

	return &list, nil
}

// Modify implements vapi.SubaccountsClient.Modify.
func (c *SubaccountsClient) Modify(ctx context.Context, accountID, subauthID string, params *vapi.Params) (*vapi.ModifyResponse, error) {
	path := "Account/" + accountID + "/Subaccount/" + subauthID + "/"

	result, err := c.httpClient.Post(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("modifying subaccount: %w", err)
	}

	var response vapi.ModifyResponse

	err = decodeResult(result, &response)
	if err != nil {
		return nil, fmt.Errorf("modifying subaccount: %w", err)
	}

	return &response, nil
}

// Delete implements vapi.SubaccountsClient.Delete. The provider answers
// 204 with an empty body on success.
func (c *SubaccountsClient) Delete(ctx context.Context, accountID, subauthID string) error {
	path := "Account/" + accountID + "/Subaccount/" + subauthID + "/"

	result, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting subaccount: %w", err)
	}

	if result.StatusCode == vapi.StatusNoContent {
		return nil
	}

	err = decodeResult(result, nil)
	if err != nil {
		return fmt.Errorf("deleting subaccount: %w", err)
	}

	return nil
}

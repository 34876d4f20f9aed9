package client

import (
	"context"
	"fmt"

	"github.com/vonix-io/vapi/internal/http"
	"github.com/vonix-io/vapi/pkg/vapi"
)

// AccountsClient implements vapi.AccountsClient.
type AccountsClient struct {
	httpClient *http.Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *http.Client) *AccountsClient {
	return &AccountsClient{
		httpClient: httpClient,
	}
}

// Get implements vapi.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, accountID string) (*vapi.Account, error) {
	path := "Account/" + accountID + "/"

	result, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	var account vapi.Account

	err = decodeResult(result, &account)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return &account, nil
}

// Modify implements vapi.AccountsClient.Modify.
func (c *AccountsClient) Modify(ctx context.Context, accountID string, params *vapi.Params) (*vapi.ModifyResponse, error) {
	path := "Account/" + accountID + "/"

	result, err := c.httpClient.Post(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("modifying account: %w", err)
	}

	var response vapi.ModifyResponse

	err = decodeResult(result, &response)
	if err != nil {
		return nil, fmt.Errorf("modifying account: %w", err)
	}

	return &response, nil
}

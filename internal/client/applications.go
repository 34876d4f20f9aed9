package client

import (
	"context"
	"fmt"

	"github.com/vonix-io/vapi/internal/http"
	"github.com/vonix-io/vapi/pkg/vapi"
)

// ApplicationsClient implements vapi.ApplicationsClient.
type ApplicationsClient struct {
	httpClient *http.Client
}

// NewApplicationsClient creates a new applications client.
func NewApplicationsClient(httpClient *http.Client) *ApplicationsClient {
	return &ApplicationsClient{
		httpClient: httpClient,
	}
}

// Create implements vapi.ApplicationsClient.Create.
func (c *ApplicationsClient) Create(ctx context.Context, accountID string, params *vapi.Params) (*vapi.ApplicationCreateResponse, error) {
	path := "Account/" + accountID + "/Application/"

	result, err := c.httpClient.Post(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}

	var response vapi.ApplicationCreateResponse

	err = decodeResult(result, &response)
	if err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}

	return &response, nil
}

// Get implements vapi.ApplicationsClient.Get.
func (c *ApplicationsClient) Get(ctx context.Context, accountID, appID string) (*vapi.Application, error) {
	path := "Account/" + accountID + "/Application/" + appID + "/"

	result, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting application: %w", err)
	}

	var application vapi.Application

	err = decodeResult(result, &application)
	if err != nil {
		return nil, fmt.Errorf("getting application: %w", err)
	}

	return &application, nil
}

// List implements vapi.ApplicationsClient.List.
func (c *ApplicationsClient) List(ctx context.Context, accountID string, params *vapi.Params) (*vapi.ListResponse[vapi.Application], error) {
	path := "Account/" + accountID + "/Application/"

	result, err := c.httpClient.Get(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	var list vapi.ListResponse[vapi.Application]

	err = decodeResult(result, &list)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	return &list, nil
}

// Modify implements vapi.ApplicationsClient.Modify.
func (c *ApplicationsClient) Modify(ctx context.Context, accountID, appID string, params *vapi.Params) (*vapi.ModifyResponse, error) {
	path := "Account/" + accountID + "/Application/" + appID + "/"

	result, err := c.httpClient.Post(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("modifying application: %w", err)
	}

	var response vapi.ModifyResponse

	err = decodeResult(result, &response)
	if err != nil {
		return nil, fmt.Errorf("modifying application: %w", err)
	}

	return &response, nil
}

// Delete implements vapi.ApplicationsClient.Delete.
func (c *ApplicationsClient) Delete(ctx context.Context, accountID, appID string) error {
	path := "Account/" + accountID + "/Application/" + appID + "/"

	result, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}

	if result.StatusCode == vapi.StatusNoContent {
		return nil
	}

	err = decodeResult(result, nil)
	if err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}

	return nil
}

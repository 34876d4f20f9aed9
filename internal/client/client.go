// Package client implements the vapi.Client resource surface as thin
// routing tables over the request gateway.
package client

import (
	"encoding/json"
	"fmt"

	"github.com/vonix-io/vapi/internal/auth"
	"github.com/vonix-io/vapi/internal/constants"
	"github.com/vonix-io/vapi/internal/http"
	"github.com/vonix-io/vapi/pkg/vapi"
)

// Client implements the vapi.Client interface.
type Client struct {
	httpClient *http.Client
	store      *auth.Store
	baseURL    string

	accounts     vapi.AccountsClient
	subaccounts  vapi.SubaccountsClient
	applications vapi.ApplicationsClient
}

// New creates a new API client. The config must already be validated and
// normalized (see pkg/vclient).
func New(config *vapi.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, vapi.ErrEndpointRequired
	}

	store := auth.NewStore(auth.Credentials{
		AuthID:    config.AuthID,
		AuthToken: config.AuthToken,
	})

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	client := &Client{
		httpClient: http.NewClient(config.APIEndpoint, store, httpOpts...),
		store:      store,
		baseURL:    config.APIEndpoint,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds gateway options from config.
func createHTTPClientOptions(config *vapi.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Cache != nil {
		cache, err := vapi.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}

		ttl := vapi.DefaultCacheOptions().TTL
		if config.Cache.Options != nil && config.Cache.Options.TTL > 0 {
			ttl = config.Cache.Options.TTL
		}

		httpOpts = append(httpOpts, http.WithCache(cache, ttl))
	}

	return httpOpts, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.accounts = NewAccountsClient(c.httpClient)
	c.subaccounts = NewSubaccountsClient(c.httpClient)
	c.applications = NewApplicationsClient(c.httpClient)
}

// Accounts implements vapi.Client.Accounts.
func (c *Client) Accounts() vapi.AccountsClient {
	return c.accounts
}

// Subaccounts implements vapi.Client.Subaccounts.
func (c *Client) Subaccounts() vapi.SubaccountsClient {
	return c.subaccounts
}

// Applications implements vapi.Client.Applications.
func (c *Client) Applications() vapi.ApplicationsClient {
	return c.applications
}

// SetAuthID implements vapi.Client.SetAuthID.
func (c *Client) SetAuthID(authID string) {
	c.store.SetAuthID(authID)
}

// SetAuthToken implements vapi.Client.SetAuthToken.
func (c *Client) SetAuthToken(authToken string) {
	c.store.SetAuthToken(authToken)
}

// decodeResult interprets a gateway Result for a typed caller: success
// payloads unmarshal into target, non-2xx statuses become *vapi.APIError.
// The gateway itself never treats a provider status as an error; that
// interpretation happens here, at the collaborator boundary.
func decodeResult(result *vapi.Result, target interface{}) error {
	if !result.Success() {
		return &vapi.APIError{StatusCode: result.StatusCode, Body: result.Text()}
	}

	if target == nil {
		return nil
	}

	err := json.Unmarshal(result.Raw, target)
	if err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}

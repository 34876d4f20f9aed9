// Package vclient provides the main entry point for creating Vonix API clients.
package vclient

import (
	"fmt"
	"strings"

	"github.com/vonix-io/vapi/internal/client"
	"github.com/vonix-io/vapi/internal/constants"
	"github.com/vonix-io/vapi/pkg/vapi"
)

// New creates a new Vonix API client from the given configuration.
//
// The endpoint is normalized: a trailing slash is trimmed and "https://" is
// assumed when no scheme is present. When APIEndpoint is empty the
// production endpoint is used. One client owns one credential pair; build
// one client per account to talk to several accounts concurrently.
func New(config *vapi.Config) (vapi.Client, error) {
	if config == nil {
		return nil, vapi.ErrConfigRequired
	}

	if config.AuthID == "" {
		return nil, vapi.ErrAuthIDRequired
	}

	if config.AuthToken == "" {
		return nil, vapi.ErrAuthTokenRequired
	}

	apiEndpoint := config.APIEndpoint
	if apiEndpoint == "" {
		apiEndpoint = constants.DefaultBaseURL
	}

	apiEndpoint = strings.TrimSuffix(apiEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithCredentials creates a client for the production endpoint with the
// given credential pair.
func NewWithCredentials(authID, authToken string) (vapi.Client, error) {
	return New(&vapi.Config{
		AuthID:    authID,
		AuthToken: authToken,
	})
}

// NewWithEndpoint creates a client against a non-default endpoint, e.g. a
// staging deployment or a local test server.
func NewWithEndpoint(endpoint, authID, authToken string) (vapi.Client, error) {
	return New(&vapi.Config{
		APIEndpoint: endpoint,
		AuthID:      authID,
		AuthToken:   authToken,
	})
}

package vapi

import (
	"context"
	"time"
)

// AccountsClient provides access to the parent account resource.
type AccountsClient interface {
	Get(ctx context.Context, accountID string) (*Account, error)
	Modify(ctx context.Context, accountID string, params *Params) (*ModifyResponse, error)
}

// SubaccountsClient provides access to subaccount resources.
type SubaccountsClient interface {
	Create(ctx context.Context, accountID string, params *Params) (*SubaccountCreateResponse, error)
	Get(ctx context.Context, accountID, subauthID string) (*Subaccount, error)
	List(ctx context.Context, accountID string, params *Params) (*ListResponse[Subaccount], error)
	Modify(ctx context.Context, accountID, subauthID string, params *Params) (*ModifyResponse, error)
	Delete(ctx context.Context, accountID, subauthID string) error
}

// ApplicationsClient provides access to application resources.
type ApplicationsClient interface {
	Create(ctx context.Context, accountID string, params *Params) (*ApplicationCreateResponse, error)
	Get(ctx context.Context, accountID, appID string) (*Application, error)
	List(ctx context.Context, accountID string, params *Params) (*ListResponse[Application], error)
	Modify(ctx context.Context, accountID, appID string, params *Params) (*ModifyResponse, error)
	Delete(ctx context.Context, accountID, appID string) error
}

// Client is the full resource surface of the provider API.
type Client interface {
	Accounts() AccountsClient
	Subaccounts() SubaccountsClient
	Applications() ApplicationsClient

	// SetAuthID replaces the auth ID used for subsequent requests.
	// Requests already dispatched are unaffected.
	SetAuthID(authID string)

	// SetAuthToken replaces the auth token used for subsequent requests.
	SetAuthToken(authToken string)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a vapi.Client.
//
// Each client instance owns exactly one credential pair; to talk to the API
// as several accounts concurrently, construct one client per credential set
// rather than mutating a shared one mid-flight.
type Config struct {
	// AuthID is the account identifier used for HTTP Basic authentication.
	AuthID string
	// AuthToken is the secret paired with AuthID.
	AuthToken string

	// APIEndpoint overrides the default base URL
	// ("https://api.vonix.com"). A trailing slash is trimmed and "https://"
	// is assumed when no scheme is present.
	APIEndpoint string

	// HTTPTimeout bounds each HTTP exchange. Zero means no client-side
	// timeout; per-call deadlines should come from the context.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures.
	// Zero (the default) issues exactly one attempt per call.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache optionally configures GET response caching.
	Cache *CacheConfig
}

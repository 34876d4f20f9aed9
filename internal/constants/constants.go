package constants

import "time"

// Provider endpoint.
const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.vonix.com"

	// APIVersion is the versioned path prefix all resources live under.
	APIVersion = "/v1/"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for CLI-issued requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry tuning. Retries are off unless a caller opts in.
const (
	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Cache limits.
const (
	// DefaultCacheSize is the maximum entry count for the memory cache.
	DefaultCacheSize = 256
)

package auth

import (
	"encoding/base64"
	"sync"
)

// Credentials is an immutable auth ID / auth token pair. The gateway works
// from a Credentials value snapshotted per request, so a concurrent setter
// call can never produce a torn ID/token combination on the wire.
type Credentials struct {
	AuthID    string
	AuthToken string
}

// AuthorizationHeader returns the HTTP Basic Authorization header value
// for the pair: "Basic " + base64(authID + ":" + authToken).
func (c Credentials) AuthorizationHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.AuthID+":"+c.AuthToken))
}

// Empty reports whether either field is unset. The client does not reject
// empty credentials — the provider will — but callers can use this to fail
// fast.
func (c Credentials) Empty() bool {
	return c.AuthID == "" || c.AuthToken == ""
}

// Store holds the current credentials for one client instance. Setters
// take effect for subsequent requests only; requests already dispatched
// keep the snapshot they were built with.
type Store struct {
	mutex sync.RWMutex
	creds Credentials
}

// NewStore creates a store seeded with the given credentials.
func NewStore(creds Credentials) *Store {
	return &Store{creds: creds}
}

// SetAuthID replaces the stored auth ID. No validation.
func (s *Store) SetAuthID(authID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.creds.AuthID = authID
}

// SetAuthToken replaces the stored auth token. No validation.
func (s *Store) SetAuthToken(authToken string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.creds.AuthToken = authToken
}

// Snapshot returns both fields under a single lock acquisition.
func (s *Store) Snapshot() Credentials {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.creds
}

package vapi

import "net/http"

// Result is the classified outcome of a single gateway call.
//
// Classification is a total function of the status code: for 200, 201, and
// 202 the body is decoded JSON and Decoded is set; for every other status
// (204, 400, 401, 404, 405, 500 and anything else) the body is returned
// verbatim in Raw and Decoded is nil. A non-success status is not an error
// here — callers branch on StatusCode. Transport and decode failures are
// surfaced as errors alongside the Result, never swallowed into an empty
// success.
type Result struct {
	StatusCode int
	Headers    http.Header

	// Decoded holds the JSON term (map/array/string/number) for success
	// statuses.
	Decoded interface{}

	// Raw always holds the verbatim response body.
	Raw []byte
}

// Success statuses per the provider contract.
const (
	StatusOK       = http.StatusOK
	StatusCreated  = http.StatusCreated
	StatusAccepted = http.StatusAccepted

	// StatusNoContent is what the provider returns for deletes. It carries
	// no payload and is classified as a raw (empty) body, not JSON.
	StatusNoContent = http.StatusNoContent
)

// Success reports whether the status carries a decoded JSON payload.
func (r *Result) Success() bool {
	switch r.StatusCode {
	case StatusOK, StatusCreated, StatusAccepted:
		return true
	default:
		return false
	}
}

// Text returns the raw body as a string.
func (r *Result) Text() string {
	return string(r.Raw)
}

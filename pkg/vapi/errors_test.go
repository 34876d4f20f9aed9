package vapi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vonix-io/vapi/pkg/vapi"
)

var errConnRefused = errors.New("connection refused")

func TestTransportError(t *testing.T) {
	t.Parallel()

	err := &vapi.TransportError{URL: "https://api.vonix.com/v1/Account/AC1/", Err: errConnRefused}

	assert.Contains(t, err.Error(), "transport error")
	assert.Contains(t, err.Error(), "https://api.vonix.com/v1/Account/AC1/")
	assert.ErrorIs(t, err, errConnRefused)
	assert.True(t, vapi.IsTransportError(err))
	assert.True(t, vapi.IsTransportError(fmt.Errorf("getting account: %w", err)))
	assert.False(t, vapi.IsDecodeError(err))
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	jsonErr := errors.New("invalid character 'n'")
	err := &vapi.DecodeError{StatusCode: 200, Body: []byte("{not json"), Err: jsonErr}

	assert.Contains(t, err.Error(), "status 200")
	assert.ErrorIs(t, err, jsonErr)
	assert.True(t, vapi.IsDecodeError(err))
	assert.True(t, vapi.IsDecodeError(fmt.Errorf("getting account: %w", err)))
	assert.False(t, vapi.IsTransportError(err))
}

func TestAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          *vapi.APIError
		notFound     bool
		unauthorized bool
		badRequest   bool
	}{
		{
			name:     "not found",
			err:      &vapi.APIError{StatusCode: 404, Body: "not found"},
			notFound: true,
		},
		{
			name:         "unauthorized",
			err:          &vapi.APIError{StatusCode: 401},
			unauthorized: true,
		},
		{
			name:       "bad request",
			err:        &vapi.APIError{StatusCode: 400, Body: "missing name"},
			badRequest: true,
		},
		{
			name: "server error matches nothing specific",
			err:  &vapi.APIError{StatusCode: 500, Body: "Internal error"},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("getting subaccount: %w", testCase.err)

			assert.Equal(t, testCase.notFound, vapi.IsNotFound(wrapped))
			assert.Equal(t, testCase.unauthorized, vapi.IsUnauthorized(wrapped))
			assert.Equal(t, testCase.badRequest, vapi.IsBadRequest(wrapped))
		})
	}
}

func TestAPIError_Message(t *testing.T) {
	t.Parallel()

	withBody := &vapi.APIError{StatusCode: 500, Body: "Internal error"}
	assert.Equal(t, "provider returned status 500: Internal error", withBody.Error())

	withoutBody := &vapi.APIError{StatusCode: 401}
	assert.Equal(t, "provider returned status 401", withoutBody.Error())
}

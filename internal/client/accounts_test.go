package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vonix-io/vapi/internal/client"
	"github.com/vonix-io/vapi/pkg/vapi"
)

func TestAccountsClient_Get(t *testing.T) {
	t.Parallel()

	gateway, last := newFakeProvider(t, http.StatusOK, `{
		"api_id": "api-1",
		"auth_id": "MAXXXXXXXXXXXXXXXXXX",
		"account_type": "standard",
		"name": "Wilson",
		"cash_credits": "10.0"
	}`)

	accounts := client.NewAccountsClient(gateway)

	account, err := accounts.Get(context.Background(), "MAXXXXXXXXXXXXXXXXXX")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, last.Method)
	assert.Equal(t, "/v1/Account/MAXXXXXXXXXXXXXXXXXX/", last.Path)
	assert.Equal(t, "MAXXXXXXXXXXXXXXXXXX", account.AuthID)
	assert.Equal(t, "Wilson", account.Name)
	assert.Equal(t, "standard", account.AccountType)
}

func TestAccountsClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	gateway, _ := newFakeProvider(t, http.StatusNotFound, `{"error":"not found"}`)
	accounts := client.NewAccountsClient(gateway)

	_, err := accounts.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, vapi.IsNotFound(err))

	var apiErr *vapi.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "not found")
}

func TestAccountsClient_Modify(t *testing.T) {
	t.Parallel()

	gateway, last := newFakeProvider(t, http.StatusAccepted, `{
		"api_id": "api-2",
		"message": "changed"
	}`)

	accounts := client.NewAccountsClient(gateway)

	params := vapi.NewParams().Set("name", "Wilson").Set("city", "Austin")

	response, err := accounts.Modify(context.Background(), "MAXXXXXXXXXXXXXXXXXX", params)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/v1/Account/MAXXXXXXXXXXXXXXXXXX/", last.Path)
	assert.Equal(t, `{"name":"Wilson","city":"Austin"}`, last.Body)
	assert.Equal(t, "changed", response.Message)
}

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

func TestApplicationsClient_Create(t *testing.T) {
	t.Parallel()

	gateway, last := newFakeProvider(t, http.StatusCreated, `{
		"api_id": "api-1",
		"message": "created",
		"app_id": "12345678901234567"
	}`)

	applications := client.NewApplicationsClient(gateway)

	params := vapi.NewParams().
		Set("app_name", "ivr").
		Set("answer_url", "https://example.com/answer/")

	response, err := applications.Create(context.Background(), "MA1", params)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/v1/Account/MA1/Application/", last.Path)
	assert.Equal(t, `{"app_name":"ivr","answer_url":"https://example.com/answer/"}`, last.Body)
	assert.Equal(t, "12345678901234567", response.AppID)
}

func TestApplicationsClient_Get(t *testing.T) {
	t.Parallel()

	gateway, last := newFakeProvider(t, http.StatusOK, `{
		"app_id": "12345678901234567",
		"app_name": "ivr",
		"answer_url": "https://example.com/answer/",
		"answer_method": "POST"
	}`)

	applications := client.NewApplicationsClient(gateway)

	application, err := applications.Get(context.Background(), "MA1", "12345678901234567")
	require.NoError(t, err)

	assert.Equal(t, "/v1/Account/MA1/Application/12345678901234567/", last.Path)
	assert.Equal(t, "ivr", application.AppName)
	assert.Equal(t, "POST", application.AnswerMethod)
}

func TestApplicationsClient_List(t *testing.T) {
	t.Parallel()

	gateway, last := newFakeProvider(t, http.StatusOK, `{
		"api_id": "api-1",
		"meta": {"limit": 20, "offset": 0, "total_count": 1},
		"objects": [{"app_id": "123", "app_name": "ivr"}]
	}`)

	applications := client.NewApplicationsClient(gateway)

	list, err := applications.List(context.Background(), "MA1", nil)
	require.NoError(t, err)

	assert.Equal(t, "/v1/Account/MA1/Application/", last.Path)
	assert.Empty(t, last.Query)
	require.Len(t, list.Objects, 1)
	assert.Equal(t, "ivr", list.Objects[0].AppName)
}

func TestApplicationsClient_Modify(t *testing.T) {
	t.Parallel()

	gateway, last := newFakeProvider(t, http.StatusAccepted, `{"api_id":"api-1","message":"changed"}`)
	applications := client.NewApplicationsClient(gateway)

	response, err := applications.Modify(context.Background(), "MA1", "123",
		vapi.NewParams().Set("answer_url", "https://example.com/v2/answer/"))
	require.NoError(t, err)

	assert.Equal(t, "/v1/Account/MA1/Application/123/", last.Path)
	assert.Equal(t, "changed", response.Message)
}

func TestApplicationsClient_Delete(t *testing.T) {
	t.Parallel()

	gateway, last := newFakeProvider(t, http.StatusNoContent, "")
	applications := client.NewApplicationsClient(gateway)

	err := applications.Delete(context.Background(), "MA1", "123")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, last.Method)
	assert.Equal(t, "/v1/Account/MA1/Application/123/", last.Path)
}

func TestApplicationsClient_Delete_ServerError(t *testing.T) {
	t.Parallel()

	gateway, _ := newFakeProvider(t, http.StatusInternalServerError, "Internal error")
	applications := client.NewApplicationsClient(gateway)

	err := applications.Delete(context.Background(), "MA1", "123")
	require.Error(t, err)

	var apiErr *vapi.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Internal error", apiErr.Body)
}

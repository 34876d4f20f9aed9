package client_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vonix-io/vapi/internal/auth"
	internalhttp "github.com/vonix-io/vapi/internal/http"
)

// recordedRequest captures what the fake provider saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// newFakeProvider starts an httptest server answering every request with
// the given status and body, and returns a gateway pointed at it plus a
// pointer to the last request seen.
func newFakeProvider(t *testing.T, status int, body string) (*internalhttp.Client, *recordedRequest) {
	t.Helper()

	last := &recordedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last.Method = r.Method
		last.Path = r.URL.Path
		last.Query = r.URL.RawQuery

		reqBody, _ := io.ReadAll(r.Body)
		last.Body = string(reqBody)

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	store := auth.NewStore(auth.Credentials{AuthID: "MAXXXXXXXXXXXXXXXXXX", AuthToken: "token"})

	return internalhttp.NewClient(server.URL, store), last
}

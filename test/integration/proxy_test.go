package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mohsinsiddi/w3play/internal/playground"
	"github.com/Mohsinsiddi/w3play/internal/server"
	"github.com/Mohsinsiddi/w3play/test/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedCall is one request seen by the mock calldata API.
type recordedCall struct {
	Method string
	Path   string
	Body   map[string]any
}

// mockCalldataAPI serves recorded responses keyed by request path.
func mockCalldataAPI(t *testing.T, routes map[string]string, calls *[]recordedCall) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := recordedCall{Method: r.Method, Path: r.URL.Path}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			json.Unmarshal(raw, &c.Body) //nolint:errcheck
		}
		*calls = append(*calls, c)

		name, ok := routes[r.URL.Path]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		status := http.StatusOK
		if strings.HasPrefix(name, "invalid") {
			status = http.StatusBadRequest
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(fixtures.LoadRaw(t, name)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

// playgroundThroughProxy wires dispatcher → proxy server → mock API.
func playgroundThroughProxy(t *testing.T, routes map[string]string) (*playground.Dispatcher, *[]recordedCall) {
	t.Helper()
	calls := &[]recordedCall{}
	api := mockCalldataAPI(t, routes, calls)

	proxy, err := server.New(server.Options{APIURL: api.URL})
	require.NoError(t, err)
	front := httptest.NewServer(proxy.Handler())
	t.Cleanup(front.Close)

	return playground.NewDispatcher(front.URL, false), calls
}

func TestHealthThroughProxy(t *testing.T) {
	d, calls := playgroundThroughProxy(t, map[string]string{"/": "health.json"})

	resp := d.Dispatch(context.Background(), "health", nil)

	assert.Equal(t, fixtures.LoadResponse(t, "health.json"), resp)
	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodGet, (*calls)[0].Method)
}

func TestLockCredaThroughProxy(t *testing.T) {
	d, calls := playgroundThroughProxy(t, map[string]string{
		"/api/v1/calldata/lock-creda": "lock-creda.json",
	})

	resp := d.Dispatch(context.Background(), "lock-creda", map[string]string{"amount": "1000000000000000000000"})

	assert.Equal(t, fixtures.LoadResponse(t, "lock-creda.json"), resp)
	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodPost, (*calls)[0].Method)
	assert.Equal(t, map[string]any{"amount": "1000000000000000000000"}, (*calls)[0].Body)
}

func TestApproveMatchesDemoCalldata(t *testing.T) {
	d, _ := playgroundThroughProxy(t, map[string]string{
		"/api/v1/calldata/creda-approve": "creda-approve.json",
	})
	values := map[string]string{
		"spender": "0x802d8097ec1d49808f3c2c866020442891adde57",
		"amount":  "1000000000000000000000",
	}

	live := d.Dispatch(context.Background(), "creda-approve", values)
	demo := playground.NewDispatcher("", true).Dispatch(context.Background(), "creda-approve", values)

	assert.Equal(t, live, demo)
}

func TestFlowBurnSendsIntegerAndStrings(t *testing.T) {
	d, calls := playgroundThroughProxy(t, map[string]string{
		"/api/v1/flow/burn": "flow-burn.json",
	})

	resp := d.Dispatch(context.Background(), "flow-burn", map[string]string{
		"factory_address":    "0x802d8097ec1d49808f3c2c866020442891adde57",
		"game_token_address": "0x802d8097ec1d49808f3c2c866020442891adde57",
		"game_id":            "1",
		"burn_amount":        "1000000000000000000000",
	})

	m := resp.(map[string]any)
	assert.Contains(t, m, "game_token_approve")
	assert.Contains(t, m, "burn_game_token")
	require.Len(t, *calls, 1)
	assert.Equal(t, "1", (*calls)[0].Body["game_id"])
}

func TestUpstreamValidationErrorReachesPlayground(t *testing.T) {
	d, _ := playgroundThroughProxy(t, map[string]string{
		"/api/v1/calldata/creda-approve": "invalid-address.json",
	})

	resp := d.Dispatch(context.Background(), "creda-approve", map[string]string{"spender": "0x", "amount": "1"})

	assert.Equal(t, fixtures.LoadResponse(t, "invalid-address.json"), resp)
}

func TestUnroutedPathIsNotJSON(t *testing.T) {
	d, _ := playgroundThroughProxy(t, map[string]string{})

	m := d.Dispatch(context.Background(), "burn-token", map[string]string{"game_id": "1", "amount": "5"}).(map[string]any)

	assert.Equal(t, true, m["error"])
	assert.Contains(t, m["message"], "HTTP 404")
}

package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// parseFieldFlags
// ---------------------------------------------------------------------------

func TestParseFieldFlags(t *testing.T) {
	got, err := parseFieldFlags([]string{"spender=0xabc", "amount=1000"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"spender": "0xabc", "amount": "1000"}, got)
}

func TestParseFieldFlagsValueWithEquals(t *testing.T) {
	got, err := parseFieldFlags([]string{"name=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "a=b", got["name"])
}

func TestParseFieldFlagsEmptyValue(t *testing.T) {
	got, err := parseFieldFlags([]string{"symbol="})
	require.NoError(t, err)
	assert.Equal(t, "", got["symbol"])
}

func TestParseFieldFlagsTrimsKey(t *testing.T) {
	got, err := parseFieldFlags([]string{" amount =5"})
	require.NoError(t, err)
	assert.Equal(t, "5", got["amount"])
}

func TestParseFieldFlagsRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"amount", "=5", "  =x"} {
		_, err := parseFieldFlags([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestParseFieldFlagsNone(t *testing.T) {
	got, err := parseFieldFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ---------------------------------------------------------------------------
// request command
// ---------------------------------------------------------------------------

func decodeOutput(t *testing.T, out string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m), out)
	return m
}

func TestRequestDemoHealth(t *testing.T) {
	out := mustRun(t, t.TempDir(), "request", "health")
	assert.Equal(t, map[string]any{"status": "ok", "version": "0.1.0"}, decodeOutput(t, out))
}

func TestRequestDemoLockCreda(t *testing.T) {
	out := mustRun(t, t.TempDir(), "request", "lock-creda", "-f", "amount=1000000000000000000000")
	m := decodeOutput(t, out)
	assert.True(t, strings.HasPrefix(m["calldata"].(string), "0xbec697db"))
}

func TestRequestDemoFlowCreateEchoesAmount(t *testing.T) {
	out := mustRun(t, t.TempDir(), "request", "flow-create",
		"-f", "factory_address=0xF", "-f", "creda_amount=42",
		"-f", "game_name=Game", "-f", "game_symbol=GM", "-f", "decimals=18")
	m := decodeOutput(t, out)
	assert.Equal(t, "42", m["xp_amount"])
	assert.Contains(t, m, "create_token")
}

func TestRequestUnknownEndpointPrintsErrorShape(t *testing.T) {
	out := mustRun(t, t.TempDir(), "request", "nope")
	assert.Equal(t, map[string]any{"error": "Unknown endpoint"}, decodeOutput(t, out))
}

func TestRequestValidateUnknownEndpointPrintsErrorShape(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir(), "request", "nope", "--validate")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"error": "Unknown endpoint"}, decodeOutput(t, out))
}

func TestRequestValidateRejectsBadAddress(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "request", "creda-approve",
		"-f", "spender=0x1", "-f", "amount=1", "--validate")
	assert.Error(t, err)
}

func TestRequestShowRequestGoesToStderr(t *testing.T) {
	out, errOut, err := runCLI(t, t.TempDir(), "request", "burn-token",
		"-f", "game_id=1", "-f", "amount=500", "--show-request")
	require.NoError(t, err)
	assert.Contains(t, errOut, "/api/v1/calldata/burn-token")
	decodeOutput(t, out)
}

func TestRequestShowRequestWithoutBody(t *testing.T) {
	out, errOut, err := runCLI(t, t.TempDir(), "request", "health", "--show-request")
	require.NoError(t, err)
	assert.Contains(t, errOut, "GET")
	assert.Contains(t, errOut, "Body")
	decodeOutput(t, out)
}

func TestRequestLiveUsesConfiguredAPI(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, `{"calldata":"0xfeed"}`)
	}))
	defer srv.Close()

	dir := t.TempDir()
	mustRun(t, dir, "config", "set-api-url", srv.URL)
	out := mustRun(t, dir, "request", "lock-creda", "-f", "amount=1", "--live")

	assert.Equal(t, "/api/v1/calldata/lock-creda", gotPath)
	assert.Equal(t, map[string]any{"calldata": "0xfeed"}, decodeOutput(t, out))
}

func TestRequestLiveUnreachableIsErrorShaped(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "config", "set-api-url", "http://127.0.0.1:1")
	out := mustRun(t, dir, "request", "health", "--live")

	m := decodeOutput(t, out)
	assert.Equal(t, true, m["error"])
	assert.NotEmpty(t, m["message"])
}

func TestRequestMalformedField(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "request", "lock-creda", "-f", "amount")
	assert.Error(t, err)
}

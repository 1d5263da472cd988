package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixturesDir returns the absolute path to the fixtures directory.
func fixturesDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}

// LoadRaw loads a recorded calldata API response body.
func LoadRaw(t *testing.T, filename string) []byte {
	t.Helper()
	path := filepath.Join(fixturesDir(), "responses", filename)
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to load fixture response: %s", filename)
	return data
}

// LoadResponse loads a recorded calldata API response as decoded JSON.
func LoadResponse(t *testing.T, filename string) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(LoadRaw(t, filename), &resp))
	return resp
}

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCLI executes the root command against an isolated config directory,
// with PORT and API_URL cleared, and returns stdout and stderr.
func runCLI(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("API_URL", "")
	return runCLIWithEnv(t, dir, args...)
}

// runCLIWithEnv is runCLI without touching the environment.
func runCLIWithEnv(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	reqFields, reqLive, reqCopy, reqValidate, reqShow = nil, false, false, false, false
	verbose, logFormat = false, ""
	endpointsOutput = "table"

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, _, err := runCLI(t, dir, args...)
	require.NoError(t, err)
	return out
}

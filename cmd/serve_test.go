package cmd

import (
	"testing"

	"github.com/Mohsinsiddi/w3play/internal/config"
	"github.com/Mohsinsiddi/w3play/internal/logging"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServeFlags() *cobra.Command {
	c := &cobra.Command{Use: "serve"}
	c.Flags().StringVarP(&servePort, "port", "p", "", "")
	c.Flags().StringVar(&serveAPIURL, "api-url", "", "")
	c.Flags().StringVar(&serveStaticDir, "static-dir", "", "")
	return c
}

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	c, err := config.Load(t.TempDir())
	require.NoError(t, err)
	return c
}

func TestApplyServeFlagsOnlyChanged(t *testing.T) {
	c := loadTestConfig(t)
	c.Port = 3001

	require.NoError(t, applyServeFlags(newServeFlags(), c))
	assert.Equal(t, 3001, c.Port)
	assert.Equal(t, "http://localhost:8000", c.APIURL)
}

func TestApplyServeFlagsOverrides(t *testing.T) {
	c := loadTestConfig(t)
	cmd := newServeFlags()
	require.NoError(t, cmd.Flags().Set("port", "9090"))
	require.NoError(t, cmd.Flags().Set("api-url", "http://api.internal:8000"))
	require.NoError(t, cmd.Flags().Set("static-dir", "./web_ui"))

	require.NoError(t, applyServeFlags(cmd, c))
	assert.Equal(t, 9090, c.Port)
	assert.Equal(t, "http://api.internal:8000", c.APIURL)
	assert.Equal(t, "./web_ui", c.StaticDir)
}

func TestApplyServeFlagsInvalid(t *testing.T) {
	cmd := newServeFlags()
	require.NoError(t, cmd.Flags().Set("port", "99999"))
	assert.Error(t, applyServeFlags(cmd, loadTestConfig(t)))

	cmd = newServeFlags()
	require.NoError(t, cmd.Flags().Set("api-url", "ftp://x"))
	assert.Error(t, applyServeFlags(cmd, loadTestConfig(t)))
}

func TestModeLine(t *testing.T) {
	cfg = loadTestConfig(t)
	logger = logging.Nop()

	assert.Contains(t, modeLine(newDispatcher(false)), "Demo mode")
	assert.Contains(t, modeLine(newDispatcher(true)), "Live mode")

	cfg.Demo = false
	assert.Contains(t, modeLine(newDispatcher(false)), "http://localhost:8000")
}

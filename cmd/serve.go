package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mohsinsiddi/w3play/internal/config"
	"github.com/Mohsinsiddi/w3play/internal/server"
	"github.com/Mohsinsiddi/w3play/internal/ui"
	"github.com/spf13/cobra"
)

var (
	servePort      string
	serveAPIURL    string
	serveStaticDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI and proxy /api to the calldata API",
	Long: `Serve the playground web UI and pass calldata API traffic through.

  /  and  /api/*    forwarded to the API (method, headers, body untouched)
  static files      served from --static-dir, or the built-in assets
  anything else     index.html (single-page-app fallback)

Examples:
  w3play serve
  PORT=3001 API_URL=http://api.internal:8000 w3play serve
  w3play serve --static-dir ./web_ui --log-format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyServeFlags(cmd, cfg); err != nil {
			return err
		}

		srv, err := server.New(server.Options{
			Addr:              cfg.Addr(),
			APIURL:            cfg.APIURL,
			StaticDir:         cfg.StaticDir,
			Logger:            logger,
			ReadHeaderTimeout: config.ReadHeaderTimeout,
			ShutdownTimeout:   config.ShutdownTimeout,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Web UI server running at http://localhost:%d", cfg.Port)))
		fmt.Fprintln(cmd.OutOrStdout(), ui.Meta("API requests will be proxied to "+cfg.APIURL))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx)
	},
}

// applyServeFlags layers explicitly set flags over config and environment.
func applyServeFlags(cmd *cobra.Command, c *config.Config) error {
	if cmd.Flags().Changed("port") {
		if err := c.SetPort(servePort); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("api-url") {
		if err := c.SetAPIURL(serveAPIURL); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("static-dir") {
		c.StaticDir = serveStaticDir
	}
	return nil
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (default: PORT or 8080)")
	serveCmd.Flags().StringVar(&serveAPIURL, "api-url", "", "calldata API origin (default: API_URL or http://localhost:8000)")
	serveCmd.Flags().StringVar(&serveStaticDir, "static-dir", "", "directory of web assets (default: built-in)")
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Mohsinsiddi/w3play/internal/config"
	"github.com/Mohsinsiddi/w3play/internal/logging"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/w3play/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir    string
	cfg       *config.Config
	logger    *slog.Logger
	verbose   bool
	logFormat string
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "w3play",
	Short: "Playground and web proxy for the game token calldata API",
	Long: `w3play — try the game token calldata API from the terminal or the browser.

  playground   pick an endpoint, fill its form, see the calldata
  request      the same thing, non-interactively
  serve        web UI + reverse proxy to the calldata API

Responses are simulated locally unless --live is given or demo mode is
turned off (w3play config set-demo false). PORT and API_URL, from the
environment or a .env file in the working directory, override the config
file; flags override both.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
			return err
		}
		if err := cfg.ApplyEnv(os.Getenv); err != nil {
			return fmt.Errorf("environment: %w", err)
		}

		level := logging.ParseLevel(cfg.LogLevel)
		if verbose {
			level = logging.LevelDebug
		}
		format := cfg.LogFormat
		if logFormat != "" {
			format = logFormat
		}
		logger = logging.New(logging.Config{
			Level:  level,
			Format: logging.ParseFormat(format),
			Output: cmd.ErrOrStderr(),
		})
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// W3PLAY_CONFIG_DIR env var overrides --config flag default.
	if envDir := os.Getenv(config.EnvConfigDir); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.w3play)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text | json (default: config)")

	// Register all sub-commands.
	rootCmd.AddCommand(
		serveCmd,
		playgroundCmd,
		requestCmd,
		endpointsCmd,
		configCmd,
	)
}

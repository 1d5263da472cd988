package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Mohsinsiddi/w3play/internal/config"
	"github.com/Mohsinsiddi/w3play/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current configuration (environment overrides applied)",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", ui.StyleTitle.Render("Current Configuration"))
		fmt.Fprintln(out, string(data))
		fmt.Fprintln(out, ui.Meta("Config directory: "+cfg.Dir()))
		return nil
	},
}

var configSetAPIURLCmd = &cobra.Command{
	Use:   "set-api-url <url>",
	Short: "Set the calldata API origin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(cmd, func(c *config.Config) (string, error) {
			if err := c.SetAPIURL(args[0]); err != nil {
				return "", err
			}
			return fmt.Sprintf("API URL set to %s", c.APIURL), nil
		})
	},
}

var configSetPortCmd = &cobra.Command{
	Use:   "set-port <port>",
	Short: "Set the web UI listen port",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(cmd, func(c *config.Config) (string, error) {
			if err := c.SetPort(args[0]); err != nil {
				return "", err
			}
			return fmt.Sprintf("Port set to %d", c.Port), nil
		})
	},
}

var configSetDemoCmd = &cobra.Command{
	Use:   "set-demo <true|false>",
	Short: "Turn simulated responses on or off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		on, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("invalid value %q: expected true or false", args[0])
		}
		return updateConfig(cmd, func(c *config.Config) (string, error) {
			c.Demo = on
			if on {
				return "Demo mode on: responses are simulated", nil
			}
			return "Demo mode off: requests go to " + c.APIURL, nil
		})
	},
}

var configSetStaticDirCmd = &cobra.Command{
	Use:   "set-static-dir [dir]",
	Short: "Serve web assets from a directory (no argument restores the built-in UI)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(cmd, func(c *config.Config) (string, error) {
			if len(args) == 0 {
				c.StaticDir = ""
				return "Using the built-in web UI", nil
			}
			c.StaticDir = args[0]
			return "Static directory set to " + args[0], nil
		})
	},
}

var configSetLogLevelCmd = &cobra.Command{
	Use:   "set-log-level <debug|info|warn|error>",
	Short: "Set the default log level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level %q", args[0])
		}
		return updateConfig(cmd, func(c *config.Config) (string, error) {
			c.LogLevel = args[0]
			return "Log level set to " + args[0], nil
		})
	},
}

// updateConfig edits the file-backed config. It reloads from disk so that
// PORT/API_URL overrides in the environment are never persisted.
func updateConfig(cmd *cobra.Command, edit func(*config.Config) (string, error)) error {
	c, err := config.Load(cfgDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	msg, err := edit(c)
	if err != nil {
		return err
	}
	if err := c.Save(); err != nil {
		return err
	}
	logger.Debug("config saved", "dir", c.Dir())
	fmt.Fprintln(cmd.OutOrStdout(), ui.Success(msg))
	return nil
}

func init() {
	configCmd.AddCommand(
		configListCmd,
		configSetAPIURLCmd,
		configSetPortCmd,
		configSetDemoCmd,
		configSetStaticDirCmd,
		configSetLogLevelCmd,
	)
}

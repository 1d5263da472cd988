package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/Mohsinsiddi/w3play/internal/playground"
	"github.com/Mohsinsiddi/w3play/internal/ui"
	"github.com/spf13/cobra"
)

var (
	playLive bool
	playCopy bool
)

var playgroundCmd = &cobra.Command{
	Use:     "playground",
	Aliases: []string{"play"},
	Short:   "Interactive endpoint playground",
	Long: `Pick an endpoint, fill in its form and see the response.

The form always matches the selected endpoint. In demo mode (the default)
responses are fabricated locally; --live sends them to the configured API.

Examples:
  w3play playground
  w3play playground --live
  w3play play --copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		d := newDispatcher(playLive)

		fmt.Fprintln(out, ui.Banner(Version))
		fmt.Fprintln(out, modeLine(d))

		last := string(playground.Health)
		prefill := map[string]string{}

		for {
			name, err := ui.PickEndpoint(playground.All(), last)
			if err != nil {
				return err
			}
			if name == "" {
				return nil
			}
			last = name

			desc, err := playground.Lookup(name)
			if err != nil {
				// The picker only offers table entries; still, never crash on a bad pick.
				fmt.Fprintln(out, ui.ResponseBlock("Response", playground.Render(playground.UnknownEndpointResult())))
				continue
			}

			values, err := ui.NewEndpointForm(desc, prefill).Run()
			if errors.Is(err, ui.ErrAborted) {
				continue
			}
			if err != nil {
				return err
			}
			for k, v := range values {
				prefill[k] = v
			}

			rendered := send(cmd, d, name, values)
			fmt.Fprintln(out, ui.ResponseBlock("Response", rendered))

			offerCopy(out, rendered, playCopy, ui.ClipboardAvailable(), ui.Confirm)
			if !ui.Confirm("Send another request?") {
				return nil
			}
		}
	},
}

// send dispatches one submission, showing a spinner while a live call is in flight.
func send(cmd *cobra.Command, d *playground.Dispatcher, name string, values map[string]string) string {
	if req, err := playground.Build(name, values); err == nil {
		logger.Debug("request descriptor", "method", req.Method, "path", req.Path, "body", req.Body)
	}

	if d.Demo() {
		return playground.Render(d.Dispatch(cmd.Context(), name, values))
	}

	spin := ui.NewSpinnerTo(cmd.OutOrStdout(), "Loading...")
	spin.Start()
	resp := d.Dispatch(cmd.Context(), name, values)
	spin.Stop()
	return playground.Render(resp)
}

// offerCopy copies the response when asked to (or when the user confirms).
// A requested copy with no clipboard is reported rather than dropped.
func offerCopy(out io.Writer, text string, requested, available bool, confirm func(string) bool) {
	if !available {
		if requested {
			fmt.Fprintln(out, ui.Warn("Clipboard not available; response not copied"))
		}
		return
	}
	if requested || confirm("Copy response to clipboard?") {
		copyResponse(out, text)
	}
}

func copyResponse(out io.Writer, text string) {
	if err := ui.CopyToClipboard(text); err != nil {
		fmt.Fprintln(out, ui.Warn("Could not copy: "+err.Error()))
		return
	}
	fmt.Fprintln(out, ui.Success("Copied!"))
}

func newDispatcher(live bool) *playground.Dispatcher {
	return playground.NewDispatcher(cfg.APIURL, cfg.Demo && !live, playground.WithLogger(logger))
}

func modeLine(d *playground.Dispatcher) string {
	if d.Demo() {
		return ui.Info("Demo mode: responses are simulated locally (use --live to call " + d.BaseURL() + ")")
	}
	return ui.Info("Live mode: requests go to " + d.BaseURL())
}

func init() {
	playgroundCmd.Flags().BoolVar(&playLive, "live", false, "send requests to the API instead of simulating")
	playgroundCmd.Flags().BoolVar(&playCopy, "copy", false, "copy every response to the clipboard without asking")
}

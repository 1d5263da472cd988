package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3play/internal/playground"
	"github.com/Mohsinsiddi/w3play/internal/ui"
	"github.com/spf13/cobra"
)

var (
	reqFields   []string
	reqLive     bool
	reqCopy     bool
	reqValidate bool
	reqShow     bool
)

var requestCmd = &cobra.Command{
	Use:   "request <endpoint>",
	Short: "Send one playground request and print the JSON response",
	Long: `Build the request for an endpoint from -f key=value pairs and print the
response as indented JSON on stdout. Failures are printed in the same shape
the playground shows them: {"error": true, "message": "..."}.

Examples:
  w3play request health
  w3play request lock-creda -f amount=1000000000000000000000
  w3play request creda-approve -f spender=0xSpender -f amount=1000 --validate
  w3play request flow-burn -f factory_address=0xF -f game_token_address=0xT \
      -f game_id=1 -f burn_amount=500 --live --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		values, err := parseFieldFlags(reqFields)
		if err != nil {
			return err
		}

		if reqValidate {
			// Unknown endpoints still print the {"error": ...} shape below.
			err := playground.Validate(name, values)
			if err != nil && !errors.Is(err, playground.ErrUnknownEndpoint) {
				return err
			}
		}

		if reqShow {
			if req, err := playground.Build(name, values); err == nil {
				body, err := req.JSON()
				if err != nil {
					return fmt.Errorf("encoding request body: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), ui.KeyValueBlock("Request", [][2]string{
					{"Method", req.Method},
					{"Path", req.Path},
					{"Body", string(body)},
				}))
			}
		}

		d := newDispatcher(reqLive)
		rendered := playground.Render(d.Dispatch(cmd.Context(), name, values))
		fmt.Fprintln(cmd.OutOrStdout(), rendered)

		if reqCopy {
			copyResponse(cmd.ErrOrStderr(), rendered)
		}
		return nil
	},
}

// parseFieldFlags turns repeated key=value flags into form values.
// Values may contain '='; only the first one splits.
func parseFieldFlags(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid field %q: expected key=value", p)
		}
		values[k] = v
	}
	return values, nil
}

func init() {
	requestCmd.Flags().StringArrayVarP(&reqFields, "field", "f", nil, "form value as key=value (repeatable)")
	requestCmd.Flags().BoolVar(&reqLive, "live", false, "send to the API instead of simulating")
	requestCmd.Flags().BoolVar(&reqCopy, "copy", false, "copy the response to the clipboard")
	requestCmd.Flags().BoolVar(&reqValidate, "validate", false, "check addresses and amounts before sending")
	requestCmd.Flags().BoolVar(&reqShow, "show-request", false, "print the request descriptor to stderr")
}

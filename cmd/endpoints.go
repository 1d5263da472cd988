package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Mohsinsiddi/w3play/internal/playground"
	"github.com/Mohsinsiddi/w3play/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var endpointsOutput string

var endpointsCmd = &cobra.Command{
	Use:   "endpoints [name]",
	Short: "List endpoints, or show one endpoint's form",
	Long: `List the calldata API endpoints the playground can drive.

With a name, show that endpoint's form fields. --output json|yaml prints a
machine-readable catalog instead of the table.

Examples:
  w3play endpoints
  w3play endpoints flow-create
  w3play endpoints -o yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		ds := playground.All()
		if len(args) == 1 {
			d, err := playground.Lookup(args[0])
			if err != nil {
				return err
			}
			ds = []playground.Descriptor{d}
		}

		switch endpointsOutput {
		case "", "table":
		case "json", "yaml":
			return writeCatalog(out, endpointsOutput, ds)
		default:
			return fmt.Errorf("invalid output %q: want table, json or yaml", endpointsOutput)
		}

		if len(args) == 1 {
			fmt.Fprintln(out, endpointDetail(ds[0]))
			return nil
		}
		fmt.Fprintln(out, ui.StyleTitle.Render("Calldata API endpoints"))
		fmt.Fprint(out, endpointTable(ds).Render())
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Hint("w3play endpoints <name> shows the form fields"))
		return nil
	},
}

func endpointTable(ds []playground.Descriptor) *ui.Table {
	tbl := ui.NewTable([]ui.Column{
		{Title: "Endpoint", Width: 14},
		{Title: "Method", Width: 6},
		{Title: "Path"},
		{Title: "Selector", Width: 10},
		{Title: "Fields"},
	})
	for _, d := range ds {
		sel := d.Selector()
		if sel == "" {
			sel = "-"
		}
		fields := strings.Join(d.FieldNames(), ", ")
		if fields == "" {
			fields = "-"
		}
		tbl.AddRow(ui.Row{string(d.Endpoint), ui.Method(d.Method), ui.Path(d.Path), sel, fields})
	}
	return tbl
}

func endpointDetail(d playground.Descriptor) string {
	pairs := [][2]string{
		{"Endpoint", string(d.Endpoint)},
		{"Request", ui.Method(d.Method) + " " + ui.Path(d.Path)},
	}
	if d.Signature != "" {
		pairs = append(pairs, [2]string{"Function", d.Signature + " " + d.Selector()})
	}
	for _, f := range d.Fields {
		v := f.Label + " (e.g. " + f.Placeholder + ")"
		if f.Help != "" {
			v += " · " + f.Help
		}
		pairs = append(pairs, [2]string{f.Name, v})
	}
	return ui.KeyValueBlock(d.Title, pairs)
}

// ── catalog export ────────────────────────────────────────────────────────────

type catalogField struct {
	Name        string `json:"name" yaml:"name"`
	Label       string `json:"label" yaml:"label"`
	Kind        string `json:"kind" yaml:"kind"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

type catalogEntry struct {
	Name     string         `json:"name" yaml:"name"`
	Method   string         `json:"method" yaml:"method"`
	Path     string         `json:"path" yaml:"path"`
	Function string         `json:"function,omitempty" yaml:"function,omitempty"`
	Selector string         `json:"selector,omitempty" yaml:"selector,omitempty"`
	Fields   []catalogField `json:"fields" yaml:"fields"`
}

func catalog(ds []playground.Descriptor) []catalogEntry {
	entries := make([]catalogEntry, 0, len(ds))
	for _, d := range ds {
		e := catalogEntry{
			Name:     string(d.Endpoint),
			Method:   d.Method,
			Path:     d.Path,
			Function: d.Signature,
			Selector: d.Selector(),
			Fields:   []catalogField{},
		}
		for _, f := range d.Fields {
			e.Fields = append(e.Fields, catalogField{
				Name:        f.Name,
				Label:       f.Label,
				Kind:        f.Kind.String(),
				Placeholder: f.Placeholder,
			})
		}
		entries = append(entries, e)
	}
	return entries
}

func writeCatalog(w io.Writer, format string, ds []playground.Descriptor) error {
	entries := catalog(ds)
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func init() {
	endpointsCmd.Flags().StringVarP(&endpointsOutput, "output", "o", "table", "output format: table | json | yaml")
}

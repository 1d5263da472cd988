// check-endpoints: sends every playground endpoint to a running calldata API
// in parallel, with sample form values, and prints a summary table next to
// the demo-mode result for the same request.
//
// Run from the module root:
//
//	API_URL=http://localhost:8000 go run ./scripts/check-endpoints
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/Mohsinsiddi/w3play/internal/playground"
)

// ── config ────────────────────────────────────────────────────────────────────

const (
	sampleAddress = "0x802D8097eC1D49808F3c2c866020442891adde57"
	callTimeout   = 12 * time.Second
)

// ── types ─────────────────────────────────────────────────────────────────────

type result struct {
	endpoint string
	path     string
	live     string
	demo     string
	note     string
}

// ── main ──────────────────────────────────────────────────────────────────────

func main() {
	apiURL := os.Getenv("API_URL")
	live := playground.NewDispatcher(apiURL, false)
	demo := playground.NewDispatcher(apiURL, true)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []result
	)

	for _, d := range playground.All() {
		wg.Add(1)
		go func(d playground.Descriptor) {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
			defer cancel()

			values := sampleValues(d)
			r := result{endpoint: string(d.Endpoint), path: d.Method + " " + d.Path}
			r.live, r.note = summarize(live.Dispatch(ctx, string(d.Endpoint), values))
			r.demo, _ = summarize(demo.Dispatch(ctx, string(d.Endpoint), values))

			mu.Lock()
			results = append(results, r)
			mu.Unlock()
		}(d)
	}

	wg.Wait()

	fmt.Printf("calldata API: %s\n\n", live.BaseURL())
	printTable(results)
}

// sampleValues fills a form with placeholders, swapping in a real address
// where the placeholder is elided.
func sampleValues(d playground.Descriptor) map[string]string {
	values := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		if f.Kind == playground.KindAddress {
			values[f.Name] = sampleAddress
			continue
		}
		values[f.Name] = f.Placeholder
	}
	return values
}

// ── output ────────────────────────────────────────────────────────────────────

func printTable(results []result) {
	sort.Slice(results, func(i, j int) bool { return results[i].endpoint < results[j].endpoint })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ENDPOINT\tREQUEST\tLIVE\tDEMO\tNOTE")
	fmt.Fprintln(w, strings.Repeat("-", 14)+"\t"+
		strings.Repeat("-", 36)+"\t"+
		strings.Repeat("-", 22)+"\t"+
		strings.Repeat("-", 22)+"\t"+
		strings.Repeat("-", 12))

	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.endpoint, r.path, r.live, r.demo, r.note)
	}
	w.Flush()
}

// ── helpers ───────────────────────────────────────────────────────────────────

// summarize reduces a response to one short cell plus an error note.
func summarize(v any) (string, string) {
	m, ok := v.(map[string]any)
	if !ok {
		return shorten(playground.Render(v)), ""
	}
	if isErr, _ := m["error"].(bool); isErr {
		msg, _ := m["message"].(string)
		return "—", shorten(msg)
	}
	if s, ok := m["error"].(string); ok {
		return "—", s
	}
	if cd, ok := m["calldata"].(string); ok {
		return shorten(cd), ""
	}
	if st, ok := m["status"].(string); ok {
		return st, ""
	}
	return fmt.Sprintf("%d steps", len(m)), ""
}

func shorten(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 20 {
		return s[:20] + "…"
	}
	return s
}

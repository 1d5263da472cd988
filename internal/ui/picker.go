package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mohsinsiddi/w3play/internal/playground"
)

// endpointPicker is the Bubble Tea model for choosing a playground endpoint.
// The panel under the list previews the form of the highlighted endpoint.
type endpointPicker struct {
	items    []playground.Descriptor
	cursor   int
	selected *playground.Descriptor
	quitting bool
}

func newEndpointPicker(items []playground.Descriptor, initial string) endpointPicker {
	m := endpointPicker{items: items}
	for i, d := range items {
		if string(d.Endpoint) == initial {
			m.cursor = i
		}
	}
	return m
}

func (m endpointPicker) Init() tea.Cmd { return nil }

func (m endpointPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.items) - 1
	case "enter", " ":
		if len(m.items) > 0 {
			d := m.items[m.cursor]
			m.selected = &d
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m endpointPicker) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(StyleTitle.Render("  Select an endpoint") + "\n\n")

	for i, d := range m.items {
		if i == m.cursor {
			line := fmt.Sprintf("  ▸ %-14s %-5s %s", d.Endpoint, d.Method, d.Path)
			sb.WriteString(StyleSelected.Render(line) + "\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("    %-14s %s %s\n", d.Endpoint, fit(Method(d.Method), 5), Path(d.Path)))
	}

	if len(m.items) > 0 {
		sb.WriteString("\n" + formPreview(m.items[m.cursor]))
	}

	sb.WriteString("\n")
	sb.WriteString(StyleMeta.Render("  [ ↑↓ / jk ] navigate   [ Enter ] select   [ q ] quit") + "\n")
	return sb.String()
}

// formPreview lists the inputs the endpoint will ask for.
func formPreview(d playground.Descriptor) string {
	pairs := [][2]string{{"Request", d.Method + " " + d.Path}}
	if d.Description != "" {
		pairs = append(pairs, [2]string{"About", d.Description})
	}
	if len(d.Fields) == 0 {
		pairs = append(pairs, [2]string{"Fields", "(none)"})
	}
	for _, f := range d.Fields {
		pairs = append(pairs, [2]string{f.Name, f.Label})
	}
	return KeyValueBlock(d.Title, pairs) + "\n"
}

// PickEndpoint runs the interactive endpoint list and returns the chosen name.
// Returns ("", nil) if the user cancels.
func PickEndpoint(items []playground.Descriptor, initial string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no endpoints to pick from")
	}

	p := tea.NewProgram(newEndpointPicker(items, initial), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("picker: %w", err)
	}

	fm := final.(endpointPicker)
	if fm.quitting || fm.selected == nil {
		return "", nil
	}
	return string(fm.selected.Endpoint), nil
}

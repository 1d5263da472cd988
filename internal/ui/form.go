package ui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/Mohsinsiddi/w3play/internal/playground"
)

// ErrAborted is returned when the user leaves a form with ctrl+c or esc.
var ErrAborted = errors.New("aborted")

// EndpointForm is the input form for one endpoint. Its inputs are generated
// from the endpoint's field list, so it always matches the selection.
type EndpointForm struct {
	desc   playground.Descriptor
	values []string
	form   *huh.Form
}

// NewEndpointForm builds the form for d, pre-filled from prefill.
func NewEndpointForm(d playground.Descriptor, prefill map[string]string) *EndpointForm {
	f := &EndpointForm{desc: d, values: make([]string, len(d.Fields))}
	if len(d.Fields) == 0 {
		return f
	}

	inputs := make([]huh.Field, 0, len(d.Fields))
	for i, field := range d.Fields {
		f.values[i] = prefill[field.Name]
		inputs = append(inputs, huh.NewInput().
			Key(field.Name).
			Title(field.Label).
			Description(field.Help).
			Placeholder(field.Placeholder).
			Value(&f.values[i]).
			Validate(field.Validate))
	}

	f.form = huh.NewForm(
		huh.NewGroup(inputs...).
			Title(d.Title).
			Description(d.Method + " " + d.Path),
	)
	return f
}

// Run shows the form and returns the entered values. Endpoints without
// fields return immediately.
func (f *EndpointForm) Run() (map[string]string, error) {
	if f.form != nil {
		if err := f.form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrAborted
			}
			return nil, err
		}
	}
	return f.Values(), nil
}

// Values returns the current input values keyed by field name.
func (f *EndpointForm) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for i, field := range f.desc.Fields {
		out[field.Name] = f.values[i]
	}
	return out
}

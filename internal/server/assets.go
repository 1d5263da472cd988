package server

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"

	"github.com/Mohsinsiddi/w3play/internal/playground"
)

//go:embed web
var webFS embed.FS

//go:embed templates/index.html.tmpl
var indexTemplate string

func embeddedAssets() fs.FS {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err) // the embed directive guarantees the directory
	}
	return sub
}

type fieldView struct {
	playground.Field
	Numeric bool
}

type endpointView struct {
	Name        string
	Title       string
	Method      string
	Path        string
	Description string
	Fields      []fieldView
}

type indexData struct {
	APIURL    string
	Endpoints []endpointView
}

// renderIndex builds the fallback document from the endpoint table so the
// browser form always matches what the CLI playground offers.
func renderIndex(apiURL string) ([]byte, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, err
	}

	data := indexData{APIURL: apiURL}
	for _, d := range playground.All() {
		ev := endpointView{
			Name:        string(d.Endpoint),
			Title:       d.Title,
			Method:      d.Method,
			Path:        d.Path,
			Description: d.Description,
		}
		for _, f := range d.Fields {
			ev.Fields = append(ev.Fields, fieldView{Field: f, Numeric: f.Kind == playground.KindInteger})
		}
		data.Endpoints = append(data.Endpoints, ev)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

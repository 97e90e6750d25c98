package variablesjson

import (
	"encoding/json"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
)

// Exporter emits the Figma-variables JSON consumed by the design-tool
// mapping feature: one string variable per field keyed by its variable path,
// with a value per language, plus one collection per language.
type Exporter struct{}

func New() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string { return "variablesjson" }

type document struct {
	Version     string                `json:"version"`
	Name        string                `json:"name"`
	Variables   map[string]variable   `json:"variables"`
	Collections map[string]collection `json:"collections"`
}

type variable struct {
	Name   string            `json:"name"`
	Type   string            `json:"type"`
	Values map[string]string `json:"values"`
}

type collection struct {
	Name  string            `json:"name"`
	Modes map[string]string `json:"modes"`
}

func (e *Exporter) Export(doc ports.ExportDocument) ([]byte, error) {
	out := document{
		Version:     "1.0",
		Name:        doc.ProjectName,
		Variables:   map[string]variable{},
		Collections: map[string]collection{},
	}
	for _, lang := range doc.Languages {
		out.Collections[lang.Code] = collection{Name: lang.Name, Modes: map[string]string{}}
	}
	for _, sec := range doc.Sections {
		for _, asset := range sec.Assets {
			for _, f := range asset.Fields {
				v := variable{Name: f.VariablePath, Type: "string", Values: map[string]string{}}
				for _, lang := range doc.Languages {
					v.Values[lang.Code] = f.Values[lang.Code]
				}
				out.Variables[f.VariablePath] = v
			}
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

package htmldoc

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
)

// Exporter renders a standalone review document for one language: a styled
// page with a table of contents and one section per deliverable.
type Exporter struct {
	tpl *template.Template
}

func New() *Exporter {
	return &Exporter{tpl: template.Must(template.New("doc").Parse(page))}
}

func (e *Exporter) Format() string { return "html" }

type viewField struct {
	Name  string
	Value string
}

type viewAsset struct {
	Name   string
	Fields []viewField
}

type viewSection struct {
	Name   string
	Anchor string
	Assets []viewAsset
}

type view struct {
	Title    string
	Language string
	Sections []viewSection
}

func (e *Exporter) Export(doc ports.ExportDocument) ([]byte, error) {
	v := view{Title: doc.ProjectName, Language: doc.Language}
	for i, sec := range doc.Sections {
		vs := viewSection{Name: sec.Name, Anchor: anchor(i)}
		for _, a := range sec.Assets {
			va := viewAsset{Name: a.Name}
			for _, f := range a.Fields {
				value := f.Values[doc.Language]
				if value == "" {
					value = "[Empty]"
				}
				va.Fields = append(va.Fields, viewField{Name: f.FieldName, Value: value})
			}
			vs.Assets = append(vs.Assets, va)
		}
		v.Sections = append(v.Sections, vs)
	}
	var buf bytes.Buffer
	if err := e.tpl.Execute(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func anchor(i int) string {
	return fmt.Sprintf("section-%d", i+1)
}

const page = `<!DOCTYPE html>
<html lang="{{.Language}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 40px 20px; line-height: 1.6; color: #333; }
    h1 { font-size: 28px; margin-bottom: 20px; border-bottom: 2px solid #333; padding-bottom: 10px; }
    h2 { font-size: 24px; margin-top: 30px; margin-bottom: 15px; color: #444; }
    h3 { font-size: 20px; margin-top: 20px; margin-bottom: 10px; color: #555; }
    .toc { background-color: #f5f5f5; padding: 20px; margin-bottom: 40px; border-radius: 5px; }
    .toc ul { list-style-type: decimal; margin-left: 20px; }
    .toc a { color: #0066cc; text-decoration: none; }
    .field { margin-bottom: 10px; margin-left: 20px; }
    .field-name { font-weight: bold; color: #666; }
    .field-value { color: #333; }
    .asset { margin-bottom: 30px; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div class="toc">
    <h2>Contents</h2>
    <ul>
    {{- range .Sections}}
      <li><a href="#{{.Anchor}}">{{.Name}}</a></li>
    {{- end}}
    </ul>
  </div>
{{- range .Sections}}
  <h2 id="{{.Anchor}}">{{.Name}}</h2>
  {{- range .Assets}}
  <div class="asset">
    <h3>{{.Name}}</h3>
    {{- range .Fields}}
    <div class="field"><span class="field-name">{{.Name}}:</span> <span class="field-value">{{.Value}}</span></div>
    {{- end}}
  </div>
  {{- end}}
{{- end}}
</body>
</html>
`

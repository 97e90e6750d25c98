package prompt

import (
	"bytes"
	"context"
	"text/template"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
)

// Renderer builds LLM prompts from stored template overrides, falling back
// to the built-in marketing-copy prompts.
type Renderer struct {
	Templates ports.TemplateRepository
}

func New(templates ports.TemplateRepository) *Renderer { return &Renderer{Templates: templates} }

func (r *Renderer) Render(ctx context.Context, typ, role string, data ports.PromptData) (string, error) {
	body := builtinTemplate(typ, role)
	if r.Templates != nil {
		if t, _ := r.Templates.GetEffective(ctx, typ, role); t != nil && t.Body != "" {
			body = t.Body
		}
	}
	tpl, err := template.New("prompt").Parse(body)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func builtinTemplate(typ, role string) string {
	if typ == "translate_copy" && role == "system" {
		return "You are a transcreation specialist for retail marketing copy. Translate from {{.SrcLang}} to {{.TgtLang}}, keeping the tone on-brand and the length suitable for a {{.FieldKind}} slot. Preserve placeholders exactly (e.g., {{.Placeholders}}). {{if .Instructions}}Client instructions: {{.Instructions}}{{end}} Return only JSON: {\"translation\":\"...\"}."
	}
	if typ == "translate_copy" && role == "user" {
		return "project: {{.Project}} client: {{.ClientName}} variable: {{.VariablePath}}\nsource: {{.Text}}"
	}
	return ""
}

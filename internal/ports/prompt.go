package ports

import "context"

type PromptData struct {
	SrcLang      string
	TgtLang      string
	VariablePath string
	Text         string
	Project      string
	ClientName   string
	Instructions string
	FieldKind    string
	Placeholders []string
}

type PromptRenderer interface {
	Render(ctx context.Context, typ, role string, data PromptData) (string, error)
}

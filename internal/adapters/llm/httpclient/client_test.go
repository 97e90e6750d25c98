package httpclient

import (
	"context"
	"testing"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
)

func TestExtractTranslation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{name: "direct json", content: `{"translation":"Bonjour"}`, want: "Bonjour"},
		{name: "fenced block", content: "```json\n{\"translation\":\"Hola\"}\n```", want: "Hola"},
		{name: "surrounding prose", content: `Here you go: {"translation":"Ciao"} hope that helps`, want: "Ciao"},
		{name: "escaped quotes", content: `{"translation":"Say \"hi\""}`, want: `Say "hi"`},
		{name: "plain text", content: "Guten Tag", want: "Guten Tag"},
		{name: "labeled plain text", content: "Translation: Bom dia", want: "Bom dia"},
		{name: "unparseable object", content: `{"translation":`, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := extractTranslation(c.content)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractTranslation: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestOpenRouterURL(t *testing.T) {
	cases := []struct{ base, tail, want string }{
		{"https://openrouter.ai", "/models", "https://openrouter.ai/api/v1/models"},
		{"https://openrouter.ai/", "/models", "https://openrouter.ai/api/v1/models"},
		{"https://openrouter.ai/api/v1", "/chat/completions", "https://openrouter.ai/api/v1/chat/completions"},
		{"https://proxy.internal/api/v1/extra", "/models", "https://proxy.internal/api/v1/models"},
	}
	for _, c := range cases {
		if got := openRouterURL(c.base, c.tail); got != c.want {
			t.Errorf("openRouterURL(%q, %q) = %q, want %q", c.base, c.tail, got, c.want)
		}
	}
}

func TestTranslateUnsupportedProvider(t *testing.T) {
	c := New("gemini", "", "", "")
	seg := ports.Segment{VariablePath: "pdp/module_1/headline", Text: "Hello"}
	if _, err := c.Translate(context.Background(), seg, ports.TranslateParams{TargetLang: "fr"}); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

package factory

import (
	httpprov "github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/llm/httpclient"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
)

// FromProvider returns an HTTP-backed provider for the given record.
func FromProvider(p *domain.Provider) (ports.Provider, bool) {
	switch p.Type {
	case "openrouter", "ollama":
		return httpprov.New(p.Type, p.APIKey, p.BaseURL, p.Model), true
	default:
		return nil, false
	}
}

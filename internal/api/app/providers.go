package app

import (
	"context"
	"errors"
	"strings"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/llm/factory"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
)

type ProviderAPI struct {
	repo ports.ProviderRepository
}

func NewProviderAPI(repo ports.ProviderRepository) *ProviderAPI { return &ProviderAPI{repo: repo} }

func (a *ProviderAPI) Create(p domain.Provider) (*domain.Provider, error) {
	ctx := context.Background()
	if p.Type == "" || p.Name == "" {
		return nil, errors.New("type and name are required")
	}
	if err := a.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	// mask API key when returning
	p.APIKey = mask(p.APIKey)
	return &p, nil
}

func (a *ProviderAPI) Update(p domain.Provider) (*domain.Provider, error) {
	ctx := context.Background()
	if p.ID == "" {
		return nil, errors.New("id is required")
	}
	// Preserve existing API key if masked or empty provided from UI
	if strings.HasPrefix(p.APIKey, "****") || p.APIKey == "" {
		existing, err := a.repo.Get(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.APIKey = existing.APIKey
	}
	if err := a.repo.Update(ctx, &p); err != nil {
		return nil, err
	}
	p.APIKey = mask(p.APIKey)
	return &p, nil
}

func (a *ProviderAPI) List() ([]*domain.Provider, error) {
	ctx := context.Background()
	list, err := a.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		p.APIKey = mask(p.APIKey)
	}
	return list, nil
}

func (a *ProviderAPI) Delete(id string) (bool, error) {
	ctx := context.Background()
	if err := a.repo.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

type ModelInfo struct {
	Name, Description string
	ContextTokens     int
}

func (a *ProviderAPI) ListModels(id string) ([]ModelInfo, error) {
	ctx := context.Background()
	p, err := a.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	prov, ok := factory.FromProvider(p)
	if !ok {
		return nil, errors.New("unsupported provider type")
	}
	models, err := prov.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ModelInfo, 0, len(models))
	for _, m := range models {
		out = append(out, ModelInfo{Name: m.Name, Description: m.Description, ContextTokens: m.ContextTokens})
	}
	return out, nil
}

// ListModelsPreview returns models for a transient provider configuration
// without persisting it. Useful for configuring a provider before saving.
func (a *ProviderAPI) ListModelsPreview(p domain.Provider) ([]ModelInfo, error) {
	ctx := context.Background()
	prov, ok := factory.FromProvider(&p)
	if !ok {
		return nil, errors.New("unsupported provider type")
	}
	models, err := prov.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ModelInfo, 0, len(models))
	for _, m := range models {
		out = append(out, ModelInfo{Name: m.Name, Description: m.Description, ContextTokens: m.ContextTokens})
	}
	return out, nil
}

// ProviderTestResult contains details of a connectivity/translate test.
type ProviderTestResult struct {
	Ok          bool   `json:"ok"`
	Translation string `json:"translation,omitempty"`
	Raw         string `json:"raw,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Test performs a live translation of a simple phrase to validate a provider.
func (a *ProviderAPI) Test(id string) (ProviderTestResult, error) {
	ctx := context.Background()
	p, err := a.repo.Get(ctx, id)
	if err != nil {
		return ProviderTestResult{}, err
	}
	prov, ok := factory.FromProvider(p)
	if !ok {
		return ProviderTestResult{}, errors.New("unsupported provider type")
	}

	system := "You are a professional localization translator. Translate from en to es. Preserve placeholders. Return only JSON: {\"translation\":\"...\"}."
	user := "Text: hello"

	seg := ports.Segment{VariablePath: "test", Text: "hello"}
	res, trErr := prov.Translate(ctx, seg, ports.TranslateParams{
		SourceLang:   "en",
		TargetLang:   "es",
		Model:        p.Model,
		Temperature:  0.0,
		SystemPrompt: system,
		UserPrompt:   user,
	})
	if trErr != nil {
		return ProviderTestResult{Ok: false, Error: trErr.Error()}, nil
	}
	return ProviderTestResult{Ok: true, Translation: res.Translation, Raw: res.Raw}, nil
}

func mask(s string) string {
	if len(s) <= 4 {
		return s
	}
	return "****" + s[len(s)-4:]
}

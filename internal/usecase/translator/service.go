package translator

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/session"
)

type Deps struct {
	Providers ports.ProviderRepository
	Prompt    ports.PromptRenderer
	Session   *session.Session
	// BuildProvider returns a concrete ports.Provider for a provider record.
	BuildProvider func(*domain.Provider) (ports.Provider, error)
}

// Service implements the AI-assist pathway: translate one field's source
// copy into a target language and record it with status ai_generated.
type Service struct{ d Deps }

func New(d Deps) *Service { return &Service{d: d} }

type TranslateArgs struct {
	ProviderID string
	FieldID    string
	TargetLang string
	VariantID  string
	Model      string
}

// TranslateField resolves the source text for the field (base-variant
// inheritance applies), runs it through the provider, and writes the result
// into the session. Returns the translated text.
func (s *Service) TranslateField(ctx context.Context, a TranslateArgs) (string, error) {
	prov, err := s.d.Providers.Get(ctx, a.ProviderID)
	if err != nil {
		return "", err
	}
	project := s.d.Session.Project()
	variantID := a.VariantID
	if variantID == "" {
		base := project.BaseVariant()
		if base == nil {
			return "", errors.New("project has no base variant")
		}
		variantID = base.ID
	}
	path, ok := s.d.Session.VariablePath(a.FieldID)
	if !ok {
		return "", errors.New("field not found: " + a.FieldID)
	}
	fieldKind := fieldKindOf(project, a.FieldID)
	source := s.d.Session.EffectiveTranslation(a.FieldID, project.SourceLanguage, variantID)
	if source.Value == "" {
		return "", errors.New("source copy is empty for " + path)
	}

	placeholders := extractPlaceholders(source.Value)
	masked, unmask := maskPlaceholders(source.Value, placeholders)

	data := ports.PromptData{
		SrcLang:      project.SourceLanguage,
		TgtLang:      a.TargetLang,
		VariablePath: path,
		Text:         masked,
		Project:      project.Name,
		ClientName:   project.Settings.ClientName,
		Instructions: project.Settings.CustomInstructions,
		FieldKind:    string(fieldKind),
		Placeholders: placeholders,
	}
	system, err := s.d.Prompt.Render(ctx, "translate_copy", "system", data)
	if err != nil {
		return "", err
	}
	user, err := s.d.Prompt.Render(ctx, "translate_copy", "user", data)
	if err != nil {
		return "", err
	}

	if s.d.BuildProvider == nil {
		return "", fmt.Errorf("TranslateField: provider builder missing")
	}
	adapter, err := s.d.BuildProvider(prov)
	if err != nil {
		return "", err
	}
	seg := ports.Segment{VariablePath: path, Text: masked, Placeholders: placeholders}

	var res ports.TranslateResult
	var trErr error
	for attempt := 1; attempt <= 3; attempt++ {
		res, trErr = adapter.Translate(ctx, seg, ports.TranslateParams{
			SourceLang:   project.SourceLanguage,
			TargetLang:   a.TargetLang,
			Model:        a.Model,
			Temperature:  0.0,
			SystemPrompt: system,
			UserPrompt:   user,
		})
		if trErr == nil {
			break
		}
		if !isRetryableTranslateError(trErr) || attempt == 3 {
			return "", trErr
		}
		time.Sleep(time.Duration(200*attempt) * time.Millisecond)
	}

	translated := unmask(strings.TrimSpace(res.Translation))
	for _, ph := range placeholders {
		if !strings.Contains(translated, ph) {
			return "", fmt.Errorf("placeholder missing in translation: %s", ph)
		}
	}
	if !s.d.Session.ApplyMachineTranslation(a.FieldID, a.TargetLang, translated, variantID) {
		return "", errors.New("translation target no longer resolves")
	}
	return translated, nil
}

func fieldKindOf(p *domain.Project, fieldID string) domain.FieldKind {
	for _, d := range p.Deliverables {
		for _, a := range d.Assets {
			if f := a.Field(fieldID); f != nil {
				return f.Kind
			}
		}
	}
	return domain.FieldCustom
}

var placeholderRE = regexp.MustCompile(`\{[^}]+\}`)

func extractPlaceholders(s string) []string {
	m := placeholderRE.FindAllString(s, -1)
	if len(m) == 0 {
		return nil
	}
	uniq := make(map[string]struct{}, len(m))
	for _, v := range m {
		uniq[v] = struct{}{}
	}
	out := make([]string, 0, len(uniq))
	for v := range uniq {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// maskPlaceholders swaps placeholders for opaque tokens before the text goes
// to the model and returns a function that restores them.
func maskPlaceholders(s string, placeholders []string) (string, func(string) string) {
	masked := s
	repls := make([]struct{ from, to string }, 0, len(placeholders))
	for i, ph := range placeholders {
		token := fmt.Sprintf("__PH_%d__", i)
		masked = strings.ReplaceAll(masked, ph, token)
		repls = append(repls, struct{ from, to string }{from: token, to: ph})
	}
	unmask := func(in string) string {
		out := in
		for i := len(repls) - 1; i >= 0; i-- {
			out = strings.ReplaceAll(out, repls[i].from, repls[i].to)
		}
		return out
	}
	return masked, unmask
}

// isRetryableTranslateError returns true for transient output/format issues
// that are likely to succeed on retry.
func isRetryableTranslateError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "failed to parse translation json"):
		return true
	case strings.Contains(msg, "no choices returned"):
		return true
	case strings.Contains(msg, "unexpected end of"):
		return true
	case strings.Contains(msg, "invalid character"):
		return true
	default:
		return false
	}
}

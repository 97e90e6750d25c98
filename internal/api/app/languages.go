package app

import (
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/session"
)

type LanguageAPI struct {
	sess *session.Session
}

func NewLanguageAPI(sess *session.Session) *LanguageAPI { return &LanguageAPI{sess: sess} }

// Catalog returns the standard language list for the add-language picker.
func (a *LanguageAPI) Catalog() []domain.LanguageOption {
	return domain.StandardLanguages
}

func (a *LanguageAPI) Add(code, name, flag string) bool {
	return a.sess.AddLanguage(code, name, flag)
}

func (a *LanguageAPI) Remove(code string) bool {
	return a.sess.RemoveLanguage(code)
}

func (a *LanguageAPI) Status(code string) domain.LanguageStatus {
	return a.sess.LanguageStatus(code)
}

type LanguageSummary struct {
	Language domain.Language       `json:"language"`
	Status   domain.LanguageStatus `json:"status"`
}

// Summaries returns every project language with its rollup status, in
// project order.
func (a *LanguageAPI) Summaries() []LanguageSummary {
	p := a.sess.Project()
	out := make([]LanguageSummary, 0, len(p.Languages))
	for _, l := range p.Languages {
		out = append(out, LanguageSummary{Language: l, Status: a.sess.LanguageStatus(l.Code)})
	}
	return out
}

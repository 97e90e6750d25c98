package session

import (
	"strings"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
)

// Derived views: pure projections recomputed on read.

// VariablePath builds the slash-delimited identifier surfaced to humans and
// to the design-tool mapping feature: deliverable/asset/field, lowercased,
// whitespace collapsed to underscores.
func (s *Session) VariablePath(fieldID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.project.Deliverables {
		for _, a := range d.Assets {
			if f := a.Field(fieldID); f != nil {
				return JoinVariablePath(d.Name, a.Name, f.DisplayName()), true
			}
		}
	}
	return "", false
}

// JoinVariablePath normalizes the three name segments into a variable path.
func JoinVariablePath(deliverable, asset, field string) string {
	return slug(deliverable) + "/" + slug(asset) + "/" + slug(field)
}

func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "_")
}

// LanguageStatus classifies a language column from its stored records:
// empty-only is empty; completed-only is completed; any in_progress, or
// completed and empty both present, is in_progress; anything else is mixed.
func (s *Session) LanguageStatus(code string) domain.LanguageStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total, empty, completed, inProgress int
	for i := range s.translations {
		t := &s.translations[i]
		if t.LanguageCode != code {
			continue
		}
		total++
		switch t.Status {
		case domain.StatusEmpty:
			empty++
		case domain.StatusCompleted:
			completed++
		case domain.StatusInProgress:
			inProgress++
		}
	}
	switch {
	case total == 0 || empty == total:
		return domain.LanguageEmpty
	case completed == total:
		return domain.LanguageCompleted
	case inProgress > 0 || (completed > 0 && empty > 0):
		return domain.LanguageInProgress
	default:
		return domain.LanguageMixed
	}
}

// Progress counts filled and total translation records outside the source
// language, for the header completion indicator.
func (s *Session) Progress() (filled, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.project.SourceLanguage
	for i := range s.translations {
		t := &s.translations[i]
		if t.LanguageCode == src {
			continue
		}
		total++
		if t.Value != "" {
			filled++
		}
	}
	return filled, total
}

// FillSampleContent seeds source-language, base-variant records with demo
// copy, marked completed. A translation edit, so it lands on the ledger.
func (s *Session) FillSampleContent() {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.project.BaseVariant()
	if base == nil {
		return
	}
	src := s.project.SourceLanguage
	for _, d := range s.project.Deliverables {
		for _, a := range d.Assets {
			for _, f := range a.Fields {
				content := domain.SampleContent(f.Kind, a.Name)
				if content == "" {
					continue
				}
				idx := s.findTranslation(f.ID, src, base.ID)
				if idx < 0 {
					continue
				}
				s.translations[idx].Value = content
				s.translations[idx].Status = domain.StatusCompleted
				s.translations[idx].LastModified = s.now()
			}
		}
	}
	s.touch()
	s.recordSnapshot()
}

// ClearAllTranslations blanks every record back to empty.
func (s *Session) ClearAllTranslations() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.translations {
		s.translations[i].Value = ""
		s.translations[i].Status = domain.StatusEmpty
		s.translations[i].InheritedFrom = ""
	}
	s.touch()
	s.recordSnapshot()
}

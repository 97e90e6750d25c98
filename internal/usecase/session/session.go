package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
)

// Session owns the canonical content and translation state for one editing
// session. All reads and writes go through its methods; the canonical slices
// are never handed out by reference. Operations are serialized behind one
// mutex so that placeholder fan-out is all-or-nothing per call.
type Session struct {
	mu           sync.Mutex
	project      *domain.Project
	translations []domain.Translation

	history [][]domain.Translation
	cursor  int

	newID func() string
	now   func() time.Time
}

type Option func(*Session)

// WithIDFunc overrides id minting, mainly for tests.
func WithIDFunc(f func() string) Option { return func(s *Session) { s.newID = f } }

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(f func() time.Time) Option { return func(s *Session) { s.now = f } }

// New wraps a project and seeds one empty translation placeholder for every
// (field, language, variant) triple, then records the starting snapshot.
func New(p *domain.Project, opts ...Option) *Session {
	s := &Session{
		project: p,
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	for _, d := range p.Deliverables {
		for _, a := range d.Assets {
			for _, f := range a.Fields {
				s.seedField(f.ID)
			}
		}
	}
	s.history = [][]domain.Translation{copyTranslations(s.translations)}
	s.cursor = 0
	return s
}

// Project returns a deep copy of the project tree.
func (s *Session) Project() *domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProject(s.project)
}

// Translations returns a copy of every stored translation record.
func (s *Session) Translations() []domain.Translation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTranslations(s.translations)
}

// SetProject replaces the whole aggregate, reseeding placeholders and
// resetting the history ledger. Used when loading or importing a project.
func (s *Session) SetProject(p *domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project = p
	s.translations = nil
	for _, d := range p.Deliverables {
		for _, a := range d.Assets {
			for _, f := range a.Fields {
				s.seedField(f.ID)
			}
		}
	}
	s.history = [][]domain.Translation{copyTranslations(s.translations)}
	s.cursor = 0
}

// RenameProject updates the project name in place; translation records and
// the history ledger are untouched.
func (s *Session) RenameProject(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Name = name
	s.touch()
}

// UpdateSettings replaces the project settings in place.
func (s *Session) UpdateSettings(settings domain.ProjectSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Settings = settings
	s.touch()
}

// seedField creates empty placeholders for one field across every existing
// (language, variant) pair. Caller holds the lock.
func (s *Session) seedField(fieldID string) {
	for _, l := range s.project.Languages {
		for _, v := range s.project.SkuVariants {
			s.ensurePlaceholder(fieldID, l.Code, v.ID)
		}
	}
}

func (s *Session) ensurePlaceholder(fieldID, lang, variantID string) {
	if s.findTranslation(fieldID, lang, variantID) >= 0 {
		return
	}
	s.translations = append(s.translations, domain.Translation{
		FieldID:      fieldID,
		LanguageCode: lang,
		VariantID:    variantID,
		Status:       domain.StatusEmpty,
	})
}

func (s *Session) findTranslation(fieldID, lang, variantID string) int {
	for i := range s.translations {
		t := &s.translations[i]
		if t.FieldID == fieldID && t.LanguageCode == lang && t.VariantID == variantID {
			return i
		}
	}
	return -1
}

// deleteRecords drops every translation matching the predicate.
func (s *Session) deleteRecords(match func(*domain.Translation) bool) {
	kept := s.translations[:0]
	for i := range s.translations {
		if !match(&s.translations[i]) {
			kept = append(kept, s.translations[i])
		}
	}
	s.translations = kept
}

func (s *Session) touch() {
	s.project.UpdatedAt = s.now()
}

func copyTranslations(ts []domain.Translation) []domain.Translation {
	out := make([]domain.Translation, len(ts))
	copy(out, ts)
	return out
}

func copyProject(p *domain.Project) *domain.Project {
	cp := *p
	cp.Languages = append([]domain.Language(nil), p.Languages...)
	cp.SkuVariants = append([]domain.SkuVariant(nil), p.SkuVariants...)
	cp.Deliverables = make([]*domain.Deliverable, len(p.Deliverables))
	for i, d := range p.Deliverables {
		dc := *d
		dc.Assets = make([]*domain.Asset, len(d.Assets))
		for j, a := range d.Assets {
			ac := *a
			ac.Fields = make([]*domain.Field, len(a.Fields))
			for k, f := range a.Fields {
				fc := *f
				ac.Fields[k] = &fc
			}
			dc.Assets[j] = &ac
		}
		cp.Deliverables[i] = &dc
	}
	return &cp
}

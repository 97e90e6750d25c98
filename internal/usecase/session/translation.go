package session

import "github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"

// UpdateTranslation upserts a single (field, language, variant) triple.
// Status is derived: in_progress when the value is non-empty, empty
// otherwise. Completed is never set here; that is an explicit action.
// This appends to the undo ledger.
func (s *Session) UpdateTranslation(fieldID, languageCode, value, variantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeTranslation(fieldID, languageCode, value, variantID, deriveStatus(value))
}

// ApplyMachineTranslation records an AI-produced value with status
// ai_generated. It shares the ledger semantics of UpdateTranslation.
func (s *Session) ApplyMachineTranslation(fieldID, languageCode, value, variantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := domain.StatusAIGenerated
	if value == "" {
		status = domain.StatusEmpty
	}
	return s.writeTranslation(fieldID, languageCode, value, variantID, status)
}

// MarkCompleted promotes a non-empty translation to completed.
func (s *Session) MarkCompleted(fieldID, languageCode, variantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findTranslation(fieldID, languageCode, variantID)
	if idx < 0 || s.translations[idx].Value == "" {
		return false
	}
	s.translations[idx].Status = domain.StatusCompleted
	s.translations[idx].LastModified = s.now()
	s.touch()
	s.recordSnapshot()
	return true
}

func (s *Session) writeTranslation(fieldID, languageCode, value, variantID string, status domain.TranslationStatus) bool {
	if !s.resolvesTriple(fieldID, languageCode, variantID) {
		return false
	}
	idx := s.findTranslation(fieldID, languageCode, variantID)
	if idx < 0 {
		s.translations = append(s.translations, domain.Translation{
			FieldID:      fieldID,
			LanguageCode: languageCode,
			VariantID:    variantID,
		})
		idx = len(s.translations) - 1
	}
	s.translations[idx].Value = value
	s.translations[idx].Status = status
	s.translations[idx].LastModified = s.now()
	s.touch()
	s.recordSnapshot()
	return true
}

// resolvesTriple reports whether all three key dimensions refer to live
// entities; writes against stale ids are no-ops.
func (s *Session) resolvesTriple(fieldID, languageCode, variantID string) bool {
	if !s.project.HasLanguage(languageCode) {
		return false
	}
	variantOK := false
	for _, v := range s.project.SkuVariants {
		if v.ID == variantID {
			variantOK = true
			break
		}
	}
	if !variantOK {
		return false
	}
	for _, d := range s.project.Deliverables {
		for _, a := range d.Assets {
			if a.Field(fieldID) != nil {
				return true
			}
		}
	}
	return false
}

// EffectiveTranslation resolves the record shown for a triple, applying
// one-level base-variant inheritance: an exact non-empty record wins; else a
// non-empty base-variant record is surfaced as inherited; else empty.
// Pure function of current state.
func (s *Session) EffectiveTranslation(fieldID, languageCode, variantID string) domain.Translation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectiveLocked(fieldID, languageCode, variantID)
}

func (s *Session) effectiveLocked(fieldID, languageCode, variantID string) domain.Translation {
	if idx := s.findTranslation(fieldID, languageCode, variantID); idx >= 0 && s.translations[idx].Value != "" {
		return s.translations[idx]
	}
	base := s.project.BaseVariant()
	if base != nil && base.ID != variantID {
		if idx := s.findTranslation(fieldID, languageCode, base.ID); idx >= 0 && s.translations[idx].Value != "" {
			inherited := s.translations[idx]
			inherited.VariantID = variantID
			inherited.Status = domain.StatusInherited
			inherited.InheritedFrom = base.ID
			return inherited
		}
	}
	return domain.Translation{
		FieldID:      fieldID,
		LanguageCode: languageCode,
		VariantID:    variantID,
		Status:       domain.StatusEmpty,
	}
}

func deriveStatus(value string) domain.TranslationStatus {
	if value == "" {
		return domain.StatusEmpty
	}
	return domain.StatusInProgress
}

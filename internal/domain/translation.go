package domain

import "time"

type TranslationStatus string

const (
	StatusEmpty       TranslationStatus = "empty"
	StatusInProgress  TranslationStatus = "in_progress"
	StatusCompleted   TranslationStatus = "completed"
	StatusAIGenerated TranslationStatus = "ai_generated"
	StatusInherited   TranslationStatus = "inherited"
)

// Translation is the value of one field in one language for one SKU variant.
// At most one record exists per (FieldID, LanguageCode, VariantID) triple.
type Translation struct {
	FieldID      string            `json:"fieldId"`
	LanguageCode string            `json:"languageCode"`
	VariantID    string            `json:"variantId"`
	Value        string            `json:"value"`
	Status       TranslationStatus `json:"status"`
	LastModified time.Time         `json:"lastModified,omitempty"`
	// InheritedFrom is set only on synthesized records returned by
	// effective-translation resolution, never on stored rows.
	InheritedFrom string `json:"inheritedFrom,omitempty"`
}

// LanguageStatus classifies the completion of a whole language column.
type LanguageStatus string

const (
	LanguageEmpty      LanguageStatus = "empty"
	LanguageInProgress LanguageStatus = "in_progress"
	LanguageCompleted  LanguageStatus = "completed"
	LanguageMixed      LanguageStatus = "mixed"
)

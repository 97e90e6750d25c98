package app

import (
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/session"
)

type TranslationAPI struct {
	sess *session.Session
}

func NewTranslationAPI(sess *session.Session) *TranslationAPI { return &TranslationAPI{sess: sess} }

func (a *TranslationAPI) Update(fieldID, languageCode, value, variantID string) bool {
	return a.sess.UpdateTranslation(fieldID, languageCode, value, variantID)
}

func (a *TranslationAPI) MarkCompleted(fieldID, languageCode, variantID string) bool {
	return a.sess.MarkCompleted(fieldID, languageCode, variantID)
}

// Effective resolves the value the UI should show for a cell, applying
// base-variant inheritance.
func (a *TranslationAPI) Effective(fieldID, languageCode, variantID string) domain.Translation {
	return a.sess.EffectiveTranslation(fieldID, languageCode, variantID)
}

func (a *TranslationAPI) List() []domain.Translation {
	return a.sess.Translations()
}

func (a *TranslationAPI) Undo() bool { return a.sess.Undo() }
func (a *TranslationAPI) Redo() bool { return a.sess.Redo() }

type HistoryState struct {
	CanUndo bool `json:"canUndo"`
	CanRedo bool `json:"canRedo"`
}

func (a *TranslationAPI) History() HistoryState {
	return HistoryState{CanUndo: a.sess.CanUndo(), CanRedo: a.sess.CanRedo()}
}

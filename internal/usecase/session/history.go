package session

import "github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"

// Linear snapshot history over translation edits. Each edit truncates any
// previously-undone future, appends a full copy of the translation array,
// and advances the cursor. Structural mutations are not tracked; restored
// snapshots are filtered against live field ids so an undo that crosses a
// structural change can never resurrect orphaned triples.
//
// Snapshot-per-edit is O(N) memory and time per edit, which is fine at the
// interactive scale this tool runs at.

// recordSnapshot appends the current translation array. Caller holds the lock.
func (s *Session) recordSnapshot() {
	s.history = s.history[:s.cursor+1]
	s.history = append(s.history, copyTranslations(s.translations))
	s.cursor = len(s.history) - 1
}

// Undo steps the cursor back one snapshot. No-op at the start of history.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	s.restoreSnapshot()
	return true
}

// Redo steps the cursor forward one snapshot. No-op at the end of history.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor >= len(s.history)-1 {
		return false
	}
	s.cursor++
	s.restoreSnapshot()
	return true
}

func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor > 0
}

func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor < len(s.history)-1
}

func (s *Session) restoreSnapshot() {
	live := map[string]struct{}{}
	for _, d := range s.project.Deliverables {
		for _, a := range d.Assets {
			for _, f := range a.Fields {
				live[f.ID] = struct{}{}
			}
		}
	}
	variants := map[string]struct{}{}
	for _, v := range s.project.SkuVariants {
		variants[v.ID] = struct{}{}
	}
	snap := s.history[s.cursor]
	restored := make([]domain.Translation, 0, len(snap))
	for _, t := range snap {
		if _, ok := live[t.FieldID]; !ok {
			continue
		}
		if _, ok := variants[t.VariantID]; !ok {
			continue
		}
		if !s.project.HasLanguage(t.LanguageCode) {
			continue
		}
		restored = append(restored, t)
	}
	s.translations = restored
}

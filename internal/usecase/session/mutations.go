package session

import (
	"errors"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
)

// Structural mutations. Each preserves the uniqueness and ownership
// invariants and fans translation placeholders out (or deletes them) so no
// orphaned or missing triples remain. Stale ids are silent no-ops, reported
// as false. Structural mutations are not part of the undo ledger.

// AddAsset creates an asset with default fields for its kind and empty
// placeholders for every (language, variant) pair. Gallery assets are
// inserted after the last existing gallery sibling to keep galleries
// contiguous; other kinds append.
func (s *Session) AddAsset(deliverableID string, kind domain.AssetKind) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.project.Deliverable(deliverableID)
	if d == nil {
		return "", false
	}
	sameKind := 0
	for _, a := range d.Assets {
		if a.Kind == kind {
			sameKind++
		}
	}
	asset := &domain.Asset{
		ID:   s.newID(),
		Name: domain.GeneratedAssetName(kind, sameKind),
		Kind: kind,
	}
	for _, f := range domain.DefaultFields(kind) {
		f.ID = s.newID()
		asset.Fields = append(asset.Fields, f)
	}

	pos := len(d.Assets)
	if kind == domain.AssetGallery {
		pos = 0
		for i, a := range d.Assets {
			if a.Kind == domain.AssetGallery {
				pos = i + 1
			}
		}
		if pos == 0 {
			pos = len(d.Assets)
		}
	}
	d.Assets = append(d.Assets, nil)
	copy(d.Assets[pos+1:], d.Assets[pos:])
	d.Assets[pos] = asset
	renumberAssets(d)

	for _, f := range asset.Fields {
		s.seedField(f.ID)
	}
	s.touch()
	return asset.ID, true
}

// RemoveAsset deletes the asset and every translation keyed by its fields.
func (s *Session) RemoveAsset(assetID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, a := s.project.FindAsset(assetID)
	if a == nil {
		return false
	}
	removed := map[string]struct{}{}
	for _, f := range a.Fields {
		removed[f.ID] = struct{}{}
	}
	kept := d.Assets[:0]
	for _, existing := range d.Assets {
		if existing.ID != assetID {
			kept = append(kept, existing)
		}
	}
	d.Assets = kept
	renumberAssets(d)
	s.deleteRecords(func(t *domain.Translation) bool {
		_, gone := removed[t.FieldID]
		return gone
	})
	s.touch()
	return true
}

// DuplicateAsset clones an asset directly after the source with re-minted
// field ids. Translation content is never copied; the clone starts empty.
func (s *Session) DuplicateAsset(deliverableID, assetID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.project.Deliverable(deliverableID)
	if d == nil {
		return "", false
	}
	srcIdx := -1
	for i, a := range d.Assets {
		if a.ID == assetID {
			srcIdx = i
			break
		}
	}
	if srcIdx < 0 {
		return "", false
	}
	src := d.Assets[srcIdx]
	clone := &domain.Asset{
		ID:   s.newID(),
		Name: src.Name + " Copy",
		Kind: src.Kind,
	}
	for _, f := range src.Fields {
		nf := *f
		nf.ID = s.newID()
		clone.Fields = append(clone.Fields, &nf)
	}
	d.Assets = append(d.Assets, nil)
	copy(d.Assets[srcIdx+2:], d.Assets[srcIdx+1:])
	d.Assets[srcIdx+1] = clone
	renumberAssets(d)

	for _, f := range clone.Fields {
		s.seedField(f.ID)
	}
	s.touch()
	return clone.ID, true
}

// AddCustomField appends a user-named field and fans out empty placeholders.
func (s *Session) AddCustomField(assetID, name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, a := s.project.FindAsset(assetID)
	if a == nil {
		return "", false
	}
	f := &domain.Field{
		ID:         s.newID(),
		Name:       name,
		Kind:       domain.FieldCustom,
		CustomName: name,
	}
	a.Fields = append(a.Fields, f)
	s.seedField(f.ID)
	s.touch()
	return f.ID, true
}

// RemoveField deletes one field and all translations keyed by it.
func (s *Session) RemoveField(assetID, fieldID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, a := s.project.FindAsset(assetID)
	if a == nil || a.Field(fieldID) == nil {
		return false
	}
	kept := a.Fields[:0]
	for _, f := range a.Fields {
		if f.ID != fieldID {
			kept = append(kept, f)
		}
	}
	a.Fields = kept
	s.deleteRecords(func(t *domain.Translation) bool { return t.FieldID == fieldID })
	s.touch()
	return true
}

// RenameAsset is a pure rename; translation keys are untouched.
func (s *Session) RenameAsset(assetID, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, a := s.project.FindAsset(assetID)
	if a == nil {
		return false
	}
	a.Name = name
	s.touch()
	return true
}

// RenameField is a pure rename. Custom fields keep the user-supplied name in
// CustomName so the kind label stays intact.
func (s *Session) RenameField(assetID, fieldID, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, a := s.project.FindAsset(assetID)
	if a == nil {
		return false
	}
	f := a.Field(fieldID)
	if f == nil {
		return false
	}
	if f.Kind == domain.FieldCustom {
		f.CustomName = name
	}
	f.Name = name
	s.touch()
	return true
}

// ReorderAsset moves an asset immediately before or after a sibling in the
// same deliverable. No-op if the two ids are not siblings.
func (s *Session) ReorderAsset(assetID, siblingID string, after bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	d1, a := s.project.FindAsset(assetID)
	d2, sib := s.project.FindAsset(siblingID)
	if a == nil || sib == nil || d1 != d2 || assetID == siblingID {
		return false
	}
	kept := make([]*domain.Asset, 0, len(d1.Assets))
	for _, existing := range d1.Assets {
		if existing.ID != assetID {
			kept = append(kept, existing)
		}
	}
	idx := 0
	for i, existing := range kept {
		if existing.ID == siblingID {
			idx = i
			break
		}
	}
	if after {
		idx++
	}
	kept = append(kept, nil)
	copy(kept[idx+1:], kept[idx:])
	kept[idx] = a
	d1.Assets = kept
	renumberAssets(d1)
	s.touch()
	return true
}

// ReorderField moves a field before/after a sibling within the same asset.
func (s *Session) ReorderField(assetID, fieldID, siblingID string, after bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, a := s.project.FindAsset(assetID)
	if a == nil || fieldID == siblingID {
		return false
	}
	f := a.Field(fieldID)
	sib := a.Field(siblingID)
	if f == nil || sib == nil {
		return false
	}
	kept := make([]*domain.Field, 0, len(a.Fields))
	for _, existing := range a.Fields {
		if existing.ID != fieldID {
			kept = append(kept, existing)
		}
	}
	idx := 0
	for i, existing := range kept {
		if existing.ID == siblingID {
			idx = i
			break
		}
	}
	if after {
		idx++
	}
	kept = append(kept, nil)
	copy(kept[idx+1:], kept[idx:])
	kept[idx] = f
	a.Fields = kept
	s.touch()
	return true
}

// AddLanguage appends a language and creates empty placeholders for every
// (field, variant) pair under the new code. Existing codes are a no-op.
func (s *Session) AddLanguage(code, name, flag string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.project.HasLanguage(code) {
		return false
	}
	if name == "" {
		if opt, ok := domain.LookupLanguage(code); ok {
			name = opt.Name
			if flag == "" {
				flag = opt.Flag
			}
		} else {
			name = code
		}
	}
	if flag == "" {
		flag = "🌐"
	}
	s.project.Languages = append(s.project.Languages, domain.Language{Code: code, Name: name, Flag: flag})
	for _, d := range s.project.Deliverables {
		for _, a := range d.Assets {
			for _, f := range a.Fields {
				for _, v := range s.project.SkuVariants {
					s.ensurePlaceholder(f.ID, code, v.ID)
				}
			}
		}
	}
	s.touch()
	return true
}

// RemoveLanguage deletes a language and all its translation records. The
// source language is protected; removing it is a no-op.
func (s *Session) RemoveLanguage(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if code == s.project.SourceLanguage || !s.project.HasLanguage(code) {
		return false
	}
	kept := s.project.Languages[:0]
	for _, l := range s.project.Languages {
		if l.Code != code {
			kept = append(kept, l)
		}
	}
	s.project.Languages = kept
	s.deleteRecords(func(t *domain.Translation) bool { return t.LanguageCode == code })
	s.touch()
	return true
}

var ErrVariantBase = errors.New("variant list must contain exactly one base variant")

// SetVariants replaces the variant list wholesale. The exactly-one-base
// invariant is validated here rather than trusted to the caller. Records of
// removed variants are deleted; added variants get empty placeholders.
func (s *Session) SetVariants(variants []domain.SkuVariant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := 0
	for _, v := range variants {
		if v.IsBase {
			base++
		}
	}
	if base != 1 {
		return ErrVariantBase
	}

	old := map[string]struct{}{}
	for _, v := range s.project.SkuVariants {
		old[v.ID] = struct{}{}
	}
	next := map[string]struct{}{}
	for i := range variants {
		if variants[i].ID == "" {
			variants[i].ID = s.newID()
		}
		variants[i].Position = i
		next[variants[i].ID] = struct{}{}
	}
	s.project.SkuVariants = variants

	s.deleteRecords(func(t *domain.Translation) bool {
		_, stillThere := next[t.VariantID]
		return !stillThere
	})
	for _, d := range s.project.Deliverables {
		for _, a := range d.Assets {
			for _, f := range a.Fields {
				for _, v := range variants {
					if _, existed := old[v.ID]; !existed {
						for _, l := range s.project.Languages {
							s.ensurePlaceholder(f.ID, l.Code, v.ID)
						}
					}
				}
			}
		}
	}
	s.touch()
	return nil
}

func renumberAssets(d *domain.Deliverable) {
	for i, a := range d.Assets {
		a.Position = i
	}
}

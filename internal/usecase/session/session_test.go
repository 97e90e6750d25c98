package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
)

func testProject() *domain.Project {
	return &domain.Project{
		ID:             "p1",
		Name:           "Spring Campaign",
		SourceLanguage: "en",
		Languages: []domain.Language{
			{Code: "en", Name: "English"},
			{Code: "fr", Name: "French"},
		},
		SkuVariants: []domain.SkuVariant{
			{ID: "std", Name: "Standard", IsBase: true, Position: 0},
			{ID: "dlx", Name: "Deluxe", Position: 1},
		},
		Deliverables: []*domain.Deliverable{
			{
				ID:   "d1",
				Name: "PDP",
				Kind: domain.DeliverablePDP,
				Assets: []*domain.Asset{
					{
						ID:   "a1",
						Name: "Module 1",
						Kind: domain.AssetModule,
						Fields: []*domain.Field{
							{ID: "f1", Name: "Headline", Kind: domain.FieldHeadline},
							{ID: "f2", Name: "Body", Kind: domain.FieldBody},
						},
					},
				},
			},
		},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	n := 0
	return New(testProject(),
		WithIDFunc(func() string { n++; return fmt.Sprintf("id%d", n) }),
		WithClock(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }),
	)
}

// countTriples asserts there is at most one record per triple and returns the
// record count.
func countTriples(t *testing.T, s *Session) int {
	t.Helper()
	seen := map[string]int{}
	for _, tr := range s.Translations() {
		seen[tr.FieldID+"|"+tr.LanguageCode+"|"+tr.VariantID]++
	}
	for k, n := range seen {
		if n > 1 {
			t.Fatalf("duplicate records for triple %s: %d", k, n)
		}
	}
	return len(seen)
}

func TestNewSeedsEveryTriple(t *testing.T) {
	s := newTestSession(t)
	// 2 fields x 2 languages x 2 variants
	if got := countTriples(t, s); got != 8 {
		t.Fatalf("expected 8 seeded placeholders, got %d", got)
	}
	for _, tr := range s.Translations() {
		if tr.Status != domain.StatusEmpty || tr.Value != "" {
			t.Fatalf("placeholder not empty: %+v", tr)
		}
	}
}

func TestAddAssetFansOutPlaceholders(t *testing.T) {
	s := newTestSession(t)
	id, ok := s.AddAsset("d1", domain.AssetBanner)
	if !ok || id == "" {
		t.Fatal("AddAsset failed")
	}
	// banner adds 5 default fields: 8 + 5*2*2 = 28
	if got := countTriples(t, s); got != 28 {
		t.Fatalf("expected 28 records after banner add, got %d", got)
	}
	_, a := s.Project().FindAsset(id)
	if a == nil {
		t.Fatal("added asset not found")
	}
	if a.Name != "Banner 1" {
		t.Fatalf("generated name = %q, want Banner 1", a.Name)
	}
	if len(a.Fields) != 5 {
		t.Fatalf("banner fields = %d, want 5", len(a.Fields))
	}
}

func TestAddAssetUnknownDeliverableIsNoop(t *testing.T) {
	s := newTestSession(t)
	if _, ok := s.AddAsset("nope", domain.AssetModule); ok {
		t.Fatal("expected false for unknown deliverable")
	}
	if got := countTriples(t, s); got != 8 {
		t.Fatalf("state changed on no-op: %d records", got)
	}
}

func TestGalleryAssetsStayContiguous(t *testing.T) {
	s := newTestSession(t)
	g1, _ := s.AddAsset("d1", domain.AssetGallery)
	s.AddAsset("d1", domain.AssetModule)
	g2, _ := s.AddAsset("d1", domain.AssetGallery)

	var order []string
	for _, a := range s.Project().Deliverables[0].Assets {
		order = append(order, a.ID)
	}
	// g2 must land directly after g1, before the trailing module
	for i, id := range order {
		if id == g1 {
			if i+1 >= len(order) || order[i+1] != g2 {
				t.Fatalf("gallery not contiguous: %v", order)
			}
		}
	}
	_, a := s.Project().FindAsset(g2)
	if a.Name != "Gallery Image 2" {
		t.Fatalf("second gallery named %q", a.Name)
	}
}

func TestRemoveAssetDeletesAllRecords(t *testing.T) {
	s := newTestSession(t)
	id, _ := s.AddAsset("d1", domain.AssetModule)
	_, a := s.Project().FindAsset(id)
	s.UpdateTranslation(a.Fields[0].ID, "en", "hello", "std")

	if !s.RemoveAsset(id) {
		t.Fatal("RemoveAsset failed")
	}
	if got := countTriples(t, s); got != 8 {
		t.Fatalf("expected 8 records after removal, got %d", got)
	}
	for _, tr := range s.Translations() {
		if tr.FieldID == a.Fields[0].ID {
			t.Fatalf("orphaned record survived: %+v", tr)
		}
	}
}

func TestDuplicateAssetStartsEmpty(t *testing.T) {
	s := newTestSession(t)
	s.UpdateTranslation("f1", "en", "original copy", "std")

	cloneID, ok := s.DuplicateAsset("d1", "a1")
	if !ok {
		t.Fatal("DuplicateAsset failed")
	}
	_, clone := s.Project().FindAsset(cloneID)
	if clone.Name != "Module 1 Copy" {
		t.Fatalf("clone name = %q", clone.Name)
	}
	if len(clone.Fields) != 2 {
		t.Fatalf("clone fields = %d", len(clone.Fields))
	}
	for _, f := range clone.Fields {
		if f.ID == "f1" || f.ID == "f2" {
			t.Fatal("clone reused source field ids")
		}
		for _, l := range []string{"en", "fr"} {
			for _, v := range []string{"std", "dlx"} {
				eff := s.EffectiveTranslation(f.ID, l, v)
				if eff.Value != "" {
					t.Fatalf("clone field %s has copied content %q", f.ID, eff.Value)
				}
			}
		}
	}
	// clone sits directly after the source
	assets := s.Project().Deliverables[0].Assets
	if assets[0].ID != "a1" || assets[1].ID != cloneID {
		t.Fatalf("clone not adjacent: %s then %s", assets[0].ID, assets[1].ID)
	}
}

func TestCustomFieldLifecycle(t *testing.T) {
	s := newTestSession(t)
	id, ok := s.AddCustomField("a1", "Disclaimer")
	if !ok {
		t.Fatal("AddCustomField failed")
	}
	if got := countTriples(t, s); got != 12 {
		t.Fatalf("expected 12 records after custom field, got %d", got)
	}
	_, a := s.Project().FindAsset("a1")
	f := a.Field(id)
	if f.Kind != domain.FieldCustom || f.DisplayName() != "Disclaimer" {
		t.Fatalf("custom field wrong: %+v", f)
	}

	if !s.RemoveField("a1", id) {
		t.Fatal("RemoveField failed")
	}
	if got := countTriples(t, s); got != 8 {
		t.Fatalf("expected 8 records after field removal, got %d", got)
	}
}

func TestRenameFieldKeepsCustomName(t *testing.T) {
	s := newTestSession(t)
	id, _ := s.AddCustomField("a1", "Disclaimer")
	if !s.RenameField("a1", id, "Fine Print") {
		t.Fatal("RenameField failed")
	}
	_, a := s.Project().FindAsset("a1")
	if got := a.Field(id).DisplayName(); got != "Fine Print" {
		t.Fatalf("DisplayName = %q", got)
	}
}

func TestReorderRequiresSiblings(t *testing.T) {
	s := newTestSession(t)
	id, _ := s.AddAsset("d1", domain.AssetModule)
	if !s.ReorderAsset(id, "a1", false) {
		t.Fatal("sibling reorder failed")
	}
	assets := s.Project().Deliverables[0].Assets
	if assets[0].ID != id {
		t.Fatalf("asset not moved before sibling: %s", assets[0].ID)
	}
	if assets[0].Position != 0 || assets[1].Position != 1 {
		t.Fatalf("positions not renumbered: %d %d", assets[0].Position, assets[1].Position)
	}
	if s.ReorderAsset(id, id, true) {
		t.Fatal("self reorder should be a no-op")
	}
	if s.ReorderField("a1", "f1", "missing", true) {
		t.Fatal("reorder against missing sibling should be a no-op")
	}
}

func TestAddLanguageFansOut(t *testing.T) {
	s := newTestSession(t)
	if !s.AddLanguage("ja-JP", "", "") {
		t.Fatal("AddLanguage failed")
	}
	// 2 fields x 3 languages x 2 variants
	if got := countTriples(t, s); got != 12 {
		t.Fatalf("expected 12 records, got %d", got)
	}
	p := s.Project()
	var added *domain.Language
	for i := range p.Languages {
		if p.Languages[i].Code == "ja-JP" {
			added = &p.Languages[i]
		}
	}
	if added == nil {
		t.Fatal("language not appended")
	}
	if added.Name == "" || added.Name == "ja-JP" {
		t.Fatalf("catalog lookup did not fill name: %q", added.Name)
	}
	if s.AddLanguage("ja-JP", "", "") {
		t.Fatal("duplicate code should be a no-op")
	}
}

func TestRemoveLanguageProtectsSource(t *testing.T) {
	s := newTestSession(t)
	if s.RemoveLanguage("en") {
		t.Fatal("source language must not be removable")
	}
	if !s.RemoveLanguage("fr") {
		t.Fatal("RemoveLanguage failed")
	}
	for _, tr := range s.Translations() {
		if tr.LanguageCode == "fr" {
			t.Fatalf("fr record survived: %+v", tr)
		}
	}
}

func TestSetVariantsValidatesSingleBase(t *testing.T) {
	s := newTestSession(t)
	err := s.SetVariants([]domain.SkuVariant{
		{ID: "std", Name: "Standard", IsBase: true},
		{ID: "dlx", Name: "Deluxe", IsBase: true},
	})
	if err != ErrVariantBase {
		t.Fatalf("err = %v, want ErrVariantBase", err)
	}
	if err := s.SetVariants(nil); err != ErrVariantBase {
		t.Fatalf("err = %v, want ErrVariantBase", err)
	}
}

func TestSetVariantsFansOutDiff(t *testing.T) {
	s := newTestSession(t)
	s.UpdateTranslation("f1", "en", "deluxe only", "dlx")

	err := s.SetVariants([]domain.SkuVariant{
		{ID: "std", Name: "Standard", IsBase: true},
		{Name: "Premium"},
	})
	if err != nil {
		t.Fatalf("SetVariants: %v", err)
	}
	p := s.Project()
	if len(p.SkuVariants) != 2 {
		t.Fatalf("variants = %d", len(p.SkuVariants))
	}
	premium := p.SkuVariants[1]
	if premium.ID == "" {
		t.Fatal("new variant not assigned an id")
	}
	for _, tr := range s.Translations() {
		if tr.VariantID == "dlx" {
			t.Fatalf("removed variant record survived: %+v", tr)
		}
	}
	// 2 fields x 2 languages x 2 variants, premium reseeded empty
	if got := countTriples(t, s); got != 8 {
		t.Fatalf("expected 8 records, got %d", got)
	}
	if eff := s.EffectiveTranslation("f1", "en", premium.ID); eff.Value != "" {
		t.Fatalf("new variant inherited stale content: %q", eff.Value)
	}
}

func TestUpdateTranslationDerivesStatus(t *testing.T) {
	s := newTestSession(t)
	if !s.UpdateTranslation("f1", "fr", "Bonjour", "std") {
		t.Fatal("UpdateTranslation failed")
	}
	if eff := s.EffectiveTranslation("f1", "fr", "std"); eff.Status != domain.StatusInProgress {
		t.Fatalf("status = %s, want in_progress", eff.Status)
	}
	s.UpdateTranslation("f1", "fr", "", "std")
	if eff := s.EffectiveTranslation("f1", "fr", "std"); eff.Status != domain.StatusEmpty {
		t.Fatalf("status = %s, want empty", eff.Status)
	}
}

func TestWritesAgainstStaleIdsAreNoops(t *testing.T) {
	s := newTestSession(t)
	cases := []struct {
		field, lang, variant string
	}{
		{"missing", "fr", "std"},
		{"f1", "de", "std"},
		{"f1", "fr", "missing"},
	}
	for _, c := range cases {
		if s.UpdateTranslation(c.field, c.lang, "x", c.variant) {
			t.Fatalf("write resolved for stale triple %+v", c)
		}
	}
	if s.CanUndo() {
		t.Fatal("no-op writes must not land on the ledger")
	}
}

func TestMarkCompletedRequiresValue(t *testing.T) {
	s := newTestSession(t)
	if s.MarkCompleted("f1", "fr", "std") {
		t.Fatal("empty cell must not be completable")
	}
	s.UpdateTranslation("f1", "fr", "Bonjour", "std")
	if !s.MarkCompleted("f1", "fr", "std") {
		t.Fatal("MarkCompleted failed")
	}
	if eff := s.EffectiveTranslation("f1", "fr", "std"); eff.Status != domain.StatusCompleted {
		t.Fatalf("status = %s", eff.Status)
	}
}

func TestApplyMachineTranslationStatus(t *testing.T) {
	s := newTestSession(t)
	if !s.ApplyMachineTranslation("f1", "fr", "Bonjour", "std") {
		t.Fatal("ApplyMachineTranslation failed")
	}
	if eff := s.EffectiveTranslation("f1", "fr", "std"); eff.Status != domain.StatusAIGenerated {
		t.Fatalf("status = %s, want ai_generated", eff.Status)
	}
}

func TestVariantInheritance(t *testing.T) {
	s := newTestSession(t)
	s.UpdateTranslation("f1", "en", "Base headline", "std")

	eff := s.EffectiveTranslation("f1", "en", "dlx")
	if eff.Value != "Base headline" {
		t.Fatalf("value = %q, want inherited base value", eff.Value)
	}
	if eff.Status != domain.StatusInherited || eff.InheritedFrom != "std" {
		t.Fatalf("inherited record wrong: %+v", eff)
	}
	if eff.VariantID != "dlx" {
		t.Fatalf("synthesized record keyed to %s", eff.VariantID)
	}

	// Explicit override wins.
	s.UpdateTranslation("f1", "en", "Deluxe headline", "dlx")
	eff = s.EffectiveTranslation("f1", "en", "dlx")
	if eff.Value != "Deluxe headline" || eff.InheritedFrom != "" {
		t.Fatalf("override not honored: %+v", eff)
	}

	// Clearing the override falls back to inheritance.
	s.UpdateTranslation("f1", "en", "", "dlx")
	eff = s.EffectiveTranslation("f1", "en", "dlx")
	if eff.Value != "Base headline" || eff.Status != domain.StatusInherited {
		t.Fatalf("fallback not restored: %+v", eff)
	}
}

func TestInheritanceNeverStoresSyntheticRows(t *testing.T) {
	s := newTestSession(t)
	s.UpdateTranslation("f1", "en", "Base headline", "std")
	s.EffectiveTranslation("f1", "en", "dlx")
	for _, tr := range s.Translations() {
		if tr.InheritedFrom != "" {
			t.Fatalf("synthesized row persisted: %+v", tr)
		}
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	s := newTestSession(t)
	s.UpdateTranslation("f1", "fr", "premier", "std")
	s.UpdateTranslation("f1", "fr", "deuxième", "std")

	if !s.Undo() {
		t.Fatal("Undo failed")
	}
	if eff := s.EffectiveTranslation("f1", "fr", "std"); eff.Value != "premier" {
		t.Fatalf("after undo value = %q", eff.Value)
	}
	if !s.Redo() {
		t.Fatal("Redo failed")
	}
	if eff := s.EffectiveTranslation("f1", "fr", "std"); eff.Value != "deuxième" {
		t.Fatalf("after redo value = %q", eff.Value)
	}
	if s.Redo() {
		t.Fatal("Redo past end of history")
	}
}

func TestUndoToInitialState(t *testing.T) {
	s := newTestSession(t)
	if s.Undo() {
		t.Fatal("Undo on fresh session")
	}
	s.UpdateTranslation("f1", "fr", "premier", "std")
	if !s.Undo() {
		t.Fatal("Undo failed")
	}
	if eff := s.EffectiveTranslation("f1", "fr", "std"); eff.Value != "" {
		t.Fatalf("initial state not restored: %q", eff.Value)
	}
	if s.CanUndo() {
		t.Fatal("CanUndo at start of history")
	}
	if !s.CanRedo() {
		t.Fatal("CanRedo after undo")
	}
}

func TestEditAfterUndoTruncatesFuture(t *testing.T) {
	s := newTestSession(t)
	s.UpdateTranslation("f1", "fr", "premier", "std")
	s.UpdateTranslation("f1", "fr", "deuxième", "std")
	s.Undo()
	s.UpdateTranslation("f1", "fr", "troisième", "std")

	if s.CanRedo() {
		t.Fatal("redo branch must be discarded by a new edit")
	}
	s.Undo()
	if eff := s.EffectiveTranslation("f1", "fr", "std"); eff.Value != "premier" {
		t.Fatalf("history corrupted, value = %q", eff.Value)
	}
}

func TestStructuralChangesBypassLedger(t *testing.T) {
	s := newTestSession(t)
	s.AddAsset("d1", domain.AssetModule)
	s.AddCustomField("a1", "Note")
	if s.CanUndo() {
		t.Fatal("structural mutations must not append snapshots")
	}
}

func TestUndoAcrossFieldRemovalDropsOrphans(t *testing.T) {
	s := newTestSession(t)
	id, _ := s.AddCustomField("a1", "Note")
	s.UpdateTranslation(id, "fr", "note fr", "std")
	s.UpdateTranslation("f1", "fr", "titre", "std")
	s.RemoveField("a1", id)

	s.Undo()
	for _, tr := range s.Translations() {
		if tr.FieldID == id {
			t.Fatalf("undo resurrected record for removed field: %+v", tr)
		}
	}
	if eff := s.EffectiveTranslation("f1", "fr", "std"); eff.Value != "" {
		t.Fatalf("surviving field not rolled back: %q", eff.Value)
	}
}

func TestLanguageStatusClassification(t *testing.T) {
	s := newTestSession(t)
	if got := s.LanguageStatus("fr"); got != domain.LanguageEmpty {
		t.Fatalf("fresh column = %s, want empty", got)
	}

	s.UpdateTranslation("f1", "fr", "un", "std")
	if got := s.LanguageStatus("fr"); got != domain.LanguageInProgress {
		t.Fatalf("partly filled column = %s, want in_progress", got)
	}

	// Complete every fr cell.
	for _, f := range []string{"f1", "f2"} {
		for _, v := range []string{"std", "dlx"} {
			s.UpdateTranslation(f, "fr", "texte", v)
			s.MarkCompleted(f, "fr", v)
		}
	}
	if got := s.LanguageStatus("fr"); got != domain.LanguageCompleted {
		t.Fatalf("full column = %s, want completed", got)
	}

	// completed + empty with no in_progress is still in_progress
	s.UpdateTranslation("f1", "fr", "", "std")
	if got := s.LanguageStatus("fr"); got != domain.LanguageInProgress {
		t.Fatalf("completed+empty column = %s, want in_progress", got)
	}
}

func TestVariablePath(t *testing.T) {
	s := newTestSession(t)
	path, ok := s.VariablePath("f1")
	if !ok {
		t.Fatal("VariablePath failed")
	}
	if path != "pdp/module_1/headline" {
		t.Fatalf("path = %q", path)
	}
	if _, ok := s.VariablePath("missing"); ok {
		t.Fatal("missing field resolved a path")
	}
}

func TestProgressExcludesSourceLanguage(t *testing.T) {
	s := newTestSession(t)
	s.UpdateTranslation("f1", "en", "source", "std")
	s.UpdateTranslation("f1", "fr", "cible", "std")
	filled, total := s.Progress()
	// 2 fields x 2 variants in fr only
	if total != 4 {
		t.Fatalf("total = %d, want 4", total)
	}
	if filled != 1 {
		t.Fatalf("filled = %d, want 1", filled)
	}
}

func TestClearAllTranslations(t *testing.T) {
	s := newTestSession(t)
	s.UpdateTranslation("f1", "fr", "texte", "std")
	s.ClearAllTranslations()
	for _, tr := range s.Translations() {
		if tr.Value != "" || tr.Status != domain.StatusEmpty {
			t.Fatalf("record not cleared: %+v", tr)
		}
	}
	// Clearing is a translation edit, so it is undoable.
	if !s.Undo() {
		t.Fatal("clear not on ledger")
	}
	if eff := s.EffectiveTranslation("f1", "fr", "std"); eff.Value != "texte" {
		t.Fatalf("undo after clear = %q", eff.Value)
	}
}

func TestSampleProjectSeedsCleanly(t *testing.T) {
	n := 0
	p := domain.SampleProject(func() string { n++; return fmt.Sprintf("s%d", n) }, time.Now())
	s := New(p)
	if base := p.BaseVariant(); base == nil {
		t.Fatal("sample project has no base variant")
	}
	fields := 0
	for _, d := range p.Deliverables {
		for _, a := range d.Assets {
			fields += len(a.Fields)
		}
	}
	want := fields * len(p.Languages) * len(p.SkuVariants)
	if got := countTriples(t, s); got != want {
		t.Fatalf("seeded %d records, want %d", got, want)
	}

	s.FillSampleContent()
	filled, _ := s.Progress()
	if filled != 0 {
		t.Fatalf("sample content leaked outside source language: %d", filled)
	}
	if got := s.LanguageStatus(p.SourceLanguage); got == domain.LanguageEmpty {
		t.Fatal("source language still empty after FillSampleContent")
	}
}

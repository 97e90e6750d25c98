package translator

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/memory"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/prompt"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/session"
)

// fakeProvider returns a canned translation and records what it was sent.
type fakeProvider struct {
	translate func(ports.Segment, ports.TranslateParams) (ports.TranslateResult, error)
	lastSeg   ports.Segment
}

func (f *fakeProvider) Translate(_ context.Context, seg ports.Segment, p ports.TranslateParams) (ports.TranslateResult, error) {
	f.lastSeg = seg
	return f.translate(seg, p)
}

func (f *fakeProvider) ListModels(context.Context) ([]ports.ModelInfo, error) { return nil, nil }
func (f *fakeProvider) Test(context.Context) error                           { return nil }

func newTestService(t *testing.T, fake *fakeProvider) (*Service, *session.Session, string) {
	t.Helper()
	p := &domain.Project{
		ID:             "p1",
		Name:           "Spring Campaign",
		SourceLanguage: "en",
		Languages:      []domain.Language{{Code: "en"}, {Code: "fr"}},
		SkuVariants:    []domain.SkuVariant{{ID: "std", Name: "Standard", IsBase: true}},
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
						},
					},
				},
			},
		},
	}
	n := 0
	sess := session.New(p, session.WithIDFunc(func() string { n++; return fmt.Sprintf("id%d", n) }))

	providers := memory.NewProviderRepo()
	prov := &domain.Provider{Type: "openrouter", Name: "test", Model: "test-model"}
	if err := providers.Create(context.Background(), prov); err != nil {
		t.Fatalf("Create provider: %v", err)
	}

	svc := New(Deps{
		Providers: providers,
		Prompt:    prompt.New(nil),
		Session:   sess,
		BuildProvider: func(*domain.Provider) (ports.Provider, error) {
			return fake, nil
		},
	})
	return svc, sess, prov.ID
}

func TestTranslateFieldWritesAIGenerated(t *testing.T) {
	fake := &fakeProvider{
		translate: func(seg ports.Segment, _ ports.TranslateParams) (ports.TranslateResult, error) {
			return ports.TranslateResult{Translation: "Grande vente"}, nil
		},
	}
	svc, sess, providerID := newTestService(t, fake)
	sess.UpdateTranslation("f1", "en", "Big Sale", "std")

	got, err := svc.TranslateField(context.Background(), TranslateArgs{
		ProviderID: providerID,
		FieldID:    "f1",
		TargetLang: "fr",
	})
	if err != nil {
		t.Fatalf("TranslateField: %v", err)
	}
	if got != "Grande vente" {
		t.Fatalf("translation = %q", got)
	}
	eff := sess.EffectiveTranslation("f1", "fr", "std")
	if eff.Value != "Grande vente" || eff.Status != domain.StatusAIGenerated {
		t.Fatalf("stored record: %+v", eff)
	}
}

func TestTranslateFieldMasksPlaceholders(t *testing.T) {
	fake := &fakeProvider{}
	fake.translate = func(seg ports.Segment, _ ports.TranslateParams) (ports.TranslateResult, error) {
		// Echo the masked text; the placeholder token must survive as-is.
		return ports.TranslateResult{Translation: "fr: " + seg.Text}, nil
	}
	svc, sess, providerID := newTestService(t, fake)
	sess.UpdateTranslation("f1", "en", "Save {percent} today", "std")

	got, err := svc.TranslateField(context.Background(), TranslateArgs{
		ProviderID: providerID,
		FieldID:    "f1",
		TargetLang: "fr",
	})
	if err != nil {
		t.Fatalf("TranslateField: %v", err)
	}
	if strings.Contains(fake.lastSeg.Text, "{percent}") {
		t.Fatalf("placeholder sent unmasked: %q", fake.lastSeg.Text)
	}
	if !strings.Contains(got, "{percent}") {
		t.Fatalf("placeholder not restored: %q", got)
	}
}

func TestTranslateFieldRejectsDroppedPlaceholders(t *testing.T) {
	fake := &fakeProvider{
		translate: func(ports.Segment, ports.TranslateParams) (ports.TranslateResult, error) {
			return ports.TranslateResult{Translation: "no tokens here"}, nil
		},
	}
	svc, sess, providerID := newTestService(t, fake)
	sess.UpdateTranslation("f1", "en", "Save {percent} today", "std")

	_, err := svc.TranslateField(context.Background(), TranslateArgs{
		ProviderID: providerID,
		FieldID:    "f1",
		TargetLang: "fr",
	})
	if err == nil {
		t.Fatal("expected placeholder error")
	}
	if eff := sess.EffectiveTranslation("f1", "fr", "std"); eff.Value != "" {
		t.Fatalf("bad translation written anyway: %q", eff.Value)
	}
}

func TestTranslateFieldRetriesParseErrors(t *testing.T) {
	calls := 0
	fake := &fakeProvider{
		translate: func(ports.Segment, ports.TranslateParams) (ports.TranslateResult, error) {
			calls++
			if calls < 3 {
				return ports.TranslateResult{}, fmt.Errorf("failed to parse translation JSON; content: junk")
			}
			return ports.TranslateResult{Translation: "Grande vente"}, nil
		},
	}
	svc, sess, providerID := newTestService(t, fake)
	sess.UpdateTranslation("f1", "en", "Big Sale", "std")

	got, err := svc.TranslateField(context.Background(), TranslateArgs{
		ProviderID: providerID,
		FieldID:    "f1",
		TargetLang: "fr",
	})
	if err != nil {
		t.Fatalf("TranslateField after retries: %v", err)
	}
	if calls != 3 || got != "Grande vente" {
		t.Fatalf("calls = %d, got = %q", calls, got)
	}
}

func TestTranslateFieldRequiresSourceCopy(t *testing.T) {
	fake := &fakeProvider{
		translate: func(ports.Segment, ports.TranslateParams) (ports.TranslateResult, error) {
			t.Fatal("provider must not be called for empty source")
			return ports.TranslateResult{}, nil
		},
	}
	svc, _, providerID := newTestService(t, fake)
	_, err := svc.TranslateField(context.Background(), TranslateArgs{
		ProviderID: providerID,
		FieldID:    "f1",
		TargetLang: "fr",
	})
	if err == nil {
		t.Fatal("expected error for empty source copy")
	}
}

package exporter

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	htmlexp "github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/exporter/htmldoc"
	exreg "github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/exporter/registry"
	varsexp "github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/exporter/variablesjson"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/session"
)

func newTestService(t *testing.T) (*Service, *session.Session) {
	t.Helper()
	p := &domain.Project{
		ID:             "p1",
		Name:           "Spring Campaign",
		SourceLanguage: "en",
		Languages: []domain.Language{
			{Code: "en", Name: "English"},
			{Code: "fr", Name: "French"},
		},
		SkuVariants: []domain.SkuVariant{
			{ID: "std", Name: "Standard", IsBase: true},
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
						},
					},
				},
			},
			{ID: "d2", Name: "CRM", Kind: domain.DeliverableCRM},
		},
	}
	n := 0
	sess := session.New(p, session.WithIDFunc(func() string { n++; return fmt.Sprintf("id%d", n) }))

	reg := exreg.New()
	reg.Register(varsexp.New())
	reg.Register(htmlexp.New())
	return New(sess, reg), sess
}

func TestExportResolvesThroughInheritance(t *testing.T) {
	svc, sess := newTestService(t)
	sess.UpdateTranslation("f1", "en", "Base headline", "std")

	// Exporting the non-base variant surfaces the inherited base value.
	res, err := svc.Export(ExportArgs{Format: "variablesjson", VariantID: "dlx"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	var out struct {
		Variables map[string]struct {
			Values map[string]string `json:"values"`
		} `json:"variables"`
	}
	if err := json.Unmarshal(res.Content, &out); err != nil {
		t.Fatalf("content: %v", err)
	}
	v, ok := out.Variables["pdp/module_1/headline"]
	if !ok {
		t.Fatalf("variable missing; got %v", out.Variables)
	}
	if v.Values["en"] != "Base headline" {
		t.Fatalf("en value = %q, want inherited base value", v.Values["en"])
	}
}

func TestExportDefaultsToBaseVariantAndSourceLanguage(t *testing.T) {
	svc, sess := newTestService(t)
	sess.UpdateTranslation("f1", "en", "Hello", "std")

	res, err := svc.Export(ExportArgs{Format: "html"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(string(res.Content), `<html lang="en">`) {
		t.Fatal("default language is not the source language")
	}
	if !strings.Contains(string(res.Content), "Hello") {
		t.Fatal("base variant value missing")
	}
}

func TestExportSectionFilter(t *testing.T) {
	svc, _ := newTestService(t)
	res, err := svc.Export(ExportArgs{Format: "html", Sections: []domain.DeliverableKind{domain.DeliverableCRM}})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	html := string(res.Content)
	if strings.Contains(html, ">PDP<") {
		t.Fatal("filtered section present")
	}
	if !strings.Contains(html, ">CRM<") {
		t.Fatal("requested section missing")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Export(ExportArgs{Format: "pdf"}); err == nil {
		t.Fatal("expected error for unregistered format")
	}
}

func TestExportFilename(t *testing.T) {
	svc, _ := newTestService(t)
	res, err := svc.Export(ExportArgs{Format: "variablesjson"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(res.Filename, "Spring-Campaign_") || !strings.HasSuffix(res.Filename, ".json") {
		t.Fatalf("filename = %q", res.Filename)
	}
}

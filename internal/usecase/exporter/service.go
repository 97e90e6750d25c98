package exporter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	exreg "github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/exporter/registry"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/session"
)

// Service projects the session into an ExportDocument and hands it to the
// exporter registered for the requested format. Exporters are read-only
// consumers; resolution goes through the session's effective lookup so
// variant inheritance applies.
type Service struct {
	Session *session.Session
	Reg     *exreg.Registry
}

func New(s *session.Session, reg *exreg.Registry) *Service {
	return &Service{Session: s, Reg: reg}
}

type ExportArgs struct {
	Format string
	// Language selects the primary language; empty means the source language.
	Language string
	// VariantID selects the SKU variant; empty means the base variant.
	VariantID string
	// Sections limits output to the named deliverable kinds; empty means all.
	Sections []domain.DeliverableKind
}

type ExportResult struct {
	Filename string
	Content  []byte
}

func (s *Service) Export(a ExportArgs) (ExportResult, error) {
	exp, ok := s.Reg.Get(a.Format)
	if !ok {
		return ExportResult{}, errors.New("no exporter for format: " + a.Format)
	}
	project := s.Session.Project()

	lang := a.Language
	if lang == "" {
		lang = project.SourceLanguage
	}
	variantID := a.VariantID
	if variantID == "" {
		base := project.BaseVariant()
		if base == nil {
			return ExportResult{}, errors.New("project has no base variant")
		}
		variantID = base.ID
	}

	wanted := map[domain.DeliverableKind]bool{}
	for _, k := range a.Sections {
		wanted[k] = true
	}

	doc := ports.ExportDocument{
		ProjectName: project.Name,
		Language:    lang,
		Languages:   project.Languages,
	}
	for _, d := range project.Deliverables {
		if len(wanted) > 0 && !wanted[d.Kind] {
			continue
		}
		sec := ports.ExportSection{Name: d.Name, Kind: d.Kind}
		for _, asset := range d.Assets {
			ea := ports.ExportAsset{Name: asset.Name, Kind: asset.Kind}
			for _, f := range asset.Fields {
				ef := ports.ExportField{
					VariablePath: session.JoinVariablePath(d.Name, asset.Name, f.DisplayName()),
					FieldName:    f.DisplayName(),
					FieldKind:    f.Kind,
					Values:       map[string]string{},
				}
				for _, l := range project.Languages {
					ef.Values[l.Code] = s.Session.EffectiveTranslation(f.ID, l.Code, variantID).Value
				}
				ea.Fields = append(ea.Fields, ef)
			}
			sec.Assets = append(sec.Assets, ea)
		}
		doc.Sections = append(doc.Sections, sec)
	}

	content, err := exp.Export(doc)
	if err != nil {
		return ExportResult{}, err
	}
	return ExportResult{Filename: exportFilename(project.Name, a.Format), Content: content}, nil
}

func exportFilename(projectName, format string) string {
	name := strings.ReplaceAll(projectName, " ", "-")
	stamp := time.Now().Format("2006-01-02")
	ext := format
	switch format {
	case "variablesjson":
		ext = "json"
	}
	return fmt.Sprintf("%s_%s.%s", name, stamp, ext)
}

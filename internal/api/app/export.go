package app

import (
	"encoding/base64"

	htmlexp "github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/exporter/htmldoc"
	exreg "github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/exporter/registry"
	varsexp "github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/exporter/variablesjson"
	wordexp "github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/exporter/worddoc"
	xlsxexp "github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/exporter/xlsxgrid"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/exporter"
)

type ExportAPI struct{ svc *exporter.Service }

func NewExportAPI(s *exporter.Service) *ExportAPI { return &ExportAPI{svc: s} }

type ExportRequest struct {
	Format    string                   `json:"format"`
	Language  string                   `json:"language"`
	VariantID string                   `json:"variantId"`
	Sections  []domain.DeliverableKind `json:"sections"`
}

type ExportResponse struct {
	Filename   string `json:"filename"`
	ContentB64 string `json:"contentB64"`
}

func (a *ExportAPI) ExportBase64(req ExportRequest) (ExportResponse, error) {
	res, err := a.svc.Export(exporter.ExportArgs{
		Format:    req.Format,
		Language:  req.Language,
		VariantID: req.VariantID,
		Sections:  req.Sections,
	})
	if err != nil {
		return ExportResponse{}, err
	}
	return ExportResponse{Filename: res.Filename, ContentB64: base64.StdEncoding.EncodeToString(res.Content)}, nil
}

func (a *ExportAPI) Formats() []string {
	return a.svc.Reg.Formats()
}

// Helper to build default exporter registry
func NewDefaultExporterRegistry() *exreg.Registry {
	reg := exreg.New()
	reg.Register(varsexp.New())
	reg.Register(htmlexp.New())
	reg.Register(wordexp.New())
	reg.Register(xlsxexp.New())
	return reg
}

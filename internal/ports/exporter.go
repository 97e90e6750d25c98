package ports

import "github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"

// ExportField is one resolved content slot handed to an exporter.
type ExportField struct {
	VariablePath string
	FieldName    string
	FieldKind    domain.FieldKind
	// Values holds the effective value per language code for the requested
	// variant; missing languages mean empty.
	Values map[string]string
}

type ExportAsset struct {
	Name   string
	Kind   domain.AssetKind
	Fields []ExportField
}

type ExportSection struct {
	Name   string
	Kind   domain.DeliverableKind
	Assets []ExportAsset
}

// ExportDocument is a read-only projection of the project for one variant.
// Exporters never touch the canonical state.
type ExportDocument struct {
	ProjectName string
	// Language is the primary language for single-language formats; Languages
	// lists every requested language in project order.
	Language  string
	Languages []domain.Language
	Sections  []ExportSection
}

type Exporter interface {
	Format() string
	Export(doc ExportDocument) ([]byte, error)
}

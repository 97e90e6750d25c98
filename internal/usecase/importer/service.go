package importer

import (
	"errors"
	"strings"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/figma"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/session"
)

// Service turns a design-file frame tree into content. There is no
// special-cased ingestion path: every frame becomes an asset through the
// standard mutation operations, text nodes land on the matching default
// field by name or become custom fields, and source-language values are
// written through UpdateTranslation.
type Service struct {
	Session *session.Session
}

func New(s *session.Session) *Service { return &Service{Session: s} }

type ImportArgs struct {
	DeliverableID string
	File          *ports.DesignFile
}

type ImportResult struct {
	Assets    int
	TextNodes int
}

var ErrNoFrames = errors.New("design file has no importable frames")

func (s *Service) Import(a ImportArgs) (ImportResult, error) {
	if a.File == nil || a.File.Document == nil {
		return ImportResult{}, ErrNoFrames
	}
	frames := figma.TopFrames(a.File.Document)
	if len(frames) == 0 {
		return ImportResult{}, ErrNoFrames
	}

	project := s.Session.Project()
	base := project.BaseVariant()
	if base == nil {
		return ImportResult{}, errors.New("project has no base variant")
	}
	src := project.SourceLanguage

	var res ImportResult
	for _, frame := range frames {
		assetID, ok := s.Session.AddAsset(a.DeliverableID, assetKindFor(frame.Name))
		if !ok {
			return res, errors.New("deliverable not found: " + a.DeliverableID)
		}
		if frame.Name != "" {
			s.Session.RenameAsset(assetID, frame.Name)
		}
		res.Assets++

		for _, text := range figma.TextNodes(frame) {
			fieldID := s.matchDefaultField(assetID, text.Name)
			if fieldID == "" {
				fieldID, ok = s.Session.AddCustomField(assetID, fieldNameFor(text.Name))
				if !ok {
					continue
				}
			}
			s.Session.UpdateTranslation(fieldID, src, text.Characters, base.ID)
			res.TextNodes++
		}
	}
	return res, nil
}

// matchDefaultField finds an asset field whose name matches the text node's,
// case-insensitively, so frames named after the standard slots fill them
// directly instead of minting duplicates.
func (s *Service) matchDefaultField(assetID, nodeName string) string {
	_, asset := s.Session.Project().FindAsset(assetID)
	if asset == nil {
		return ""
	}
	want := normalize(nodeName)
	for _, f := range asset.Fields {
		if normalize(f.DisplayName()) == want {
			return f.ID
		}
	}
	return ""
}

func assetKindFor(frameName string) domain.AssetKind {
	name := strings.ToLower(frameName)
	switch {
	case strings.Contains(name, "banner"):
		return domain.AssetBanner
	case strings.Contains(name, "gallery"):
		return domain.AssetGallery
	case strings.Contains(name, "product"):
		return domain.AssetProductDetails
	default:
		return domain.AssetModule
	}
}

func fieldNameFor(nodeName string) string {
	name := strings.TrimSpace(nodeName)
	if name == "" {
		return "Text"
	}
	return name
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

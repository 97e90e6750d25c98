package domain

import "time"

type DeliverableKind string

const (
	DeliverablePDP    DeliverableKind = "pdp"
	DeliverableBanner DeliverableKind = "banner"
	DeliverableCRM    DeliverableKind = "crm"
)

type Project struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Deliverables   []*Deliverable  `json:"deliverables"`
	Languages      []Language      `json:"languages"`
	SourceLanguage string          `json:"sourceLanguage"`
	SkuVariants    []SkuVariant    `json:"skuVariants"`
	Settings       ProjectSettings `json:"settings"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ProjectSettings is free-form project metadata; the core treats it as opaque.
type ProjectSettings struct {
	ClientName         string `json:"clientName"`
	CustomInstructions string `json:"customInstructions"`
	ReferenceFileURL   string `json:"referenceFileUrl"`
}

type Deliverable struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Kind     DeliverableKind `json:"kind"`
	Assets   []*Asset        `json:"assets"`
	Position int             `json:"position"`
}

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag,omitempty"`
}

type SkuVariant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsBase   bool   `json:"isBase"`
	Position int    `json:"position"`
}

// BaseVariant returns the variant marked as base, or nil when the list
// violates the exactly-one-base invariant.
func (p *Project) BaseVariant() *SkuVariant {
	for i := range p.SkuVariants {
		if p.SkuVariants[i].IsBase {
			return &p.SkuVariants[i]
		}
	}
	return nil
}

func (p *Project) Deliverable(id string) *Deliverable {
	for _, d := range p.Deliverables {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// FindAsset returns the asset and its owning deliverable.
func (p *Project) FindAsset(assetID string) (*Deliverable, *Asset) {
	for _, d := range p.Deliverables {
		for _, a := range d.Assets {
			if a.ID == assetID {
				return d, a
			}
		}
	}
	return nil, nil
}

func (p *Project) HasLanguage(code string) bool {
	for _, l := range p.Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

package domain

import "fmt"

type AssetKind string

const (
	AssetGallery        AssetKind = "gallery"
	AssetModule         AssetKind = "module"
	AssetProductDetails AssetKind = "productDetails"
	AssetBanner         AssetKind = "banner"
)

type FieldKind string

const (
	FieldHeadline       FieldKind = "headline"
	FieldBody           FieldKind = "body"
	FieldLegal          FieldKind = "legal"
	FieldFeature        FieldKind = "feature"
	FieldCTA            FieldKind = "cta"
	FieldProductName    FieldKind = "productName"
	FieldProductDetails FieldKind = "productDetails"
	FieldBullet         FieldKind = "bullet"
	FieldCustom         FieldKind = "custom"
)

type Asset struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Kind     AssetKind `json:"kind"`
	Fields   []*Field  `json:"fields"`
	Position int       `json:"position"`
}

type Field struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Kind FieldKind `json:"kind"`
	// CustomName is the user-supplied display name for custom fields.
	CustomName string `json:"customName,omitempty"`
}

// DisplayName is the name surfaced to humans and to variable paths.
func (f *Field) DisplayName() string {
	if f.CustomName != "" {
		return f.CustomName
	}
	return f.Name
}

func (a *Asset) Field(id string) *Field {
	for _, f := range a.Fields {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// DefaultFields seeds the field set for a new asset of the given kind.
// IDs are assigned by the caller.
func DefaultFields(kind AssetKind) []*Field {
	switch kind {
	case AssetProductDetails:
		return []*Field{
			{Name: "Product Name", Kind: FieldProductName},
			{Name: "Product Details", Kind: FieldProductDetails},
			{Name: "Bullet 1", Kind: FieldBullet},
			{Name: "Bullet 2", Kind: FieldBullet},
			{Name: "Bullet 3", Kind: FieldBullet},
			{Name: "Bullet 4", Kind: FieldBullet},
		}
	case AssetBanner:
		return []*Field{
			{Name: "Headline", Kind: FieldHeadline},
			{Name: "Body", Kind: FieldBody},
			{Name: "Legal", Kind: FieldLegal},
			{Name: "Feature", Kind: FieldFeature},
			{Name: "CTA", Kind: FieldCTA},
		}
	default:
		return []*Field{
			{Name: "Headline", Kind: FieldHeadline},
			{Name: "Body", Kind: FieldBody},
			{Name: "Legal", Kind: FieldLegal},
			{Name: "Feature", Kind: FieldFeature},
		}
	}
}

// GeneratedAssetName builds a display name for a new asset of the given kind,
// numbered after the count of existing same-kind siblings.
func GeneratedAssetName(kind AssetKind, sameKindCount int) string {
	switch kind {
	case AssetGallery:
		return fmt.Sprintf("Gallery Image %d", sameKindCount+1)
	case AssetModule:
		return fmt.Sprintf("Module %d", sameKindCount+1)
	case AssetBanner:
		return fmt.Sprintf("Banner %d", sameKindCount+1)
	case AssetProductDetails:
		return "Product Details"
	default:
		return string(kind)
	}
}

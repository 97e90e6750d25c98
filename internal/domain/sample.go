package domain

import (
	"fmt"
	"time"
)

// SampleProject builds the demo project the UI boots with: one PDP
// deliverable (product details, five gallery images, three modules plus a
// carousel), three banners, and a small CRM set, in eight languages with a
// Standard/Deluxe variant pair.
func SampleProject(newID func() string, now time.Time) *Project {
	languages := []Language{
		{Code: "en", Name: "English", Flag: "🇺🇸"},
		{Code: "es", Name: "Spanish", Flag: "🇪🇸"},
		{Code: "fr", Name: "French", Flag: "🇫🇷"},
		{Code: "de", Name: "German", Flag: "🇩🇪"},
		{Code: "it", Name: "Italian", Flag: "🇮🇹"},
		{Code: "pt", Name: "Portuguese", Flag: "🇵🇹"},
		{Code: "ja", Name: "Japanese", Flag: "🇯🇵"},
		{Code: "zh", Name: "Chinese", Flag: "🇨🇳"},
	}

	pdp := &Deliverable{ID: newID(), Name: "PDP", Kind: DeliverablePDP, Position: 1}
	details := &Asset{ID: newID(), Name: "Product Details", Kind: AssetProductDetails, Position: 0}
	details.Fields = mintFields(newID, DefaultFields(AssetProductDetails))
	pdp.Assets = append(pdp.Assets, details)
	for i := 0; i < 5; i++ {
		a := &Asset{ID: newID(), Name: fmt.Sprintf("Gallery Image %d", i+1), Kind: AssetGallery, Position: i + 1}
		a.Fields = mintFields(newID, DefaultFields(AssetGallery))
		pdp.Assets = append(pdp.Assets, a)
	}
	for i := 0; i < 3; i++ {
		a := &Asset{ID: newID(), Name: fmt.Sprintf("Module %d", i+1), Kind: AssetModule, Position: len(pdp.Assets)}
		a.Fields = mintFields(newID, DefaultFields(AssetModule))
		pdp.Assets = append(pdp.Assets, a)
	}
	// Carousel variants of module 3.
	for _, letter := range []string{"a", "b", "c"} {
		a := &Asset{ID: newID(), Name: "Module 3" + letter, Kind: AssetModule, Position: len(pdp.Assets)}
		a.Fields = mintFields(newID, DefaultFields(AssetModule))
		pdp.Assets = append(pdp.Assets, a)
	}

	banners := &Deliverable{ID: newID(), Name: "Banners", Kind: DeliverableBanner, Position: 2}
	for i, name := range []string{"Banner A", "Banner B", "Banner C"} {
		a := &Asset{ID: newID(), Name: name, Kind: AssetBanner, Position: i}
		a.Fields = mintFields(newID, DefaultFields(AssetBanner))
		banners.Assets = append(banners.Assets, a)
	}

	crm := &Deliverable{ID: newID(), Name: "CRM", Kind: DeliverableCRM, Position: 3}
	for i := 0; i < 2; i++ {
		a := &Asset{ID: newID(), Name: fmt.Sprintf("Module %d", i+1), Kind: AssetModule, Position: i}
		a.Fields = mintFields(newID, DefaultFields(AssetModule))
		crm.Assets = append(crm.Assets, a)
	}

	return &Project{
		ID:             newID(),
		Name:           "Sample Retail Project",
		Deliverables:   []*Deliverable{pdp, banners, crm},
		Languages:      languages,
		SourceLanguage: "en",
		SkuVariants: []SkuVariant{
			{ID: newID(), Name: "Standard", IsBase: true, Position: 0},
			{ID: newID(), Name: "Deluxe", IsBase: false, Position: 1},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func mintFields(newID func() string, fields []*Field) []*Field {
	for _, f := range fields {
		f.ID = newID()
	}
	return fields
}

// SampleContent returns demo source-language copy keyed by field kind; used
// by the "fill sample content" action.
func SampleContent(kind FieldKind, assetName string) string {
	switch kind {
	case FieldHeadline:
		return "Experience Premium Quality with " + assetName
	case FieldBody:
		return "Crafted with attention to every detail, this product delivers outstanding performance for everyday use."
	case FieldLegal:
		return "Terms and conditions apply. See in-store for details."
	case FieldFeature:
		return "Engineered for durability"
	case FieldCTA:
		return "Shop Now"
	case FieldProductName:
		return "Premium Wireless Headphones"
	case FieldProductDetails:
		return "Immersive sound, all-day comfort, and up to 30 hours of battery life."
	case FieldBullet:
		return "Industry-leading noise cancellation"
	default:
		return ""
	}
}

package app

import (
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/session"
)

type VariantAPI struct {
	sess *session.Session
}

func NewVariantAPI(sess *session.Session) *VariantAPI { return &VariantAPI{sess: sess} }

func (a *VariantAPI) List() []domain.SkuVariant {
	return a.sess.Project().SkuVariants
}

// Set replaces the variant list wholesale. The list must contain exactly one
// base variant; records for removed variants are dropped and placeholders for
// new ones are seeded.
func (a *VariantAPI) Set(variants []domain.SkuVariant) error {
	return a.sess.SetVariants(variants)
}

package app

import (
	"context"
	"time"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/translator"
)

// TranslateAPI runs a single cell through the AI-assist pathway synchronously.
// Batch work goes through JobsAPI instead.
type TranslateAPI struct {
	svc *translator.Service
}

func NewTranslateAPI(svc *translator.Service) *TranslateAPI { return &TranslateAPI{svc: svc} }

type TranslateFieldRequest struct {
	ProviderID string `json:"providerId"`
	FieldID    string `json:"fieldId"`
	TargetLang string `json:"targetLang"`
	VariantID  string `json:"variantId"`
	Model      string `json:"model"`
}

type TranslateFieldResponse struct {
	Translation string `json:"translation"`
}

func (a *TranslateAPI) TranslateField(req TranslateFieldRequest) (TranslateFieldResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	txt, err := a.svc.TranslateField(ctx, translator.TranslateArgs{
		ProviderID: req.ProviderID,
		FieldID:    req.FieldID,
		TargetLang: req.TargetLang,
		VariantID:  req.VariantID,
		Model:      req.Model,
	})
	if err != nil {
		return TranslateFieldResponse{}, err
	}
	return TranslateFieldResponse{Translation: txt}, nil
}

package app

import (
	"context"
	"errors"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/importer"
)

type ImportAPI struct {
	svc    *importer.Service
	source ports.DesignSource
}

func NewImportAPI(svc *importer.Service, source ports.DesignSource) *ImportAPI {
	return &ImportAPI{svc: svc, source: source}
}

type ImportRequest struct {
	DeliverableID string   `json:"deliverableId"`
	FileKey       string   `json:"fileKey"`
	NodeIDs       []string `json:"nodeIds"`
}

type ImportResponse struct {
	FileName  string `json:"fileName"`
	Assets    int    `json:"assets"`
	TextNodes int    `json:"textNodes"`
}

// ImportDesignFile fetches a design file and maps its frames into the target
// deliverable.
func (a *ImportAPI) ImportDesignFile(req ImportRequest) (ImportResponse, error) {
	if a.source == nil {
		return ImportResponse{}, errors.New("no design source configured")
	}
	ctx := context.Background()
	file, err := a.source.FetchFile(ctx, req.FileKey, req.NodeIDs)
	if err != nil {
		return ImportResponse{}, err
	}
	res, err := a.svc.Import(importer.ImportArgs{DeliverableID: req.DeliverableID, File: file})
	if err != nil {
		return ImportResponse{}, err
	}
	return ImportResponse{FileName: file.Name, Assets: res.Assets, TextNodes: res.TextNodes}, nil
}

package app

import (
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/session"
)

// StructureAPI exposes the asset and field mutations. Every call returns ok
// to the frontend so stale ids degrade to a no-op instead of an error dialog.
type StructureAPI struct {
	sess *session.Session
}

func NewStructureAPI(sess *session.Session) *StructureAPI { return &StructureAPI{sess: sess} }

type AddAssetResult struct {
	AssetID string `json:"assetId"`
	OK      bool   `json:"ok"`
}

func (a *StructureAPI) AddAsset(deliverableID string, kind domain.AssetKind) AddAssetResult {
	id, ok := a.sess.AddAsset(deliverableID, kind)
	return AddAssetResult{AssetID: id, OK: ok}
}

func (a *StructureAPI) RemoveAsset(assetID string) bool {
	return a.sess.RemoveAsset(assetID)
}

func (a *StructureAPI) DuplicateAsset(deliverableID, assetID string) AddAssetResult {
	id, ok := a.sess.DuplicateAsset(deliverableID, assetID)
	return AddAssetResult{AssetID: id, OK: ok}
}

func (a *StructureAPI) RenameAsset(assetID, name string) bool {
	return a.sess.RenameAsset(assetID, name)
}

func (a *StructureAPI) ReorderAsset(assetID, siblingID string, after bool) bool {
	return a.sess.ReorderAsset(assetID, siblingID, after)
}

type AddFieldResult struct {
	FieldID string `json:"fieldId"`
	OK      bool   `json:"ok"`
}

func (a *StructureAPI) AddCustomField(assetID, name string) AddFieldResult {
	id, ok := a.sess.AddCustomField(assetID, name)
	return AddFieldResult{FieldID: id, OK: ok}
}

func (a *StructureAPI) RemoveField(assetID, fieldID string) bool {
	return a.sess.RemoveField(assetID, fieldID)
}

func (a *StructureAPI) RenameField(assetID, fieldID, name string) bool {
	return a.sess.RenameField(assetID, fieldID, name)
}

func (a *StructureAPI) ReorderField(assetID, fieldID, siblingID string, after bool) bool {
	return a.sess.ReorderField(assetID, fieldID, siblingID, after)
}

// VariablePath resolves the export path for a field, e.g.
// "pdp/gallery_image_1/headline".
func (a *StructureAPI) VariablePath(fieldID string) string {
	path, _ := a.sess.VariablePath(fieldID)
	return path
}

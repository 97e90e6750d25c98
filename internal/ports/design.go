package ports

import "context"

// FrameNode is one node of a design-file tree as exported by the design-tool
// plugin or fetched from the Figma REST API.
type FrameNode struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       string      `json:"type"` // FRAME, TEXT, GROUP, ...
	Characters string      `json:"characters,omitempty"`
	Width      float64     `json:"width,omitempty"`
	Height     float64     `json:"height,omitempty"`
	Children   []*FrameNode `json:"children,omitempty"`
}

// DesignFile is the subset of a design file the importer consumes.
type DesignFile struct {
	Name     string     `json:"name"`
	Document *FrameNode `json:"document"`
}

// DesignSource fetches design-file data on behalf of the import layer.
type DesignSource interface {
	FetchFile(ctx context.Context, fileKey string, nodeIDs []string) (*DesignFile, error)
}

package figma

import "github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"

// TopFrames returns the frame nodes directly under the document root; these
// map to assets during import.
func TopFrames(doc *ports.FrameNode) []*ports.FrameNode {
	if doc == nil {
		return nil
	}
	if doc.Type == "FRAME" {
		return []*ports.FrameNode{doc}
	}
	var frames []*ports.FrameNode
	for _, child := range doc.Children {
		if child.Type == "FRAME" {
			frames = append(frames, child)
			continue
		}
		// CANVAS/PAGE nodes hold frames one level down.
		frames = append(frames, TopFrames(child)...)
	}
	return frames
}

// TextNodes collects TEXT nodes with content from a frame subtree, in
// document order.
func TextNodes(frame *ports.FrameNode) []*ports.FrameNode {
	var out []*ports.FrameNode
	var walk func(*ports.FrameNode)
	walk = func(n *ports.FrameNode) {
		if n == nil {
			return
		}
		if n.Type == "TEXT" && n.Characters != "" {
			out = append(out, n)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(frame)
	return out
}

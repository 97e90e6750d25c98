package figma

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
)

const defaultBaseURL = "https://api.figma.com"

// Client talks to the Figma REST API on behalf of the import layer,
// replacing the serverless proxy the frontend used to call.
type Client struct {
	baseURL string
	token   string
	http    *resty.Client
	log     *zap.Logger
}

func New(baseURL, token string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	c := resty.New().SetTimeout(30 * time.Second)
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), token: token, http: c, log: log}
}

// WithToken returns a copy of the client authenticating with a different
// personal access token. The underlying HTTP client is shared.
func (c *Client) WithToken(token string) ports.DesignSource {
	cp := *c
	cp.token = token
	return &cp
}

type apiNode struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Characters  string     `json:"characters"`
	Children    []*apiNode `json:"children"`
	BoundingBox *struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"absoluteBoundingBox"`
}

type fileResponse struct {
	Name     string   `json:"name"`
	Document *apiNode `json:"document"`
}

// FetchFile retrieves a design file, optionally limited to specific nodes.
func (c *Client) FetchFile(ctx context.Context, fileKey string, nodeIDs []string) (*ports.DesignFile, error) {
	url := fmt.Sprintf("%s/v1/files/%s", c.baseURL, fileKey)
	req := c.http.R().SetContext(ctx).SetHeader("X-Figma-Token", c.token)
	if len(nodeIDs) > 0 {
		url += "/nodes"
		req.SetQueryParam("ids", strings.Join(nodeIDs, ","))
	}
	var resp fileResponse
	r, err := req.SetResult(&resp).Get(url)
	if err != nil {
		return nil, fmt.Errorf("figma fetch file: %w", err)
	}
	if r.IsError() {
		return nil, fmt.Errorf("figma fetch file: %s; body: %s", r.Status(), abbreviate(r.String(), 500))
	}
	c.log.Debug("fetched figma file", zap.String("fileKey", fileKey), zap.String("name", resp.Name))
	return &ports.DesignFile{Name: resp.Name, Document: toFrameNode(resp.Document)}, nil
}

func toFrameNode(n *apiNode) *ports.FrameNode {
	if n == nil {
		return nil
	}
	out := &ports.FrameNode{
		ID:         n.ID,
		Name:       n.Name,
		Type:       n.Type,
		Characters: n.Characters,
	}
	if n.BoundingBox != nil {
		out.Width = n.BoundingBox.Width
		out.Height = n.BoundingBox.Height
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, toFrameNode(child))
	}
	return out
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

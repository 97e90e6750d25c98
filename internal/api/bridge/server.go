package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/importer"
)

// Server is the local HTTP bridge the design-tool plugin talks to. It runs
// alongside the desktop app and accepts frame payloads pushed from the
// plugin, plus a token-guarded proxy for fetching files server-side.
type Server struct {
	addr     string
	importer *importer.Service
	source   ports.DesignSource
	envToken string
	log      *zap.Logger

	httpSrv *http.Server
}

func New(addr string, imp *importer.Service, source ports.DesignSource, envToken string, log *zap.Logger) *Server {
	return &Server{addr: addr, importer: imp, source: source, envToken: envToken, log: log}
}

func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/figma/import", s.handleImport).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/figma/proxy", s.handleProxy).Methods(http.MethodPost, http.MethodOptions)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	return cors(s.logRequests(r))
}

func (s *Server) Start() error {
	s.httpSrv = &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info("bridge listening", zap.String("addr", s.addr))
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "ts": time.Now().UTC().Format(time.RFC3339)})
}

// importRequest is the payload the plugin pushes. Frames use the plugin's
// node shape, which matches the design source's node shape.
type importRequest struct {
	DeliverableID string             `json:"deliverableId"`
	FileName      string             `json:"fileName"`
	Timestamp     string             `json:"timestamp"`
	Frames        []*ports.FrameNode `json:"frames"`
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid data format"})
		return
	}
	if len(req.Frames) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid data format"})
		return
	}
	deliverableID := req.DeliverableID
	if deliverableID == "" {
		project := s.importer.Session.Project()
		if len(project.Deliverables) == 0 {
			writeJSON(w, http.StatusConflict, map[string]any{"error": "project has no deliverables"})
			return
		}
		deliverableID = project.Deliverables[0].ID
	}
	file := &ports.DesignFile{
		Name: req.FileName,
		Document: &ports.FrameNode{
			Type:     "DOCUMENT",
			Children: []*ports.FrameNode{{Type: "CANVAS", Children: req.Frames}},
		},
	}
	res, err := s.importer.Import(importer.ImportArgs{DeliverableID: deliverableID, File: file})
	if err != nil {
		status := http.StatusInternalServerError
		if err == importer.ErrNoFrames {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]any{"error": err.Error()})
		return
	}
	s.log.Info("plugin import",
		zap.String("fileName", req.FileName),
		zap.Int("frames", len(req.Frames)),
		zap.Int("assets", res.Assets),
		zap.Int("textNodes", res.TextNodes),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Frames imported successfully",
		"processed": map[string]any{
			"frameCount":    res.Assets,
			"textNodeCount": res.TextNodes,
		},
	})
}

type proxyRequest struct {
	FileKey string   `json:"fileKey"`
	NodeIDs []string `json:"nodeIds"`
}

// handleProxy fetches a design file on behalf of the frontend. The token
// comes from the Authorization header, falling back to the configured
// environment token; it is never accepted in the URL.
func (s *Server) handleProxy(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		token = s.envToken
	}
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "no authorization provided"})
		return
	}
	var req proxyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FileKey == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "missing fileKey"})
		return
	}
	if s.source == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "no design source configured"})
		return
	}
	source := s.source
	if ts, ok := source.(interface {
		WithToken(string) ports.DesignSource
	}); ok {
		source = ts.WithToken(token)
	}
	file, err := source.FetchFile(r.Context(), req.FileKey, req.NodeIDs)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, file)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

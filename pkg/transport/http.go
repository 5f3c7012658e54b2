// Package transport serves an MCP server over stdio or streamable HTTP.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/gitlab"
)

const (
	// MCPPath is where the streamable HTTP endpoint is mounted.
	MCPPath = "/mcp"
	// HealthPath answers liveness checks.
	HealthPath = "/healthz"

	DefaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	Addr            string
	Version         string
	ShutdownTimeout time.Duration
	// AllowSharedToken lets MCP requests without a token header run with
	// the server's own GitLab tokens. When false they get 401.
	AllowSharedToken bool
	Logger           *log.Logger
}

// HTTPServer serves one MCP server over streamable HTTP.
type HTTPServer struct {
	cfg HTTPConfig
	srv *http.Server
}

// NewHTTPServer builds the router and the http.Server for s.
func NewHTTPServer(s *server.MCPServer, cfg HTTPConfig) *HTTPServer {
	if cfg.Logger == nil {
		cfg.Logger = log.StandardLogger()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &HTTPServer{
		cfg: cfg,
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewHTTPHandler(s, cfg),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// NewHTTPHandler routes MCPPath to a stateless streamable HTTP server and
// HealthPath to a liveness handler. A token in the Authorization or
// PRIVATE-TOKEN header of an MCP request selects the GitLab client for the
// tools it calls; requests without one are refused unless
// cfg.AllowSharedToken is set.
func NewHTTPHandler(s *server.MCPServer, cfg HTTPConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	var mcpHandler http.Handler = server.NewStreamableHTTPServer(s,
		server.WithStateLess(true),
		server.WithHTTPContextFunc(requestTokenContext),
	)
	if !cfg.AllowSharedToken {
		mcpHandler = requireToken(mcpHandler)
	}

	r := mux.NewRouter()
	r.Use(requestLogging(logger))
	r.Handle(MCPPath, mcpHandler).Methods(http.MethodGet, http.MethodPost, http.MethodDelete)
	r.HandleFunc(HealthPath, healthHandler(cfg.Version)).Methods(http.MethodGet, http.MethodHead)
	return r
}

// requireToken answers 401 to requests carrying no GitLab token.
func requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if TokenFromRequest(r) != "" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("WWW-Authenticate", `Bearer realm="gitlab"`)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "a GitLab token is required in the Authorization (Bearer) or PRIVATE-TOKEN header",
		})
	})
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (h *HTTPServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", h.cfg.Addr, err)
	}
	return h.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (h *HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	logger := h.cfg.Logger
	errC := make(chan error, 1)
	go func() {
		logger.WithField("addr", ln.Addr().String()).Info("MCP HTTP server listening")
		errC <- h.srv.Serve(ln)
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutdown requested for MCP HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.cfg.ShutdownTimeout)
	defer cancel()
	if err := h.srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("MCP HTTP server shutdown with error")
		return err
	}
	logger.Info("MCP HTTP server shutdown complete")
	return nil
}

// TokenFromRequest reads a GitLab token from "Authorization: Bearer <token>"
// or the PRIVATE-TOKEN header.
func TokenFromRequest(r *http.Request) string {
	if auth := strings.TrimSpace(r.Header.Get("Authorization")); auth != "" {
		scheme, token, ok := strings.Cut(auth, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	return strings.TrimSpace(r.Header.Get("PRIVATE-TOKEN"))
}

func requestTokenContext(ctx context.Context, r *http.Request) context.Context {
	return gitlab.ContextWithToken(ctx, TokenFromRequest(r))
}

func healthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"version": version,
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Flush keeps SSE responses streaming through the recorder.
func (s *statusRecorder) Flush() {
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func requestLogging(logger *log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.WithFields(log.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

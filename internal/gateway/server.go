// Package gateway hosts the one HTTP surface of the application: the
// passthrough to the third-party AI chat-completions gateway, plus a
// capability descriptor and a health check. No transaction data is
// ever served over the wire.
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bridgeremit/remit/internal/common"
)

// DefaultUpstreamURL is the chat-completions endpoint requests are
// forwarded to.
const DefaultUpstreamURL = "https://gateway.ai.vercel.ai/v1/chat/completions"

const (
	upstreamModel    = "anthropic/claude-3-sonnet"
	defaultMaxTokens = 1000
)

// Server proxies AI requests to the upstream gateway.
type Server struct {
	client      *http.Client
	upstreamURL string
	apiKey      string
}

// NewServer creates a gateway server. apiKey is the bearer credential
// for the upstream; with an empty key, completion requests fail before
// reaching the upstream.
func NewServer(upstreamURL, apiKey string) *Server {
	if upstreamURL == "" {
		upstreamURL = DefaultUpstreamURL
	}
	return &Server{
		client:      &http.Client{Timeout: 30 * time.Second},
		upstreamURL: upstreamURL,
		apiKey:      apiKey,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/ai", s.handleCompletion).Methods(http.MethodPost)
	r.HandleFunc("/api/ai", s.handleCapabilities).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Health check passed")
	}).Methods(http.MethodGet)

	return loggingMiddleware(r)
}

// completionRequest is the accepted client body.
type completionRequest struct {
	Messages  []json.RawMessage `json:"messages"`
	MaxTokens int               `json:"max_tokens,omitempty"`
}

// upstreamRequest is the body forwarded to the gateway.
type upstreamRequest struct {
	Model     string            `json:"model"`
	Messages  []json.RawMessage `json:"messages"`
	MaxTokens int               `json:"max_tokens"`
}

func (s *Server) handleCompletion(w http.ResponseWriter, r *http.Request) {
	var req completionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProxyError(w)
		return
	}

	if req.Messages == nil {
		req.Messages = []json.RawMessage{}
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = defaultMaxTokens
	}

	if s.apiKey == "" {
		common.LogError(common.ErrMissingConfig, "ai gateway credential missing",
			common.Fields{"env": "AI_GATEWAY_API_KEY"})
		writeProxyError(w)
		return
	}

	common.LogDebug("forwarding ai request", common.Fields{
		"messages":   len(req.Messages),
		"max_tokens": req.MaxTokens,
	})

	if err := s.forward(w, r, req); err != nil {
		common.LogError(err, "ai gateway request failed", common.Fields{"upstream": s.upstreamURL})
		writeProxyError(w)
	}
}

// forward sends the completion request upstream and relays the OK
// response verbatim. Every failure mode wraps ErrGatewayUpstream.
func (s *Server) forward(w http.ResponseWriter, r *http.Request, req completionRequest) error {
	body, err := json.Marshal(upstreamRequest{
		Model:     upstreamModel,
		Messages:  req.Messages,
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("marshal upstream body: %w: %w", err, common.ErrGatewayUpstream)
	}

	upReq, err := http.NewRequestWithContext(r.Context(), http.MethodPost, s.upstreamURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build upstream request: %w: %w", err, common.ErrGatewayUpstream)
	}
	upReq.Header.Set("Content-Type", "application/json")
	upReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(upReq)
	if err != nil {
		return fmt.Errorf("call upstream: %w: %w", err, common.ErrGatewayUpstream)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream status %d: %w", resp.StatusCode, common.ErrGatewayUpstream)
	}

	// The upstream response is returned verbatim.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, resp.Body); err != nil {
		slog.Error("failed to relay upstream response", "error", err)
	}
	return nil
}

func (s *Server) handleCapabilities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"message": "Bridge Remit AI Gateway is running",
		"features": []string{
			"Smart recipient suggestions",
			"Fraud detection (coming soon)",
			"Rate prediction (coming soon)",
		},
	})
}

func writeProxyError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "Failed to process AI request",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// loggingMiddleware logs each request with its status code and latency.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		common.LogInfo("http request", common.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		})
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

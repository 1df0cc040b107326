package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
	"github.com/josejalvarezm/lti-launch-validator/internal/oauth"
)

// maxFormBytes bounds the launch form body
const maxFormBytes = 1 << 20

// LaunchHandler handles incoming LTI launch requests (HTTP transport layer)
type LaunchHandler struct {
	processor   domain.LaunchProcessor
	logger      domain.Logger
	rateLimiter *RateLimiter
}

type launchResponse struct {
	Success        bool   `json:"success"`
	Status         int    `json:"status"`
	Message        string `json:"message"`
	RequestID      string `json:"requestId"`
	UserID         string `json:"userId,omitempty"`
	ContextID      string `json:"contextId,omitempty"`
	ResourceLinkID string `json:"resourceLinkId,omitempty"`
}

// NewLaunchHandler creates a new launch handler. A nil rateLimiter disables rate limiting.
func NewLaunchHandler(processor domain.LaunchProcessor, logger domain.Logger, rateLimiter *RateLimiter) *LaunchHandler {
	return &LaunchHandler{
		processor:   processor,
		logger:      logger,
		rateLimiter: rateLimiter,
	}
}

// ServeHTTP handles HTTP requests to the launch endpoint
func (h *LaunchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Check rate limit first (before any processing)
	if h.rateLimiter != nil && !h.rateLimiter.Allow() {
		h.logger.Info("rate limit exceeded", "remoteAddr", r.RemoteAddr)
		w.Header().Set("X-RateLimit-Retry-After", "1")
		http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	// Only accept POST requests
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.NewString()

	params, err := launchParams(w, r)
	if err != nil {
		h.logger.Error("failed to read launch parameters", err)
		http.Error(w, "Failed to read launch parameters", http.StatusBadRequest)
		return
	}

	result, err := h.processor.Process(r.Context(), params)
	if err != nil {
		h.logger.Error("failed to process launch", err)
		http.Error(w, "Failed to process launch", http.StatusInternalServerError)
		return
	}

	resp := launchResponse{
		Success:   result.IsSuccess(),
		Status:    result.StatusCode(),
		Message:   result.Message(),
		RequestID: requestID,
	}
	if result.IsSuccess() {
		resp.UserID = params.Get(domain.ParamUserID)
		resp.ContextID = params.Get(domain.ParamContextID)
		resp.ResourceLinkID = params.Get(domain.ParamResourceLinkID)
	}
	h.logger.Debug("launch handled", "requestId", requestID, "status", resp.Status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.StatusCode())
	json.NewEncoder(w).Encode(resp)
}

// launchParams collects the form body and URL query, then overlays any OAuth
// Authorization header parameters.
func launchParams(w http.ResponseWriter, r *http.Request) (domain.Params, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	params := domain.Params(r.Form).Clone()
	if params == nil {
		params = domain.Params{}
	}

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(strings.ToLower(header), "oauth ") {
		return params, nil
	}
	headerParams, err := oauth.ParseAuthorizationHeader(header)
	if err != nil {
		return nil, err
	}
	for k, vs := range headerParams {
		params[k] = vs
	}
	return params, nil
}

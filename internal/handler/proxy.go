package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/akhilkushwaha/portfolio-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const proxyTimeout = 15 * time.Second

// Forwarder relays a raw GraphQL document to the upstream endpoint.
type Forwarder interface {
	Forward(ctx context.Context, body []byte) (int, []byte, error)
}

// ProxyHandler is the forwarding shim: it relays {query, variables} to the
// upstream GraphQL endpoint unchanged and passes the status and body through.
type ProxyHandler struct {
	upstream Forwarder
	log      zerolog.Logger
}

func NewProxyHandler(upstream Forwarder, logger zerolog.Logger) *ProxyHandler {
	l := logger.With().Str("module", "handler").Str("component", "proxy").Logger()
	return &ProxyHandler{upstream: upstream, log: l}
}

func (h *ProxyHandler) Register(r *gin.RouterGroup) {
	// Any, not POST: the shim owns its own method handling so non-POST gets
	// 405 rather than the router's 404.
	r.Any("/graphql", h.forward)
}

// forwardRequest pins the relayed document to exactly the two fields the
// upstream accepts.
type forwardRequest struct {
	Query     string          `json:"query"`
	Variables json.RawMessage `json:"variables,omitempty"`
}

func (h *ProxyHandler) forward(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		// CORS preflight; headers are set by the CORS middleware.
		c.Status(http.StatusOK)
		return
	case http.MethodPost:
	default:
		response.WriteError(c, http.StatusMethodNotAllowed, response.ErrorPayload{
			Error: "Method not allowed",
		})
		return
	}

	var req forwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, http.StatusBadRequest, response.ErrorPayload{
			Error: "invalid request body",
		})
		return
	}

	body, err := json.Marshal(req)
	if err != nil {
		response.WriteError(c, http.StatusInternalServerError, response.ErrorPayload{
			Error: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), proxyTimeout)
	defer cancel()

	status, respBody, err := h.upstream.Forward(ctx, body)
	if err != nil {
		h.log.Error().Err(err).Msg("forwarding to upstream failed")
		response.WriteError(c, http.StatusInternalServerError, response.ErrorPayload{
			Error:   err.Error(),
			Details: "Failed to fetch data from LeetCode API",
		})
		return
	}

	// Pass-through: upstream status and body, unchanged.
	c.Data(status, "application/json", respBody)
}

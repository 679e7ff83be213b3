package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/akhilkushwaha/portfolio-backend/internal/service"
	"github.com/akhilkushwaha/portfolio-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

// statsTimeout bounds one full aggregation cycle, retries included.
const statsTimeout = 30 * time.Second

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

func (h *StatsHandler) Register(r *gin.RouterGroup) {
	r.GET("/leetcode-stats", h.get)
}

// get runs one aggregation cycle for the configured user. The subject is
// server-side configuration; no request input is accepted.
func (h *StatsHandler) get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), statsTimeout)
	defer cancel()

	overview, err := h.svc.FetchStats(ctx)
	if err != nil {
		var notFound *service.UserNotFoundError
		if errors.As(err, &notFound) {
			response.WriteError(c, http.StatusNotFound, response.ErrorPayload{
				Error: notFound.Error(),
			})
			return
		}
		response.WriteError(c, http.StatusInternalServerError, response.ErrorPayload{
			Error:   "Failed to fetch LeetCode data",
			Details: err.Error(),
		})
		return
	}

	response.WriteData(c, http.StatusOK, overview)
}

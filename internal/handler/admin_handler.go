package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"parceldesk/internal/dto"
)

// Trigger is the one-shot variant of a scheduled task. RunOnce recovers
// transient failures internally and returns an error only when the run could
// not happen at all (e.g. shutdown in progress).
type Trigger interface {
	RunOnce(ctx context.Context) error
}

type AdminHandler struct {
	rateRefresh  Trigger
	pricingSweep Trigger
}

func NewAdminHandler(rateRefresh, pricingSweep Trigger) *AdminHandler {
	return &AdminHandler{rateRefresh: rateRefresh, pricingSweep: pricingSweep}
}

func (h *AdminHandler) RefreshRate(c *gin.Context) {
	log.Info().Msg("manual usd rate refresh requested")

	if err := h.rateRefresh.RunOnce(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("manual usd rate refresh failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusAccepted, dto.TaskResponse{Status: "completed"})
}

func (h *AdminHandler) RecalculateCosts(c *gin.Context) {
	log.Info().Msg("manual pricing sweep requested")

	if err := h.pricingSweep.RunOnce(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("manual pricing sweep failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusAccepted, dto.TaskResponse{Status: "completed"})
}

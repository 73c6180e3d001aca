package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/raffleworks/crypto-raffle-api/internal/api/handler/v1/response"
	"github.com/raffleworks/crypto-raffle-api/internal/domain"
)

type StatsService interface {
	GetStats(ctx context.Context) domain.Stats
	RecentActivity(ctx context.Context, limit int) ([]domain.Activity, error)
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{
		svc: svc,
	}
}

// HandleGetStats godoc
// @Summary      Dashboard statistics
// @Description  Aggregated counts and revenue; served from a short-lived cache
// @Tags         stats
// @Produce      json
// @Success      200  {object}  domain.Stats
// @Router       /stats [get]
func (h *StatsHandler) HandleGetStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.GetStats(ctx.Request.Context()))
}

// HandleRecentActivity godoc
// @Summary      Recent entry activity
// @Tags         stats
// @Produce      json
// @Param        limit  query     int  false  "max items (default 10)"
// @Success      200    {array}   domain.Activity
// @Failure      500    {object}  response.Err
// @Router       /activity [get]
func (h *StatsHandler) HandleRecentActivity(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid limit %q", raw)))
			return
		}
		limit = parsed
	}

	activity, err := h.svc.RecentActivity(ctx.Request.Context(), limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleRecentActivity -> h.svc.RecentActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

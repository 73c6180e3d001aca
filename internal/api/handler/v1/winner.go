package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raffleworks/crypto-raffle-api/internal/api/handler/v1/response"
	"github.com/raffleworks/crypto-raffle-api/internal/domain"
	"github.com/raffleworks/crypto-raffle-api/internal/service"
)

type WinnerService interface {
	ListWinners(ctx context.Context) ([]domain.WinnerPayment, error)
	ListPendingWinners(ctx context.Context) ([]domain.WinnerPayment, error)
	MarkWinnerPaid(ctx context.Context, raffleID string) (domain.WinnerPayment, error)
}

type WinnerHandler struct {
	svc WinnerService
}

func NewWinnerHandler(svc WinnerService) *WinnerHandler {
	return &WinnerHandler{
		svc: svc,
	}
}

// HandleListWinners godoc
// @Summary      List winner payments
// @Description  Returns every drawn winner, most recent draw first
// @Tags         winners
// @Produce      json
// @Success      200  {array}   domain.WinnerPayment
// @Failure      500  {object}  response.Err
// @Router       /winners [get]
func (h *WinnerHandler) HandleListWinners(ctx *gin.Context) {
	winners, err := h.svc.ListWinners(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListWinners -> h.svc.ListWinners -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, winners)
}

// HandleListPendingWinners godoc
// @Summary      List unpaid winner payments
// @Tags         winners
// @Produce      json
// @Success      200  {array}   domain.WinnerPayment
// @Failure      500  {object}  response.Err
// @Router       /winners/pending [get]
func (h *WinnerHandler) HandleListPendingWinners(ctx *gin.Context) {
	winners, err := h.svc.ListPendingWinners(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPendingWinners -> h.svc.ListPendingWinners -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, winners)
}

// HandleMarkWinnerPaid godoc
// @Summary      Mark a winner payment as paid
// @Description  Transitions the payment from pending to paid exactly once
// @Tags         winners
// @Produce      json
// @Param        raffleID  path      string  true  "raffle ID"
// @Success      200       {object}  domain.WinnerPayment
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /winners/{raffleID}/paid [put]
func (h *WinnerHandler) HandleMarkWinnerPaid(ctx *gin.Context) {
	raffleID := ctx.Param("raffleID")

	payment, err := h.svc.MarkWinnerPaid(ctx.Request.Context(), raffleID)
	if err != nil {
		if errors.Is(err, service.ErrWinnerPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("winner payment", "raffle ID", raffleID))
			return
		}
		if errors.Is(err, service.ErrWinnerAlreadyPaid) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrWinnerAlreadyPaid))
			return
		}

		err = fmt.Errorf("v1.HandleMarkWinnerPaid -> h.svc.MarkWinnerPaid -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, payment)
}

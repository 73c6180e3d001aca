package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raffleworks/crypto-raffle-api/internal/api/handler/v1/request"
	"github.com/raffleworks/crypto-raffle-api/internal/api/handler/v1/response"
	"github.com/raffleworks/crypto-raffle-api/internal/domain"
	"github.com/raffleworks/crypto-raffle-api/internal/service"
)

type RaffleService interface {
	ListRaffles(ctx context.Context) ([]domain.Raffle, error)
	ListActiveRaffles(ctx context.Context) ([]domain.Raffle, error)
	GetRaffle(ctx context.Context, id string) (domain.Raffle, error)
	CreateRaffle(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error)
	UpdateRaffle(ctx context.Context, id string, update domain.RaffleUpdate) (domain.Raffle, error)
	DeleteRaffle(ctx context.Context, id string) error
	ListParticipants(ctx context.Context, raffleID string) ([]domain.Participant, error)
	ListAllParticipants(ctx context.Context) ([]domain.Participant, error)
	ListTransactions(ctx context.Context, raffleID string) ([]domain.Transaction, error)
	EnterRaffle(ctx context.Context, raffleID string, entry domain.Participant) (domain.Participant, error)
}

type RaffleHandler struct {
	svc RaffleService
}

func NewRaffleHandler(svc RaffleService) *RaffleHandler {
	return &RaffleHandler{
		svc: svc,
	}
}

// HandleListRaffles godoc
// @Summary      List all raffles
// @Description  Returns every raffle, newest first
// @Tags         raffles
// @Produce      json
// @Success      200  {array}   domain.Raffle
// @Failure      500  {object}  response.Err
// @Router       /raffles [get]
func (h *RaffleHandler) HandleListRaffles(ctx *gin.Context) {
	raffles, err := h.svc.ListRaffles(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListRaffles -> h.svc.ListRaffles -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, raffles)
}

// HandleListActiveRaffles godoc
// @Summary      List active raffles
// @Description  Returns raffles still open for entry, soonest ending first
// @Tags         raffles
// @Produce      json
// @Success      200  {array}   domain.Raffle
// @Failure      500  {object}  response.Err
// @Router       /raffles/active [get]
func (h *RaffleHandler) HandleListActiveRaffles(ctx *gin.Context) {
	raffles, err := h.svc.ListActiveRaffles(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListActiveRaffles -> h.svc.ListActiveRaffles -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, raffles)
}

// HandleGetRaffle godoc
// @Summary      Get a raffle
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      string  true  "raffle ID"
// @Success      200       {object}  domain.Raffle
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID} [get]
func (h *RaffleHandler) HandleGetRaffle(ctx *gin.Context) {
	raffleID := ctx.Param("raffleID")

	raffle, err := h.svc.GetRaffle(ctx.Request.Context(), raffleID)
	if err != nil {
		if errors.Is(err, service.ErrRaffleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("raffle", "ID", raffleID))
			return
		}

		err = fmt.Errorf("v1.HandleGetRaffle -> h.svc.GetRaffle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, raffle)
}

// HandleCreateRaffle godoc
// @Summary      Create a raffle
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateRaffleRequest  true  "request body"
// @Success      201      {object}  domain.Raffle
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /raffles [post]
func (h *RaffleHandler) HandleCreateRaffle(ctx *gin.Context) {
	if err := request.CanonicalizeJSON(ctx); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateRaffleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	autoDraw := true
	if req.AutoDrawEnabled != nil {
		autoDraw = *req.AutoDrawEnabled
	}

	raffle, err := h.svc.CreateRaffle(ctx.Request.Context(), domain.Raffle{
		Title:           req.Title,
		Description:     req.Description,
		WalletAddress:   req.WalletAddress,
		PrizePool:       req.PrizePool,
		EntryFee:        req.EntryFee,
		TotalSpots:      req.TotalSpots,
		MaxPerWallet:    req.MaxPerWallet,
		EndTime:         req.EndTime,
		AutoDrawEnabled: autoDraw,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidEndTime) || errors.Is(err, service.ErrInvalidCapacity) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateRaffle -> h.svc.CreateRaffle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, raffle)
}

// HandleUpdateRaffle godoc
// @Summary      Update a raffle
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        raffleID  path      string                       true  "raffle ID"
// @Param        request   body      request.UpdateRaffleRequest  true  "request body"
// @Success      200       {object}  domain.Raffle
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID} [put]
func (h *RaffleHandler) HandleUpdateRaffle(ctx *gin.Context) {
	raffleID := ctx.Param("raffleID")

	if err := request.CanonicalizeJSON(ctx); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateRaffleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	raffle, err := h.svc.UpdateRaffle(ctx.Request.Context(), raffleID, domain.RaffleUpdate{
		Title:           req.Title,
		Description:     req.Description,
		WalletAddress:   req.WalletAddress,
		PrizePool:       req.PrizePool,
		EntryFee:        req.EntryFee,
		TotalSpots:      req.TotalSpots,
		MaxPerWallet:    req.MaxPerWallet,
		EndTime:         req.EndTime,
		AutoDrawEnabled: req.AutoDrawEnabled,
	})
	if err != nil {
		if errors.Is(err, service.ErrRaffleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("raffle", "ID", raffleID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateRaffle -> h.svc.UpdateRaffle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, raffle)
}

// HandleDeleteRaffle godoc
// @Summary      Delete a raffle
// @Description  Removes the raffle with its participants and transactions
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      string  true  "raffle ID"
// @Success      204       "no content"
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID} [delete]
func (h *RaffleHandler) HandleDeleteRaffle(ctx *gin.Context) {
	raffleID := ctx.Param("raffleID")

	if err := h.svc.DeleteRaffle(ctx.Request.Context(), raffleID); err != nil {
		if errors.Is(err, service.ErrRaffleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("raffle", "ID", raffleID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteRaffle -> h.svc.DeleteRaffle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListParticipants godoc
// @Summary      List participants of a raffle
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      string  true  "raffle ID"
// @Success      200       {array}   domain.Participant
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/participants [get]
func (h *RaffleHandler) HandleListParticipants(ctx *gin.Context) {
	raffleID := ctx.Param("raffleID")

	participants, err := h.svc.ListParticipants(ctx.Request.Context(), raffleID)
	if err != nil {
		if errors.Is(err, service.ErrRaffleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("raffle", "ID", raffleID))
			return
		}

		err = fmt.Errorf("v1.HandleListParticipants -> h.svc.ListParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleListAllParticipants godoc
// @Summary      List participants across all raffles
// @Tags         participants
// @Produce      json
// @Success      200  {array}   domain.Participant
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants [get]
func (h *RaffleHandler) HandleListAllParticipants(ctx *gin.Context) {
	participants, err := h.svc.ListAllParticipants(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAllParticipants -> h.svc.ListAllParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleListTransactions godoc
// @Summary      List transactions of a raffle
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      string  true  "raffle ID"
// @Success      200       {array}   domain.Transaction
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/transactions [get]
func (h *RaffleHandler) HandleListTransactions(ctx *gin.Context) {
	raffleID := ctx.Param("raffleID")

	transactions, err := h.svc.ListTransactions(ctx.Request.Context(), raffleID)
	if err != nil {
		if errors.Is(err, service.ErrRaffleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("raffle", "ID", raffleID))
			return
		}

		err = fmt.Errorf("v1.HandleListTransactions -> h.svc.ListTransactions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, transactions)
}

// HandleEnterRaffle godoc
// @Summary      Enter a raffle
// @Description  Validates the entry against capacity and wallet limits, then
// @Description  records the participant together with the payment transaction
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        raffleID  path      string                      true  "raffle ID"
// @Param        request   body      request.EnterRaffleRequest  true  "request body"
// @Success      201       {object}  domain.Participant
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /raffles/{raffleID}/entries [post]
func (h *RaffleHandler) HandleEnterRaffle(ctx *gin.Context) {
	raffleID := ctx.Param("raffleID")

	if err := request.CanonicalizeJSON(ctx); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.EnterRaffleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.EnterRaffle(ctx.Request.Context(), raffleID, domain.Participant{
		RaffleID: raffleID,
		Address:  req.Address,
		Entries:  req.Entries,
		Avatar:   req.Avatar,
		TxHash:   req.TxHash,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRaffleNotFound):
			response.RenderErr(ctx, response.ErrNotFound("raffle", "ID", raffleID))
		case errors.Is(err, service.ErrRaffleNotActive),
			errors.Is(err, service.ErrCapacityExceeded),
			errors.Is(err, service.ErrWalletLimitExceeded):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleEnterRaffle -> h.svc.EnterRaffle -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, participant)
}

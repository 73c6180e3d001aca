package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/raffleworks/crypto-raffle-api/internal/api/handler/v1/request"
	"github.com/raffleworks/crypto-raffle-api/internal/api/handler/v1/response"
	"github.com/raffleworks/crypto-raffle-api/internal/config"
	"github.com/raffleworks/crypto-raffle-api/internal/pkg/jwthelper"
)

type AdminHandler struct {
	conf *config.APIConfig
}

func NewAdminHandler(conf *config.APIConfig) *AdminHandler {
	return &AdminHandler{
		conf: conf,
	}
}

type AdminLoginResponse struct {
	Token   string `json:"token"`
	Address string `json:"address"`
}

// HandleAdminLogin godoc
// @Summary      Admin login
// @Description  Exchanges the configured admin wallet address for a JWT
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.AdminLoginRequest  true  "request body"
// @Success      200      {object}  AdminLoginResponse
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/login [post]
func (h *AdminHandler) HandleAdminLogin(ctx *gin.Context) {
	var req request.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// Addresses compare case-insensitively; checksummed and lowercase
	// spellings identify the same wallet.
	if !strings.EqualFold(req.Address, h.conf.AdminAddress) {
		response.RenderErr(ctx, response.ErrPermissionDenied())
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), strings.ToLower(req.Address), ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleAdminLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, AdminLoginResponse{
		Token:   token,
		Address: strings.ToLower(req.Address),
	})
}

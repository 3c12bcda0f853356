package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/delivery"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/escrow"
	authMiddleware "github.com/assetbay/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	escrowUC escrow.UseCase
}

func New(e *echo.Echo, escrowUC escrow.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{escrowUC}

	g := e.Group("/escrow")
	g.POST("/deposit", h.deposit, authMiddleware.Auth())
	g.GET("/balance", h.getBalance, authMiddleware.Auth())
	g.GET("/holdings/:assetId", h.getHolding)
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Amount int64 `json:"amount"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	balance, err := h.escrowUC.Deposit(ctx, address, p.Amount)
	if err == domain.ErrBadParamInput {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Balance int64 `json:"balance"`
	}{
		Balance: balance,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	balance, err := h.escrowUC.BalanceOf(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Balance int64 `json:"balance"`
	}{
		Balance: balance,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getHolding(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	assetId := domain.AssetId(c.Param("assetId"))

	holding, err := h.escrowUC.GetHolding(ctx, assetId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, holding)
}

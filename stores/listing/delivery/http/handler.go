package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/delivery"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/listing"
	authMiddleware "github.com/assetbay/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	listingUC listing.UseCase
}

func New(e *echo.Echo, listingUC listing.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{listingUC}

	g := e.Group("/listings")
	g.GET("", h.getActiveListings)
	g.GET("/:assetId", h.getListing)
	g.POST("", h.list, authMiddleware.Auth())
	g.POST("/auction", h.listAuction, authMiddleware.Auth())
	g.DELETE("/:assetId", h.unlist, authMiddleware.Auth())
	g.POST("/:assetId/bids", h.placeBid, authMiddleware.Auth())
	g.POST("/:assetId/buy", h.buy, authMiddleware.Auth())
	// ending an expired auction is permissionless
	g.POST("/:assetId/end", h.endAuction)
}

func (h *handler) getActiveListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listingUC.ActiveListings(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	assetId := domain.AssetId(c.Param("assetId"))

	res, err := h.listingUC.GetListing(ctx, assetId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		AssetId domain.AssetId `json:"assetId"`
		Price   int64          `json:"price"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listingUC.List(ctx, address, p.AssetId, p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) listAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		AssetId       domain.AssetId `json:"assetId"`
		StartingPrice int64          `json:"startingPrice"`
		DurationSec   int64          `json:"durationSec"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listingUC.ListAuction(ctx, address, p.AssetId, p.StartingPrice, time.Duration(p.DurationSec)*time.Second)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) unlist(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)
	assetId := domain.AssetId(c.Param("assetId"))

	if err := h.listingUC.Unlist(ctx, address, assetId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)
	assetId := domain.AssetId(c.Param("assetId"))

	type params struct {
		Amount int64 `json:"amount"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listingUC.PlaceBid(ctx, address, assetId, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)
	assetId := domain.AssetId(c.Param("assetId"))

	type params struct {
		Payment int64 `json:"payment"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listingUC.Buy(ctx, address, assetId, p.Payment); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	assetId := domain.AssetId(c.Param("assetId"))

	if err := h.listingUC.EndAuction(ctx, assetId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/delivery"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/statistic"
)

type handler struct {
	statisticUC statistic.UseCase
}

func New(e *echo.Echo, statisticUC statistic.UseCase) {
	h := &handler{statisticUC}
	gs := e.Group("/statistics")
	gs.GET("/:assetId", h.getAssetStat)
}

func (h *handler) getAssetStat(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(ctx.Ctx)
	assetId := domain.AssetId(_ctx.Param("assetId"))

	stat, err := h.statisticUC.Get(ctx, assetId)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(_ctx, http.StatusOK, stat)
}

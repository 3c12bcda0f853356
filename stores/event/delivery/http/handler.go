package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/delivery"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/event"
)

type handler struct {
	eventUC event.UseCase
}

func New(e *echo.Echo, eventUC event.UseCase) {
	h := &handler{eventUC}

	g := e.Group("/events")
	g.GET("", h.getEvents)
}

func (h *handler) getEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		AssetId domain.AssetId `query:"assetId"`
		Type    event.Type     `query:"type"`
		Account domain.Address `query:"account"`
		Offset  int32          `query:"offset"`
		Limit   int32          `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []event.FindAllOptionsFunc{}
	if len(p.AssetId) > 0 {
		opts = append(opts, event.WithAssetId(p.AssetId))
	}
	if len(p.Type) > 0 {
		opts = append(opts, event.WithType(p.Type))
	}
	if !p.Account.IsEmpty() {
		opts = append(opts, event.WithAccount(p.Account))
	}
	if p.Limit > 0 {
		opts = append(opts, event.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.eventUC.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/delivery"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/registry"
)

type handler struct{}

// New registers the incoming-transfer hook. The registry notifies this
// endpoint when an asset is pushed to the marketplace and expects the
// ack selector back; any transfer is accepted.
func New(e *echo.Echo) {
	h := &handler{}
	e.POST("/transfers/incoming", h.acceptTransfer)
}

func (h *handler) acceptTransfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Operator domain.Address `json:"operator"`
		From     domain.Address `json:"from"`
		AssetId  domain.AssetId `json:"assetId"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	ctx.WithFields(log.Fields{
		"operator": p.Operator,
		"from":     p.From,
		"assetId":  p.AssetId,
	}).Info("incoming transfer accepted")

	res := struct {
		Ack string `json:"ack"`
	}{
		Ack: registry.TransferAck,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

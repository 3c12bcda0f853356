package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// statusOf maps the domain sentinels to their HTTP status. Zero means
// the error carries no preferred status and the caller's choice stands.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrBidTooLow),
		errors.Is(err, domain.ErrNotAnAuction),
		errors.Is(err, domain.ErrAuctionStillOpen),
		errors.Is(err, domain.ErrNotForSale),
		errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotListingOwner):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyListed), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return 0
	}
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if s := statusOf(err); s != 0 {
			status = s
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

package statistic

import (
	bCtx "github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/domain"
)

// AssetStat accumulates settled trades of one asset.
type AssetStat struct {
	AssetId     domain.AssetId `json:"assetId" bson:"assetId"`
	Volume      float64        `json:"volume" bson:"volume"`
	SaleCount   int64          `json:"saleCount" bson:"saleCount"`
	LastPrice   int64          `json:"lastPrice" bson:"lastPrice"`
	VolumeInUsd float64        `json:"volumeInUsd" bson:"volumeInUsd"`
}

type AssetStatId struct {
	AssetId domain.AssetId `bson:"assetId"`
}

func (s *AssetStat) ToId() AssetStatId {
	return AssetStatId{AssetId: s.AssetId}
}

type UpdatePayload struct {
	LastPrice   *int64   `bson:"lastPrice,omitempty"`
	VolumeInUsd *float64 `bson:"volumeInUsd,omitempty"`
}

type Repo interface {
	FindOne(ctx bCtx.Ctx, id AssetStatId) (*AssetStat, error)
	// IncVolume adds volume and one sale to the stat, creating it when
	// absent, and returns the accumulated volume.
	IncVolume(ctx bCtx.Ctx, id AssetStatId, volume float64) (float64, error)
	Patch(ctx bCtx.Ctx, id AssetStatId, p UpdatePayload) error
}

type UseCase interface {
	Get(ctx bCtx.Ctx, assetId domain.AssetId) (*AssetStat, error)
	// RecordSale accumulates one settled trade of the asset.
	RecordSale(ctx bCtx.Ctx, assetId domain.AssetId, price int64) error
}

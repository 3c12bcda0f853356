package usecase

import (
	"github.com/shopspring/decimal"

	bCtx "github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/statistic"
)

type StatisticUseCaseCfg struct {
	StatisticRepo statistic.Repo

	// UnitUsdPrice converts marketplace units into usd for the
	// accumulated usd volume. Zero disables the conversion.
	UnitUsdPrice decimal.Decimal
}

type uc struct {
	statisticRepo statistic.Repo
	unitUsdPrice  decimal.Decimal
}

func New(cfg *StatisticUseCaseCfg) statistic.UseCase {
	return &uc{
		statisticRepo: cfg.StatisticRepo,
		unitUsdPrice:  cfg.UnitUsdPrice,
	}
}

func (u *uc) Get(ctx bCtx.Ctx, assetId domain.AssetId) (*statistic.AssetStat, error) {
	s, err := u.statisticRepo.FindOne(ctx, statistic.AssetStatId{AssetId: assetId})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
		}).Error("repo.FindOne failed")
		return nil, err
	}
	return s, nil
}

func (u *uc) RecordSale(ctx bCtx.Ctx, assetId domain.AssetId, price int64) error {
	id := statistic.AssetStatId{AssetId: assetId}

	volume, err := u.statisticRepo.IncVolume(ctx, id, float64(price))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
			"price":   price,
		}).Error("repo.IncVolume failed")
		return err
	}

	payload := statistic.UpdatePayload{
		LastPrice: &price,
	}

	if !u.unitUsdPrice.IsZero() {
		usd, _ := decimal.NewFromFloat(volume).Mul(u.unitUsdPrice).Float64()
		payload.VolumeInUsd = &usd
	}

	if err := u.statisticRepo.Patch(ctx, id, payload); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
		}).Error("repo.Patch failed")
		return err
	}

	return nil
}

package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/database/mongoclient"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/statistic"
	"github.com/assetbay/goapi/service/query"
)

type repo struct {
	q query.Mongo
}

func New(q query.Mongo) statistic.Repo {
	return &repo{q}
}

func (r *repo) FindOne(ctx bCtx.Ctx, id statistic.AssetStatId) (*statistic.AssetStat, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := &statistic.AssetStat{}
	if err := r.q.FindOne(ctx, domain.TableAssetStats, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return res, nil
}

func (r *repo) IncVolume(ctx bCtx.Ctx, id statistic.AssetStatId, volume float64) (float64, error) {
	selector := bson.M{"assetId": id.AssetId}
	set := bson.M{"assetId": id.AssetId}

	res := &statistic.AssetStat{}
	if err := r.q.IncrementMany(ctx, domain.TableAssetStats, selector, bson.M{"volume": volume, "saleCount": int64(1)}, set, res); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"id":     id,
			"volume": volume,
		}).Error("failed to q.IncrementMany")
		return 0, err
	}

	return res.Volume, nil
}

func (r *repo) Patch(ctx bCtx.Ctx, id statistic.AssetStatId, p statistic.UpdatePayload) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	updater, err := mongoclient.MakeBsonM(p)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"payload": p,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := r.q.Patch(ctx, domain.TableAssetStats, selector, updater); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

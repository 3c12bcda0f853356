package repository

import (
	"time"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/database/mongoclient"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/escrow"
	"github.com/assetbay/goapi/service/query"
)

type holdingRepoImpl struct {
	q query.Mongo
}

func NewHoldingRepo(q query.Mongo) escrow.HoldingRepo {
	return &holdingRepoImpl{q}
}

func (im *holdingRepoImpl) FindOne(ctx ctx.Ctx, id escrow.HoldingId) (*escrow.Holding, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := &escrow.Holding{}
	if err := im.q.FindOne(ctx, domain.TableEscrowHoldings, qry, res); err == query.ErrNotFound {
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

func (im *holdingRepoImpl) Upsert(ctx ctx.Ctx, h escrow.Holding) error {
	h.Bidder = h.Bidder.ToLower()
	h.UpdatedAt = time.Now()

	selector, err := mongoclient.MakeBsonM(h.ToId())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"holding": h,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := im.q.Upsert(ctx, domain.TableEscrowHoldings, selector, &h); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"holding": h,
		}).Error("failed to q.Upsert")
		return err
	}

	return nil
}

func (im *holdingRepoImpl) Remove(ctx ctx.Ctx, id escrow.HoldingId) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := im.q.Remove(ctx, domain.TableEscrowHoldings, selector); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Remove")
		return err
	}

	return nil
}

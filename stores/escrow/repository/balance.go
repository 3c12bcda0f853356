package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/escrow"
	"github.com/assetbay/goapi/service/query"
)

type balanceRepoImpl struct {
	q query.Mongo
}

func NewBalanceRepo(q query.Mongo) escrow.BalanceRepo {
	return &balanceRepoImpl{q}
}

func (im *balanceRepoImpl) FindOne(ctx ctx.Ctx, address domain.Address) (*escrow.Balance, error) {
	qry := bson.M{"address": address.ToLower()}

	res := &escrow.Balance{}
	if err := im.q.FindOne(ctx, domain.TableBalances, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return res, nil
}

func (im *balanceRepoImpl) Add(ctx ctx.Ctx, address domain.Address, delta int64) (int64, error) {
	address = address.ToLower()
	selector := bson.M{"address": address}
	set := bson.M{"address": address, "updatedAt": time.Now()}

	res := &escrow.Balance{}
	if err := im.q.IncrementMany(ctx, domain.TableBalances, selector, bson.M{"amount": delta}, set, res); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"delta":   delta,
		}).Error("failed to q.IncrementMany")
		return 0, err
	}

	return res.Amount, nil
}

package repository

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/event"
	"github.com/assetbay/goapi/service/query"
)

const seqName = "marketEvents"

type sequence struct {
	Name  string `bson:"name"`
	Value int64  `bson:"value"`
}

type eventRepoImpl struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) event.Repo {
	return &eventRepoImpl{q}
}

func (im *eventRepoImpl) makeQuery(opts ...event.FindAllOptionsFunc) (bson.M, error) {
	options, err := event.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.AssetId != nil {
		query["assetId"] = *options.AssetId
	}

	if options.Type != nil {
		query["type"] = *options.Type
	}

	if options.Account != nil {
		query["account"] = *options.Account
	}

	if options.SeqGT != nil {
		query["seq"] = bson.M{"$gt": *options.SeqGT}
	}

	return query, nil
}

func (im *eventRepoImpl) Insert(ctx ctx.Ctx, ev *event.MarketEvent) error {
	seq := &sequence{}
	if err := im.q.Increment(ctx, domain.TableSequences, bson.M{"name": seqName}, seq, "value", int64(1)); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Increment")
		return err
	}

	ev.EventId = uuid.New().String()
	ev.Seq = seq.Value
	ev.Account = ev.Account.ToLower()
	ev.To = ev.To.ToLower()
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}

	if err := im.q.Insert(ctx, domain.TableMarketEvents, ev); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"event": ev,
		}).Error("failed to q.Insert")
		return err
	}

	return nil
}

func (im *eventRepoImpl) FindAll(ctx ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.MarketEvent, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := event.GetFindAllOptions(opts...)

	offset := int32(0)
	limit := int32(0)
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []*event.MarketEvent{}
	if err := im.q.Search(ctx, domain.TableMarketEvents, int(offset), int(limit), "seq", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *eventRepoImpl) Count(ctx ctx.Ctx, opts ...event.FindAllOptionsFunc) (int, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableMarketEvents, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/assetbay/goapi/base/ctx"
	bCtx "github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/database/mongoclient"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/keys"
	"github.com/assetbay/goapi/domain/listing"
	"github.com/assetbay/goapi/service/cache"
	"github.com/assetbay/goapi/service/cache/provider"
	"github.com/assetbay/goapi/service/cache/provider/compound"
	"github.com/assetbay/goapi/service/cache/provider/primitive"
	redisCache "github.com/assetbay/goapi/service/cache/provider/redis"
	"github.com/assetbay/goapi/service/query"
	"github.com/assetbay/goapi/service/redis"
)

type listingRepoImpl struct {
	q            query.Mongo
	listingCache cache.Service
}

func NewListingRepo(q query.Mongo, redis redis.Service) listing.Repo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive("listing", 128),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &listingRepoImpl{
		q: q,
		listingCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   keys.PfxListing,
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *listingRepoImpl) makeQuery(opts ...listing.FindAllOptionsFunc) (bson.M, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.Owner != nil {
		query["owner"] = *options.Owner
	}

	if options.Mode != nil {
		query["mode"] = *options.Mode
	}

	return query, nil
}

func (im *listingRepoImpl) FindOne(ctx ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	res := &listing.Listing{}

	if err := im.listingCache.GetByFunc(ctx, id.AssetId.String(), res, func() (interface{}, error) {
		return im.findOne(ctx, id)
	}); err != nil {
		return nil, err
	}

	return res, nil
}

func (im *listingRepoImpl) findOne(ctx ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := &listing.Listing{}
	if err := im.q.FindOne(ctx, domain.TableListings, qry, res); err == query.ErrNotFound {
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

func (im *listingRepoImpl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := listing.GetFindAllOptions(opts...)

	offset := int32(0)
	limit := int32(0)
	sort := "_id"
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}
	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*listing.Listing{}
	if err := im.q.Search(ctx, domain.TableListings, int(offset), int(limit), sort, qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

// Create writes the listing and its active-index entry inside one
// transaction so the store and the index can never diverge.
func (im *listingRepoImpl) Create(ctx ctx.Ctx, l listing.Listing) error {
	l.LowerCase()

	return im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		if err := im.q.Insert(ctx, domain.TableListings, &l); err == query.ErrDuplicateKey {
			return domain.ErrConflict
		} else if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"listing": l,
			}).Error("failed to q.Insert listing")
			return err
		}

		activeId := listing.ActiveId{AssetId: l.AssetId, ListedAt: l.CreatedAt}
		if err := im.q.Insert(ctx, domain.TableActiveListings, &activeId); err == query.ErrDuplicateKey {
			return domain.ErrConflict
		} else if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": l.AssetId,
			}).Error("failed to q.Insert active id")
			return err
		}

		return nil
	})
}

func (im *listingRepoImpl) Patch(ctx ctx.Ctx, id listing.Id, p listing.Patchable) error {
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
			"err":       err,
			"patchable": p,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := im.q.Patch(ctx, domain.TableListings, selector, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("failed to q.Patch")
		return err
	}

	if err := im.listingCache.Del(ctx, id.AssetId.String()); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("listingCache.Del failed")
		return err
	}

	return nil
}

// Remove deletes the listing and its active-index entry inside one
// transaction. Returns domain.ErrNotFound when the asset is not listed.
func (im *listingRepoImpl) Remove(ctx ctx.Ctx, id listing.Id) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		if err := im.q.Remove(ctx, domain.TableListings, selector); err == query.ErrNotFound {
			return domain.ErrNotFound
		} else if err != nil {
			ctx.WithFields(log.Fields{
				"err":      err,
				"selector": selector,
			}).Error("failed to q.Remove listing")
			return err
		}

		if err := im.q.Remove(ctx, domain.TableActiveListings, selector); err == query.ErrNotFound {
			return domain.ErrNotFound
		} else if err != nil {
			ctx.WithFields(log.Fields{
				"err":      err,
				"selector": selector,
			}).Error("failed to q.Remove active id")
			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := im.listingCache.Del(ctx, id.AssetId.String()); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("listingCache.Del failed")
		return err
	}

	return nil
}

func (im *listingRepoImpl) Contains(ctx ctx.Ctx, id listing.Id) (bool, error) {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return false, err
	}

	cnt, err := im.q.Count(ctx, domain.TableActiveListings, selector)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Count")
		return false, err
	}

	return cnt > 0, nil
}

func (im *listingRepoImpl) ActiveIds(ctx ctx.Ctx) ([]domain.AssetId, error) {
	res := []*listing.ActiveId{}
	if err := im.q.Search(ctx, domain.TableActiveListings, 0, 0, "listedAt", bson.M{}, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Search")
		return nil, err
	}

	ids := make([]domain.AssetId, 0, len(res))
	for _, a := range res {
		ids = append(ids, a.AssetId)
	}
	return ids, nil
}

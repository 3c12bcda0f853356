package usecase

import (
	"sync"
	"time"

	"github.com/assetbay/goapi/base/ctx"
	bCtx "github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/base/ptr"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/escrow"
	"github.com/assetbay/goapi/domain/event"
	"github.com/assetbay/goapi/domain/listing"
	"github.com/assetbay/goapi/domain/registry"
	"github.com/assetbay/goapi/domain/statistic"
	"github.com/assetbay/goapi/service/query"
)

type ListingUseCaseCfg struct {
	Q           query.Mongo
	ListingRepo listing.Repo
	EscrowUC    escrow.UseCase
	EventRepo   event.Repo
	Registry    registry.Registry
	StatisticUC statistic.UseCase
}

type impl struct {
	q           query.Mongo
	listingRepo listing.Repo
	escrowUC    escrow.UseCase
	eventRepo   event.Repo
	registry    registry.Registry
	statisticUC statistic.UseCase

	// serializes every state-changing operation. listings move between
	// the store, the escrow and the registry in multiple steps, and no
	// two of those sequences may interleave.
	mu sync.Mutex
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		q:           cfg.Q,
		listingRepo: cfg.ListingRepo,
		escrowUC:    cfg.EscrowUC,
		eventRepo:   cfg.EventRepo,
		registry:    cfg.Registry,
		statisticUC: cfg.StatisticUC,
	}
}

func (im *impl) List(ctx ctx.Ctx, caller domain.Address, assetId domain.AssetId, price int64) (*listing.Listing, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if price <= 0 {
		return nil, domain.ErrBadParamInput
	}

	if err := im.ensureOwner(ctx, caller, assetId); err != nil {
		return nil, err
	}

	l := listing.Listing{
		AssetId:   assetId,
		Owner:     caller,
		Mode:      listing.ModeFixedPrice,
		Price:     price,
		IsForSale: true,
		CreatedAt: time.Now(),
	}

	err := im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		if err := im.listingRepo.Create(ctx, l); err == domain.ErrConflict {
			return domain.ErrAlreadyListed
		} else if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"listing": l,
			}).Error("listingRepo.Create failed")
			return err
		}

		return im.emit(ctx, &event.MarketEvent{
			Type:    event.TypeListed,
			AssetId: assetId,
			Account: caller,
			Price:   price,
		})
	})
	if err != nil {
		return nil, err
	}

	return &l, nil
}

func (im *impl) ListAuction(ctx ctx.Ctx, caller domain.Address, assetId domain.AssetId, startingPrice int64, duration time.Duration) (*listing.Listing, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if startingPrice < 0 || duration < 0 {
		return nil, domain.ErrBadParamInput
	}

	if err := im.ensureOwner(ctx, caller, assetId); err != nil {
		return nil, err
	}

	// zero duration yields an auction that is immediately endable
	deadline := time.Now().Add(duration)

	l := listing.Listing{
		AssetId:         assetId,
		Owner:           caller,
		Mode:            listing.ModeAuction,
		Price:           startingPrice,
		IsForSale:       false,
		AuctionDeadline: &deadline,
		CreatedAt:       time.Now(),
	}

	err := im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		if err := im.listingRepo.Create(ctx, l); err == domain.ErrConflict {
			return domain.ErrAlreadyListed
		} else if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"listing": l,
			}).Error("listingRepo.Create failed")
			return err
		}

		return im.emit(ctx, &event.MarketEvent{
			Type:     event.TypeAuctionListed,
			AssetId:  assetId,
			Account:  caller,
			Price:    startingPrice,
			Deadline: &deadline,
		})
	})
	if err != nil {
		return nil, err
	}

	return &l, nil
}

// PlaceBid escrows the bid and refunds the displaced one. Bids are
// accepted until EndAuction runs, even past the deadline.
func (im *impl) PlaceBid(ctx ctx.Ctx, caller domain.Address, assetId domain.AssetId, amount int64) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.listingRepo.FindOne(ctx, listing.Id{AssetId: assetId})
	if err != nil {
		return err
	}

	if !l.IsAuction() {
		return domain.ErrNotAnAuction
	}

	standing := l.HighestBid
	if !l.HasBid() {
		standing = l.Price
	}
	if amount <= standing {
		return domain.ErrBidTooLow
	}

	// the displaced bid must stay held when the new bidder cannot pay,
	// so funds are checked before any refund goes out. balances only
	// grow outside this lock (deposits), never shrink.
	balance, err := im.escrowUC.BalanceOf(ctx, caller)
	if err != nil {
		return err
	}
	if balance < amount {
		return domain.ErrInsufficientFunds
	}

	return im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		if l.HasBid() {
			if err := im.escrowUC.Refund(ctx, assetId); err != nil {
				ctx.WithFields(log.Fields{
					"err":     err,
					"assetId": assetId,
				}).Error("escrowUC.Refund failed")
				return err
			}
		}

		if err := im.escrowUC.Hold(ctx, assetId, caller, amount); err != nil {
			return err
		}

		bidder := caller.ToLower()
		p := listing.Patchable{
			HighestBidder: &bidder,
			HighestBid:    ptr.Int64(amount),
		}
		if err := im.listingRepo.Patch(ctx, l.ToId(), p); err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": assetId,
			}).Error("listingRepo.Patch failed")
			return err
		}

		return im.emit(ctx, &event.MarketEvent{
			Type:    event.TypeBidPlaced,
			AssetId: assetId,
			Account: caller,
			Price:   amount,
		})
	})
}

// EndAuction resolves an expired auction. The settlement, the listing
// removal and the outbound registry transfer run in one transaction, so
// a failed transfer rolls every write back.
func (im *impl) EndAuction(ctx ctx.Ctx, assetId domain.AssetId) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.listingRepo.FindOne(ctx, listing.Id{AssetId: assetId})
	if err != nil {
		return err
	}

	if !l.IsAuction() {
		return domain.ErrNotAnAuction
	}

	if time.Now().Before(*l.AuctionDeadline) {
		return domain.ErrAuctionStillOpen
	}

	if !l.HasBid() {
		// no winner. nothing to settle, nothing to transfer.
		return im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
			if err := im.listingRepo.Remove(ctx, l.ToId()); err != nil {
				ctx.WithFields(log.Fields{
					"err":     err,
					"assetId": assetId,
				}).Error("listingRepo.Remove failed")
				return err
			}

			return im.emit(ctx, &event.MarketEvent{
				Type:    event.TypeAuctionEnded,
				AssetId: assetId,
				Account: l.Owner,
			})
		})
	}

	return im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		settlement, err := im.escrowUC.SettleAuction(ctx, assetId, l.Owner)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": assetId,
			}).Error("escrowUC.SettleAuction failed")
			return err
		}

		if err := im.listingRepo.Remove(ctx, l.ToId()); err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": assetId,
			}).Error("listingRepo.Remove failed")
			return err
		}

		err = im.emit(ctx, &event.MarketEvent{
			Type:    event.TypeAuctionEnded,
			AssetId: assetId,
			Account: l.Owner,
			To:      settlement.Buyer,
			Price:   settlement.Total,
		})
		if err != nil {
			return err
		}

		im.recordSale(ctx, assetId, settlement.Total)

		if err := im.registry.TransferOwnership(ctx, l.Owner, settlement.Buyer, assetId); err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": assetId,
				"from":    l.Owner,
				"to":      settlement.Buyer,
			}).Error("registry.TransferOwnership failed")
			return err
		}

		return nil
	})
}

func (im *impl) Unlist(ctx ctx.Ctx, caller domain.Address, assetId domain.AssetId) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.listingRepo.FindOne(ctx, listing.Id{AssetId: assetId})
	if err != nil {
		return err
	}

	if !l.Owner.Equals(caller) {
		return domain.ErrNotListingOwner
	}

	return im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		// a standing bid is released back to its bidder before the
		// auction disappears. a failed refund aborts the unlist.
		if l.IsAuction() && l.HasBid() {
			if err := im.escrowUC.Refund(ctx, assetId); err != nil {
				ctx.WithFields(log.Fields{
					"err":     err,
					"assetId": assetId,
				}).Error("escrowUC.Refund failed")
				return err
			}
		}

		if err := im.listingRepo.Remove(ctx, l.ToId()); err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": assetId,
			}).Error("listingRepo.Remove failed")
			return err
		}

		return im.emit(ctx, &event.MarketEvent{
			Type:    event.TypeUnlisted,
			AssetId: assetId,
			Account: caller,
		})
	})
}

// Buy settles a fixed price purchase. Like EndAuction, every write and
// the registry transfer share one transaction.
func (im *impl) Buy(ctx ctx.Ctx, caller domain.Address, assetId domain.AssetId, payment int64) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.listingRepo.FindOne(ctx, listing.Id{AssetId: assetId})
	if err != nil {
		return err
	}

	if !l.IsForSale {
		return domain.ErrNotForSale
	}

	return im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		settlement, err := im.escrowUC.SettleSale(ctx, assetId, l.Owner, caller, l.Price, payment)
		if err != nil {
			return err
		}

		if err := im.listingRepo.Remove(ctx, l.ToId()); err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": assetId,
			}).Error("listingRepo.Remove failed")
			return err
		}

		err = im.emit(ctx, &event.MarketEvent{
			Type:    event.TypeSold,
			AssetId: assetId,
			Account: l.Owner,
			To:      caller,
			Price:   settlement.Total,
		})
		if err != nil {
			return err
		}

		im.recordSale(ctx, assetId, settlement.Total)

		if err := im.registry.TransferOwnership(ctx, l.Owner, caller, assetId); err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"assetId": assetId,
				"from":    l.Owner,
				"to":      caller,
			}).Error("registry.TransferOwnership failed")
			return err
		}

		return nil
	})
}

func (im *impl) GetListing(ctx ctx.Ctx, assetId domain.AssetId) (*listing.Listing, error) {
	return im.listingRepo.FindOne(ctx, listing.Id{AssetId: assetId})
}

func (im *impl) ActiveListings(ctx ctx.Ctx) ([]*listing.Listing, error) {
	return im.listingRepo.FindAll(ctx)
}

func (im *impl) ensureOwner(ctx ctx.Ctx, caller domain.Address, assetId domain.AssetId) error {
	owner, err := im.registry.OwnerOf(ctx, assetId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
		}).Error("registry.OwnerOf failed")
		return err
	}

	if !owner.Equals(caller) {
		return domain.ErrUnauthorized
	}

	return nil
}

// every state-changing call appends exactly one event, so a failed
// append fails the call and the enclosing transaction.
func (im *impl) emit(ctx ctx.Ctx, ev *event.MarketEvent) error {
	if err := im.eventRepo.Insert(ctx, ev); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"event": ev,
		}).Error("eventRepo.Insert failed")
		return err
	}
	return nil
}

func (im *impl) recordSale(ctx ctx.Ctx, assetId domain.AssetId, price int64) {
	if err := im.statisticUC.RecordSale(ctx, assetId, price); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
			"price":   price,
		}).Error("statisticUC.RecordSale failed")
	}
}

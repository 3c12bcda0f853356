package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/escrow"
	mEscrow "github.com/assetbay/goapi/domain/escrow/mocks"
	mEvent "github.com/assetbay/goapi/domain/event/mocks"
	"github.com/assetbay/goapi/domain/listing"
	mListing "github.com/assetbay/goapi/domain/listing/mocks"
	mRegistry "github.com/assetbay/goapi/domain/registry/mocks"
	mStatistic "github.com/assetbay/goapi/domain/statistic/mocks"
	mQuery "github.com/assetbay/goapi/service/query/mocks"
)

var (
	seller  = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	bidder1 = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	bidder2 = domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	assetId = domain.AssetId("42")
)

type fixture struct {
	q           *mQuery.Mongo
	listingRepo *mListing.Repo
	escrowUC    *mEscrow.UseCase
	eventRepo   *mEvent.Repo
	registry    *mRegistry.Registry
	statisticUC *mStatistic.UseCase
	im          *impl
}

func newFixture() *fixture {
	f := &fixture{
		q:           &mQuery.Mongo{},
		listingRepo: &mListing.Repo{},
		escrowUC:    &mEscrow.UseCase{},
		eventRepo:   &mEvent.Repo{},
		registry:    &mRegistry.Registry{},
		statisticUC: &mStatistic.UseCase{},
	}
	f.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})
	f.im = New(&ListingUseCaseCfg{
		Q:           f.q,
		ListingRepo: f.listingRepo,
		EscrowUC:    f.escrowUC,
		EventRepo:   f.eventRepo,
		Registry:    f.registry,
		StatisticUC: f.statisticUC,
	}).(*impl)
	return f
}

func auctionListing(deadline time.Time, highestBidder domain.Address, highestBid int64) *listing.Listing {
	return &listing.Listing{
		AssetId:         assetId,
		Owner:           seller,
		Mode:            listing.ModeAuction,
		Price:           10,
		AuctionDeadline: &deadline,
		HighestBidder:   highestBidder,
		HighestBid:      highestBid,
		CreatedAt:       time.Now(),
	}
}

func fixedPriceListing(price int64) *listing.Listing {
	return &listing.Listing{
		AssetId:   assetId,
		Owner:     seller,
		Mode:      listing.ModeFixedPrice,
		Price:     price,
		IsForSale: true,
		CreatedAt: time.Now(),
	}
}

func TestListRequiresRegistryOwner(t *testing.T) {
	f := newFixture()
	f.registry.On("OwnerOf", mock.Anything, assetId).Return(seller, nil)

	_, err := f.im.List(ctx.Background(), bidder1, assetId, 100)
	assert.Equal(t, domain.ErrUnauthorized, err)
	f.listingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListRejectsNonPositivePrice(t *testing.T) {
	f := newFixture()

	_, err := f.im.List(ctx.Background(), seller, assetId, 0)
	assert.Equal(t, domain.ErrBadParamInput, err)
}

func TestListAlreadyListed(t *testing.T) {
	f := newFixture()
	f.registry.On("OwnerOf", mock.Anything, assetId).Return(seller, nil)
	f.listingRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := f.im.List(ctx.Background(), seller, assetId, 100)
	assert.Equal(t, domain.ErrAlreadyListed, err)
}

func TestListCreatesFixedPriceListing(t *testing.T) {
	f := newFixture()
	f.registry.On("OwnerOf", mock.Anything, assetId).Return(seller, nil)
	f.listingRepo.On("Create", mock.Anything, mock.MatchedBy(func(l listing.Listing) bool {
		return l.AssetId == assetId && l.Mode == listing.ModeFixedPrice && l.Price == 100 && l.IsForSale
	})).Return(nil)
	f.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	l, err := f.im.List(ctx.Background(), seller, assetId, 100)
	assert.NoError(t, err)
	assert.Equal(t, listing.ModeFixedPrice, l.Mode)
	f.listingRepo.AssertExpectations(t)
	f.eventRepo.AssertExpectations(t)
}

func TestListAuctionZeroDurationAllowed(t *testing.T) {
	f := newFixture()
	f.registry.On("OwnerOf", mock.Anything, assetId).Return(seller, nil)
	f.listingRepo.On("Create", mock.Anything, mock.MatchedBy(func(l listing.Listing) bool {
		return l.Mode == listing.ModeAuction && !l.IsForSale && l.AuctionDeadline != nil
	})).Return(nil)
	f.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	l, err := f.im.ListAuction(ctx.Background(), seller, assetId, 10, 0)
	assert.NoError(t, err)
	assert.False(t, l.AuctionDeadline.After(time.Now()))
}

func TestPlaceBidOnFixedPriceListing(t *testing.T) {
	f := newFixture()
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(fixedPriceListing(100), nil)

	err := f.im.PlaceBid(ctx.Background(), bidder1, assetId, 20)
	assert.Equal(t, domain.ErrNotAnAuction, err)
}

func TestPlaceBidBelowStartingPrice(t *testing.T) {
	f := newFixture()
	deadline := time.Now().Add(time.Hour)
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(auctionListing(deadline, "", 0), nil)

	err := f.im.PlaceBid(ctx.Background(), bidder1, assetId, 10)
	assert.Equal(t, domain.ErrBidTooLow, err)
	f.escrowUC.AssertNotCalled(t, "Hold", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFirstBidHoldsWithoutRefund(t *testing.T) {
	f := newFixture()
	deadline := time.Now().Add(time.Hour)
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(auctionListing(deadline, "", 0), nil)
	f.escrowUC.On("BalanceOf", mock.Anything, bidder1).Return(int64(100), nil)
	f.escrowUC.On("Hold", mock.Anything, assetId, bidder1, int64(20)).Return(nil)
	f.listingRepo.On("Patch", mock.Anything, listing.Id{AssetId: assetId}, mock.MatchedBy(func(p listing.Patchable) bool {
		return *p.HighestBid == 20 && *p.HighestBidder == bidder1.ToLower()
	})).Return(nil)
	f.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	err := f.im.PlaceBid(ctx.Background(), bidder1, assetId, 20)
	assert.NoError(t, err)
	f.escrowUC.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
	f.escrowUC.AssertExpectations(t)
	f.listingRepo.AssertExpectations(t)
}

func TestBidBelowStandingBidRejected(t *testing.T) {
	f := newFixture()
	deadline := time.Now().Add(time.Hour)
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(auctionListing(deadline, bidder1, 20), nil)

	err := f.im.PlaceBid(ctx.Background(), bidder2, assetId, 15)
	assert.Equal(t, domain.ErrBidTooLow, err)
	err = f.im.PlaceBid(ctx.Background(), bidder2, assetId, 20)
	assert.Equal(t, domain.ErrBidTooLow, err)
	f.escrowUC.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
	f.escrowUC.AssertNotCalled(t, "Hold", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHigherBidRefundsDisplacedBidder(t *testing.T) {
	f := newFixture()
	deadline := time.Now().Add(time.Hour)
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(auctionListing(deadline, bidder1, 20), nil)
	f.escrowUC.On("BalanceOf", mock.Anything, bidder2).Return(int64(100), nil)
	f.escrowUC.On("Refund", mock.Anything, assetId).Return(nil)
	f.escrowUC.On("Hold", mock.Anything, assetId, bidder2, int64(25)).Return(nil)
	f.listingRepo.On("Patch", mock.Anything, listing.Id{AssetId: assetId}, mock.Anything).Return(nil)
	f.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	err := f.im.PlaceBid(ctx.Background(), bidder2, assetId, 25)
	assert.NoError(t, err)
	f.escrowUC.AssertExpectations(t)
}

func TestOutbidWithInsufficientFundsKeepsStandingBid(t *testing.T) {
	f := newFixture()
	deadline := time.Now().Add(time.Hour)
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(auctionListing(deadline, bidder1, 20), nil)
	f.escrowUC.On("BalanceOf", mock.Anything, bidder2).Return(int64(10), nil)

	err := f.im.PlaceBid(ctx.Background(), bidder2, assetId, 25)
	assert.Equal(t, domain.ErrInsufficientFunds, err)
	f.escrowUC.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
	f.escrowUC.AssertNotCalled(t, "Hold", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.listingRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestLateBidAcceptedBeforeEnd(t *testing.T) {
	f := newFixture()
	deadline := time.Now().Add(-time.Hour)
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(auctionListing(deadline, "", 0), nil)
	f.escrowUC.On("BalanceOf", mock.Anything, bidder1).Return(int64(100), nil)
	f.escrowUC.On("Hold", mock.Anything, assetId, bidder1, int64(20)).Return(nil)
	f.listingRepo.On("Patch", mock.Anything, listing.Id{AssetId: assetId}, mock.Anything).Return(nil)
	f.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	err := f.im.PlaceBid(ctx.Background(), bidder1, assetId, 20)
	assert.NoError(t, err)
}

func TestEndAuctionBeforeDeadline(t *testing.T) {
	f := newFixture()
	deadline := time.Now().Add(time.Hour)
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(auctionListing(deadline, bidder1, 20), nil)

	err := f.im.EndAuction(ctx.Background(), assetId)
	assert.Equal(t, domain.ErrAuctionStillOpen, err)
	f.listingRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	f.escrowUC.AssertNotCalled(t, "SettleAuction", mock.Anything, mock.Anything, mock.Anything)
}

func TestEndAuctionWithoutBids(t *testing.T) {
	f := newFixture()
	deadline := time.Now().Add(-time.Minute)
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(auctionListing(deadline, "", 0), nil)
	f.listingRepo.On("Remove", mock.Anything, listing.Id{AssetId: assetId}).Return(nil)
	f.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	err := f.im.EndAuction(ctx.Background(), assetId)
	assert.NoError(t, err)
	f.escrowUC.AssertNotCalled(t, "SettleAuction", mock.Anything, mock.Anything, mock.Anything)
	f.registry.AssertNotCalled(t, "TransferOwnership", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.listingRepo.AssertExpectations(t)
}

func TestEndAuctionPaysSellerAndTransfersAsset(t *testing.T) {
	f := newFixture()
	deadline := time.Now().Add(-time.Minute)
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(auctionListing(deadline, bidder2, 25), nil)
	f.escrowUC.On("SettleAuction", mock.Anything, assetId, seller).Return(&escrow.Settlement{
		AssetId:      assetId,
		Seller:       seller,
		Buyer:        bidder2,
		Total:        25,
		Fee:          0,
		SellerAmount: 25,
	}, nil)
	f.listingRepo.On("Remove", mock.Anything, listing.Id{AssetId: assetId}).Return(nil)
	f.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	f.statisticUC.On("RecordSale", mock.Anything, assetId, int64(25)).Return(nil)
	f.registry.On("TransferOwnership", mock.Anything, seller, bidder2, assetId).Return(nil)

	err := f.im.EndAuction(ctx.Background(), assetId)
	assert.NoError(t, err)
	f.escrowUC.AssertExpectations(t)
	f.registry.AssertExpectations(t)
	f.statisticUC.AssertExpectations(t)
}

func TestEndAuctionFailedTransferAbortsSettlement(t *testing.T) {
	f := newFixture()
	deadline := time.Now().Add(-time.Minute)
	transferErr := errors.New("registry unavailable")
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(auctionListing(deadline, bidder2, 25), nil)
	f.escrowUC.On("SettleAuction", mock.Anything, assetId, seller).Return(&escrow.Settlement{
		AssetId:      assetId,
		Seller:       seller,
		Buyer:        bidder2,
		Total:        25,
		SellerAmount: 25,
	}, nil)
	f.listingRepo.On("Remove", mock.Anything, listing.Id{AssetId: assetId}).Return(nil)
	f.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	f.statisticUC.On("RecordSale", mock.Anything, assetId, int64(25)).Return(nil)
	f.registry.On("TransferOwnership", mock.Anything, seller, bidder2, assetId).Return(transferErr)

	// the error aborts the surrounding transaction, rolling back the
	// settlement and the listing removal
	err := f.im.EndAuction(ctx.Background(), assetId)
	assert.Equal(t, transferErr, err)
}

func TestUnlistNotOwner(t *testing.T) {
	f := newFixture()
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(fixedPriceListing(100), nil)

	err := f.im.Unlist(ctx.Background(), bidder1, assetId)
	assert.Equal(t, domain.ErrNotListingOwner, err)
	f.listingRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestUnlistMissingListing(t *testing.T) {
	f := newFixture()
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(nil, domain.ErrNotFound)

	err := f.im.Unlist(ctx.Background(), seller, assetId)
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestUnlistRefundsStandingBid(t *testing.T) {
	f := newFixture()
	deadline := time.Now().Add(time.Hour)
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(auctionListing(deadline, bidder1, 20), nil)
	f.escrowUC.On("Refund", mock.Anything, assetId).Return(nil)
	f.listingRepo.On("Remove", mock.Anything, listing.Id{AssetId: assetId}).Return(nil)
	f.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	err := f.im.Unlist(ctx.Background(), seller, assetId)
	assert.NoError(t, err)
	f.escrowUC.AssertExpectations(t)
	f.listingRepo.AssertExpectations(t)
}

func TestBuyAuctionListing(t *testing.T) {
	f := newFixture()
	deadline := time.Now().Add(time.Hour)
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(auctionListing(deadline, "", 0), nil)

	err := f.im.Buy(ctx.Background(), bidder1, assetId, 100)
	assert.Equal(t, domain.ErrNotForSale, err)
}

func TestBuySettlesAndTransfers(t *testing.T) {
	f := newFixture()
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(fixedPriceListing(100), nil)
	f.escrowUC.On("SettleSale", mock.Anything, assetId, seller, bidder1, int64(100), int64(150)).Return(&escrow.Settlement{
		AssetId:      assetId,
		Seller:       seller,
		Buyer:        bidder1,
		Total:        100,
		Fee:          2,
		SellerAmount: 98,
	}, nil)
	f.listingRepo.On("Remove", mock.Anything, listing.Id{AssetId: assetId}).Return(nil)
	f.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	f.statisticUC.On("RecordSale", mock.Anything, assetId, int64(100)).Return(nil)
	f.registry.On("TransferOwnership", mock.Anything, seller, bidder1, assetId).Return(nil)

	err := f.im.Buy(ctx.Background(), bidder1, assetId, 150)
	assert.NoError(t, err)
	f.escrowUC.AssertExpectations(t)
	f.registry.AssertExpectations(t)
}

func TestBuyFailedTransferAbortsPurchase(t *testing.T) {
	f := newFixture()
	transferErr := errors.New("registry unavailable")
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(fixedPriceListing(100), nil)
	f.escrowUC.On("SettleSale", mock.Anything, assetId, seller, bidder1, int64(100), int64(100)).Return(&escrow.Settlement{
		AssetId:      assetId,
		Seller:       seller,
		Buyer:        bidder1,
		Total:        100,
		Fee:          2,
		SellerAmount: 98,
	}, nil)
	f.listingRepo.On("Remove", mock.Anything, listing.Id{AssetId: assetId}).Return(nil)
	f.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	f.statisticUC.On("RecordSale", mock.Anything, assetId, int64(100)).Return(nil)
	f.registry.On("TransferOwnership", mock.Anything, seller, bidder1, assetId).Return(transferErr)

	err := f.im.Buy(ctx.Background(), bidder1, assetId, 100)
	assert.Equal(t, transferErr, err)
}

func TestUnlistFailsWhenEventAppendFails(t *testing.T) {
	f := newFixture()
	appendErr := errors.New("event log unavailable")
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(fixedPriceListing(100), nil)
	f.listingRepo.On("Remove", mock.Anything, listing.Id{AssetId: assetId}).Return(nil)
	f.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(appendErr)

	err := f.im.Unlist(ctx.Background(), seller, assetId)
	assert.Equal(t, appendErr, err)
}

func TestBuyInsufficientPaymentLeavesListing(t *testing.T) {
	f := newFixture()
	f.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: assetId}).Return(fixedPriceListing(100), nil)
	f.escrowUC.On("SettleSale", mock.Anything, assetId, seller, bidder1, int64(100), int64(80)).Return(nil, domain.ErrInsufficientFunds)

	err := f.im.Buy(ctx.Background(), bidder1, assetId, 80)
	assert.Equal(t, domain.ErrInsufficientFunds, err)
	f.listingRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	f.registry.AssertNotCalled(t, "TransferOwnership", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

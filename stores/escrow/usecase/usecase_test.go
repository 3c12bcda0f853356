package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/escrow"
	mEscrow "github.com/assetbay/goapi/domain/escrow/mocks"
)

var (
	custodian = domain.Address("0x000000000000000000000000000000000000dead")
	bidder    = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	seller    = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	assetId   = domain.AssetId("42")
)

func newTestUseCase(feeBps int64, holdingRepo escrow.HoldingRepo, balanceRepo escrow.BalanceRepo) *impl {
	return NewEscrowUseCase(&EscrowUseCaseCfg{
		HoldingRepo: holdingRepo,
		BalanceRepo: balanceRepo,
		Custodian:   custodian,
		FeeBps:      feeBps,
	}).(*impl)
}

func TestSplitFee(t *testing.T) {
	cases := []struct {
		feeBps     int64
		total      int64
		wantFee    int64
		wantSeller int64
	}{
		{feeBps: 250, total: 100, wantFee: 2, wantSeller: 98},
		{feeBps: 500, total: 100, wantFee: 5, wantSeller: 95},
		{feeBps: 250, total: 25, wantFee: 0, wantSeller: 25},
		{feeBps: 0, total: 100, wantFee: 0, wantSeller: 100},
		{feeBps: 10000, total: 100, wantFee: 100, wantSeller: 0},
		{feeBps: 250, total: 1_000_000_007, wantFee: 25_000_000, wantSeller: 975_000_007},
	}

	for _, c := range cases {
		im := newTestUseCase(c.feeBps, &mEscrow.HoldingRepo{}, &mEscrow.BalanceRepo{})
		fee, sellerAmount := im.splitFee(c.total)
		assert.Equal(t, c.wantFee, fee)
		assert.Equal(t, c.wantSeller, sellerAmount)
		assert.Equal(t, c.total, fee+sellerAmount)
	}
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	im := newTestUseCase(250, &mEscrow.HoldingRepo{}, &mEscrow.BalanceRepo{})

	_, err := im.Deposit(ctx.Background(), bidder, 0)
	assert.Equal(t, domain.ErrBadParamInput, err)

	_, err = im.Deposit(ctx.Background(), bidder, -5)
	assert.Equal(t, domain.ErrBadParamInput, err)
}

func TestHoldInsufficientFunds(t *testing.T) {
	holdingRepo := &mEscrow.HoldingRepo{}
	balanceRepo := &mEscrow.BalanceRepo{}
	im := newTestUseCase(250, holdingRepo, balanceRepo)

	balanceRepo.On("FindOne", mock.Anything, bidder).Return(&escrow.Balance{Address: bidder, Amount: 10}, nil)

	err := im.Hold(ctx.Background(), assetId, bidder, 20)
	assert.Equal(t, domain.ErrInsufficientFunds, err)
	holdingRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	balanceRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestHoldDebitsBalanceAndRecordsHolding(t *testing.T) {
	holdingRepo := &mEscrow.HoldingRepo{}
	balanceRepo := &mEscrow.BalanceRepo{}
	im := newTestUseCase(250, holdingRepo, balanceRepo)

	balanceRepo.On("FindOne", mock.Anything, bidder).Return(&escrow.Balance{Address: bidder, Amount: 100}, nil)
	balanceRepo.On("Add", mock.Anything, bidder, int64(-20)).Return(int64(80), nil)
	holdingRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(h escrow.Holding) bool {
		return h.AssetId == assetId && h.Bidder == bidder && h.Amount == 20
	})).Return(nil)

	err := im.Hold(ctx.Background(), assetId, bidder, 20)
	assert.NoError(t, err)
	holdingRepo.AssertExpectations(t)
	balanceRepo.AssertExpectations(t)
}

func TestRefundReleasesHeldAmount(t *testing.T) {
	holdingRepo := &mEscrow.HoldingRepo{}
	balanceRepo := &mEscrow.BalanceRepo{}
	im := newTestUseCase(250, holdingRepo, balanceRepo)

	h := &escrow.Holding{AssetId: assetId, Bidder: bidder, Amount: 20, UpdatedAt: time.Now()}
	holdingRepo.On("FindOne", mock.Anything, escrow.HoldingId{AssetId: assetId}).Return(h, nil)
	holdingRepo.On("Remove", mock.Anything, escrow.HoldingId{AssetId: assetId}).Return(nil)
	balanceRepo.On("Add", mock.Anything, bidder, int64(20)).Return(int64(20), nil)

	err := im.Refund(ctx.Background(), assetId)
	assert.NoError(t, err)
	holdingRepo.AssertExpectations(t)
	balanceRepo.AssertExpectations(t)
}

func TestSettleAuctionSplitsFee(t *testing.T) {
	holdingRepo := &mEscrow.HoldingRepo{}
	balanceRepo := &mEscrow.BalanceRepo{}
	im := newTestUseCase(500, holdingRepo, balanceRepo)

	h := &escrow.Holding{AssetId: assetId, Bidder: bidder, Amount: 100}
	holdingRepo.On("FindOne", mock.Anything, escrow.HoldingId{AssetId: assetId}).Return(h, nil)
	holdingRepo.On("Remove", mock.Anything, escrow.HoldingId{AssetId: assetId}).Return(nil)
	balanceRepo.On("Add", mock.Anything, seller, int64(95)).Return(int64(95), nil)
	balanceRepo.On("Add", mock.Anything, custodian, int64(5)).Return(int64(5), nil)

	settlement, err := im.SettleAuction(ctx.Background(), assetId, seller)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), settlement.Total)
	assert.Equal(t, int64(5), settlement.Fee)
	assert.Equal(t, int64(95), settlement.SellerAmount)
	assert.Equal(t, bidder, settlement.Buyer)
	holdingRepo.AssertExpectations(t)
	balanceRepo.AssertExpectations(t)
}

func TestSettleSaleRetainsSurplus(t *testing.T) {
	holdingRepo := &mEscrow.HoldingRepo{}
	balanceRepo := &mEscrow.BalanceRepo{}
	im := newTestUseCase(250, holdingRepo, balanceRepo)

	balanceRepo.On("FindOne", mock.Anything, bidder).Return(&escrow.Balance{Address: bidder, Amount: 200}, nil)
	balanceRepo.On("Add", mock.Anything, bidder, int64(-150)).Return(int64(50), nil)
	balanceRepo.On("Add", mock.Anything, seller, int64(98)).Return(int64(98), nil)
	// 2 fee plus the 50 overpayment
	balanceRepo.On("Add", mock.Anything, custodian, int64(52)).Return(int64(52), nil)

	settlement, err := im.SettleSale(ctx.Background(), assetId, seller, bidder, 100, 150)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), settlement.Total)
	assert.Equal(t, int64(2), settlement.Fee)
	assert.Equal(t, int64(98), settlement.SellerAmount)
	balanceRepo.AssertExpectations(t)
}

func TestSettleSaleInsufficientPayment(t *testing.T) {
	holdingRepo := &mEscrow.HoldingRepo{}
	balanceRepo := &mEscrow.BalanceRepo{}
	im := newTestUseCase(250, holdingRepo, balanceRepo)

	_, err := im.SettleSale(ctx.Background(), assetId, seller, bidder, 100, 80)
	assert.Equal(t, domain.ErrInsufficientFunds, err)
	balanceRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)

	balanceRepo.On("FindOne", mock.Anything, bidder).Return(&escrow.Balance{Address: bidder, Amount: 50}, nil)
	_, err = im.SettleSale(ctx.Background(), assetId, seller, bidder, 100, 100)
	assert.Equal(t, domain.ErrInsufficientFunds, err)
	balanceRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

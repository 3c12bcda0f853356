package escrow

import (
	"time"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/domain"
)

// Holding records funds reserved against the current highest bid of an
// auction. At most one holding exists per asset and its amount always
// equals the listing's highest bid while the auction is open.
type Holding struct {
	AssetId   domain.AssetId `json:"assetId" bson:"assetId"`
	Bidder    domain.Address `json:"bidder" bson:"bidder"`
	Amount    int64          `json:"amount" bson:"amount"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (h *Holding) ToId() HoldingId {
	return HoldingId{AssetId: h.AssetId}
}

type HoldingId struct {
	AssetId domain.AssetId `json:"assetId" bson:"assetId"`
}

type HoldingRepo interface {
	FindOne(ctx ctx.Ctx, id HoldingId) (*Holding, error)
	Upsert(ctx ctx.Ctx, h Holding) error
	Remove(ctx ctx.Ctx, id HoldingId) error
}

// Balance is the available (non-escrowed) funds of an address.
type Balance struct {
	Address   domain.Address `json:"address" bson:"address"`
	Amount    int64          `json:"amount" bson:"amount"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type BalanceRepo interface {
	FindOne(ctx ctx.Ctx, address domain.Address) (*Balance, error)
	// Add atomically adds delta to the balance of the address,
	// creating the entry when absent, and returns the new amount.
	Add(ctx ctx.Ctx, address domain.Address, delta int64) (int64, error)
}

// Settlement is the exact fee split of a resolved listing.
// Fee + SellerAmount == Total always holds.
type Settlement struct {
	AssetId      domain.AssetId `json:"assetId"`
	Seller       domain.Address `json:"seller"`
	Buyer        domain.Address `json:"buyer"`
	Total        int64          `json:"total"`
	Fee          int64          `json:"fee"`
	SellerAmount int64          `json:"sellerAmount"`
}

type UseCase interface {
	Deposit(ctx ctx.Ctx, address domain.Address, amount int64) (int64, error)
	BalanceOf(ctx ctx.Ctx, address domain.Address) (int64, error)
	// Hold debits the bidder's balance and reserves the amount against
	// the asset's open auction.
	Hold(ctx ctx.Ctx, assetId domain.AssetId, bidder domain.Address, amount int64) error
	GetHolding(ctx ctx.Ctx, assetId domain.AssetId) (*Holding, error)
	// Refund releases the held amount back to the recorded bidder. The
	// enclosing operation must fail if the refund cannot be delivered.
	Refund(ctx ctx.Ctx, assetId domain.AssetId) error
	// SettleAuction releases the holding of the asset, paying the seller
	// its share and retaining the fee on the custodian balance.
	SettleAuction(ctx ctx.Ctx, assetId domain.AssetId, seller domain.Address) (*Settlement, error)
	// SettleSale debits payment from the buyer and pays the seller its
	// share of price. Fee and any surplus payment stay with the custodian.
	SettleSale(ctx ctx.Ctx, assetId domain.AssetId, seller, buyer domain.Address, price, payment int64) (*Settlement, error)
}

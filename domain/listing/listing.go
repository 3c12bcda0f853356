package listing

import (
	"time"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/domain"
)

// Mode discriminates the two listing shapes. Auction fields are only
// meaningful when the mode is ModeAuction.
type Mode string

const (
	ModeFixedPrice Mode = "fixedPrice"
	ModeAuction    Mode = "auction"
)

type Listing struct {
	AssetId domain.AssetId `json:"assetId" bson:"assetId"`
	Owner   domain.Address `json:"owner" bson:"owner"`
	Mode    Mode           `json:"mode" bson:"mode"`

	// sale price for fixed price listings, starting price for auctions.
	// informational only once bidding begins
	Price     int64 `json:"price" bson:"price"`
	IsForSale bool  `json:"isForSale" bson:"isForSale"`

	AuctionDeadline *time.Time     `json:"auctionDeadline,omitempty" bson:"auctionDeadline,omitempty"`
	HighestBidder   domain.Address `json:"highestBidder,omitempty" bson:"highestBidder,omitempty"`
	HighestBid      int64          `json:"highestBid" bson:"highestBid"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (l *Listing) IsAuction() bool {
	return l.Mode == ModeAuction
}

func (l *Listing) HasBid() bool {
	return l.HighestBid > 0
}

func (l *Listing) ToId() Id {
	return Id{AssetId: l.AssetId}
}

func (l *Listing) LowerCase() {
	l.Owner = l.Owner.ToLower()
	l.HighestBidder = l.HighestBidder.ToLower()
}

type Id struct {
	AssetId domain.AssetId `json:"assetId" bson:"assetId"`
}

// ActiveId is the index-side record mirroring membership of the listing
// store. Both collections are mutated in the same transaction.
type ActiveId struct {
	AssetId  domain.AssetId `json:"assetId" bson:"assetId"`
	ListedAt time.Time      `json:"listedAt" bson:"listedAt"`
}

type Patchable struct {
	HighestBidder *domain.Address `json:"highestBidder" bson:"highestBidder,omitempty"`
	HighestBid    *int64          `json:"highestBid" bson:"highestBid,omitempty"`
}

type FindAllOptions struct {
	Owner  *domain.Address
	Mode   *Mode
	Offset *int32
	Limit  *int32
	Sort   *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		owner = owner.ToLower()
		options.Owner = &owner
		return nil
	}
}

func WithMode(mode Mode) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Mode = &mode
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	// Create inserts the listing and its active-index entry atomically.
	// Returns domain.ErrConflict if the asset already has a listing.
	Create(ctx ctx.Ctx, l Listing) error
	Patch(ctx ctx.Ctx, id Id, p Patchable) error
	// Remove deletes the listing and its active-index entry atomically.
	Remove(ctx ctx.Ctx, id Id) error
	Contains(ctx ctx.Ctx, id Id) (bool, error)
	ActiveIds(ctx ctx.Ctx) ([]domain.AssetId, error)
}

type UseCase interface {
	List(ctx ctx.Ctx, caller domain.Address, assetId domain.AssetId, price int64) (*Listing, error)
	ListAuction(ctx ctx.Ctx, caller domain.Address, assetId domain.AssetId, startingPrice int64, duration time.Duration) (*Listing, error)
	PlaceBid(ctx ctx.Ctx, caller domain.Address, assetId domain.AssetId, amount int64) error
	EndAuction(ctx ctx.Ctx, assetId domain.AssetId) error
	Unlist(ctx ctx.Ctx, caller domain.Address, assetId domain.AssetId) error
	Buy(ctx ctx.Ctx, caller domain.Address, assetId domain.AssetId, payment int64) error
	GetListing(ctx ctx.Ctx, assetId domain.AssetId) (*Listing, error)
	ActiveListings(ctx ctx.Ctx) ([]*Listing, error)
}

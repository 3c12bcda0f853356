package event

import (
	"time"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/domain"
)

type Type string

const (
	TypeListed        Type = "listed"
	TypeAuctionListed Type = "auctionListed"
	TypeBidPlaced     Type = "bidPlaced"
	TypeAuctionEnded  Type = "auctionEnded"
	TypeSold          Type = "sold"
	TypeUnlisted      Type = "unlisted"
)

// MarketEvent is one entry of the append-only market log. Seq is a
// strictly increasing sequence number assigned on insert, one per
// state-changing call.
type MarketEvent struct {
	EventId string         `json:"eventId" bson:"eventId"`
	Seq     int64          `json:"seq" bson:"seq"`
	Type    Type           `json:"type" bson:"type"`
	AssetId domain.AssetId `json:"assetId" bson:"assetId"`

	// Account is the acting principal: seller for listed/auctionListed/
	// sold/auctionEnded/unlisted, bidder for bidPlaced.
	Account domain.Address `json:"account,omitempty" bson:"account,omitempty"`
	// To is the counterparty: buyer for sold, winner for auctionEnded.
	To domain.Address `json:"to,omitempty" bson:"to,omitempty"`

	Price    int64      `json:"price" bson:"price"`
	Deadline *time.Time `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Time     time.Time  `json:"time" bson:"time"`
}

type FindAllOptions struct {
	AssetId *domain.AssetId
	Type    *Type
	Account *domain.Address
	SeqGT   *int64
	Offset  *int32
	Limit   *int32
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

func WithAssetId(assetId domain.AssetId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.AssetId = &assetId
		return nil
	}
}

func WithType(t Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &t
		return nil
	}
}

func WithAccount(account domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		account = account.ToLower()
		options.Account = &account
		return nil
	}
}

func WithSeqGT(seq int64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SeqGT = &seq
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

type Repo interface {
	// Insert assigns the event id and the next sequence number, then
	// appends the event to the log.
	Insert(ctx ctx.Ctx, ev *MarketEvent) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*MarketEvent, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
}

type UseCase interface {
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*MarketEvent, error)
}

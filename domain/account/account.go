package account

import (
	"time"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/domain"
)

// Account is a marketplace principal stored in database
type Account struct {
	Address   domain.Address `json:"address" bson:"address"`
	Nonce     int32          `json:"nonce" bson:"nonce"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type Repo interface {
	Get(ctx ctx.Ctx, address domain.Address) (*Account, error)
	Insert(ctx ctx.Ctx, a *Account) error
}

type Usecase interface {
	Get(ctx ctx.Ctx, address domain.Address) (*Account, error)
	Create(ctx ctx.Ctx, address domain.Address) (*Account, error)
}

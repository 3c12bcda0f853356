package registry

import (
	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/domain"
)

// TransferAck is the acknowledgment value the transfer protocol expects
// from a receiving party, the onERC721Received selector.
const TransferAck = "0x150b7a02"

// Registry is the external asset registry holding real ownership of the
// underlying assets. The marketplace only queries ownership and moves
// assets through it, it never stores ownership itself.
type Registry interface {
	OwnerOf(ctx ctx.Ctx, assetId domain.AssetId) (domain.Address, error)
	TransferOwnership(ctx ctx.Ctx, from, to domain.Address, assetId domain.AssetId) error
}

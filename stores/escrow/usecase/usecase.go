package usecase

import (
	"math/big"
	"time"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/escrow"
)

type EscrowUseCaseCfg struct {
	HoldingRepo escrow.HoldingRepo
	BalanceRepo escrow.BalanceRepo

	// Custodian is the account that retains marketplace fees and any
	// surplus payment on a sale.
	Custodian domain.Address

	// FeeBps is the marketplace fee in basis points of the sale total.
	FeeBps int64
}

type impl struct {
	holdingRepo escrow.HoldingRepo
	balanceRepo escrow.BalanceRepo
	custodian   domain.Address
	feeBps      int64
}

func NewEscrowUseCase(cfg *EscrowUseCaseCfg) escrow.UseCase {
	return &impl{
		holdingRepo: cfg.HoldingRepo,
		balanceRepo: cfg.BalanceRepo,
		custodian:   cfg.Custodian.ToLower(),
		feeBps:      cfg.FeeBps,
	}
}

// splitFee computes the fee as floor(total * feeBps / 10000). The seller
// receives the remainder, so fee + sellerAmount == total.
func (im *impl) splitFee(total int64) (fee int64, sellerAmount int64) {
	f := new(big.Int).Mul(big.NewInt(total), big.NewInt(im.feeBps))
	f.Div(f, big.NewInt(10000))
	fee = f.Int64()
	return fee, total - fee
}

func (im *impl) Deposit(ctx ctx.Ctx, address domain.Address, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrBadParamInput
	}

	balance, err := im.balanceRepo.Add(ctx, address, amount)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"amount":  amount,
		}).Error("balanceRepo.Add failed")
		return 0, err
	}

	return balance, nil
}

func (im *impl) BalanceOf(ctx ctx.Ctx, address domain.Address) (int64, error) {
	balance, err := im.balanceRepo.FindOne(ctx, address)
	if err == domain.ErrNotFound {
		return 0, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("balanceRepo.FindOne failed")
		return 0, err
	}

	return balance.Amount, nil
}

func (im *impl) Hold(ctx ctx.Ctx, assetId domain.AssetId, bidder domain.Address, amount int64) error {
	balance, err := im.BalanceOf(ctx, bidder)
	if err != nil {
		return err
	}
	if balance < amount {
		return domain.ErrInsufficientFunds
	}

	if _, err := im.balanceRepo.Add(ctx, bidder, -amount); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"bidder": bidder,
			"amount": amount,
		}).Error("balanceRepo.Add failed")
		return err
	}

	h := escrow.Holding{
		AssetId:   assetId,
		Bidder:    bidder,
		Amount:    amount,
		UpdatedAt: time.Now(),
	}
	if err := im.holdingRepo.Upsert(ctx, h); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"holding": h,
		}).Error("holdingRepo.Upsert failed")
		return err
	}

	return nil
}

func (im *impl) GetHolding(ctx ctx.Ctx, assetId domain.AssetId) (*escrow.Holding, error) {
	return im.holdingRepo.FindOne(ctx, escrow.HoldingId{AssetId: assetId})
}

func (im *impl) Refund(ctx ctx.Ctx, assetId domain.AssetId) error {
	h, err := im.holdingRepo.FindOne(ctx, escrow.HoldingId{AssetId: assetId})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
		}).Error("holdingRepo.FindOne failed")
		return err
	}

	if err := im.holdingRepo.Remove(ctx, h.ToId()); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
		}).Error("holdingRepo.Remove failed")
		return err
	}

	if _, err := im.balanceRepo.Add(ctx, h.Bidder, h.Amount); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"bidder": h.Bidder,
			"amount": h.Amount,
		}).Error("balanceRepo.Add failed")
		return err
	}

	return nil
}

func (im *impl) SettleAuction(ctx ctx.Ctx, assetId domain.AssetId, seller domain.Address) (*escrow.Settlement, error) {
	h, err := im.holdingRepo.FindOne(ctx, escrow.HoldingId{AssetId: assetId})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
		}).Error("holdingRepo.FindOne failed")
		return nil, err
	}

	if err := im.holdingRepo.Remove(ctx, h.ToId()); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
		}).Error("holdingRepo.Remove failed")
		return nil, err
	}

	fee, sellerAmount := im.splitFee(h.Amount)

	if _, err := im.balanceRepo.Add(ctx, seller, sellerAmount); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"seller": seller,
			"amount": sellerAmount,
		}).Error("balanceRepo.Add failed")
		return nil, err
	}

	if fee > 0 {
		if _, err := im.balanceRepo.Add(ctx, im.custodian, fee); err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
				"fee": fee,
			}).Error("balanceRepo.Add failed")
			return nil, err
		}
	}

	return &escrow.Settlement{
		AssetId:      assetId,
		Seller:       seller.ToLower(),
		Buyer:        h.Bidder,
		Total:        h.Amount,
		Fee:          fee,
		SellerAmount: sellerAmount,
	}, nil
}

func (im *impl) SettleSale(ctx ctx.Ctx, assetId domain.AssetId, seller, buyer domain.Address, price, payment int64) (*escrow.Settlement, error) {
	if payment < price {
		return nil, domain.ErrInsufficientFunds
	}

	balance, err := im.BalanceOf(ctx, buyer)
	if err != nil {
		return nil, err
	}
	if balance < payment {
		return nil, domain.ErrInsufficientFunds
	}

	if _, err := im.balanceRepo.Add(ctx, buyer, -payment); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"buyer":   buyer,
			"payment": payment,
		}).Error("balanceRepo.Add failed")
		return nil, err
	}

	fee, sellerAmount := im.splitFee(price)

	if _, err := im.balanceRepo.Add(ctx, seller, sellerAmount); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"seller": seller,
			"amount": sellerAmount,
		}).Error("balanceRepo.Add failed")
		return nil, err
	}

	// fee plus any overpayment stays with the custodian
	retained := fee + (payment - price)
	if retained > 0 {
		if _, err := im.balanceRepo.Add(ctx, im.custodian, retained); err != nil {
			ctx.WithFields(log.Fields{
				"err":      err,
				"retained": retained,
			}).Error("balanceRepo.Add failed")
			return nil, err
		}
	}

	return &escrow.Settlement{
		AssetId:      assetId,
		Seller:       seller.ToLower(),
		Buyer:        buyer.ToLower(),
		Total:        price,
		Fee:          fee,
		SellerAmount: sellerAmount,
	}, nil
}

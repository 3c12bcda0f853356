package registry

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	baseabi "github.com/assetbay/goapi/base/abi"
	bCtx "github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/registry"
)

type Cfg struct {
	RpcUrl          string
	ChainId         int64
	ContractAddress domain.Address
	// OperatorKey signs outgoing transfer transactions. The registry
	// contract must have the operator approved for the escrowed assets.
	OperatorKey string
}

type impl struct {
	client   *ethclient.Client
	contract common.Address
	chainId  *big.Int
	operator *ecdsa.PrivateKey
	opAddr   common.Address
}

func New(ctx bCtx.Ctx, cfg *Cfg) (registry.Registry, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}

	key, err := crypto.HexToECDSA(cfg.OperatorKey)
	if err != nil {
		ctx.WithField("err", err).Error("failed to parse operator key")
		return nil, err
	}

	return &impl{
		client:   client,
		contract: common.HexToAddress(cfg.ContractAddress.ToLowerStr()),
		chainId:  big.NewInt(cfg.ChainId),
		operator: key,
		opAddr:   crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (im *impl) OwnerOf(ctx bCtx.Ctx, assetId domain.AssetId) (domain.Address, error) {
	id, err := assetId.ToBigInt()
	if err != nil {
		return "", err
	}

	data, err := baseabi.AssetRegistryABI.Pack("ownerOf", id)
	if err != nil {
		ctx.WithField("err", err).Error("AssetRegistryABI.Pack failed")
		return "", err
	}

	msg := ethereum.CallMsg{To: &im.contract, Data: data}
	output, err := im.client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
		}).Error("ownerOf call failed")
		return "", err
	}

	unpacked, err := baseabi.AssetRegistryABI.Unpack("ownerOf", output)
	if err != nil {
		ctx.WithField("err", err).Error("AssetRegistryABI.Unpack failed")
		return "", err
	}

	owner, ok := unpacked[0].(common.Address)
	if !ok {
		return "", xerrors.Errorf("unexpected ownerOf output for asset %s", assetId)
	}
	return domain.Address(owner.Hex()).ToLower(), nil
}

func (im *impl) TransferOwnership(ctx bCtx.Ctx, from, to domain.Address, assetId domain.AssetId) error {
	id, err := assetId.ToBigInt()
	if err != nil {
		return err
	}

	data, err := baseabi.AssetRegistryABI.Pack(
		"safeTransferFrom",
		common.HexToAddress(from.ToLowerStr()),
		common.HexToAddress(to.ToLowerStr()),
		id,
	)
	if err != nil {
		ctx.WithField("err", err).Error("AssetRegistryABI.Pack failed")
		return err
	}

	nonce, err := im.client.PendingNonceAt(ctx, im.opAddr)
	if err != nil {
		ctx.WithField("err", err).Error("PendingNonceAt failed")
		return err
	}

	gasPrice, err := im.client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("SuggestGasPrice failed")
		return err
	}

	gasLimit, err := im.client.EstimateGas(ctx, ethereum.CallMsg{
		From: im.opAddr,
		To:   &im.contract,
		Data: data,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
			"from":    from,
			"to":      to,
		}).Error("EstimateGas failed")
		return err
	}

	tx := types.NewTransaction(nonce, im.contract, common.Big0, gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.NewEIP155Signer(im.chainId), im.operator)
	if err != nil {
		ctx.WithField("err", err).Error("SignTx failed")
		return err
	}

	if err := im.client.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": signed.Hash().Hex(),
		}).Error("SendTransaction failed")
		return err
	}

	receipt, err := bind.WaitMined(ctx, im.client, signed)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": signed.Hash().Hex(),
		}).Error("WaitMined failed")
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return xerrors.Errorf("transfer of asset %s reverted in tx %s", assetId, signed.Hash().Hex())
	}

	return nil
}

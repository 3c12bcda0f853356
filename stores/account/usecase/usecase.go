package usecase

import (
	"math/rand"
	"time"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/account"
)

type impl struct {
	repo account.Repo
}

func New(repo account.Repo) account.Usecase {
	return &impl{repo: repo}
}

func (im *impl) Get(ctx ctx.Ctx, address domain.Address) (*account.Account, error) {
	return im.repo.Get(ctx, address)
}

func (im *impl) Create(ctx ctx.Ctx, address domain.Address) (*account.Account, error) {
	now := time.Now()
	a := &account.Account{
		Address:   address.ToLower(),
		Nonce:     rand.Int31(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := im.repo.Insert(ctx, a); err != nil {
		ctx.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("repo.Insert failed")
		return nil, err
	}

	return a, nil
}

package repository

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/account"
	"github.com/assetbay/goapi/service/query"
)

type impl struct {
	query query.Mongo
}

// New creates new account repo
func New(query query.Mongo) account.Repo {
	return &impl{query: query}
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	a := &account.Account{}
	id := strings.ToLower(string(address))
	err := im.query.FindOne(c, domain.TableAccounts, bson.M{"address": id}, a)
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("find account failed")
	} else if err == query.ErrNotFound {
		err = domain.ErrNotFound
	}
	return a, err
}

func (im *impl) Insert(c ctx.Ctx, a *account.Account) error {
	a.Address = domain.Address(strings.ToLower(string(a.Address)))
	if err := im.query.Insert(c, domain.TableAccounts, a); err != nil {
		c.WithFields(log.Fields{
			"address": a.Address,
			"err":     err,
		}).Error("insert account failed")
		return err
	}
	return nil
}

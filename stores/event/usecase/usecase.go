package usecase

import (
	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/domain/event"
)

type EventUseCaseCfg struct {
	EventRepo event.Repo
}

type impl struct {
	eventRepo event.Repo
}

func NewEventUseCase(cfg *EventUseCaseCfg) event.UseCase {
	return &impl{
		eventRepo: cfg.EventRepo,
	}
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.MarketEvent, error) {
	return im.eventRepo.FindAll(ctx, opts...)
}

package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/domain"
	"github.com/assetbay/goapi/domain/statistic"
	mStatistic "github.com/assetbay/goapi/domain/statistic/mocks"
)

func TestRecordSaleAccumulatesVolume(t *testing.T) {
	mRepo := &mStatistic.Repo{}
	u := New(&StatisticUseCaseCfg{StatisticRepo: mRepo})

	id := statistic.AssetStatId{AssetId: "42"}
	mRepo.On("IncVolume", mock.Anything, id, float64(100)).Return(float64(300), nil)
	mRepo.On("Patch", mock.Anything, id, mock.MatchedBy(func(p statistic.UpdatePayload) bool {
		return *p.LastPrice == 100 && p.VolumeInUsd == nil
	})).Return(nil)

	err := u.RecordSale(ctx.Background(), domain.AssetId("42"), 100)
	assert.NoError(t, err)
	mRepo.AssertExpectations(t)
}

func TestRecordSaleConvertsUsdVolume(t *testing.T) {
	mRepo := &mStatistic.Repo{}
	u := New(&StatisticUseCaseCfg{
		StatisticRepo: mRepo,
		UnitUsdPrice:  decimal.NewFromFloat(1.5),
	})

	id := statistic.AssetStatId{AssetId: "42"}
	mRepo.On("IncVolume", mock.Anything, id, float64(100)).Return(float64(300), nil)
	mRepo.On("Patch", mock.Anything, id, mock.MatchedBy(func(p statistic.UpdatePayload) bool {
		return p.VolumeInUsd != nil && *p.VolumeInUsd == 450
	})).Return(nil)

	err := u.RecordSale(ctx.Background(), domain.AssetId("42"), 100)
	assert.NoError(t, err)
	mRepo.AssertExpectations(t)
}

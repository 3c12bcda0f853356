package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/assetbay/goapi/base/ctx"
	"github.com/assetbay/goapi/base/database/mongoclient"
	"github.com/assetbay/goapi/base/database/redisclient"
	"github.com/assetbay/goapi/base/log"
	"github.com/assetbay/goapi/base/metrics"
	bValidator "github.com/assetbay/goapi/base/validator"
	"github.com/assetbay/goapi/domain"
	mmiddleware "github.com/assetbay/goapi/middleware"
	"github.com/assetbay/goapi/service/query"
	"github.com/assetbay/goapi/service/redis"
	registry_service "github.com/assetbay/goapi/service/registry"
	account_repository "github.com/assetbay/goapi/stores/account/repository"
	account_usecase "github.com/assetbay/goapi/stores/account/usecase"
	auth_delivery "github.com/assetbay/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/assetbay/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/assetbay/goapi/stores/auth/usecase"
	escrow_delivery "github.com/assetbay/goapi/stores/escrow/delivery/http"
	escrow_repository "github.com/assetbay/goapi/stores/escrow/repository"
	escrow_usecase "github.com/assetbay/goapi/stores/escrow/usecase"
	event_delivery "github.com/assetbay/goapi/stores/event/delivery/http"
	event_repository "github.com/assetbay/goapi/stores/event/repository"
	event_usecase "github.com/assetbay/goapi/stores/event/usecase"
	hc_delivery "github.com/assetbay/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/assetbay/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/assetbay/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/assetbay/goapi/stores/listing/delivery/http"
	listing_repository "github.com/assetbay/goapi/stores/listing/repository"
	listing_usecase "github.com/assetbay/goapi/stores/listing/usecase"
	registry_delivery "github.com/assetbay/goapi/stores/registry/delivery/http"
	statistic_delivery "github.com/assetbay/goapi/stores/statistic/delivery/http"
	statistics_repository "github.com/assetbay/goapi/stores/statistic/repository"
	statistics_usecase "github.com/assetbay/goapi/stores/statistic/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	// init registry client
	context.Info("init asset registry")
	registryService, err := registry_service.New(context, &registry_service.Cfg{
		RpcUrl:          viper.GetString("registry.rpcUrl"),
		ChainId:         viper.GetInt64("registry.chainId"),
		ContractAddress: domain.Address(viper.GetString("registry.contract")),
		OperatorKey:     viper.GetString("registry.operatorKey"),
	})
	if err != nil {
		context.WithField("err", err).Panic("registry client failed to start")
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := listing_repository.NewListingRepo(q, redisCache)
	holdingRepo := escrow_repository.NewHoldingRepo(q)
	balanceRepo := escrow_repository.NewBalanceRepo(q)
	eventRepo := event_repository.NewEventRepo(q)
	accountRepo := account_repository.New(q)
	statisticRepo := statistics_repository.New(q)

	hc := hc_usecase.New(hcRepo)
	account := account_usecase.New(accountRepo)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), account)
	escrow := escrow_usecase.NewEscrowUseCase(&escrow_usecase.EscrowUseCaseCfg{
		HoldingRepo: holdingRepo,
		BalanceRepo: balanceRepo,
		Custodian:   domain.Address(viper.GetString("market.custodian")),
		FeeBps:      viper.GetInt64("market.feeBps"),
	})
	statisticUsecase := statistics_usecase.New(&statistics_usecase.StatisticUseCaseCfg{
		StatisticRepo: statisticRepo,
		UnitUsdPrice:  decimal.NewFromFloat(viper.GetFloat64("market.unitUsdPrice")),
	})
	listingUsecase := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Q:           q,
		ListingRepo: listingRepo,
		EscrowUC:    escrow,
		EventRepo:   eventRepo,
		Registry:    registryService,
		StatisticUC: statisticUsecase,
	})
	eventUsecase := event_usecase.NewEventUseCase(&event_usecase.EventUseCaseCfg{
		EventRepo: eventRepo,
	})

	authMiddleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	listing_delivery.New(e, listingUsecase, authMiddleware)
	escrow_delivery.New(e, escrow, authMiddleware)
	event_delivery.New(e, eventUsecase)
	statistic_delivery.New(e, statisticUsecase)
	registry_delivery.New(e)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package loyalty

import (
	"context"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/event"
	cache2 "github.com/ecodeclub/eshop/internal/loyalty/internal/event/cache"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/repository"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/service"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, ec ecache.Cache, q mq.MQ) (*Module, error) {
	service := InitService(db, ec)
	handler := web.NewHandler(service)
	adminHandler := web.NewAdminHandler(service)
	pointEventConsumer := initPointEventConsumer(service, q, ec)
	module := &Module{
		Svc:      service,
		Hdl:      handler,
		AdminHdl: adminHandler,
		C:        pointEventConsumer,
	}
	return module, nil
}

// wire.go:

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component, ec ecache.Cache) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewLoyaltyGORMDAO(db)
		c := cache.NewSettingsECache(ec)
		r := repository.NewLoyaltyRepository(d, c)
		svc = service.NewLoyaltyService(r)
	})
	return svc
}

func initPointEventConsumer(svc2 service.Service, q mq.MQ, ec ecache.Cache) *event.PointEventConsumer {
	c, err := event.NewPointEventConsumer(svc2, q, cache2.NewPointEventECache(ec))
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}

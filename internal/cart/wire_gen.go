// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package cart

import (
	"github.com/ecodeclub/eshop/internal/cart/internal/event"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/cart/internal/service"
	"github.com/ecodeclub/eshop/internal/cart/internal/web"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/promotion"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ, promotionM *promotion.Module, orderM *order.Module) (*Module, error) {
	service := promotionM.Svc
	serviceService := orderM.Svc
	service2 := InitService(db, q, service, serviceService)
	handler := web.NewHandler(service2)
	module := &Module{
		Svc: service2,
		Hdl: handler,
	}
	return module, nil
}

// wire.go:

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component, q mq.MQ, promotionSvc promotion.Service, orderSvc order.Service) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewGORMCartDAO(db)
		r := repository.NewCartRepository(d)
		p, err := event.NewCartEventProducer(q)
		if err != nil {
			panic(err)
		}
		svc = service.NewCartService(r, promotionSvc, orderSvc, p)
	})
	return svc
}

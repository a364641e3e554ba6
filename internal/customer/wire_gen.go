// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package customer

import (
	"context"
	"github.com/ecodeclub/eshop/internal/customer/internal/event"
	"github.com/ecodeclub/eshop/internal/customer/internal/repository"
	"github.com/ecodeclub/eshop/internal/customer/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/customer/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ) (*Module, error) {
	service := InitService(db)
	orderPlacedConsumer := initOrderPlacedConsumer(service, q)
	module := &Module{
		Svc: service,
		C:   orderPlacedConsumer,
	}
	return module, nil
}

// wire.go:

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewGORMCustomerDAO(db)
		r := repository.NewCustomerRepository(d)
		svc = service.NewCustomerService(r)
	})
	return svc
}

func initOrderPlacedConsumer(svc2 service.Service, q mq.MQ) *event.OrderPlacedConsumer {
	c, err := event.NewOrderPlacedConsumer(svc2, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}

// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package order

import (
	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/eshop/internal/order/internal/event"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ, node *snowflake.Node) (*Module, error) {
	service := InitService(db, q, node)
	module := &Module{
		Svc: service,
	}
	return module, nil
}

// wire.go:

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component, q mq.MQ, node *snowflake.Node) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewGORMOrderDAO(db)
		r := repository.NewRepository(d)
		p, err := event.NewOrderEventProducer(q)
		if err != nil {
			panic(err)
		}
		svc = service.NewService(r, p, node)
	})
	return svc
}

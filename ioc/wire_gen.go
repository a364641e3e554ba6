// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/customer"
	"github.com/ecodeclub/eshop/internal/loyalty"
	"github.com/ecodeclub/eshop/internal/marketing"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/promotion"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	db := InitDB()
	mq := InitMQ()
	module, err := promotion.InitModule(db)
	if err != nil {
		return nil, err
	}
	node := InitSnowflakeNode()
	orderModule, err := order.InitModule(db, mq, node)
	if err != nil {
		return nil, err
	}
	cartModule, err := cart.InitModule(db, mq, module, orderModule)
	if err != nil {
		return nil, err
	}
	cache := InitCache(cmdable)
	loyaltyModule, err := loyalty.InitModule(db, cache, mq)
	if err != nil {
		return nil, err
	}
	locker := InitLocker(cmdable)
	customerModule, err := customer.InitModule(db, mq)
	if err != nil {
		return nil, err
	}
	marketingModule, err := marketing.InitModule(mq, cache, locker, cartModule, module, loyaltyModule, customerModule, orderModule)
	if err != nil {
		return nil, err
	}
	component := initGinxServer(provider, cartModule, loyaltyModule, marketingModule)
	adminServer := InitAdminServer(loyaltyModule)
	app := &App{
		Web:   component,
		Admin: adminServer,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

//go:build wireinject

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

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMQ,
		InitLocker,
		InitSession,
		InitSnowflakeNode,
		promotion.InitModule,
		customer.InitModule,
		order.InitModule,
		loyalty.InitModule,
		cart.InitModule,
		marketing.InitModule,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}

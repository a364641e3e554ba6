// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package marketing

import (
	"context"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/customer"
	"github.com/ecodeclub/eshop/internal/loyalty"
	"github.com/ecodeclub/eshop/internal/marketing/internal/event/consumer"
	"github.com/ecodeclub/eshop/internal/marketing/internal/event/producer"
	"github.com/ecodeclub/eshop/internal/marketing/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/marketing/internal/service"
	"github.com/ecodeclub/eshop/internal/marketing/internal/web"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/pkg/lockx"
	"github.com/ecodeclub/eshop/internal/promotion"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

func InitModule(q mq.MQ,
	ec ecache.Cache,
	locker lockx.Locker,
	cartM *cart.Module,
	promotionM *promotion.Module,
	loyaltyM *loyalty.Module,
	customerM *customer.Module,
	orderM *order.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*cart.Module), "Svc"),
		wire.FieldsOf(new(*promotion.Module), "Svc"),
		wire.FieldsOf(new(*loyalty.Module), "Svc"),
		wire.FieldsOf(new(*customer.Module), "Svc"),
		wire.FieldsOf(new(*order.Module), "Svc"),
		producer.NewPointEventProducer,
		cache.NewSettlementECache,
		service.NewService,
		newCheckoutGuard,
		web.NewHandler,
		newCartUpdatedConsumer,
		newCartTransferredConsumer,
		newOrderEventConsumer,
		newPaymentEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

// newCheckoutGuard 注册结账校验器, 让购物车在下单前回调营销侧
func newCheckoutGuard(promotionSvc promotion.Service,
	loyaltySvc loyalty.Service,
	customerSvc customer.Service,
	cartSvc cart.Service) *service.CheckoutGuard {
	guard := service.NewCheckoutGuard(promotionSvc, loyaltySvc, customerSvc)
	cartSvc.RegisterCheckoutValidator(guard)
	return guard
}

func newCartUpdatedConsumer(svc service.Service, q mq.MQ) (*consumer.CartUpdatedConsumer, error) {
	res, err := consumer.NewCartUpdatedConsumer(svc, q)
	if err == nil {
		res.Start(context.Background())
	}
	return res, err
}

func newCartTransferredConsumer(svc service.Service, q mq.MQ) (*consumer.CartTransferredConsumer, error) {
	res, err := consumer.NewCartTransferredConsumer(svc, q)
	if err == nil {
		res.Start(context.Background())
	}
	return res, err
}

func newOrderEventConsumer(svc service.Service, q mq.MQ) (*consumer.OrderEventConsumer, error) {
	res, err := consumer.NewOrderEventConsumer(svc, q)
	if err == nil {
		res.Start(context.Background())
	}
	return res, err
}

func newPaymentEventConsumer(svc service.Service, orderSvc order.Service, q mq.MQ) (*consumer.PaymentEventConsumer, error) {
	res, err := consumer.NewPaymentEventConsumer(svc, orderSvc, q)
	if err == nil {
		res.Start(context.Background())
	}
	return res, err
}

// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
)

// Injectors from wire.go:

func InitModule(q mq.MQ, ec ecache.Cache, locker lockx.Locker, cartM *cart.Module, promotionM *promotion.Module, loyaltyM *loyalty.Module, customerM *customer.Module, orderM *order.Module) (*Module, error) {
	serviceService := cartM.Svc
	service2 := promotionM.Svc
	service3 := loyaltyM.Svc
	service4 := customerM.Svc
	service5 := orderM.Svc
	pointEventProducer, err := producer.NewPointEventProducer(q)
	if err != nil {
		return nil, err
	}
	settlementCache := cache.NewSettlementECache(ec)
	service6 := service.NewService(serviceService, service2, service3, service4, service5, locker, pointEventProducer, settlementCache)
	handler := web.NewHandler(service6)
	checkoutGuard := newCheckoutGuard(service2, service3, service4, serviceService)
	cartUpdatedConsumer, err := newCartUpdatedConsumer(service6, q)
	if err != nil {
		return nil, err
	}
	cartTransferredConsumer, err := newCartTransferredConsumer(service6, q)
	if err != nil {
		return nil, err
	}
	orderEventConsumer, err := newOrderEventConsumer(service6, q)
	if err != nil {
		return nil, err
	}
	paymentEventConsumer, err := newPaymentEventConsumer(service6, service5, q)
	if err != nil {
		return nil, err
	}
	module := &Module{
		Svc:          service6,
		Hdl:          handler,
		Guard:        checkoutGuard,
		UpdatedC:     cartUpdatedConsumer,
		TransferredC: cartTransferredConsumer,
		OrderC:       orderEventConsumer,
		PaymentC:     paymentEventConsumer,
	}
	return module, nil
}

// wire.go:

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

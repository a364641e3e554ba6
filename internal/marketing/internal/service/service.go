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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/customer"
	"github.com/ecodeclub/eshop/internal/loyalty"
	"github.com/ecodeclub/eshop/internal/marketing/internal/domain"
	"github.com/ecodeclub/eshop/internal/marketing/internal/event/producer"
	"github.com/ecodeclub/eshop/internal/marketing/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/pkg/lockx"
	"github.com/ecodeclub/eshop/internal/promotion"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrNotLoggedIn        = errors.New("请先登录")
	ErrNoAccount          = errors.New("游客不能使用积分")
	ErrAlreadyApplied     = errors.New("已经使用过积分抵扣")
	ErrNoLoyaltyPromotion = errors.New("没有使用积分抵扣")
	ErrInvalidAmount      = errors.New("抵扣金额非法")
	ErrInsufficientPoints = loyalty.ErrInsufficientPoints
	ErrLockTimeout        = lockx.ErrLockTimeout
)

const (
	// 等锁最多 2s。锁自带 10s 过期, 持有者崩溃也不会永久卡死购物车
	lockWaitTimeout = 2 * time.Second
	lockTTL         = 10 * time.Second
)

//go:generate mockgen -source=./service.go -package=marketingmocks -destination=../../mocks/marketing.mock.go Service
type Service interface {
	// ReconcileTierPromotions 把购物车上的等级优惠对齐到客户当前等级,
	// 顺带摘掉不再属于这个客户的积分抵扣优惠。幂等。
	ReconcileTierPromotions(ctx context.Context, cartID int64) (domain.ReconcileResult, error)
	// ApplyLoyaltyPoints 用积分抵扣购物车金额。amount 为 0 表示按余额抵满
	ApplyLoyaltyPoints(ctx context.Context, cartID, uid, amount int64) (cart.Cart, error)
	RemoveLoyaltyPoints(ctx context.Context, cartID, uid int64) (cart.Cart, error)
	// SettleOrderPoints 一个订单只结算一次: 有积分抵扣就扣减, 没有就累计
	SettleOrderPoints(ctx context.Context, orderID int64) error
}

type service struct {
	cartSvc      cart.Service
	promotionSvc promotion.Service
	loyaltySvc   loyalty.Service
	customerSvc  customer.Service
	orderSvc     order.Service
	locker       lockx.Locker
	producer     producer.PointEventProducer
	settleCache  cache.SettlementCache
	logger       *elog.Component
}

func NewService(cartSvc cart.Service,
	promotionSvc promotion.Service,
	loyaltySvc loyalty.Service,
	customerSvc customer.Service,
	orderSvc order.Service,
	locker lockx.Locker,
	p producer.PointEventProducer,
	settleCache cache.SettlementCache) Service {
	return &service{
		cartSvc:      cartSvc,
		promotionSvc: promotionSvc,
		loyaltySvc:   loyaltySvc,
		customerSvc:  customerSvc,
		orderSvc:     orderSvc,
		locker:       locker,
		producer:     p,
		settleCache:  settleCache,
		logger:       elog.DefaultLogger,
	}
}

func (s *service) lockCart(ctx context.Context, cartID int64) (lockx.Lock, error) {
	return s.locker.Acquire(ctx, cartLockKey(cartID), lockWaitTimeout, lockTTL)
}

func cartLockKey(cartID int64) string {
	return fmt.Sprintf("cart:lock:%d", cartID)
}

// releaseLock 解锁失败只记日志, 锁有 TTL 兜底
func (s *service) releaseLock(l lockx.Lock, cartID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := l.Release(ctx); err != nil {
		s.logger.Error("释放购物车锁失败",
			elog.FieldErr(err),
			elog.Int64("cartID", cartID))
	}
}

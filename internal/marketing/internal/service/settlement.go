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

	"github.com/ecodeclub/eshop/internal/customer"
	"github.com/ecodeclub/eshop/internal/loyalty"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/promotion"
	"github.com/gotomicro/ego/core/elog"
)

// SettleOrderPoints 下单事件和支付事件都会触发, 靠 SetNX 保证只结算一次。
// 用了积分抵扣的订单扣减对应积分并停用一次性优惠, 没用的按订单金额累计积分。
func (s *service) SettleOrderPoints(ctx context.Context, orderID int64) error {
	o, err := s.orderSvc.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	// 游客没有积分账户
	if o.BuyerID == 0 {
		return nil
	}
	cust, err := s.customerSvc.Profile(ctx, o.BuyerID)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return nil
		}
		return err
	}
	// 没注册账号的买家档案不参与积分, 加减都不做
	if !cust.HasAccount {
		return nil
	}
	ok, err := s.settleCache.SetNXSettled(ctx, orderID)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	err = s.settle(ctx, o)
	if err != nil {
		// 回滚幂等键, 让下一个事件重试
		if _, err1 := s.settleCache.DelSettled(ctx, orderID); err1 != nil {
			s.logger.Error("回滚结算幂等键失败",
				elog.FieldErr(err1),
				elog.Int64("orderID", orderID))
		}
	}
	return err
}

func (s *service) settle(ctx context.Context, o order.Order) error {
	c, err := s.cartSvc.GetCart(ctx, o.CartID)
	if err != nil {
		return err
	}
	promoID := c.LoyaltyPromotionID()
	if promoID == 0 {
		return s.awardPoints(ctx, o)
	}
	return s.deductPoints(ctx, o, promoID)
}

func (s *service) awardPoints(ctx context.Context, o order.Order) error {
	points, err := s.loyaltySvc.CalculatePointsForOrder(ctx, o.Total)
	if err != nil {
		return err
	}
	if points <= 0 {
		return nil
	}
	return s.producer.Produce(ctx, loyalty.PointEvent{
		Key:    settleKey(o.ID),
		Uid:    o.BuyerID,
		Action: loyalty.PointActionAdd,
		Points: points,
		Biz:    "order",
		BizId:  o.ID,
	})
}

func (s *service) deductPoints(ctx context.Context, o order.Order, promoID int64) error {
	promo, err := s.promotionSvc.FindByID(ctx, promoID)
	if err != nil {
		// 优惠查不到就没法算扣多少分, 宁可不扣也不能乱扣
		if errors.Is(err, promotion.ErrPromotionNotFound) {
			s.logger.Error("积分抵扣优惠丢失, 跳过扣减",
				elog.Int64("orderID", o.ID),
				elog.Int64("promotionID", promoID))
			return nil
		}
		return err
	}
	points, err := s.loyaltySvc.CalculatePointsFromAmount(ctx, promo.Method.Value)
	if err != nil {
		return err
	}
	if points > 0 {
		err = s.producer.Produce(ctx, loyalty.PointEvent{
			Key:    settleKey(o.ID),
			Uid:    o.BuyerID,
			Action: loyalty.PointActionDeduct,
			Points: points,
			Biz:    "order",
			BizId:  o.ID,
		})
		if err != nil {
			return err
		}
	}
	// 一次性优惠用完即停
	if err = s.promotionSvc.UpdateStatus(ctx, promoID, promotion.StatusInactive); err != nil {
		s.logger.Error("停用已消费的积分抵扣优惠失败",
			elog.FieldErr(err),
			elog.Int64("promotionID", promoID))
	}
	return nil
}

func settleKey(orderID int64) string {
	return fmt.Sprintf("settle:order:%d", orderID)
}

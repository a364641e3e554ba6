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
	"strconv"
	"strings"

	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/pkg/saga"
	"github.com/ecodeclub/eshop/internal/promotion"
	"github.com/lithammer/shortuuid/v4"
)

func (s *service) ApplyLoyaltyPoints(ctx context.Context, cartID, uid, amount int64) (cart.Cart, error) {
	if uid == 0 {
		return cart.Cart{}, ErrNotLoggedIn
	}
	lock, err := s.lockCart(ctx, cartID)
	if err != nil {
		return cart.Cart{}, err
	}
	defer s.releaseLock(lock, cartID)

	c, err := s.cartSvc.GetCart(ctx, cartID)
	if err != nil {
		return cart.Cart{}, err
	}
	if c.CustomerID != uid {
		return cart.Cart{}, ErrNotLoggedIn
	}
	cust, err := s.customerSvc.Profile(ctx, uid)
	if err != nil {
		return cart.Cart{}, err
	}
	if !cust.HasAccount {
		return cart.Cart{}, ErrNoAccount
	}
	if c.LoyaltyPromotionID() != 0 {
		return cart.Cart{}, ErrAlreadyApplied
	}
	amount, err = s.discountAmount(ctx, uid, c.Total, amount)
	if err != nil {
		return cart.Cart{}, err
	}

	// 三步跨两个模块, 没有跨库事务, 用补偿串起来:
	// 建优惠 -> 挂码 -> 写 metadata, 失败则逆序回滚
	var promo promotion.Promotion
	sg := saga.New("apply-loyalty-points",
		saga.Step{
			Name: "创建积分抵扣优惠",
			Run: func(ctx context.Context) error {
				var err1 error
				promo, err1 = s.promotionSvc.Create(ctx, promotion.Promotion{
					Code:   loyaltyCode(cust.FirstName),
					Status: promotion.StatusActive,
					Method: promotion.ApplicationMethod{
						Type:         promotion.MethodTypeFixed,
						TargetType:   promotion.TargetTypeOrder,
						Value:        amount,
						CurrencyCode: c.CurrencyCode,
					},
					Rules: []promotion.Rule{
						{
							Attribute: promotion.RuleAttributeCustomerID,
							Operator:  promotion.RuleOperatorEq,
							Values:    []string{strconv.FormatInt(uid, 10)},
						},
					},
					Campaign: promotion.Campaign{
						Name:       fmt.Sprintf("积分抵扣-%d", uid),
						UsageLimit: 1,
					},
				})
				return err1
			},
			Compensate: func(ctx context.Context) error {
				return s.promotionSvc.UpdateStatus(ctx, promo.ID, promotion.StatusInactive)
			},
		},
		saga.Step{
			Name: "挂优惠码",
			Run: func(ctx context.Context) error {
				_, err1 := s.cartSvc.AttachPromotionCodes(ctx, cartID, []string{promo.Code})
				return err1
			},
			Compensate: func(ctx context.Context) error {
				_, err1 := s.cartSvc.DetachPromotionCodes(ctx, cartID, []string{promo.Code})
				return err1
			},
		},
		saga.Step{
			Name: "记录抵扣标记",
			Run: func(ctx context.Context) error {
				_, err1 := s.cartSvc.PatchMetadata(ctx, cartID, map[string]string{
					cart.MetadataKeyLoyaltyPromoID: strconv.FormatInt(promo.ID, 10),
				})
				return err1
			},
		},
	)
	if err = sg.Run(ctx); err != nil {
		return cart.Cart{}, err
	}
	return s.cartSvc.GetCart(ctx, cartID)
}

// discountAmount 计算实际抵扣金额。requested 为 0 表示抵扣上限,
// 上限是积分余额可兑金额和购物车总额的较小者
func (s *service) discountAmount(ctx context.Context, uid, total, requested int64) (int64, error) {
	balance, err := s.loyaltySvc.GetPoints(ctx, uid)
	if err != nil {
		return 0, err
	}
	limit, err := s.loyaltySvc.CalculateDiscountForPoints(ctx, balance)
	if err != nil {
		return 0, err
	}
	if limit <= 0 {
		return 0, ErrInsufficientPoints
	}
	if total < limit {
		limit = total
	}
	if requested == 0 {
		return limit, nil
	}
	if requested < 0 || requested > limit {
		return 0, ErrInvalidAmount
	}
	return requested, nil
}

func (s *service) RemoveLoyaltyPoints(ctx context.Context, cartID, uid int64) (cart.Cart, error) {
	if uid == 0 {
		return cart.Cart{}, ErrNotLoggedIn
	}
	lock, err := s.lockCart(ctx, cartID)
	if err != nil {
		return cart.Cart{}, err
	}
	defer s.releaseLock(lock, cartID)

	c, err := s.cartSvc.GetCart(ctx, cartID)
	if err != nil {
		return cart.Cart{}, err
	}
	if c.CustomerID != uid {
		return cart.Cart{}, ErrNotLoggedIn
	}
	promoID := c.LoyaltyPromotionID()
	if promoID == 0 {
		return cart.Cart{}, ErrNoLoyaltyPromotion
	}
	promo, err := s.promotionSvc.FindByID(ctx, promoID)
	if err != nil {
		if errors.Is(err, promotion.ErrPromotionNotFound) {
			// 残留的 metadata, 清掉即可
			return s.cartSvc.PatchMetadata(ctx, cartID,
				map[string]string{cart.MetadataKeyLoyaltyPromoID: ""})
		}
		return cart.Cart{}, err
	}
	if err = s.detachLoyaltyPromotion(ctx, cartID, promo); err != nil {
		return cart.Cart{}, err
	}
	return s.cartSvc.GetCart(ctx, cartID)
}

// loyaltyCode 形如 LOYALTY-ALICE-X7K2QB, 全大写
func loyaltyCode(firstName string) string {
	name := strings.ToUpper(strings.TrimSpace(firstName))
	if name == "" {
		name = "MEMBER"
	}
	suffix := strings.ToUpper(shortuuid.New()[:6])
	return fmt.Sprintf("LOYALTY-%s-%s", name, suffix)
}

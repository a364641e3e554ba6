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

	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/customer"
	"github.com/ecodeclub/eshop/internal/loyalty"
	"github.com/ecodeclub/eshop/internal/marketing/internal/domain"
	"github.com/ecodeclub/eshop/internal/promotion"
)

var ErrCheckoutValidation = errors.New("结账校验不通过")

var _ cart.CheckoutValidator = (*CheckoutGuard)(nil)

// CheckoutGuard 结账前的最后校验: 优惠是在挂上购物车之后才能变化的,
// 余额可能被花掉, 等级可能被调整, 这里兜底拦住过期的优惠。
type CheckoutGuard struct {
	promotionSvc promotion.Service
	loyaltySvc   loyalty.Service
	customerSvc  customer.Service
}

func NewCheckoutGuard(promotionSvc promotion.Service,
	loyaltySvc loyalty.Service,
	customerSvc customer.Service) *CheckoutGuard {
	return &CheckoutGuard{
		promotionSvc: promotionSvc,
		loyaltySvc:   loyaltySvc,
		customerSvc:  customerSvc,
	}
}

func (g *CheckoutGuard) Validate(ctx context.Context, c cart.Cart) error {
	if err := g.validateLoyaltyBalance(ctx, c); err != nil {
		return err
	}
	return g.validateTierPromotions(ctx, c)
}

// validateLoyaltyBalance 确认积分余额还够兑付购物车上的抵扣
func (g *CheckoutGuard) validateLoyaltyBalance(ctx context.Context, c cart.Cart) error {
	promoID := c.LoyaltyPromotionID()
	if promoID == 0 {
		return nil
	}
	promo, err := g.promotionSvc.FindByID(ctx, promoID)
	if err != nil {
		if errors.Is(err, promotion.ErrPromotionNotFound) {
			return fmt.Errorf("%w: 积分抵扣优惠已失效", ErrCheckoutValidation)
		}
		return err
	}
	required, err := g.loyaltySvc.CalculatePointsFromAmount(ctx, promo.Method.Value)
	if err != nil {
		return err
	}
	balance, err := g.loyaltySvc.GetPoints(ctx, c.CustomerID)
	if err != nil {
		return err
	}
	if balance < required {
		return fmt.Errorf("%w: 积分余额不足以支付抵扣", ErrCheckoutValidation)
	}
	return nil
}

// validateTierPromotions 确认挂着的等级优惠仍然属于客户当前等级
func (g *CheckoutGuard) validateTierPromotions(ctx context.Context, c cart.Cart) error {
	tiers, err := g.customerSvc.ListTiers(ctx)
	if err != nil {
		return err
	}
	tierPromos := tierPromotionIndex(tiers)
	loyaltyPromoID := c.LoyaltyPromotionID()
	var currentTier int64
	if c.CustomerID != 0 {
		cust, err1 := g.customerSvc.Profile(ctx, c.CustomerID)
		if err1 != nil && !errors.Is(err1, customer.ErrCustomerNotFound) {
			return err1
		}
		// 没注册账号的档案不享受等级优惠, 当作无等级
		if cust.HasAccount {
			currentTier = cust.TierID
		}
	}
	for _, p := range c.Promotions {
		purpose := promotionPurpose(p, tierPromos, loyaltyPromoID)
		if purpose.Kind != domain.KindTier {
			continue
		}
		if purpose.TierID != currentTier {
			return fmt.Errorf("%w: 等级优惠 %s 不属于当前等级", ErrCheckoutValidation, p.Code)
		}
	}
	return nil
}

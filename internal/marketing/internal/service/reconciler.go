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

	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/customer"
	"github.com/ecodeclub/eshop/internal/marketing/internal/domain"
	"github.com/ecodeclub/eshop/internal/promotion"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// ReconcileTierPromotions 对账在一把购物车锁里完成,
// 防止和积分抵扣、结账这些并发写互相踩
func (s *service) ReconcileTierPromotions(ctx context.Context, cartID int64) (domain.ReconcileResult, error) {
	lock, err := s.lockCart(ctx, cartID)
	if err != nil {
		return domain.ReconcileResult{}, err
	}
	defer s.releaseLock(lock, cartID)

	var (
		c     cart.Cart
		tiers []customer.Tier
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		c, err = s.cartSvc.GetCart(ctx, cartID)
		return err
	})
	eg.Go(func() error {
		var err error
		tiers, err = s.customerSvc.ListTiers(ctx)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.ReconcileResult{}, err
	}

	desired, err := s.desiredTierPromotion(ctx, c.CustomerID, tiers)
	if err != nil {
		return domain.ReconcileResult{}, err
	}
	var desiredCode string
	if desired != 0 {
		desiredCode, err = s.activePromotionCode(ctx, desired)
		if err != nil {
			return domain.ReconcileResult{}, err
		}
		// 等级优惠被停用, 当作没有目标, 已挂的也要摘掉
		if desiredCode == "" {
			desired = 0
		}
	}

	tierPromos := tierPromotionIndex(tiers)
	loyaltyPromoID := c.LoyaltyPromotionID()

	var res domain.ReconcileResult
	hasDesired := false
	for _, p := range c.Promotions {
		if promotionPurpose(p, tierPromos, loyaltyPromoID).Kind != domain.KindTier {
			continue
		}
		if p.ID == desired {
			hasDesired = true
			continue
		}
		res.Removed = append(res.Removed, p.Code)
	}
	if len(res.Removed) > 0 {
		if _, err = s.cartSvc.DetachPromotionCodes(ctx, cartID, res.Removed); err != nil {
			return domain.ReconcileResult{}, err
		}
	}
	if desired != 0 && !hasDesired {
		if _, err = s.cartSvc.AttachPromotionCodes(ctx, cartID, []string{desiredCode}); err != nil {
			return domain.ReconcileResult{}, err
		}
		res.Added = append(res.Added, desiredCode)
	}

	res.LoyaltyRemoved, err = s.reconcileLoyaltyPromotion(ctx, c)
	if err != nil {
		return domain.ReconcileResult{}, err
	}
	if res.Changed() {
		s.logger.Info("购物车优惠对账完成",
			elog.Int64("cartID", cartID),
			elog.Any("added", res.Added),
			elog.Any("removed", res.Removed),
			elog.Any("loyaltyRemoved", res.LoyaltyRemoved))
	}
	return res, nil
}

// tierPromotionIndex 等级优惠 ID -> 等级 ID
func tierPromotionIndex(tiers []customer.Tier) map[int64]int64 {
	res := make(map[int64]int64, len(tiers))
	for _, t := range tiers {
		if t.PromotionID != 0 {
			res[t.PromotionID] = t.ID
		}
	}
	return res
}

// promotionPurpose 判定购物车上某个优惠在营销侧的用途
func promotionPurpose(p cart.AppliedPromotion,
	tierPromos map[int64]int64, loyaltyPromoID int64) domain.PromotionPurpose {
	if loyaltyPromoID != 0 && p.ID == loyaltyPromoID {
		return domain.PurposeLoyalty()
	}
	if tierID, ok := tierPromos[p.ID]; ok {
		return domain.PurposeTier(tierID)
	}
	return domain.PurposeNone()
}

// desiredTierPromotion 返回客户当前等级挂的优惠 ID, 游客或无等级返回 0
func (s *service) desiredTierPromotion(ctx context.Context, customerID int64, tiers []customer.Tier) (int64, error) {
	if customerID == 0 {
		return 0, nil
	}
	cust, err := s.customerSvc.Profile(ctx, customerID)
	if err != nil {
		// 客户被删了就当游客处理, 把等级优惠全摘掉
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return 0, nil
		}
		return 0, err
	}
	// 游客下单留下的档案没有账号, 不享受等级优惠
	if !cust.HasAccount || cust.TierID == 0 {
		return 0, nil
	}
	for _, t := range tiers {
		if t.ID == cust.TierID {
			return t.PromotionID, nil
		}
	}
	return 0, nil
}

func (s *service) activePromotionCode(ctx context.Context, promotionID int64) (string, error) {
	promo, err := s.promotionSvc.FindByID(ctx, promotionID)
	if err != nil {
		if errors.Is(err, promotion.ErrPromotionNotFound) {
			return "", nil
		}
		return "", err
	}
	if promo.Status != promotion.StatusActive {
		return "", nil
	}
	return promo.Code, nil
}

// reconcileLoyaltyPromotion 购物车换了主人之后, 原主人的积分抵扣优惠必须摘掉
func (s *service) reconcileLoyaltyPromotion(ctx context.Context, c cart.Cart) (bool, error) {
	promoID := c.LoyaltyPromotionID()
	if promoID == 0 {
		return false, nil
	}
	promo, err := s.promotionSvc.FindByID(ctx, promoID)
	if err != nil {
		if errors.Is(err, promotion.ErrPromotionNotFound) {
			// 优惠没了, 只清掉 metadata 里的残留
			_, err = s.cartSvc.PatchMetadata(ctx, c.ID,
				map[string]string{cart.MetadataKeyLoyaltyPromoID: ""})
			return true, err
		}
		return false, err
	}
	if promo.MatchesCustomer(c.CustomerID) {
		return false, nil
	}
	return true, s.detachLoyaltyPromotion(ctx, c.ID, promo)
}

// detachLoyaltyPromotion 摘码、清 metadata、停用优惠。
// 积分抵扣优惠是一次性的, 停用而不是删除, 留着对账
func (s *service) detachLoyaltyPromotion(ctx context.Context, cartID int64, promo promotion.Promotion) error {
	if _, err := s.cartSvc.DetachPromotionCodes(ctx, cartID, []string{promo.Code}); err != nil {
		return err
	}
	if _, err := s.cartSvc.PatchMetadata(ctx, cartID,
		map[string]string{cart.MetadataKeyLoyaltyPromoID: ""}); err != nil {
		return err
	}
	if err := s.promotionSvc.UpdateStatus(ctx, promo.ID, promotion.StatusInactive); err != nil {
		s.logger.Error("停用积分抵扣优惠失败",
			elog.FieldErr(err),
			elog.Int64("promotionID", promo.ID))
	}
	return nil
}

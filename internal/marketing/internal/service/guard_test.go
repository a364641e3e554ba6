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
	"testing"

	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/customer"
	customermocks "github.com/ecodeclub/eshop/internal/customer/mocks"
	loyaltymocks "github.com/ecodeclub/eshop/internal/loyalty/mocks"
	"github.com/ecodeclub/eshop/internal/promotion"
	promotionmocks "github.com/ecodeclub/eshop/internal/promotion/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckoutGuard(t *testing.T) {
	t.Parallel()

	tiers := []customer.Tier{
		{ID: 1, Name: "银牌", PromotionID: 101},
		{ID: 2, Name: "金牌", PromotionID: 102},
	}

	newGuard := func(ctrl *gomock.Controller) (*CheckoutGuard, *promotionmocks.MockService, *loyaltymocks.MockService, *customermocks.MockService) {
		promotionSvc := promotionmocks.NewMockService(ctrl)
		loyaltySvc := loyaltymocks.NewMockService(ctrl)
		customerSvc := customermocks.NewMockService(ctrl)
		return NewCheckoutGuard(promotionSvc, loyaltySvc, customerSvc), promotionSvc, loyaltySvc, customerSvc
	}

	t.Run("没有营销优惠时放行", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guard, _, _, customerSvc := newGuard(ctrl)
		customerSvc.EXPECT().ListTiers(gomock.Any()).Return(tiers, nil)
		customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7}, nil)

		err := guard.Validate(context.Background(), cart.Cart{ID: 1, CustomerID: 7})
		require.NoError(t, err)
	})

	t.Run("积分余额不足以兑付抵扣时拦截", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guard, promotionSvc, loyaltySvc, _ := newGuard(ctrl)
		promotionSvc.EXPECT().FindByID(gomock.Any(), int64(301)).
			Return(promotion.Promotion{
				ID:     301,
				Method: promotion.ApplicationMethod{Value: 300},
			}, nil)
		loyaltySvc.EXPECT().CalculatePointsFromAmount(gomock.Any(), int64(300)).
			Return(int64(300), nil)
		// 下单前积分被别的订单花掉了
		loyaltySvc.EXPECT().GetPoints(gomock.Any(), int64(7)).Return(int64(100), nil)

		err := guard.Validate(context.Background(), cart.Cart{
			ID:         1,
			CustomerID: 7,
			Metadata:   map[string]string{cart.MetadataKeyLoyaltyPromoID: "301"},
		})
		assert.ErrorIs(t, err, ErrCheckoutValidation)
	})

	t.Run("抵扣优惠已不存在时拦截", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guard, promotionSvc, _, _ := newGuard(ctrl)
		promotionSvc.EXPECT().FindByID(gomock.Any(), int64(301)).
			Return(promotion.Promotion{}, promotion.ErrPromotionNotFound)

		err := guard.Validate(context.Background(), cart.Cart{
			ID:         1,
			CustomerID: 7,
			Metadata:   map[string]string{cart.MetadataKeyLoyaltyPromoID: "301"},
		})
		assert.ErrorIs(t, err, ErrCheckoutValidation)
	})

	t.Run("等级优惠不属于当前等级时拦截", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guard, _, _, customerSvc := newGuard(ctrl)
		customerSvc.EXPECT().ListTiers(gomock.Any()).Return(tiers, nil)
		// 降级了, 购物车上还挂着金牌优惠
		customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true, TierID: 1}, nil)

		err := guard.Validate(context.Background(), cart.Cart{
			ID:         1,
			CustomerID: 7,
			Promotions: []cart.AppliedPromotion{{ID: 102, Code: "TIER-GOLD"}},
		})
		assert.ErrorIs(t, err, ErrCheckoutValidation)
	})

	t.Run("等级匹配且余额足够时放行", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guard, promotionSvc, loyaltySvc, customerSvc := newGuard(ctrl)
		promotionSvc.EXPECT().FindByID(gomock.Any(), int64(301)).
			Return(promotion.Promotion{
				ID:     301,
				Method: promotion.ApplicationMethod{Value: 300},
			}, nil)
		loyaltySvc.EXPECT().CalculatePointsFromAmount(gomock.Any(), int64(300)).
			Return(int64(300), nil)
		loyaltySvc.EXPECT().GetPoints(gomock.Any(), int64(7)).Return(int64(500), nil)
		customerSvc.EXPECT().ListTiers(gomock.Any()).Return(tiers, nil)
		customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true, TierID: 2}, nil)

		err := guard.Validate(context.Background(), cart.Cart{
			ID:         1,
			CustomerID: 7,
			Metadata:   map[string]string{cart.MetadataKeyLoyaltyPromoID: "301"},
			Promotions: []cart.AppliedPromotion{{ID: 102, Code: "TIER-GOLD"}},
		})
		require.NoError(t, err)
	})
}

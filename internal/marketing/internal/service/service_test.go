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
	"strings"
	"sync"
	"testing"

	"github.com/ecodeclub/eshop/internal/cart"
	cartmocks "github.com/ecodeclub/eshop/internal/cart/mocks"
	"github.com/ecodeclub/eshop/internal/customer"
	customermocks "github.com/ecodeclub/eshop/internal/customer/mocks"
	"github.com/ecodeclub/eshop/internal/loyalty"
	loyaltymocks "github.com/ecodeclub/eshop/internal/loyalty/mocks"
	evtmocks "github.com/ecodeclub/eshop/internal/marketing/internal/event/mocks"
	"github.com/ecodeclub/eshop/internal/order"
	ordermocks "github.com/ecodeclub/eshop/internal/order/mocks"
	"github.com/ecodeclub/eshop/internal/pkg/lockx"
	"github.com/ecodeclub/eshop/internal/promotion"
	promotionmocks "github.com/ecodeclub/eshop/internal/promotion/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeSettlementCache 内存版结算幂等键, 测试里不依赖 Redis
type fakeSettlementCache struct {
	mu   sync.Mutex
	keys map[int64]struct{}
}

func newFakeSettlementCache() *fakeSettlementCache {
	return &fakeSettlementCache{keys: map[int64]struct{}{}}
}

func (f *fakeSettlementCache) SetNXSettled(_ context.Context, orderID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.keys[orderID]; ok {
		return false, nil
	}
	f.keys[orderID] = struct{}{}
	return true, nil
}

func (f *fakeSettlementCache) DelSettled(_ context.Context, orderID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.keys[orderID]; !ok {
		return 0, nil
	}
	delete(f.keys, orderID)
	return 1, nil
}

type testDeps struct {
	cartSvc      *cartmocks.MockService
	promotionSvc *promotionmocks.MockService
	loyaltySvc   *loyaltymocks.MockService
	customerSvc  *customermocks.MockService
	orderSvc     *ordermocks.MockService
	producer     *evtmocks.MockPointEventProducer
	settleCache  *fakeSettlementCache
}

func newTestService(ctrl *gomock.Controller) (Service, *testDeps) {
	deps := &testDeps{
		cartSvc:      cartmocks.NewMockService(ctrl),
		promotionSvc: promotionmocks.NewMockService(ctrl),
		loyaltySvc:   loyaltymocks.NewMockService(ctrl),
		customerSvc:  customermocks.NewMockService(ctrl),
		orderSvc:     ordermocks.NewMockService(ctrl),
		producer:     evtmocks.NewMockPointEventProducer(ctrl),
		settleCache:  newFakeSettlementCache(),
	}
	svc := NewService(deps.cartSvc, deps.promotionSvc, deps.loyaltySvc,
		deps.customerSvc, deps.orderSvc, lockx.NewLocalLocker(),
		deps.producer, deps.settleCache)
	return svc, deps
}

func TestReconcileTierPromotions(t *testing.T) {
	t.Parallel()

	tiers := []customer.Tier{
		{ID: 1, Name: "银牌", PromotionID: 101},
		{ID: 2, Name: "金牌", PromotionID: 102},
	}

	t.Run("游客购物车摘掉所有等级优惠", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(1)).Return(cart.Cart{
			ID: 1,
			Promotions: []cart.AppliedPromotion{
				{ID: 101, Code: "TIER-SILVER"},
				{ID: 201, Code: "SUMMER"},
			},
		}, nil)
		deps.customerSvc.EXPECT().ListTiers(gomock.Any()).Return(tiers, nil)
		deps.cartSvc.EXPECT().DetachPromotionCodes(gomock.Any(), int64(1), []string{"TIER-SILVER"}).
			Return(cart.Cart{}, nil)

		res, err := svc.ReconcileTierPromotions(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"TIER-SILVER"}, res.Removed)
		assert.Empty(t, res.Added)
		assert.True(t, res.Changed())
	})

	t.Run("挂上当前等级的优惠", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(2)).Return(cart.Cart{
			ID:         2,
			CustomerID: 7,
		}, nil)
		deps.customerSvc.EXPECT().ListTiers(gomock.Any()).Return(tiers, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true, TierID: 2}, nil)
		deps.promotionSvc.EXPECT().FindByID(gomock.Any(), int64(102)).
			Return(promotion.Promotion{ID: 102, Code: "TIER-GOLD", Status: promotion.StatusActive}, nil)
		deps.cartSvc.EXPECT().AttachPromotionCodes(gomock.Any(), int64(2), []string{"TIER-GOLD"}).
			Return(cart.Cart{}, nil)

		res, err := svc.ReconcileTierPromotions(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"TIER-GOLD"}, res.Added)
		assert.Empty(t, res.Removed)
	})

	t.Run("等级变更时一次换掉旧优惠", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(3)).Return(cart.Cart{
			ID:         3,
			CustomerID: 7,
			Promotions: []cart.AppliedPromotion{{ID: 101, Code: "TIER-SILVER"}},
		}, nil)
		deps.customerSvc.EXPECT().ListTiers(gomock.Any()).Return(tiers, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true, TierID: 2}, nil)
		deps.cartSvc.EXPECT().DetachPromotionCodes(gomock.Any(), int64(3), []string{"TIER-SILVER"}).
			Return(cart.Cart{}, nil)
		deps.promotionSvc.EXPECT().FindByID(gomock.Any(), int64(102)).
			Return(promotion.Promotion{ID: 102, Code: "TIER-GOLD", Status: promotion.StatusActive}, nil)
		deps.cartSvc.EXPECT().AttachPromotionCodes(gomock.Any(), int64(3), []string{"TIER-GOLD"}).
			Return(cart.Cart{}, nil)

		res, err := svc.ReconcileTierPromotions(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"TIER-SILVER"}, res.Removed)
		assert.Equal(t, []string{"TIER-GOLD"}, res.Added)
	})

	t.Run("已对齐时不做任何写操作", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(4)).Return(cart.Cart{
			ID:         4,
			CustomerID: 7,
			Promotions: []cart.AppliedPromotion{{ID: 102, Code: "TIER-GOLD"}},
		}, nil)
		deps.customerSvc.EXPECT().ListTiers(gomock.Any()).Return(tiers, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true, TierID: 2}, nil)
		deps.promotionSvc.EXPECT().FindByID(gomock.Any(), int64(102)).
			Return(promotion.Promotion{ID: 102, Code: "TIER-GOLD", Status: promotion.StatusActive}, nil)

		res, err := svc.ReconcileTierPromotions(context.Background(), 4)
		require.NoError(t, err)
		assert.False(t, res.Changed())
	})

	t.Run("停用的等级优惠不会被挂上", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(5)).Return(cart.Cart{
			ID:         5,
			CustomerID: 7,
		}, nil)
		deps.customerSvc.EXPECT().ListTiers(gomock.Any()).Return(tiers, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true, TierID: 1}, nil)
		deps.promotionSvc.EXPECT().FindByID(gomock.Any(), int64(101)).
			Return(promotion.Promotion{ID: 101, Code: "TIER-SILVER", Status: promotion.StatusInactive}, nil)

		res, err := svc.ReconcileTierPromotions(context.Background(), 5)
		require.NoError(t, err)
		assert.False(t, res.Changed())
	})

	t.Run("无账号的买家档案不挂等级优惠", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(7)).Return(cart.Cart{
			ID:         7,
			CustomerID: 7,
			Promotions: []cart.AppliedPromotion{{ID: 101, Code: "TIER-SILVER"}},
		}, nil)
		deps.customerSvc.EXPECT().ListTiers(gomock.Any()).Return(tiers, nil)
		// 游客下单留下的档案, 虽然被分了等级也不享受优惠
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: false, TierID: 1}, nil)
		deps.cartSvc.EXPECT().DetachPromotionCodes(gomock.Any(), int64(7), []string{"TIER-SILVER"}).
			Return(cart.Cart{}, nil)

		res, err := svc.ReconcileTierPromotions(context.Background(), 7)
		require.NoError(t, err)
		assert.Empty(t, res.Added)
		assert.Equal(t, []string{"TIER-SILVER"}, res.Removed)
	})

	t.Run("挂上之后被停用的等级优惠会被摘掉", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(8)).Return(cart.Cart{
			ID:         8,
			CustomerID: 7,
			Promotions: []cart.AppliedPromotion{{ID: 102, Code: "TIER-GOLD"}},
		}, nil)
		deps.customerSvc.EXPECT().ListTiers(gomock.Any()).Return(tiers, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true, TierID: 2}, nil)
		deps.promotionSvc.EXPECT().FindByID(gomock.Any(), int64(102)).
			Return(promotion.Promotion{ID: 102, Code: "TIER-GOLD", Status: promotion.StatusInactive}, nil)
		deps.cartSvc.EXPECT().DetachPromotionCodes(gomock.Any(), int64(8), []string{"TIER-GOLD"}).
			Return(cart.Cart{}, nil)

		res, err := svc.ReconcileTierPromotions(context.Background(), 8)
		require.NoError(t, err)
		assert.Empty(t, res.Added)
		assert.Equal(t, []string{"TIER-GOLD"}, res.Removed)
	})

	t.Run("换了主人之后摘掉前任的积分抵扣", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		loyaltyPromo := promotion.Promotion{
			ID:     301,
			Code:   "LOYALTY-ALICE-X7K2QB",
			Status: promotion.StatusActive,
			Rules: []promotion.Rule{
				{
					Attribute: promotion.RuleAttributeCustomerID,
					Operator:  promotion.RuleOperatorEq,
					Values:    []string{"7"},
				},
			},
		}
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(6)).Return(cart.Cart{
			ID:         6,
			CustomerID: 8,
			Metadata:   map[string]string{cart.MetadataKeyLoyaltyPromoID: "301"},
			Promotions: []cart.AppliedPromotion{{ID: 301, Code: "LOYALTY-ALICE-X7K2QB"}},
		}, nil)
		deps.customerSvc.EXPECT().ListTiers(gomock.Any()).Return(tiers, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(8)).
			Return(customer.Customer{ID: 8}, nil)
		deps.promotionSvc.EXPECT().FindByID(gomock.Any(), int64(301)).Return(loyaltyPromo, nil)
		deps.cartSvc.EXPECT().DetachPromotionCodes(gomock.Any(), int64(6), []string{"LOYALTY-ALICE-X7K2QB"}).
			Return(cart.Cart{}, nil)
		deps.cartSvc.EXPECT().PatchMetadata(gomock.Any(), int64(6),
			map[string]string{cart.MetadataKeyLoyaltyPromoID: ""}).Return(cart.Cart{}, nil)
		deps.promotionSvc.EXPECT().UpdateStatus(gomock.Any(), int64(301), promotion.StatusInactive).Return(nil)

		res, err := svc.ReconcileTierPromotions(context.Background(), 6)
		require.NoError(t, err)
		assert.True(t, res.LoyaltyRemoved)
	})
}

func TestApplyLoyaltyPoints(t *testing.T) {
	t.Parallel()

	t.Run("未登录不能抵扣", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _ := newTestService(ctrl)
		_, err := svc.ApplyLoyaltyPoints(context.Background(), 1, 0, 0)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("购物车不属于当前用户", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(1)).
			Return(cart.Cart{ID: 1, CustomerID: 9}, nil)
		_, err := svc.ApplyLoyaltyPoints(context.Background(), 1, 7, 0)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("游客账号不能抵扣", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(1)).
			Return(cart.Cart{ID: 1, CustomerID: 7}, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: false}, nil)
		_, err := svc.ApplyLoyaltyPoints(context.Background(), 1, 7, 0)
		assert.ErrorIs(t, err, ErrNoAccount)
	})

	t.Run("重复抵扣被拒绝", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(1)).Return(cart.Cart{
			ID:         1,
			CustomerID: 7,
			Metadata:   map[string]string{cart.MetadataKeyLoyaltyPromoID: "301"},
		}, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true}, nil)
		_, err := svc.ApplyLoyaltyPoints(context.Background(), 1, 7, 0)
		assert.ErrorIs(t, err, ErrAlreadyApplied)
	})

	t.Run("积分余额不足", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(1)).
			Return(cart.Cart{ID: 1, CustomerID: 7, Total: 10000}, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true}, nil)
		deps.loyaltySvc.EXPECT().GetPoints(gomock.Any(), int64(7)).Return(int64(0), nil)
		deps.loyaltySvc.EXPECT().CalculateDiscountForPoints(gomock.Any(), int64(0)).Return(int64(0), nil)
		_, err := svc.ApplyLoyaltyPoints(context.Background(), 1, 7, 0)
		assert.ErrorIs(t, err, ErrInsufficientPoints)
	})

	t.Run("指定金额超过上限", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(1)).
			Return(cart.Cart{ID: 1, CustomerID: 7, Total: 10000}, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true}, nil)
		deps.loyaltySvc.EXPECT().GetPoints(gomock.Any(), int64(7)).Return(int64(500), nil)
		deps.loyaltySvc.EXPECT().CalculateDiscountForPoints(gomock.Any(), int64(500)).Return(int64(500), nil)
		_, err := svc.ApplyLoyaltyPoints(context.Background(), 1, 7, 600)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("按余额抵满但不超过购物车总额", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		c := cart.Cart{ID: 1, CustomerID: 7, CurrencyCode: "eur", Total: 300}
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(1)).Return(c, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, FirstName: "Alice", HasAccount: true}, nil)
		deps.loyaltySvc.EXPECT().GetPoints(gomock.Any(), int64(7)).Return(int64(500), nil)
		deps.loyaltySvc.EXPECT().CalculateDiscountForPoints(gomock.Any(), int64(500)).Return(int64(500), nil)
		deps.promotionSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p promotion.Promotion) (promotion.Promotion, error) {
				assert.True(t, strings.HasPrefix(p.Code, "LOYALTY-ALICE-"))
				assert.Equal(t, promotion.StatusActive, p.Status)
				assert.Equal(t, promotion.MethodTypeFixed, p.Method.Type)
				assert.Equal(t, promotion.TargetTypeOrder, p.Method.TargetType)
				// 余额可抵 500, 购物车只有 300, 取小
				assert.Equal(t, int64(300), p.Method.Value)
				assert.Equal(t, "eur", p.Method.CurrencyCode)
				require.Len(t, p.Rules, 1)
				assert.Equal(t, promotion.RuleAttributeCustomerID, p.Rules[0].Attribute)
				assert.Equal(t, []string{"7"}, p.Rules[0].Values)
				assert.Equal(t, int64(1), p.Campaign.UsageLimit)
				p.ID = 301
				return p, nil
			})
		deps.cartSvc.EXPECT().AttachPromotionCodes(gomock.Any(), int64(1), gomock.Any()).
			Return(cart.Cart{}, nil)
		deps.cartSvc.EXPECT().PatchMetadata(gomock.Any(), int64(1),
			map[string]string{cart.MetadataKeyLoyaltyPromoID: "301"}).Return(cart.Cart{}, nil)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(1)).Return(c, nil)

		_, err := svc.ApplyLoyaltyPoints(context.Background(), 1, 7, 0)
		require.NoError(t, err)
	})

	t.Run("挂码失败时回滚已创建的优惠", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(1)).
			Return(cart.Cart{ID: 1, CustomerID: 7, Total: 300}, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, FirstName: "Alice", HasAccount: true}, nil)
		deps.loyaltySvc.EXPECT().GetPoints(gomock.Any(), int64(7)).Return(int64(500), nil)
		deps.loyaltySvc.EXPECT().CalculateDiscountForPoints(gomock.Any(), int64(500)).Return(int64(500), nil)
		deps.promotionSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p promotion.Promotion) (promotion.Promotion, error) {
				p.ID = 301
				return p, nil
			})
		deps.cartSvc.EXPECT().AttachPromotionCodes(gomock.Any(), int64(1), gomock.Any()).
			Return(cart.Cart{}, errors.New("db 挂了"))
		// 补偿: 停用刚创建的优惠
		deps.promotionSvc.EXPECT().UpdateStatus(gomock.Any(), int64(301), promotion.StatusInactive).Return(nil)

		_, err := svc.ApplyLoyaltyPoints(context.Background(), 1, 7, 0)
		assert.Error(t, err)
	})
}

func TestRemoveLoyaltyPoints(t *testing.T) {
	t.Parallel()

	t.Run("没有抵扣时报错", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(1)).
			Return(cart.Cart{ID: 1, CustomerID: 7}, nil)
		_, err := svc.RemoveLoyaltyPoints(context.Background(), 1, 7)
		assert.ErrorIs(t, err, ErrNoLoyaltyPromotion)
	})

	t.Run("移除抵扣并停用优惠", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		c := cart.Cart{
			ID:         1,
			CustomerID: 7,
			Metadata:   map[string]string{cart.MetadataKeyLoyaltyPromoID: "301"},
			Promotions: []cart.AppliedPromotion{{ID: 301, Code: "LOYALTY-ALICE-X7K2QB"}},
		}
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(1)).Return(c, nil)
		deps.promotionSvc.EXPECT().FindByID(gomock.Any(), int64(301)).
			Return(promotion.Promotion{ID: 301, Code: "LOYALTY-ALICE-X7K2QB"}, nil)
		deps.cartSvc.EXPECT().DetachPromotionCodes(gomock.Any(), int64(1), []string{"LOYALTY-ALICE-X7K2QB"}).
			Return(cart.Cart{}, nil)
		deps.cartSvc.EXPECT().PatchMetadata(gomock.Any(), int64(1),
			map[string]string{cart.MetadataKeyLoyaltyPromoID: ""}).Return(cart.Cart{}, nil)
		deps.promotionSvc.EXPECT().UpdateStatus(gomock.Any(), int64(301), promotion.StatusInactive).Return(nil)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(1)).Return(cart.Cart{ID: 1, CustomerID: 7}, nil)

		_, err := svc.RemoveLoyaltyPoints(context.Background(), 1, 7)
		require.NoError(t, err)
	})
}

func TestSettleOrderPoints(t *testing.T) {
	t.Parallel()

	t.Run("游客订单不结算", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.orderSvc.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(order.Order{ID: 1, BuyerID: 0, CartID: 11, Total: 10000}, nil)
		require.NoError(t, svc.SettleOrderPoints(context.Background(), 1))
	})

	t.Run("无账号的买家不结算", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		deps.orderSvc.EXPECT().FindByID(gomock.Any(), int64(6)).
			Return(order.Order{ID: 6, BuyerID: 7, CartID: 16, Total: 10000}, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: false}, nil)
		require.NoError(t, svc.SettleOrderPoints(context.Background(), 6))
	})

	t.Run("普通订单按金额累计积分", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		o := order.Order{ID: 2, BuyerID: 7, CartID: 12, Total: 10000}
		deps.orderSvc.EXPECT().FindByID(gomock.Any(), int64(2)).Return(o, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true}, nil)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(12)).
			Return(cart.Cart{ID: 12, CustomerID: 7}, nil)
		deps.loyaltySvc.EXPECT().CalculatePointsForOrder(gomock.Any(), int64(10000)).
			Return(int64(100), nil)
		deps.producer.EXPECT().Produce(gomock.Any(), loyalty.PointEvent{
			Key:    "settle:order:2",
			Uid:    7,
			Action: loyalty.PointActionAdd,
			Points: 100,
			Biz:    "order",
			BizId:  2,
		}).Return(nil)

		require.NoError(t, svc.SettleOrderPoints(context.Background(), 2))
	})

	t.Run("重复触发只结算一次", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		o := order.Order{ID: 3, BuyerID: 7, CartID: 13, Total: 10000}
		deps.orderSvc.EXPECT().FindByID(gomock.Any(), int64(3)).Return(o, nil).Times(2)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true}, nil).Times(2)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(13)).
			Return(cart.Cart{ID: 13, CustomerID: 7}, nil)
		deps.loyaltySvc.EXPECT().CalculatePointsForOrder(gomock.Any(), int64(10000)).
			Return(int64(100), nil)
		deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.SettleOrderPoints(context.Background(), 3))
		// 支付事件再触发一次, 幂等键挡住
		require.NoError(t, svc.SettleOrderPoints(context.Background(), 3))
	})

	t.Run("抵扣订单扣减积分并停用优惠", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		o := order.Order{ID: 4, BuyerID: 7, CartID: 14, Total: 9700}
		deps.orderSvc.EXPECT().FindByID(gomock.Any(), int64(4)).Return(o, nil)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true}, nil)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(14)).Return(cart.Cart{
			ID:         14,
			CustomerID: 7,
			Metadata:   map[string]string{cart.MetadataKeyLoyaltyPromoID: "301"},
		}, nil)
		deps.promotionSvc.EXPECT().FindByID(gomock.Any(), int64(301)).
			Return(promotion.Promotion{
				ID:     301,
				Code:   "LOYALTY-ALICE-X7K2QB",
				Status: promotion.StatusActive,
				Method: promotion.ApplicationMethod{
					Type:       promotion.MethodTypeFixed,
					TargetType: promotion.TargetTypeOrder,
					Value:      300,
				},
			}, nil)
		deps.loyaltySvc.EXPECT().CalculatePointsFromAmount(gomock.Any(), int64(300)).
			Return(int64(300), nil)
		deps.producer.EXPECT().Produce(gomock.Any(), loyalty.PointEvent{
			Key:    "settle:order:4",
			Uid:    7,
			Action: loyalty.PointActionDeduct,
			Points: 300,
			Biz:    "order",
			BizId:  4,
		}).Return(nil)
		deps.promotionSvc.EXPECT().UpdateStatus(gomock.Any(), int64(301), promotion.StatusInactive).Return(nil)

		require.NoError(t, svc.SettleOrderPoints(context.Background(), 4))
	})

	t.Run("结算失败回滚幂等键可以重试", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)
		o := order.Order{ID: 5, BuyerID: 7, CartID: 15, Total: 10000}
		deps.orderSvc.EXPECT().FindByID(gomock.Any(), int64(5)).Return(o, nil).Times(2)
		deps.customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7, HasAccount: true}, nil).Times(2)
		deps.cartSvc.EXPECT().GetCart(gomock.Any(), int64(15)).
			Return(cart.Cart{ID: 15, CustomerID: 7}, nil).Times(2)
		deps.loyaltySvc.EXPECT().CalculatePointsForOrder(gomock.Any(), int64(10000)).
			Return(int64(100), nil).Times(2)
		gomock.InOrder(
			deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq 挂了")),
			deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil),
		)

		require.Error(t, svc.SettleOrderPoints(context.Background(), 5))
		require.NoError(t, svc.SettleOrderPoints(context.Background(), 5))
	})
}

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
	"testing"

	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/event"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/order"
	ordermocks "github.com/ecodeclub/eshop/internal/order/mocks"
	"github.com/ecodeclub/eshop/internal/promotion"
	promotionmocks "github.com/ecodeclub/eshop/internal/promotion/mocks"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type rejectAll struct {
	err error
}

func (v *rejectAll) Validate(_ context.Context, _ domain.Cart) error {
	return v.err
}

type ServiceTestSuite struct {
	suite.Suite
	svc          Service
	promotionSvc *promotionmocks.MockService
	orderSvc     *ordermocks.MockService
}

func (s *ServiceTestSuite) SetupTest() {
	t := s.T()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	q := testioc.InitMQ()
	producer, err := event.NewCartEventProducer(q)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	s.promotionSvc = promotionmocks.NewMockService(ctrl)
	s.orderSvc = ordermocks.NewMockService(ctrl)
	s.svc = NewCartService(repository.NewCartRepository(dao.NewGORMCartDAO(db)),
		s.promotionSvc, s.orderSvc, producer)
}

func (s *ServiceTestSuite) TestMetadata() {
	t := s.T()
	ctx := context.Background()

	c, err := s.svc.Create(ctx, domain.Cart{CurrencyCode: "pkr", Total: 10000})
	require.NoError(t, err)

	t.Run("合并写入", func(t *testing.T) {
		got, err := s.svc.PatchMetadata(ctx, c.ID, map[string]string{
			"loyalty_promo_id": "42",
			"note":             "gift",
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"loyalty_promo_id": "42",
			"note":             "gift",
		}, got.Metadata)
		assert.Equal(t, int64(42), got.LoyaltyPromotionID())
	})

	t.Run("空串删除键", func(t *testing.T) {
		got, err := s.svc.PatchMetadata(ctx, c.ID, map[string]string{
			"loyalty_promo_id": "",
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"note": "gift"}, got.Metadata)
		assert.Equal(t, int64(0), got.LoyaltyPromotionID())
	})

	t.Run("购物车不存在", func(t *testing.T) {
		_, err := s.svc.PatchMetadata(ctx, 99999, map[string]string{"k": "v"})
		assert.ErrorIs(t, err, ErrCartNotFound)
	})
}

func (s *ServiceTestSuite) TestPromotions() {
	t := s.T()
	ctx := context.Background()

	c, err := s.svc.Create(ctx, domain.Cart{CurrencyCode: "pkr", Total: 10000})
	require.NoError(t, err)

	active := promotion.Promotion{
		ID:     1001,
		Code:   "SUMMER-10",
		Status: promotion.StatusActive,
	}
	expired := promotion.Promotion{
		ID:     1002,
		Code:   "EXPIRED-5",
		Status: promotion.StatusInactive,
	}

	t.Run("只挂生效中的优惠", func(t *testing.T) {
		// 失效的和不存在的码都会被跳过
		s.promotionSvc.EXPECT().
			FindByCodes(gomock.Any(), []string{"SUMMER-10", "EXPIRED-5", "NO-SUCH"}).
			Return([]promotion.Promotion{active, expired}, nil)
		got, err := s.svc.AttachPromotionCodes(ctx, c.ID, []string{"SUMMER-10", "EXPIRED-5", "NO-SUCH"})
		require.NoError(t, err)
		assert.Equal(t, []domain.AppliedPromotion{
			{ID: active.ID, Code: "SUMMER-10"},
		}, got.Promotions)
	})

	t.Run("重复挂载幂等", func(t *testing.T) {
		s.promotionSvc.EXPECT().
			FindByCodes(gomock.Any(), []string{"SUMMER-10"}).
			Return([]promotion.Promotion{active}, nil)
		got, err := s.svc.AttachPromotionCodes(ctx, c.ID, []string{"SUMMER-10"})
		require.NoError(t, err)
		assert.Len(t, got.Promotions, 1)
	})

	t.Run("摘掉优惠", func(t *testing.T) {
		got, err := s.svc.DetachPromotionCodes(ctx, c.ID, []string{"SUMMER-10"})
		require.NoError(t, err)
		assert.Empty(t, got.Promotions)
	})
}

func (s *ServiceTestSuite) TestTransferCustomer() {
	t := s.T()
	ctx := context.Background()

	c, err := s.svc.Create(ctx, domain.Cart{CurrencyCode: "pkr", Total: 5000})
	require.NoError(t, err)
	require.Equal(t, int64(0), c.CustomerID)

	got, err := s.svc.TransferCustomer(ctx, c.ID, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), got.CustomerID)

	// 重复认领是幂等的
	got, err = s.svc.TransferCustomer(ctx, c.ID, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), got.CustomerID)
}

func (s *ServiceTestSuite) TestCompleteCart() {
	t := s.T()
	ctx := context.Background()

	c, err := s.svc.Create(ctx, domain.Cart{CustomerID: 1001, CurrencyCode: "pkr", Total: 20000})
	require.NoError(t, err)

	t.Run("校验器拒绝时不生成订单", func(t *testing.T) {
		wantErr := errors.New("积分余额不足")
		v := &rejectAll{err: wantErr}
		s.svc.RegisterCheckoutValidator(v)
		_, err := s.svc.CompleteCart(ctx, c.ID, 3001)
		assert.ErrorIs(t, err, wantErr)

		v.err = nil
	})

	t.Run("校验通过生成订单", func(t *testing.T) {
		s.orderSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o order.Order) (order.Order, error) {
				assert.Equal(t, int64(1001), o.BuyerID)
				assert.Equal(t, c.ID, o.CartID)
				assert.Equal(t, int64(3001), o.PaymentID)
				assert.Equal(t, int64(20000), o.Total)
				assert.Equal(t, "pkr", o.CurrencyCode)
				o.ID = 2001
				o.SN = "SN-2001"
				return o, nil
			})
		o, err := s.svc.CompleteCart(ctx, c.ID, 3001)
		require.NoError(t, err)
		assert.Equal(t, int64(2001), o.ID)
		assert.Equal(t, "SN-2001", o.SN)

		got, err := s.svc.GetCart(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, got.Status)
	})

	t.Run("完成之后拒绝一切修改", func(t *testing.T) {
		_, err := s.svc.CompleteCart(ctx, c.ID, 3002)
		assert.ErrorIs(t, err, ErrCartCompleted)
		_, err = s.svc.PatchMetadata(ctx, c.ID, map[string]string{"k": "v"})
		assert.ErrorIs(t, err, ErrCartCompleted)
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

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
	"sync"
	"testing"

	"github.com/ecodeclub/eshop/internal/loyalty/internal/domain"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/repository"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeSettingsCache 单测里不起 Redis, 用内存实现代替
type fakeSettingsCache struct {
	mu  sync.Mutex
	val *domain.Settings
}

func (f *fakeSettingsCache) GetSettings(_ context.Context) (domain.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.val == nil {
		return domain.Settings{}, cache.ErrSettingsNotCached
	}
	return *f.val, nil
}

func (f *fakeSettingsCache) SetSettings(_ context.Context, s domain.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.val = &s
	return nil
}

func (f *fakeSettingsCache) DelSettings(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.val = nil
	return nil
}

type ServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc Service
}

func (s *ServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(s.T(), err)
	require.NoError(s.T(), dao.InitTables(db))
	s.db = db
	d := dao.NewLoyaltyGORMDAO(db)
	repo := repository.NewLoyaltyRepository(d, &fakeSettingsCache{})
	s.svc = NewLoyaltyService(repo)
}

func (s *ServiceTestSuite) TestPoints() {
	t := s.T()
	ctx := context.Background()
	uid := int64(1001)

	t.Run("没有记录时余额为0", func(t *testing.T) {
		points, err := s.svc.GetPoints(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, int64(0), points)
	})

	t.Run("加积分", func(t *testing.T) {
		require.NoError(t, s.svc.AddPoints(ctx, uid, 100))
		require.NoError(t, s.svc.AddPoints(ctx, uid, 50))
		points, err := s.svc.GetPoints(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, int64(150), points)
	})

	t.Run("扣积分", func(t *testing.T) {
		require.NoError(t, s.svc.DeductPoints(ctx, uid, 30))
		points, err := s.svc.GetPoints(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, int64(120), points)
	})

	t.Run("余额不足", func(t *testing.T) {
		err := s.svc.DeductPoints(ctx, uid, 10000)
		assert.ErrorIs(t, err, ErrInsufficientPoints)
	})

	t.Run("非法数量", func(t *testing.T) {
		assert.ErrorIs(t, s.svc.AddPoints(ctx, uid, 0), ErrInvalidPoints)
		assert.ErrorIs(t, s.svc.AddPoints(ctx, uid, -1), ErrInvalidPoints)
		assert.ErrorIs(t, s.svc.DeductPoints(ctx, uid, 0), ErrInvalidPoints)
	})
}

func (s *ServiceTestSuite) TestSettings() {
	t := s.T()
	ctx := context.Background()

	t.Run("首次读取返回默认配置", func(t *testing.T) {
		settings, err := s.svc.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Settings{
			PointsPerCurrency: 1,
			RedemptionRate:    1,
			CurrencyCode:      "pkr",
			Enabled:           true,
		}, settings)
	})

	t.Run("更新之后读到新配置", func(t *testing.T) {
		updated, err := s.svc.UpdateSettings(ctx, domain.Settings{
			PointsPerCurrency: 100,
			RedemptionRate:    0.5,
			CurrencyCode:      "usd",
			Enabled:           true,
		})
		require.NoError(t, err)
		assert.Equal(t, "usd", updated.CurrencyCode)

		settings, err := s.svc.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, updated, settings)
	})
}

func (s *ServiceTestSuite) TestCalculate() {
	t := s.T()
	ctx := context.Background()

	_, err := s.svc.UpdateSettings(ctx, domain.Settings{
		PointsPerCurrency: 100,
		RedemptionRate:    1,
		CurrencyCode:      "pkr",
		Enabled:           true,
	})
	require.NoError(t, err)

	t.Run("订单金额折算积分时向下取整", func(t *testing.T) {
		testCases := []struct {
			name  string
			total int64
			want  int64
		}{
			{name: "整除", total: 1000, want: 10},
			{name: "有余数", total: 1099, want: 10},
			{name: "不足一分", total: 99, want: 0},
			{name: "零金额", total: 0, want: 0},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				points, err := s.svc.CalculatePointsForOrder(ctx, tc.total)
				require.NoError(t, err)
				assert.Equal(t, tc.want, points)
			})
		}
	})

	t.Run("积分折算抵扣金额", func(t *testing.T) {
		discount, err := s.svc.CalculateDiscountForPoints(ctx, 120)
		require.NoError(t, err)
		assert.Equal(t, int64(120), discount)
	})

	t.Run("抵扣金额反推积分", func(t *testing.T) {
		points, err := s.svc.CalculatePointsFromAmount(ctx, 120)
		require.NoError(t, err)
		assert.Equal(t, int64(120), points)

		_, err = s.svc.CalculatePointsFromAmount(ctx, -1)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("兑换率小于1时两个方向不互逆", func(t *testing.T) {
		_, err := s.svc.UpdateSettings(ctx, domain.Settings{
			PointsPerCurrency: 100,
			RedemptionRate:    0.3,
			CurrencyCode:      "pkr",
			Enabled:           true,
		})
		require.NoError(t, err)

		discount, err := s.svc.CalculateDiscountForPoints(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(33), discount)

		points, err := s.svc.CalculatePointsFromAmount(ctx, 33)
		require.NoError(t, err)
		assert.Equal(t, int64(9), points)
	})

	t.Run("停用之后不再累计也不再抵扣", func(t *testing.T) {
		_, err := s.svc.UpdateSettings(ctx, domain.Settings{
			PointsPerCurrency: 100,
			RedemptionRate:    1,
			CurrencyCode:      "pkr",
			Enabled:           false,
		})
		require.NoError(t, err)

		points, err := s.svc.CalculatePointsForOrder(ctx, 1000)
		require.NoError(t, err)
		assert.Equal(t, int64(0), points)

		discount, err := s.svc.CalculateDiscountForPoints(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(0), discount)

		// 停用时按原值放行, 由调用方决定要不要使用
		amount, err := s.svc.CalculatePointsFromAmount(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(100), amount)
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

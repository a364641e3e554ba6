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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/eshop/internal/loyalty/internal/domain"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrInsufficientPoints = dao.ErrInsufficientPoints
	ErrRecordNotFound     = dao.ErrRecordNotFound
)

type LoyaltyRepository interface {
	GetPointsByUID(ctx context.Context, uid int64) (int64, error)
	AddPoints(ctx context.Context, uid, amount int64) error
	DeductPoints(ctx context.Context, uid, amount int64) error
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, s domain.Settings) (domain.Settings, error)
}

type loyaltyRepository struct {
	dao    dao.LoyaltyDAO
	cache  cache.SettingsCache
	logger *elog.Component
}

func NewLoyaltyRepository(d dao.LoyaltyDAO, c cache.SettingsCache) LoyaltyRepository {
	return &loyaltyRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

// GetPointsByUID 没有记录视为 0 分
func (r *loyaltyRepository) GetPointsByUID(ctx context.Context, uid int64) (int64, error) {
	p, err := r.dao.FindPointByUID(ctx, uid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return p.Points, nil
}

func (r *loyaltyRepository) AddPoints(ctx context.Context, uid, amount int64) error {
	return r.dao.AddPoints(ctx, uid, amount)
}

func (r *loyaltyRepository) DeductPoints(ctx context.Context, uid, amount int64) error {
	return r.dao.DeductPoints(ctx, uid, amount)
}

func (r *loyaltyRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	s, err := r.cache.GetSettings(ctx)
	if err == nil {
		return s, nil
	}
	entity, err := r.dao.EnsureSettings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	res := r.toDomainSettings(entity)
	if err = r.cache.SetSettings(ctx, res); err != nil {
		r.logger.Error("缓存积分配置失败", elog.FieldErr(err))
	}
	return res, nil
}

func (r *loyaltyRepository) UpdateSettings(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	// 先保证配置行存在, 再整体覆盖
	if _, err := r.dao.EnsureSettings(ctx); err != nil {
		return domain.Settings{}, err
	}
	entity, err := r.dao.UpdateSettings(ctx, dao.LoyaltySetting{
		PointsPerCurrency: s.PointsPerCurrency,
		RedemptionRate:    s.RedemptionRate,
		CurrencyCode:      s.CurrencyCode,
		IsEnabled:         s.Enabled,
	})
	if err != nil {
		return domain.Settings{}, err
	}
	if err = r.cache.DelSettings(ctx); err != nil {
		r.logger.Error("删除积分配置缓存失败", elog.FieldErr(err))
	}
	return r.toDomainSettings(entity), nil
}

func (r *loyaltyRepository) toDomainSettings(s dao.LoyaltySetting) domain.Settings {
	return domain.Settings{
		PointsPerCurrency: s.PointsPerCurrency,
		RedemptionRate:    s.RedemptionRate,
		CurrencyCode:      s.CurrencyCode,
		Enabled:           s.IsEnabled,
	}
}

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
	"math"

	"github.com/ecodeclub/eshop/internal/loyalty/internal/domain"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/repository"
)

var (
	ErrInsufficientPoints = repository.ErrInsufficientPoints
	ErrInvalidAmount      = errors.New("金额不能为负数")
	ErrInvalidPoints      = errors.New("积分数量非法")
)

//go:generate mockgen -source=./service.go -package=loyaltymocks -destination=../../mocks/loyalty.mock.go Service
type Service interface {
	GetPoints(ctx context.Context, uid int64) (int64, error)
	AddPoints(ctx context.Context, uid, amount int64) error
	DeductPoints(ctx context.Context, uid, amount int64) error
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, s domain.Settings) (domain.Settings, error)

	// CalculatePointsForOrder 按订单金额算应得积分
	CalculatePointsForOrder(ctx context.Context, orderTotal int64) (int64, error)
	// CalculateDiscountForPoints 按积分算可抵扣的货币金额
	CalculateDiscountForPoints(ctx context.Context, points int64) (int64, error)
	// CalculatePointsFromAmount 按抵扣金额反推所需积分。
	// 两个方向都取整, 所以和 CalculateDiscountForPoints 不是严格互逆的,
	// 结算逻辑依赖各自调用点的方向, 不要试图对齐两者。
	CalculatePointsFromAmount(ctx context.Context, amount int64) (int64, error)
}

type service struct {
	repo repository.LoyaltyRepository
}

func NewLoyaltyService(repo repository.LoyaltyRepository) Service {
	return &service{repo: repo}
}

func (s *service) GetPoints(ctx context.Context, uid int64) (int64, error) {
	return s.repo.GetPointsByUID(ctx, uid)
}

func (s *service) AddPoints(ctx context.Context, uid, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPoints, amount)
	}
	return s.repo.AddPoints(ctx, uid, amount)
}

func (s *service) DeductPoints(ctx context.Context, uid, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPoints, amount)
	}
	return s.repo.DeductPoints(ctx, uid, amount)
}

func (s *service) GetSettings(ctx context.Context) (domain.Settings, error) {
	return s.repo.GetSettings(ctx)
}

func (s *service) UpdateSettings(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	return s.repo.UpdateSettings(ctx, settings)
}

func (s *service) CalculatePointsForOrder(ctx context.Context, orderTotal int64) (int64, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	if !settings.Enabled || settings.PointsPerCurrency <= 0 {
		return 0, nil
	}
	return int64(math.Floor(float64(orderTotal) / settings.PointsPerCurrency)), nil
}

func (s *service) CalculateDiscountForPoints(ctx context.Context, points int64) (int64, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	if !settings.Enabled || settings.RedemptionRate <= 0 {
		return 0, nil
	}
	return int64(math.Floor(float64(points) / settings.RedemptionRate)), nil
}

func (s *service) CalculatePointsFromAmount(ctx context.Context, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	if !settings.Enabled || settings.RedemptionRate <= 0 {
		return amount, nil
	}
	return int64(math.Floor(float64(amount) * settings.RedemptionRate)), nil
}

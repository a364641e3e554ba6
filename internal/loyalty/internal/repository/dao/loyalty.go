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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrInsufficientPoints = errors.New("积分不足")
	ErrRecordNotFound     = gorm.ErrRecordNotFound
)

type LoyaltyDAO interface {
	FindPointByUID(ctx context.Context, uid int64) (LoyaltyPoint, error)
	AddPoints(ctx context.Context, uid, amount int64) error
	DeductPoints(ctx context.Context, uid, amount int64) error
	EnsureSettings(ctx context.Context) (LoyaltySetting, error)
	UpdateSettings(ctx context.Context, s LoyaltySetting) (LoyaltySetting, error)
}

type loyaltyDAO struct {
	db *egorm.Component
}

func NewLoyaltyGORMDAO(db *egorm.Component) LoyaltyDAO {
	return &loyaltyDAO{db: db}
}

func (g *loyaltyDAO) FindPointByUID(ctx context.Context, uid int64) (LoyaltyPoint, error) {
	var res LoyaltyPoint
	err := g.db.WithContext(ctx).First(&res, "uid = ?", uid).Error
	return res, err
}

func (g *loyaltyDAO) AddPoints(ctx context.Context, uid, amount int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var p LoyaltyPoint
		res := tx.Where(LoyaltyPoint{Uid: uid}).
			Attrs(LoyaltyPoint{Points: amount, Ctime: now, Utime: now}).
			FirstOrCreate(&p)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 已有积分记录, 累加
			if err := tx.Model(&LoyaltyPoint{}).
				Where("uid = ?", uid).
				Updates(map[string]any{
					"points": gorm.Expr("points + ?", amount),
					"utime":  now,
				}).Error; err != nil {
				return fmt.Errorf("累加积分失败: %w", err)
			}
		}
		return nil
	})
}

func (g *loyaltyDAO) DeductPoints(ctx context.Context, uid, amount int64) error {
	// 条件更新保证余额不会变负, 不满足时一行都不动
	res := g.db.WithContext(ctx).Model(&LoyaltyPoint{}).
		Where("uid = ? AND points >= ?", uid, amount).
		Updates(map[string]any{
			"points": gorm.Expr("points - ?", amount),
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: uid=%d, amount=%d", ErrInsufficientPoints, uid, amount)
	}
	return nil
}

// EnsureSettings 懒初始化唯一的配置行, 所有读路径都走这一个入口
func (g *loyaltyDAO) EnsureSettings(ctx context.Context) (LoyaltySetting, error) {
	now := time.Now().UnixMilli()
	var s LoyaltySetting
	err := g.db.WithContext(ctx).
		Where(LoyaltySetting{Id: settingsID}).
		Attrs(LoyaltySetting{
			PointsPerCurrency: 1,
			RedemptionRate:    1,
			CurrencyCode:      "pkr",
			IsEnabled:         true,
			Ctime:             now,
			Utime:             now,
		}).
		FirstOrCreate(&s).Error
	return s, err
}

func (g *loyaltyDAO) UpdateSettings(ctx context.Context, s LoyaltySetting) (LoyaltySetting, error) {
	s.Id = settingsID
	s.Utime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Model(&LoyaltySetting{}).
		Where("id = ?", settingsID).
		Updates(map[string]any{
			"points_per_currency": s.PointsPerCurrency,
			"redemption_rate":     s.RedemptionRate,
			"currency_code":       s.CurrencyCode,
			"is_enabled":          s.IsEnabled,
			"utime":               s.Utime,
		}).Error
	if err != nil {
		return LoyaltySetting{}, err
	}
	var res LoyaltySetting
	err = g.db.WithContext(ctx).First(&res, "id = ?", settingsID).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&LoyaltyPoint{}, &LoyaltySetting{})
}

// 配置是单行表
const settingsID = 1

type LoyaltyPoint struct {
	Id     int64 `gorm:"primaryKey;autoIncrement;comment:积分主表自增ID"`
	Uid    int64 `gorm:"not null;uniqueIndex:unq_uid,comment:用户ID"`
	Points int64 `gorm:"not null;default 0;comment:可用积分, 永远>=0"`
	Ctime  int64
	Utime  int64
}

type LoyaltySetting struct {
	Id                int64   `gorm:"primaryKey;comment:固定为1"`
	PointsPerCurrency float64 `gorm:"not null;default 1;comment:多少货币单位获得1积分"`
	RedemptionRate    float64 `gorm:"not null;default 1;comment:抵扣1货币单位所需积分"`
	CurrencyCode      string  `gorm:"type:varchar(16);not null;comment:货币代码"`
	IsEnabled         bool    `gorm:"not null;default true;comment:积分功能开关"`
	Ctime             int64
	Utime             int64
}

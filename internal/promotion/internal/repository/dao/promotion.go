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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicatedCode 优惠码全局唯一
	ErrDuplicatedCode = errors.New("优惠码重复")
)

type PromotionDAO interface {
	Create(ctx context.Context, p Promotion, rules []PromotionRule) (int64, error)
	FindByID(ctx context.Context, id int64) (Promotion, []PromotionRule, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Promotion, map[int64][]PromotionRule, error)
	FindByCode(ctx context.Context, code string) (Promotion, []PromotionRule, error)
	FindByCodes(ctx context.Context, codes []string) ([]Promotion, map[int64][]PromotionRule, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	Delete(ctx context.Context, id int64) error
}

type GORMPromotionDAO struct {
	db *egorm.Component
}

func NewGORMPromotionDAO(db *egorm.Component) PromotionDAO {
	return &GORMPromotionDAO{db: db}
}

func (d *GORMPromotionDAO) Create(ctx context.Context, p Promotion, rules []PromotionRule) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		for i := range rules {
			rules[i].PromotionId = p.Id
			rules[i].Ctime, rules[i].Utime = now, now
		}
		if len(rules) == 0 {
			return nil
		}
		return tx.Create(&rules).Error
	})
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicatedCode
		}
	}
	if err != nil {
		return 0, err
	}
	return p.Id, nil
}

func (d *GORMPromotionDAO) FindByID(ctx context.Context, id int64) (Promotion, []PromotionRule, error) {
	var p Promotion
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		return Promotion{}, nil, err
	}
	rules, err := d.findRules(ctx, []int64{id})
	if err != nil {
		return Promotion{}, nil, err
	}
	return p, rules[id], nil
}

func (d *GORMPromotionDAO) FindByIDs(ctx context.Context, ids []int64) ([]Promotion, map[int64][]PromotionRule, error) {
	var ps []Promotion
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&ps).Error
	if err != nil {
		return nil, nil, err
	}
	rules, err := d.findRules(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return ps, rules, nil
}

func (d *GORMPromotionDAO) FindByCode(ctx context.Context, code string) (Promotion, []PromotionRule, error) {
	var p Promotion
	err := d.db.WithContext(ctx).Where("code = ?", code).First(&p).Error
	if err != nil {
		return Promotion{}, nil, err
	}
	rules, err := d.findRules(ctx, []int64{p.Id})
	if err != nil {
		return Promotion{}, nil, err
	}
	return p, rules[p.Id], nil
}

func (d *GORMPromotionDAO) FindByCodes(ctx context.Context, codes []string) ([]Promotion, map[int64][]PromotionRule, error) {
	var ps []Promotion
	err := d.db.WithContext(ctx).Where("code IN ?", codes).Find(&ps).Error
	if err != nil {
		return nil, nil, err
	}
	ids := make([]int64, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.Id)
	}
	rules, err := d.findRules(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return ps, rules, nil
}

func (d *GORMPromotionDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	res := d.db.WithContext(ctx).Model(&Promotion{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *GORMPromotionDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("promotion_id = ?", id).Delete(&PromotionRule{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Promotion{}).Error
	})
}

func (d *GORMPromotionDAO) findRules(ctx context.Context, promotionIDs []int64) (map[int64][]PromotionRule, error) {
	if len(promotionIDs) == 0 {
		return map[int64][]PromotionRule{}, nil
	}
	var rules []PromotionRule
	err := d.db.WithContext(ctx).Where("promotion_id IN ?", promotionIDs).Find(&rules).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64][]PromotionRule, len(promotionIDs))
	for _, r := range rules {
		res[r.PromotionId] = append(res[r.PromotionId], r)
	}
	return res, nil
}

type Promotion struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:优惠自增ID"`
	Code        string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_promotion_code;comment:优惠码"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=草稿 2=生效 3=停用"`
	IsAutomatic bool   `gorm:"not null;default:false;comment:是否自动应用"`
	MethodType  string `gorm:"type:varchar(32);not null;comment:优惠方式 fixed/percentage"`
	TargetType  string `gorm:"type:varchar(32);not null;comment:作用对象 order/items"`
	// Value 固定金额时单位为分
	Value              int64  `gorm:"not null;comment:优惠值"`
	CurrencyCode       string `gorm:"type:varchar(16);not null;comment:币种"`
	CampaignName       string `gorm:"type:varchar(255);comment:活动名"`
	CampaignUsageLimit int64  `gorm:"not null;default:0;comment:活动使用次数上限 0=不限"`
	Ctime              int64
	Utime              int64
}

type PromotionRule struct {
	Id          int64                     `gorm:"primaryKey;autoIncrement"`
	PromotionId int64                     `gorm:"not null;index:idx_promotion_id;comment:优惠自增ID"`
	Attribute   string                    `gorm:"type:varchar(64);not null;comment:规则属性, 比如 customer_id"`
	Operator    string                    `gorm:"type:varchar(16);not null;comment:比较符, 比如 eq"`
	Values      sqlx.JsonColumn[[]string] `gorm:"type:json;comment:规则取值JSON"`
	Ctime       int64
	Utime       int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Promotion{}, &PromotionRule{})
}

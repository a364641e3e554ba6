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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrCartCompleted 购物车已经结账, 不允许再改
	ErrCartCompleted = errors.New("购物车已经完成")
)

type CartDAO interface {
	Insert(ctx context.Context, c Cart) (int64, error)
	FindByID(ctx context.Context, id int64) (Cart, error)
	FindPromotions(ctx context.Context, cartID int64) ([]CartPromotion, error)
	UpdateMetadata(ctx context.Context, id int64, metadata map[string]string) error
	UpdateCustomer(ctx context.Context, id, customerID int64) error
	UpdateTotal(ctx context.Context, id, total int64) error
	// MarkCompleted 只有活跃购物车能被结账
	MarkCompleted(ctx context.Context, id int64) error
	// AttachPromotions 重复的优惠直接跳过, 返回实际新挂上的条数
	AttachPromotions(ctx context.Context, ps []CartPromotion) (int64, error)
	DetachPromotions(ctx context.Context, cartID int64, promotionIDs []int64) (int64, error)
}

type GORMCartDAO struct {
	db *egorm.Component
}

func NewGORMCartDAO(db *egorm.Component) CartDAO {
	return &GORMCartDAO{db: db}
}

func (d *GORMCartDAO) Insert(ctx context.Context, c Cart) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	if c.Status == 0 {
		c.Status = 1
	}
	err := d.db.WithContext(ctx).Create(&c).Error
	if err != nil {
		return 0, err
	}
	return c.Id, nil
}

func (d *GORMCartDAO) FindByID(ctx context.Context, id int64) (Cart, error) {
	var c Cart
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *GORMCartDAO) FindPromotions(ctx context.Context, cartID int64) ([]CartPromotion, error) {
	var ps []CartPromotion
	err := d.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id ASC").
		Find(&ps).Error
	return ps, err
}

func (d *GORMCartDAO) UpdateMetadata(ctx context.Context, id int64, metadata map[string]string) error {
	return d.updateActive(ctx, id, map[string]any{
		"metadata": sqlx.JsonColumn[map[string]string]{Val: metadata, Valid: true},
	})
}

func (d *GORMCartDAO) UpdateCustomer(ctx context.Context, id, customerID int64) error {
	return d.updateActive(ctx, id, map[string]any{
		"customer_id": customerID,
	})
}

func (d *GORMCartDAO) UpdateTotal(ctx context.Context, id, total int64) error {
	return d.updateActive(ctx, id, map[string]any{
		"total": total,
	})
}

func (d *GORMCartDAO) MarkCompleted(ctx context.Context, id int64) error {
	return d.updateActive(ctx, id, map[string]any{
		"status": 2,
	})
}

func (d *GORMCartDAO) AttachPromotions(ctx context.Context, ps []CartPromotion) (int64, error) {
	if len(ps) == 0 {
		return 0, nil
	}
	now := time.Now().UnixMilli()
	for i := range ps {
		ps[i].Ctime, ps[i].Utime = now, now
	}
	res := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ps)
	return res.RowsAffected, res.Error
}

func (d *GORMCartDAO) DetachPromotions(ctx context.Context, cartID int64, promotionIDs []int64) (int64, error) {
	if len(promotionIDs) == 0 {
		return 0, nil
	}
	res := d.db.WithContext(ctx).
		Where("cart_id = ? AND promotion_id IN ?", cartID, promotionIDs).
		Delete(&CartPromotion{})
	return res.RowsAffected, res.Error
}

// updateActive 带状态保护的更新, 购物车完成之后一律拒绝
func (d *GORMCartDAO) updateActive(ctx context.Context, id int64, values map[string]any) error {
	values["utime"] = time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&Cart{}).
		Where("id = ? AND status = ?", id, 1).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var c Cart
		if err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
			return err
		}
		return ErrCartCompleted
	}
	return nil
}

type Cart struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:购物车自增ID"`
	CustomerId   int64  `gorm:"not null;default:0;index:idx_customer_id;comment:客户自增ID 0=游客"`
	CurrencyCode string `gorm:"type:varchar(16);not null;comment:币种"`
	// Total 应付金额, 单位为分
	Total    int64                              `gorm:"not null;default:0;comment:应付金额"`
	Metadata sqlx.JsonColumn[map[string]string] `gorm:"type:json;comment:扩展元数据JSON"`
	Status   uint8                              `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=活跃 2=已完成"`
	Ctime    int64
	Utime    int64
}

type CartPromotion struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	CartId      int64  `gorm:"not null;uniqueIndex:uniq_cart_promotion;comment:购物车自增ID"`
	PromotionId int64  `gorm:"not null;uniqueIndex:uniq_cart_promotion;comment:优惠自增ID"`
	Code        string `gorm:"type:varchar(255);not null;comment:优惠码"`
	Ctime       int64
	Utime       int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Cart{}, &CartPromotion{})
}

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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type OrderDAO interface {
	Create(ctx context.Context, o Order) (int64, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindByPaymentID(ctx context.Context, paymentID int64) (Order, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
}

type GORMOrderDAO struct {
	db *egorm.Component
}

func NewGORMOrderDAO(db *egorm.Component) OrderDAO {
	return &GORMOrderDAO{db: db}
}

func (d *GORMOrderDAO) Create(ctx context.Context, o Order) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := d.db.WithContext(ctx).Create(&o).Error
	if err != nil {
		return 0, err
	}
	return o.Id, nil
}

func (d *GORMOrderDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (d *GORMOrderDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&o).Error
	return o, err
}

func (d *GORMOrderDAO) FindByPaymentID(ctx context.Context, paymentID int64) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&o).Error
	return o, err
}

func (d *GORMOrderDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
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

type Order struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID 0=游客"`
	CartId  int64  `gorm:"not null;index:idx_cart_id;comment:购物车自增ID"`
	// PaymentId 0 表示还没有关联支付单
	PaymentId    int64  `gorm:"not null;default:0;index:idx_payment_id;comment:支付自增ID"`
	Total        int64  `gorm:"not null;comment:实付总价;单位为分, 999表示9.99元"`
	CurrencyCode string `gorm:"type:varchar(16);not null;comment:币种"`
	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=未支付 2=已完成 3=已关闭"`
	Ctime        int64
	Utime        int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{})
}

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

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound    = gorm.ErrRecordNotFound
	ErrDuplicatedEmail   = errors.New("邮箱已经注册")
	ErrCustomerNotExists = errors.New("客户不存在")
)

type CustomerDAO interface {
	Insert(ctx context.Context, c Customer) (int64, error)
	FindByID(ctx context.Context, id int64) (Customer, error)
	FindByEmail(ctx context.Context, email string) (Customer, error)
	UpdateTier(ctx context.Context, customerID, tierID int64) error
	AddSpend(ctx context.Context, customerID, amount int64) (int64, error)
	InsertTier(ctx context.Context, t CustomerTier) (int64, error)
	FindTierByID(ctx context.Context, id int64) (CustomerTier, error)
	ListTiers(ctx context.Context) ([]CustomerTier, error)
}

type GORMCustomerDAO struct {
	db *egorm.Component
}

func NewGORMCustomerDAO(db *egorm.Component) CustomerDAO {
	return &GORMCustomerDAO{db: db}
}

func (d *GORMCustomerDAO) Insert(ctx context.Context, c Customer) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Create(&c).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicatedEmail
		}
	}
	if err != nil {
		return 0, err
	}
	return c.Id, nil
}

func (d *GORMCustomerDAO) FindByID(ctx context.Context, id int64) (Customer, error) {
	var c Customer
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *GORMCustomerDAO) FindByEmail(ctx context.Context, email string) (Customer, error) {
	var c Customer
	err := d.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	return c, err
}

func (d *GORMCustomerDAO) UpdateTier(ctx context.Context, customerID, tierID int64) error {
	res := d.db.WithContext(ctx).Model(&Customer{}).
		Where("id = ?", customerID).
		Updates(map[string]any{
			"tier_id": tierID,
			"utime":   time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCustomerNotExists
	}
	return nil
}

func (d *GORMCustomerDAO) AddSpend(ctx context.Context, customerID, amount int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Customer{}).
		Where("id = ?", customerID).
		Updates(map[string]any{
			"total_spend": gorm.Expr("total_spend + ?", amount),
			"utime":       time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrCustomerNotExists
	}
	c, err := d.FindByID(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return c.TotalSpend, nil
}

func (d *GORMCustomerDAO) InsertTier(ctx context.Context, t CustomerTier) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime, t.Utime = now, now
	err := d.db.WithContext(ctx).Create(&t).Error
	if err != nil {
		return 0, err
	}
	return t.Id, nil
}

func (d *GORMCustomerDAO) FindTierByID(ctx context.Context, id int64) (CustomerTier, error) {
	var t CustomerTier
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	return t, err
}

func (d *GORMCustomerDAO) ListTiers(ctx context.Context) ([]CustomerTier, error) {
	var ts []CustomerTier
	err := d.db.WithContext(ctx).Order("id ASC").Find(&ts).Error
	return ts, err
}

type Customer struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:客户自增ID"`
	Email      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_customer_email;comment:邮箱"`
	FirstName  string `gorm:"type:varchar(128);comment:名字"`
	HasAccount bool   `gorm:"not null;default:false;comment:是否注册账号"`
	TierId     int64  `gorm:"not null;default:0;index:idx_tier_id;comment:会员等级ID 0=未分配"`
	TotalSpend int64  `gorm:"not null;default:0;comment:累计消费金额 单位分"`
	Ctime      int64
	Utime      int64
}

type CustomerTier struct {
	Id   int64  `gorm:"primaryKey;autoIncrement;comment:等级自增ID"`
	Name string `gorm:"type:varchar(128);not null;comment:等级名"`
	// PromotionId 等级对应的自动优惠
	PromotionId int64 `gorm:"not null;comment:优惠自增ID"`
	MinSpend    int64 `gorm:"not null;default:0;comment:升级门槛 0=只能手工分配"`
	Ctime       int64
	Utime       int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Customer{}, &CustomerTier{})
}

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

	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindByPaymentID(ctx context.Context, paymentID int64) (domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) (int64, error) {
	return r.dao.Create(ctx, dao.Order{
		SN:           order.SN,
		BuyerId:      order.BuyerID,
		CartId:       order.CartID,
		PaymentId:    order.PaymentID,
		Total:        order.Total,
		CurrencyCode: order.CurrencyCode,
		Status:       order.Status.ToUint8(),
	})
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o), nil
}

func (r *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	o, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o), nil
}

func (r *orderRepository) FindByPaymentID(ctx context.Context, paymentID int64) (domain.Order, error) {
	o, err := r.dao.FindByPaymentID(ctx, paymentID)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o), nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	return r.dao.UpdateStatus(ctx, id, status.ToUint8())
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:           o.Id,
		SN:           o.SN,
		BuyerID:      o.BuyerId,
		CartID:       o.CartId,
		PaymentID:    o.PaymentId,
		Total:        o.Total,
		CurrencyCode: o.CurrencyCode,
		Status:       domain.OrderStatus(o.Status),
	}
}

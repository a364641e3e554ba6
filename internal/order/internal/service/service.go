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

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/event"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var ErrOrderNotFound = repository.ErrRecordNotFound

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	// Create 生成订单序列号并落库, 成功后广播下单事件
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindByPaymentID(ctx context.Context, paymentID int64) (domain.Order, error)
	// CompleteOrder 已收到用户付款, 不管订单状态为什么一律标记为已完成
	CompleteOrder(ctx context.Context, id int64) error
	CloseOrder(ctx context.Context, id int64) error
}

type service struct {
	repo     repository.OrderRepository
	producer event.OrderEventProducer
	node     *snowflake.Node
	logger   *elog.Component
}

func NewService(repo repository.OrderRepository, producer event.OrderEventProducer, node *snowflake.Node) Service {
	return &service{
		repo:     repo,
		producer: producer,
		node:     node,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	order.SN = s.node.Generate().String()
	if order.Status == 0 {
		order.Status = domain.StatusUnpaid
	}
	id, err := s.repo.Create(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = id
	evt := event.OrderPlacedEvent{
		OrderID: order.ID,
		OrderSN: order.SN,
		BuyerID: order.BuyerID,
		CartID:  order.CartID,
		Total:   order.Total,
	}
	if err = s.producer.Produce(ctx, evt); err != nil {
		// 下单已经成功, 事件丢了只影响异步结算, 记日志人工补偿
		s.logger.Error("发送下单事件失败",
			elog.FieldErr(err),
			elog.Any("事件", evt),
		)
	}
	return order, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *service) FindByPaymentID(ctx context.Context, paymentID int64) (domain.Order, error) {
	return s.repo.FindByPaymentID(ctx, paymentID)
}

func (s *service) CompleteOrder(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusCompleted)
}

func (s *service) CloseOrder(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusClosed)
}

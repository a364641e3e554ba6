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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/eshop/internal/customer/internal/service"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// OrderPlacedConsumer 下单事件驱动等级升级, 失败只记日志,
// 下一单会重新按累计消费算一遍
type OrderPlacedConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderPlacedConsumer(svc service.Service, q mq.MQ) (*OrderPlacedConsumer, error) {
	groupID := "customer"
	consumer, err := q.Consumer(order.OrderPlacedEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderPlacedConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *OrderPlacedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费下单事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *OrderPlacedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt order.OrderPlacedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	err = c.svc.UpgradeTierOnOrder(ctx, evt.BuyerID, evt.Total)
	if err != nil {
		c.logger.Error("按订单升级会员等级失败",
			elog.FieldErr(err),
			elog.Int64("buyerID", evt.BuyerID),
			elog.Int64("orderID", evt.OrderID))
	}
	return nil
}

func (c *OrderPlacedConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}

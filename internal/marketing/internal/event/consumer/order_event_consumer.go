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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/eshop/internal/marketing/internal/service"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// OrderEventConsumer 下单即触发积分结算, 不等支付回调。
// 结算侧有幂等键, 支付事件再触发一次也不会重复记分。
type OrderEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderEventConsumer(svc service.Service, q mq.MQ) (*OrderEventConsumer, error) {
	groupID := "marketing"
	consumer, err := q.Consumer(order.OrderPlacedEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *OrderEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费下单事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *OrderEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt order.OrderPlacedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	err = c.svc.SettleOrderPoints(ctx, evt.OrderID)
	if err != nil {
		// 结算失败不阻塞消费, 支付事件还会再触发一次
		c.logger.Error("结算订单积分失败",
			elog.FieldErr(err),
			elog.Int64("orderID", evt.OrderID))
	}
	return nil
}

func (c *OrderEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}

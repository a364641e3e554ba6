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

	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/marketing/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// 购物车变更和归属转移两类事件载荷相同, 处理逻辑也相同: 触发一次对账。
// 对账是幂等的, 消息重复投递没有副作用。
type cartEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	topic    string
	logger   *elog.Component
}

type CartUpdatedConsumer struct {
	*cartEventConsumer
}

type CartTransferredConsumer struct {
	*cartEventConsumer
}

func NewCartUpdatedConsumer(svc service.Service, q mq.MQ) (*CartUpdatedConsumer, error) {
	c, err := newCartEventConsumer(svc, q, cart.CartUpdatedEventName)
	if err != nil {
		return nil, err
	}
	return &CartUpdatedConsumer{cartEventConsumer: c}, nil
}

func NewCartTransferredConsumer(svc service.Service, q mq.MQ) (*CartTransferredConsumer, error) {
	c, err := newCartEventConsumer(svc, q, cart.CartTransferredEventName)
	if err != nil {
		return nil, err
	}
	return &CartTransferredConsumer{cartEventConsumer: c}, nil
}

func newCartEventConsumer(svc service.Service, q mq.MQ, topic string) (*cartEventConsumer, error) {
	groupID := "marketing"
	consumer, err := q.Consumer(topic, groupID)
	if err != nil {
		return nil, err
	}
	return &cartEventConsumer{
		svc:      svc,
		consumer: consumer,
		topic:    topic,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *cartEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费购物车事件失败",
					elog.FieldErr(err),
					elog.String("topic", c.topic))
			}
		}
	}()
}

func (c *cartEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt cart.CartUpdatedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	_, err = c.svc.ReconcileTierPromotions(ctx, evt.CartID)
	if err != nil {
		// 吞掉错误, 下一次购物车变更会再触发对账
		c.logger.Error("对账购物车优惠失败",
			elog.FieldErr(err),
			elog.String("topic", c.topic),
			elog.Int64("cartID", evt.CartID))
	}
	return nil
}

func (c *cartEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}

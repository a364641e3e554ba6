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

	"github.com/ecodeclub/eshop/internal/marketing/internal/event"
	"github.com/ecodeclub/eshop/internal/marketing/internal/service"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentEventConsumer 支付回调侧只带 paymentID, 先反查订单再结算
type PaymentEventConsumer struct {
	svc      service.Service
	orderSvc order.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentEventConsumer(svc service.Service, orderSvc order.Service, q mq.MQ) (*PaymentEventConsumer, error) {
	groupID := "marketing"
	consumer, err := q.Consumer(event.PaymentCapturedEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentEventConsumer{
		svc:      svc,
		orderSvc: orderSvc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PaymentEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费支付事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PaymentEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt event.PaymentCapturedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	o, err := c.orderSvc.FindByPaymentID(ctx, evt.PaymentID)
	if err != nil {
		c.logger.Error("按支付单查找订单失败",
			elog.FieldErr(err),
			elog.Int64("paymentID", evt.PaymentID))
		return nil
	}

	err = c.svc.SettleOrderPoints(ctx, o.ID)
	if err != nil {
		c.logger.Error("结算订单积分失败",
			elog.FieldErr(err),
			elog.Int64("orderID", o.ID))
	}
	return nil
}

func (c *PaymentEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}

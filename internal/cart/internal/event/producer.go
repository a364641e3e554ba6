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

	"github.com/ecodeclub/mq-api"
)

const (
	CartUpdatedEventName     = "cart_update_events"
	CartTransferredEventName = "cart_customer_transferred_events"
)

// CartUpdatedEvent 购物车内容有变化时广播, 驱动营销侧对账
type CartUpdatedEvent struct {
	CartID     int64 `json:"cartId"`
	CustomerID int64 `json:"customerId"`
}

// CartTransferredEvent 游客购物车归属到登录用户时广播
type CartTransferredEvent struct {
	CartID     int64 `json:"cartId"`
	CustomerID int64 `json:"customerId"`
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go CartEventProducer
type CartEventProducer interface {
	ProduceUpdated(ctx context.Context, evt CartUpdatedEvent) error
	ProduceTransferred(ctx context.Context, evt CartTransferredEvent) error
}

type cartEventProducer struct {
	updated     mq.Producer
	transferred mq.Producer
}

func NewCartEventProducer(q mq.MQ) (CartEventProducer, error) {
	updated, err := q.Producer(CartUpdatedEventName)
	if err != nil {
		return nil, err
	}
	transferred, err := q.Producer(CartTransferredEventName)
	if err != nil {
		return nil, err
	}
	return &cartEventProducer{
		updated:     updated,
		transferred: transferred,
	}, nil
}

func (p *cartEventProducer) ProduceUpdated(ctx context.Context, evt CartUpdatedEvent) error {
	return produce(ctx, p.updated, &evt)
}

func (p *cartEventProducer) ProduceTransferred(ctx context.Context, evt CartTransferredEvent) error {
	return produce(ctx, p.transferred, &evt)
}

func produce(ctx context.Context, p mq.Producer, evt any) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.Produce(ctx, &mq.Message{
		Value: data,
	})
	return err
}

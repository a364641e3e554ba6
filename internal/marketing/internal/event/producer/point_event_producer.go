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

package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/eshop/internal/loyalty"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./point_event_producer.go -package=evtmocks -destination=../mocks/point.mock.go PointEventProducer
type PointEventProducer interface {
	Produce(ctx context.Context, evt loyalty.PointEvent) error
}

type pointEventProducer struct {
	producer mq.Producer
}

func NewPointEventProducer(q mq.MQ) (PointEventProducer, error) {
	producer, err := q.Producer(loyalty.PointEventName)
	if err != nil {
		return nil, err
	}
	return &pointEventProducer{
		producer: producer,
	}, nil
}

func (s *pointEventProducer) Produce(ctx context.Context, evt loyalty.PointEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = s.producer.Produce(ctx, &mq.Message{
		Key:   []byte(evt.Key),
		Value: data,
	})
	return err
}

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

	"github.com/ecodeclub/eshop/internal/loyalty/internal/event/cache"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// PointEventConsumer 消费积分变更事件。
// 消息至少投递一次, 用 Key 做幂等。
type PointEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	cache    cache.PointEventCache
	logger   *elog.Component
}

func NewPointEventConsumer(svc service.Service, q mq.MQ, c cache.PointEventCache) (*PointEventConsumer, error) {
	groupID := "loyalty"
	consumer, err := q.Consumer(PointEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &PointEventConsumer{
		svc:      svc,
		consumer: consumer,
		cache:    c,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *PointEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费积分事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PointEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt PointEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	ok, err := c.cache.SetNXEventKey(ctx, evt.Key)
	if err != nil {
		return fmt.Errorf("设置事件去重键失败: %w", err)
	}
	if !ok {
		// 重复投递
		return nil
	}

	switch evt.Action {
	case ActionAdd:
		err = c.svc.AddPoints(ctx, evt.Uid, evt.Points)
	case ActionDeduct:
		err = c.svc.DeductPoints(ctx, evt.Uid, evt.Points)
	default:
		err = fmt.Errorf("未知的积分变更动作: %s", evt.Action)
	}

	if err != nil {
		// 释放去重键, 让重投有机会成功
		if _, er := c.cache.DelEventKey(ctx, evt.Key); er != nil {
			c.logger.Error("删除事件去重键失败", elog.FieldErr(er), elog.String("key", evt.Key))
		}
		c.logger.Error("变更积分失败",
			elog.FieldErr(err),
			elog.Any("事件", evt),
		)
	}
	return nil
}

func (c *PointEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}

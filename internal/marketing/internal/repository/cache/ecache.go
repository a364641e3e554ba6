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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
)

// SettlementCache 保证一个订单只结算一次积分。
// 下单事件和支付事件都可能触发结算, 谁先抢到键谁结算。
type SettlementCache interface {
	SetNXSettled(ctx context.Context, orderID int64) (bool, error)
	DelSettled(ctx context.Context, orderID int64) (int64, error)
}

type settlementECache struct {
	ec ecache.Cache
}

func NewSettlementECache(ec ecache.Cache) SettlementCache {
	return &settlementECache{
		ec: &ecache.NamespaceCache{
			Namespace: "marketing:",
			C:         ec,
		},
	}
}

func (c *settlementECache) SetNXSettled(ctx context.Context, orderID int64) (bool, error) {
	return c.ec.SetNX(ctx, c.settleKey(orderID), 1, 7*24*time.Hour)
}

func (c *settlementECache) DelSettled(ctx context.Context, orderID int64) (int64, error) {
	return c.ec.Delete(ctx, c.settleKey(orderID))
}

// 注意 Namespace 设置
func (c *settlementECache) settleKey(orderID int64) string {
	return fmt.Sprintf("settle:order:%d", orderID)
}

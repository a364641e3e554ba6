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
	"time"

	"github.com/ecodeclub/ecache"
)

type PointEventCache interface {
	SetNXEventKey(ctx context.Context, key string) (bool, error)
	DelEventKey(ctx context.Context, key string) (int64, error)
}

type pointEventECache struct {
	ec ecache.Cache
}

func NewPointEventECache(ec ecache.Cache) PointEventCache {
	return &pointEventECache{
		ec: &ecache.NamespaceCache{
			Namespace: "loyalty:",
			C:         ec,
		},
	}
}

func (c *pointEventECache) SetNXEventKey(ctx context.Context, key string) (bool, error) {
	return c.ec.SetNX(ctx, c.eventKey(key), 1, 24*time.Hour)
}

func (c *pointEventECache) DelEventKey(ctx context.Context, key string) (int64, error) {
	return c.ec.Delete(ctx, c.eventKey(key))
}

// 注意 Namespace 设置
func (c *pointEventECache) eventKey(key string) string {
	return "event:" + key
}

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
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/domain"
	"github.com/pkg/errors"
)

const settingsExpiration = 10 * time.Minute

var ErrSettingsNotCached = errors.New("积分配置未缓存")

type SettingsCache interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	SetSettings(ctx context.Context, s domain.Settings) error
	DelSettings(ctx context.Context) error
}

type settingsECache struct {
	ec ecache.Cache
}

func NewSettingsECache(ec ecache.Cache) SettingsCache {
	return &settingsECache{
		ec: &ecache.NamespaceCache{
			Namespace: "loyalty:",
			C:         ec,
		},
	}
}

func (c *settingsECache) GetSettings(ctx context.Context) (domain.Settings, error) {
	val := c.ec.Get(ctx, c.settingsKey())
	if val.KeyNotFound() {
		return domain.Settings{}, ErrSettingsNotCached
	}
	if val.Err != nil {
		return domain.Settings{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var s domain.Settings
	err := json.Unmarshal([]byte(val.Val.(string)), &s)
	if err != nil {
		return domain.Settings{}, errors.Wrap(err, "反序列化积分配置失败")
	}
	return s, nil
}

func (c *settingsECache) SetSettings(ctx context.Context, s domain.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "序列化积分配置失败")
	}
	return c.ec.Set(ctx, c.settingsKey(), string(data), settingsExpiration)
}

func (c *settingsECache) DelSettings(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, c.settingsKey())
	return err
}

// 注意 Namespace 设置
func (c *settingsECache) settingsKey() string {
	return "settings"
}

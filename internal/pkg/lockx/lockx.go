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

package lockx

import (
	"context"
	"errors"
	"time"
)

var ErrLockTimeout = errors.New("获取锁超时")

// Locker 按 key 提供互斥锁。waitTimeout 是等待获取锁的上限,
// 超时返回 ErrLockTimeout。ttl 是锁的自动过期时间,
// 持有者崩溃后到期自动释放。
//
//go:generate mockgen -source=./lockx.go -package=lockxmocks -destination=./mocks/lockx.mock.go -typed Locker
type Locker interface {
	Acquire(ctx context.Context, key string, waitTimeout, ttl time.Duration) (Lock, error)
}

// Lock 释放必须是幂等的, 释放未持有或已过期的锁不报错。
type Lock interface {
	Release(ctx context.Context) error
}

// 获取失败后的重试间隔
const retryInterval = 50 * time.Millisecond

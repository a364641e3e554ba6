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

//go:build e2e

package lockx

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLocker(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	require.NoError(t, client.Ping(context.Background()).Err())
	locker := NewRedisLocker(client)

	t.Run("应该成功_获取并释放", func(t *testing.T) {
		lock, err := locker.Acquire(context.Background(), "test:lock:1", time.Second, 10*time.Second)
		require.NoError(t, err)
		require.NoError(t, lock.Release(context.Background()))

		// 释放后可以立即再次获取
		lock, err = locker.Acquire(context.Background(), "test:lock:1", time.Second, 10*time.Second)
		require.NoError(t, err)
		require.NoError(t, lock.Release(context.Background()))
	})

	t.Run("应该失败_锁被持有_等待超时", func(t *testing.T) {
		held, err := locker.Acquire(context.Background(), "test:lock:2", time.Second, 10*time.Second)
		require.NoError(t, err)
		defer held.Release(context.Background())

		_, err = locker.Acquire(context.Background(), "test:lock:2", 200*time.Millisecond, 10*time.Second)
		assert.ErrorIs(t, err, ErrLockTimeout)
	})

	t.Run("应该成功_TTL到期自动释放", func(t *testing.T) {
		_, err := locker.Acquire(context.Background(), "test:lock:3", time.Second, 200*time.Millisecond)
		require.NoError(t, err)

		lock, err := locker.Acquire(context.Background(), "test:lock:3", time.Second, 10*time.Second)
		require.NoError(t, err)
		require.NoError(t, lock.Release(context.Background()))
	})

	t.Run("释放过期锁不影响新持有者", func(t *testing.T) {
		first, err := locker.Acquire(context.Background(), "test:lock:4", time.Second, 200*time.Millisecond)
		require.NoError(t, err)

		second, err := locker.Acquire(context.Background(), "test:lock:4", time.Second, 10*time.Second)
		require.NoError(t, err)

		require.NoError(t, first.Release(context.Background()))
		_, err = locker.Acquire(context.Background(), "test:lock:4", 200*time.Millisecond, 10*time.Second)
		assert.ErrorIs(t, err, ErrLockTimeout)

		require.NoError(t, second.Release(context.Background()))
	})
}

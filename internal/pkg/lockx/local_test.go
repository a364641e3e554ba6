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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_Acquire(t *testing.T) {
	t.Parallel()

	t.Run("应该成功_锁空闲时直接获取", func(t *testing.T) {
		t.Parallel()
		locker := NewLocalLocker()
		lock, err := locker.Acquire(context.Background(), "cart:lock:1", time.Second, 10*time.Second)
		require.NoError(t, err)
		require.NoError(t, lock.Release(context.Background()))
	})

	t.Run("应该失败_锁被持有_等待超时", func(t *testing.T) {
		t.Parallel()
		locker := NewLocalLocker()
		held, err := locker.Acquire(context.Background(), "cart:lock:2", time.Second, 10*time.Second)
		require.NoError(t, err)

		_, err = locker.Acquire(context.Background(), "cart:lock:2", 150*time.Millisecond, 10*time.Second)
		assert.ErrorIs(t, err, ErrLockTimeout)

		require.NoError(t, held.Release(context.Background()))
	})

	t.Run("应该成功_锁TTL过期后可以再次获取", func(t *testing.T) {
		t.Parallel()
		locker := NewLocalLocker()
		_, err := locker.Acquire(context.Background(), "cart:lock:3", time.Second, 100*time.Millisecond)
		require.NoError(t, err)

		lock, err := locker.Acquire(context.Background(), "cart:lock:3", time.Second, 10*time.Second)
		require.NoError(t, err)
		require.NoError(t, lock.Release(context.Background()))
	})

	t.Run("应该成功_不同key互不阻塞", func(t *testing.T) {
		t.Parallel()
		locker := NewLocalLocker()
		_, err := locker.Acquire(context.Background(), "cart:lock:4", time.Second, 10*time.Second)
		require.NoError(t, err)
		_, err = locker.Acquire(context.Background(), "cart:lock:5", time.Second, 10*time.Second)
		require.NoError(t, err)
	})
}

func TestLocalLock_Release(t *testing.T) {
	t.Parallel()

	t.Run("重复释放是无害的", func(t *testing.T) {
		t.Parallel()
		locker := NewLocalLocker()
		lock, err := locker.Acquire(context.Background(), "cart:lock:6", time.Second, 10*time.Second)
		require.NoError(t, err)
		require.NoError(t, lock.Release(context.Background()))
		require.NoError(t, lock.Release(context.Background()))
	})

	t.Run("过期后释放不会误删他人持有的锁", func(t *testing.T) {
		t.Parallel()
		locker := NewLocalLocker()
		first, err := locker.Acquire(context.Background(), "cart:lock:7", time.Second, 50*time.Millisecond)
		require.NoError(t, err)

		// 等待过期后由第二个持有者拿到
		second, err := locker.Acquire(context.Background(), "cart:lock:7", time.Second, 10*time.Second)
		require.NoError(t, err)

		require.NoError(t, first.Release(context.Background()))

		// 第二个持有者的锁仍然有效
		_, err = locker.Acquire(context.Background(), "cart:lock:7", 150*time.Millisecond, 10*time.Second)
		assert.ErrorIs(t, err, ErrLockTimeout)

		require.NoError(t, second.Release(context.Background()))
	})
}

func TestLocalLocker_MutualExclusion(t *testing.T) {
	t.Parallel()

	// 并发场景: 同一个购物车的两次触发, 后者阻塞到前者释放,
	// 临界区内的写入不会交错
	locker := NewLocalLocker()
	const workers = 8
	const rounds = 20

	var counter int
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				lock, err := locker.Acquire(context.Background(), "cart:lock:8", 5*time.Second, 10*time.Second)
				require.NoError(t, err)
				cur := counter
				time.Sleep(time.Millisecond)
				counter = cur + 1
				require.NoError(t, lock.Release(context.Background()))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, workers*rounds, counter)
}

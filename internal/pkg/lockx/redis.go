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
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/redis/go-redis/v9"
)

// 只删除自己持有的锁, 过期后被别人拿走的锁不能误删
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
else
    return 0
end
`

type RedisLocker struct {
	client redis.Cmdable
}

func NewRedisLocker(client redis.Cmdable) Locker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, waitTimeout, ttl time.Duration) (Lock, error) {
	token := shortuuid.New()
	deadline := time.Now().Add(waitTimeout)
	for {
		ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("获取锁失败: %w", err)
		}
		if ok {
			return &redisLock{client: l.client, key: key, token: token}, nil
		}
		if !time.Now().Add(retryInterval).Before(deadline) {
			return nil, fmt.Errorf("%w: key=%s", ErrLockTimeout, key)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

type redisLock struct {
	client redis.Cmdable
	key    string
	token  string
}

func (l *redisLock) Release(ctx context.Context) error {
	err := l.client.Eval(ctx, releaseScript, []string{l.key}, l.token).Err()
	if errors.Is(err, redis.Nil) {
		// 锁已过期或被释放过
		return nil
	}
	return err
}

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
	"fmt"
	"sync"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// LocalLocker 进程内实现, 语义与 RedisLocker 一致, 用于单机部署和测试。
type LocalLocker struct {
	mu      sync.Mutex
	entries map[string]localEntry
}

type localEntry struct {
	token    string
	expireAt time.Time
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{entries: make(map[string]localEntry)}
}

func (l *LocalLocker) Acquire(ctx context.Context, key string, waitTimeout, ttl time.Duration) (Lock, error) {
	token := shortuuid.New()
	deadline := time.Now().Add(waitTimeout)
	for {
		if l.tryAcquire(key, token, ttl) {
			return &localLock{locker: l, key: key, token: token}, nil
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

func (l *LocalLocker) tryAcquire(key, token string, ttl time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, held := l.entries[key]
	if held && time.Now().Before(e.expireAt) {
		return false
	}
	l.entries[key] = localEntry{token: token, expireAt: time.Now().Add(ttl)}
	return true
}

func (l *LocalLocker) release(key, token string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok := l.entries[key]; ok && e.token == token {
		delete(l.entries, key)
	}
}

type localLock struct {
	locker *LocalLocker
	key    string
	token  string
}

func (l *localLock) Release(_ context.Context) error {
	l.locker.release(l.key, l.token)
	return nil
}

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

package saga

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaga_Run(t *testing.T) {
	t.Parallel()

	t.Run("应该成功_全部步骤按序执行_不触发补偿", func(t *testing.T) {
		t.Parallel()
		var trace []string
		s := New("apply-loyalty-points",
			Step{
				Name:       "create-promotion",
				Run:        func(ctx context.Context) error { trace = append(trace, "create"); return nil },
				Compensate: func(ctx context.Context) error { trace = append(trace, "comp-create"); return nil },
			},
			Step{
				Name:       "attach-promotion-code",
				Run:        func(ctx context.Context) error { trace = append(trace, "attach"); return nil },
				Compensate: func(ctx context.Context) error { trace = append(trace, "comp-attach"); return nil },
			},
		)
		require.NoError(t, s.Run(context.Background()))
		assert.Equal(t, []string{"create", "attach"}, trace)
	})

	t.Run("应该失败_中途失败_已完成步骤逆序补偿", func(t *testing.T) {
		t.Parallel()
		var trace []string
		mockErr := errors.New("mock: 写元数据失败")
		s := New("apply-loyalty-points",
			Step{
				Name:       "create-promotion",
				Run:        func(ctx context.Context) error { trace = append(trace, "create"); return nil },
				Compensate: func(ctx context.Context) error { trace = append(trace, "comp-create"); return nil },
			},
			Step{
				Name:       "attach-promotion-code",
				Run:        func(ctx context.Context) error { trace = append(trace, "attach"); return nil },
				Compensate: func(ctx context.Context) error { trace = append(trace, "comp-attach"); return nil },
			},
			Step{
				Name: "patch-cart-metadata",
				Run:  func(ctx context.Context) error { return mockErr },
			},
		)
		err := s.Run(context.Background())
		assert.ErrorIs(t, err, mockErr)
		assert.Equal(t, []string{"create", "attach", "comp-attach", "comp-create"}, trace)
	})

	t.Run("失败步骤自身不补偿_无补偿的步骤跳过", func(t *testing.T) {
		t.Parallel()
		var trace []string
		s := New("remove-loyalty-points",
			Step{
				Name: "detach-promotion-code",
				Run:  func(ctx context.Context) error { trace = append(trace, "detach"); return nil },
			},
			Step{
				Name:       "clear-cart-metadata",
				Run:        func(ctx context.Context) error { trace = append(trace, "clear"); return nil },
				Compensate: func(ctx context.Context) error { trace = append(trace, "comp-clear"); return nil },
			},
			Step{
				Name:       "deactivate-promotion",
				Run:        func(ctx context.Context) error { return errors.New("mock: 更新状态失败") },
				Compensate: func(ctx context.Context) error { trace = append(trace, "comp-deactivate"); return nil },
			},
		)
		err := s.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, []string{"detach", "clear", "comp-clear"}, trace)
	})

	t.Run("补偿失败不会中断其余补偿", func(t *testing.T) {
		t.Parallel()
		var trace []string
		s := New("apply-loyalty-points",
			Step{
				Name:       "first",
				Run:        func(ctx context.Context) error { return nil },
				Compensate: func(ctx context.Context) error { trace = append(trace, "comp-first"); return nil },
			},
			Step{
				Name:       "second",
				Run:        func(ctx context.Context) error { return nil },
				Compensate: func(ctx context.Context) error { return errors.New("mock: 补偿失败") },
			},
			Step{
				Name: "third",
				Run:  func(ctx context.Context) error { return errors.New("mock: 执行失败") },
			},
		)
		err := s.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, []string{"comp-first"}, trace)
	})
}

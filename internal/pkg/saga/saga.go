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

// Package saga 提供跨模块多步写入的补偿式执行。
// 各步骤按序执行, 任一步失败时按逆序调用已完成步骤的补偿动作,
// 用来代替跨存储的事务。
package saga

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
)

type Step struct {
	Name string
	Run  func(ctx context.Context) error
	// Compensate 可以为 nil, 表示该步骤无需补偿。
	// 补偿是尽力而为的, 失败只记日志, 不会中断其余补偿。
	Compensate func(ctx context.Context) error
}

type Saga struct {
	name   string
	steps  []Step
	logger *elog.Component
}

func New(name string, steps ...Step) *Saga {
	return &Saga{
		name:   name,
		steps:  steps,
		logger: elog.DefaultLogger,
	}
}

func (s *Saga) Run(ctx context.Context) error {
	for i, step := range s.steps {
		if err := step.Run(ctx); err != nil {
			s.compensate(ctx, i)
			return fmt.Errorf("saga %s 步骤 %s 执行失败: %w", s.name, step.Name, err)
		}
	}
	return nil
}

func (s *Saga) compensate(ctx context.Context, failed int) {
	for i := failed - 1; i >= 0; i-- {
		step := s.steps[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			s.logger.Error("saga补偿失败",
				elog.String("saga", s.name),
				elog.String("step", step.Name),
				elog.FieldErr(err))
		}
	}
}

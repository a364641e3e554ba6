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

//go:build wireinject

package order

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/eshop/internal/order/internal/event"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, node *snowflake.Node) (*Module, error) {
	wire.Build(wire.Struct(
		new(Module), "*"),
		InitService,
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component, q mq.MQ, node *snowflake.Node) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewGORMOrderDAO(db)
		r := repository.NewRepository(d)
		p, err := event.NewOrderEventProducer(q)
		if err != nil {
			panic(err)
		}
		svc = service.NewService(r, p, node)
	})
	return svc
}

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

package loyalty

import (
	"context"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/event"
	evtcache "github.com/ecodeclub/eshop/internal/loyalty/internal/event/cache"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/repository"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/service"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(wire.Struct(
		new(Module), "*"),
		InitService,
		web.NewHandler,
		web.NewAdminHandler,
		initPointEventConsumer,
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component, ec ecache.Cache) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewLoyaltyGORMDAO(db)
		c := cache.NewSettingsECache(ec)
		r := repository.NewLoyaltyRepository(d, c)
		svc = service.NewLoyaltyService(r)
	})
	return svc
}

func initPointEventConsumer(svc service.Service, q mq.MQ, ec ecache.Cache) *event.PointEventConsumer {
	c, err := event.NewPointEventConsumer(svc, q, evtcache.NewPointEventECache(ec))
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}

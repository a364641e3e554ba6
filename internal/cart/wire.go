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

package cart

import (
	"sync"

	"github.com/ecodeclub/eshop/internal/cart/internal/event"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/cart/internal/service"
	"github.com/ecodeclub/eshop/internal/cart/internal/web"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/promotion"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, promotionM *promotion.Module, orderM *order.Module) (*Module, error) {
	wire.Build(wire.Struct(
		new(Module), "*"),
		InitService,
		web.NewHandler,
		wire.FieldsOf(new(*promotion.Module), "Svc"),
		wire.FieldsOf(new(*order.Module), "Svc"),
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component, q mq.MQ, promotionSvc promotion.Service, orderSvc order.Service) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewGORMCartDAO(db)
		r := repository.NewCartRepository(d)
		p, err := event.NewCartEventProducer(q)
		if err != nil {
			panic(err)
		}
		svc = service.NewCartService(r, promotionSvc, orderSvc, p)
	})
	return svc
}

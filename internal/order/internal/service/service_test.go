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

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/event"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type ServiceTestSuite struct {
	suite.Suite
	svc Service
}

func (s *ServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(s.T(), err)
	require.NoError(s.T(), dao.InitTables(db))
	q := testioc.InitMQ()
	producer, err := event.NewOrderEventProducer(q)
	require.NoError(s.T(), err)
	node, err := snowflake.NewNode(1)
	require.NoError(s.T(), err)
	s.svc = NewService(repository.NewRepository(dao.NewGORMOrderDAO(db)), producer, node)
}

func (s *ServiceTestSuite) TestCreate() {
	t := s.T()
	ctx := context.Background()

	consumer, err := testioc.InitMQ().Consumer(event.OrderPlacedEventName, "test_order")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = consumer.Close()
	})

	created, err := s.svc.Create(ctx, domain.Order{
		BuyerID:      1001,
		CartID:       2001,
		PaymentID:    3001,
		Total:        99900,
		CurrencyCode: "pkr",
	})
	require.NoError(t, err)
	assert.True(t, created.ID > 0)
	assert.NotEmpty(t, created.SN)
	assert.Equal(t, domain.StatusUnpaid, created.Status)

	t.Run("广播下单事件", func(t *testing.T) {
		cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		msg, err := consumer.Consume(cctx)
		require.NoError(t, err)
		var evt event.OrderPlacedEvent
		require.NoError(t, json.Unmarshal(msg.Value, &evt))
		assert.Equal(t, event.OrderPlacedEvent{
			OrderID: created.ID,
			OrderSN: created.SN,
			BuyerID: 1001,
			CartID:  2001,
			Total:   99900,
		}, evt)
	})

	t.Run("按支付单号查询", func(t *testing.T) {
		o, err := s.svc.FindByPaymentID(ctx, 3001)
		require.NoError(t, err)
		assert.Equal(t, created.ID, o.ID)
	})

	t.Run("按序列号查询", func(t *testing.T) {
		o, err := s.svc.FindBySN(ctx, created.SN)
		require.NoError(t, err)
		assert.Equal(t, created.ID, o.ID)
	})

	t.Run("完成订单", func(t *testing.T) {
		require.NoError(t, s.svc.CompleteOrder(ctx, created.ID))
		o, err := s.svc.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, o.Status)
	})

	t.Run("查不到返回错误", func(t *testing.T) {
		_, err := s.svc.FindByID(ctx, 99999)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

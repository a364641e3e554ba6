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
	"sync"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/event"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/promotion"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrCartNotFound  = repository.ErrCartNotFound
	ErrCartCompleted = repository.ErrCartCompleted
)

// CheckoutValidator 结账前的最后一道闸, 任何一个校验失败都会中止结账
type CheckoutValidator interface {
	Validate(ctx context.Context, cart domain.Cart) error
}

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go Service
type Service interface {
	Create(ctx context.Context, c domain.Cart) (domain.Cart, error)
	GetCart(ctx context.Context, id int64) (domain.Cart, error)
	UpdateTotal(ctx context.Context, id, total int64) (domain.Cart, error)
	// PatchMetadata 合并语义: 值为空串表示删除该键
	PatchMetadata(ctx context.Context, id int64, patch map[string]string) (domain.Cart, error)
	// AttachPromotionCodes 只挂生效中的优惠, 无效的码直接跳过
	AttachPromotionCodes(ctx context.Context, id int64, codes []string) (domain.Cart, error)
	DetachPromotionCodes(ctx context.Context, id int64, codes []string) (domain.Cart, error)
	// TransferCustomer 游客购物车归属到登录用户
	TransferCustomer(ctx context.Context, id, customerID int64) (domain.Cart, error)
	// CompleteCart 结账: 依次跑注册的校验器, 全部通过才生成订单
	CompleteCart(ctx context.Context, id, paymentID int64) (order.Order, error)
	// RegisterCheckoutValidator 只应该在启动装配阶段调用
	RegisterCheckoutValidator(v CheckoutValidator)
}

type service struct {
	repo         repository.CartRepository
	promotionSvc promotion.Service
	orderSvc     order.Service
	producer     event.CartEventProducer
	logger       *elog.Component

	mu         sync.RWMutex
	validators []CheckoutValidator
}

func NewCartService(repo repository.CartRepository,
	promotionSvc promotion.Service,
	orderSvc order.Service,
	producer event.CartEventProducer) Service {
	return &service{
		repo:         repo,
		promotionSvc: promotionSvc,
		orderSvc:     orderSvc,
		producer:     producer,
		logger:       elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, c domain.Cart) (domain.Cart, error) {
	c.Status = domain.StatusActive
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Cart{}, err
	}
	c.ID = id
	s.produceUpdated(ctx, c.ID, c.CustomerID)
	return c, nil
}

func (s *service) GetCart(ctx context.Context, id int64) (domain.Cart, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) UpdateTotal(ctx context.Context, id, total int64) (domain.Cart, error) {
	if err := s.repo.UpdateTotal(ctx, id, total); err != nil {
		return domain.Cart{}, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Cart{}, err
	}
	s.produceUpdated(ctx, c.ID, c.CustomerID)
	return c, nil
}

func (s *service) PatchMetadata(ctx context.Context, id int64, patch map[string]string) (domain.Cart, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Cart{}, err
	}
	merged := make(map[string]string, len(c.Metadata)+len(patch))
	for k, v := range c.Metadata {
		merged[k] = v
	}
	for k, v := range patch {
		if v == "" {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	if err = s.repo.UpdateMetadata(ctx, id, merged); err != nil {
		return domain.Cart{}, err
	}
	c.Metadata = merged
	s.produceUpdated(ctx, c.ID, c.CustomerID)
	return c, nil
}

func (s *service) AttachPromotionCodes(ctx context.Context, id int64, codes []string) (domain.Cart, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Cart{}, err
	}
	if c.Status != domain.StatusActive {
		return domain.Cart{}, ErrCartCompleted
	}
	promotions, err := s.promotionSvc.FindByCodes(ctx, codes)
	if err != nil {
		return domain.Cart{}, err
	}
	applicable := slice.FilterMap(promotions, func(_ int, src promotion.Promotion) (domain.AppliedPromotion, bool) {
		return domain.AppliedPromotion{
			ID:   src.ID,
			Code: src.Code,
		}, src.Status == promotion.StatusActive
	})
	n, err := s.repo.AttachPromotions(ctx, id, applicable)
	if err != nil {
		return domain.Cart{}, err
	}
	if n > 0 {
		s.produceUpdated(ctx, c.ID, c.CustomerID)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) DetachPromotionCodes(ctx context.Context, id int64, codes []string) (domain.Cart, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Cart{}, err
	}
	if c.Status != domain.StatusActive {
		return domain.Cart{}, ErrCartCompleted
	}
	ids := slice.FilterMap(c.Promotions, func(_ int, src domain.AppliedPromotion) (int64, bool) {
		for _, code := range codes {
			if src.Code == code {
				return src.ID, true
			}
		}
		return 0, false
	})
	n, err := s.repo.DetachPromotions(ctx, id, ids)
	if err != nil {
		return domain.Cart{}, err
	}
	if n > 0 {
		s.produceUpdated(ctx, c.ID, c.CustomerID)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) TransferCustomer(ctx context.Context, id, customerID int64) (domain.Cart, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Cart{}, err
	}
	if c.CustomerID == customerID {
		return c, nil
	}
	if err = s.repo.UpdateCustomer(ctx, id, customerID); err != nil {
		return domain.Cart{}, err
	}
	c.CustomerID = customerID
	evt := event.CartTransferredEvent{
		CartID:     c.ID,
		CustomerID: customerID,
	}
	if err = s.producer.ProduceTransferred(ctx, evt); err != nil {
		s.logger.Error("发送购物车归属变更事件失败",
			elog.FieldErr(err),
			elog.Any("事件", evt),
		)
	}
	return c, nil
}

func (s *service) CompleteCart(ctx context.Context, id, paymentID int64) (order.Order, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return order.Order{}, err
	}
	if c.Status != domain.StatusActive {
		return order.Order{}, ErrCartCompleted
	}
	s.mu.RLock()
	validators := s.validators
	s.mu.RUnlock()
	for _, v := range validators {
		if err = v.Validate(ctx, c); err != nil {
			return order.Order{}, err
		}
	}
	o, err := s.orderSvc.Create(ctx, order.Order{
		BuyerID:      c.CustomerID,
		CartID:       c.ID,
		PaymentID:    paymentID,
		Total:        c.Total,
		CurrencyCode: c.CurrencyCode,
	})
	if err != nil {
		return order.Order{}, err
	}
	if err = s.repo.MarkCompleted(ctx, id); err != nil {
		// 订单已经生成, 购物车状态落后只影响展示, 记日志
		s.logger.Error("标记购物车完成失败",
			elog.FieldErr(err),
			elog.Int64("cartID", id),
		)
	}
	return o, nil
}

func (s *service) RegisterCheckoutValidator(v CheckoutValidator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validators = append(s.validators, v)
}

func (s *service) produceUpdated(ctx context.Context, cartID, customerID int64) {
	evt := event.CartUpdatedEvent{
		CartID:     cartID,
		CustomerID: customerID,
	}
	if err := s.producer.ProduceUpdated(ctx, evt); err != nil {
		s.logger.Error("发送购物车更新事件失败",
			elog.FieldErr(err),
			elog.Any("事件", evt),
		)
	}
}

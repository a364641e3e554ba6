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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/dao"
)

var (
	ErrCartNotFound  = dao.ErrRecordNotFound
	ErrCartCompleted = dao.ErrCartCompleted
)

type CartRepository interface {
	Create(ctx context.Context, c domain.Cart) (int64, error)
	// FindByID 连同挂在购物车上的优惠一起查出来
	FindByID(ctx context.Context, id int64) (domain.Cart, error)
	UpdateMetadata(ctx context.Context, id int64, metadata map[string]string) error
	UpdateCustomer(ctx context.Context, id, customerID int64) error
	UpdateTotal(ctx context.Context, id, total int64) error
	MarkCompleted(ctx context.Context, id int64) error
	AttachPromotions(ctx context.Context, cartID int64, ps []domain.AppliedPromotion) (int64, error)
	DetachPromotions(ctx context.Context, cartID int64, promotionIDs []int64) (int64, error)
}

type cartRepository struct {
	dao dao.CartDAO
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{dao: d}
}

func (r *cartRepository) Create(ctx context.Context, c domain.Cart) (int64, error) {
	return r.dao.Insert(ctx, dao.Cart{
		CustomerId:   c.CustomerID,
		CurrencyCode: c.CurrencyCode,
		Total:        c.Total,
		Metadata: sqlx.JsonColumn[map[string]string]{
			Val:   c.Metadata,
			Valid: c.Metadata != nil,
		},
		Status: c.Status.ToUint8(),
	})
}

func (r *cartRepository) FindByID(ctx context.Context, id int64) (domain.Cart, error) {
	entity, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Cart{}, err
	}
	ps, err := r.dao.FindPromotions(ctx, id)
	if err != nil {
		return domain.Cart{}, err
	}
	return r.toDomain(entity, ps), nil
}

func (r *cartRepository) UpdateMetadata(ctx context.Context, id int64, metadata map[string]string) error {
	return r.dao.UpdateMetadata(ctx, id, metadata)
}

func (r *cartRepository) UpdateCustomer(ctx context.Context, id, customerID int64) error {
	return r.dao.UpdateCustomer(ctx, id, customerID)
}

func (r *cartRepository) UpdateTotal(ctx context.Context, id, total int64) error {
	return r.dao.UpdateTotal(ctx, id, total)
}

func (r *cartRepository) MarkCompleted(ctx context.Context, id int64) error {
	return r.dao.MarkCompleted(ctx, id)
}

func (r *cartRepository) AttachPromotions(ctx context.Context, cartID int64, ps []domain.AppliedPromotion) (int64, error) {
	return r.dao.AttachPromotions(ctx, slice.Map(ps, func(_ int, src domain.AppliedPromotion) dao.CartPromotion {
		return dao.CartPromotion{
			CartId:      cartID,
			PromotionId: src.ID,
			Code:        src.Code,
		}
	}))
}

func (r *cartRepository) DetachPromotions(ctx context.Context, cartID int64, promotionIDs []int64) (int64, error) {
	return r.dao.DetachPromotions(ctx, cartID, promotionIDs)
}

func (r *cartRepository) toDomain(c dao.Cart, ps []dao.CartPromotion) domain.Cart {
	return domain.Cart{
		ID:           c.Id,
		CustomerID:   c.CustomerId,
		CurrencyCode: c.CurrencyCode,
		Total:        c.Total,
		Metadata:     c.Metadata.Val,
		Promotions: slice.Map(ps, func(_ int, src dao.CartPromotion) domain.AppliedPromotion {
			return domain.AppliedPromotion{
				ID:   src.PromotionId,
				Code: src.Code,
			}
		}),
		Status: domain.Status(c.Status),
	}
}

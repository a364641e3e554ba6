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
	"github.com/ecodeclub/eshop/internal/promotion/internal/domain"
	"github.com/ecodeclub/eshop/internal/promotion/internal/repository/dao"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrDuplicatedCode = dao.ErrDuplicatedCode
)

type PromotionRepository interface {
	Create(ctx context.Context, p domain.Promotion) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Promotion, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Promotion, error)
	FindByCode(ctx context.Context, code string) (domain.Promotion, error)
	FindByCodes(ctx context.Context, codes []string) ([]domain.Promotion, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
}

type promotionRepository struct {
	dao dao.PromotionDAO
}

func NewPromotionRepository(d dao.PromotionDAO) PromotionRepository {
	return &promotionRepository{dao: d}
}

func (r *promotionRepository) Create(ctx context.Context, p domain.Promotion) (int64, error) {
	entity, rules := r.toEntity(p)
	return r.dao.Create(ctx, entity, rules)
}

func (r *promotionRepository) FindByID(ctx context.Context, id int64) (domain.Promotion, error) {
	entity, rules, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Promotion{}, err
	}
	return r.toDomain(entity, rules), nil
}

func (r *promotionRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Promotion, error) {
	entities, rules, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Promotion) domain.Promotion {
		return r.toDomain(src, rules[src.Id])
	}), nil
}

func (r *promotionRepository) FindByCode(ctx context.Context, code string) (domain.Promotion, error) {
	entity, rules, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Promotion{}, err
	}
	return r.toDomain(entity, rules), nil
}

func (r *promotionRepository) FindByCodes(ctx context.Context, codes []string) ([]domain.Promotion, error) {
	entities, rules, err := r.dao.FindByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Promotion) domain.Promotion {
		return r.toDomain(src, rules[src.Id])
	}), nil
}

func (r *promotionRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.ToUint8())
}

func (r *promotionRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *promotionRepository) toEntity(p domain.Promotion) (dao.Promotion, []dao.PromotionRule) {
	entity := dao.Promotion{
		Id:                 p.ID,
		Code:               p.Code,
		Status:             p.Status.ToUint8(),
		IsAutomatic:        p.IsAutomatic,
		MethodType:         p.Method.Type,
		TargetType:         p.Method.TargetType,
		Value:              p.Method.Value,
		CurrencyCode:       p.Method.CurrencyCode,
		CampaignName:       p.Campaign.Name,
		CampaignUsageLimit: p.Campaign.UsageLimit,
	}
	rules := slice.Map(p.Rules, func(_ int, src domain.Rule) dao.PromotionRule {
		return dao.PromotionRule{
			Attribute: src.Attribute,
			Operator:  src.Operator,
			Values: sqlx.JsonColumn[[]string]{
				Val:   src.Values,
				Valid: true,
			},
		}
	})
	return entity, rules
}

func (r *promotionRepository) toDomain(entity dao.Promotion, rules []dao.PromotionRule) domain.Promotion {
	return domain.Promotion{
		ID:          entity.Id,
		Code:        entity.Code,
		Status:      domain.Status(entity.Status),
		IsAutomatic: entity.IsAutomatic,
		Method: domain.ApplicationMethod{
			Type:         entity.MethodType,
			TargetType:   entity.TargetType,
			Value:        entity.Value,
			CurrencyCode: entity.CurrencyCode,
		},
		Rules: slice.Map(rules, func(_ int, src dao.PromotionRule) domain.Rule {
			return domain.Rule{
				Attribute: src.Attribute,
				Operator:  src.Operator,
				Values:    src.Values.Val,
			}
		}),
		Campaign: domain.Campaign{
			Name:       entity.CampaignName,
			UsageLimit: entity.CampaignUsageLimit,
		},
	}
}

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
	"errors"

	"github.com/ecodeclub/eshop/internal/promotion/internal/domain"
	"github.com/ecodeclub/eshop/internal/promotion/internal/repository"
)

var (
	ErrPromotionNotFound = repository.ErrRecordNotFound
	ErrDuplicatedCode    = repository.ErrDuplicatedCode
	ErrEmptyCode         = errors.New("优惠码不能为空")
)

//go:generate mockgen -source=./service.go -package=promotionmocks -destination=../../mocks/promotion.mock.go Service
type Service interface {
	Create(ctx context.Context, p domain.Promotion) (domain.Promotion, error)
	FindByID(ctx context.Context, id int64) (domain.Promotion, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Promotion, error)
	FindByCode(ctx context.Context, code string) (domain.Promotion, error)
	FindByCodes(ctx context.Context, codes []string) ([]domain.Promotion, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo repository.PromotionRepository
}

func NewPromotionService(repo repository.PromotionRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, p domain.Promotion) (domain.Promotion, error) {
	if p.Code == "" {
		return domain.Promotion{}, ErrEmptyCode
	}
	if p.Status == 0 {
		p.Status = domain.StatusActive
	}
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Promotion{}, err
	}
	p.ID = id
	return p, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Promotion, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.Promotion, error) {
	if len(ids) == 0 {
		return []domain.Promotion{}, nil
	}
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) FindByCode(ctx context.Context, code string) (domain.Promotion, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *service) FindByCodes(ctx context.Context, codes []string) ([]domain.Promotion, error) {
	if len(codes) == 0 {
		return []domain.Promotion{}, nil
	}
	return s.repo.FindByCodes(ctx, codes)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

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

	"github.com/ecodeclub/eshop/internal/customer/internal/domain"
	"github.com/ecodeclub/eshop/internal/customer/internal/repository"
)

var (
	ErrCustomerNotFound = repository.ErrRecordNotFound
	ErrDuplicatedEmail  = repository.ErrDuplicatedEmail
)

//go:generate mockgen -source=./service.go -package=customermocks -destination=../../mocks/customer.mock.go Service
type Service interface {
	Create(ctx context.Context, c domain.Customer) (domain.Customer, error)
	Profile(ctx context.Context, id int64) (domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (domain.Customer, error)
	AssignTier(ctx context.Context, customerID, tierID int64) error
	// UpgradeTierOnOrder 下单后累计消费并按门槛升级等级, 只升不降
	UpgradeTierOnOrder(ctx context.Context, customerID, orderTotal int64) error
	CreateTier(ctx context.Context, t domain.Tier) (domain.Tier, error)
	FindTier(ctx context.Context, id int64) (domain.Tier, error)
	ListTiers(ctx context.Context) ([]domain.Tier, error)
}

type service struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Customer{}, err
	}
	c.ID = id
	return c, nil
}

func (s *service) Profile(ctx context.Context, id int64) (domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByEmail(ctx context.Context, email string) (domain.Customer, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) AssignTier(ctx context.Context, customerID, tierID int64) error {
	// tierID 为 0 表示摘掉等级, 不需要校验
	if tierID != 0 {
		if _, err := s.repo.FindTierByID(ctx, tierID); err != nil {
			return err
		}
	}
	return s.repo.UpdateTier(ctx, customerID, tierID)
}

func (s *service) UpgradeTierOnOrder(ctx context.Context, customerID, orderTotal int64) error {
	if customerID == 0 || orderTotal <= 0 {
		return nil
	}
	c, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		// 买家档案没了就算了, 等级升级不值得让消费方重试
		if errors.Is(err, ErrCustomerNotFound) {
			return nil
		}
		return err
	}
	if !c.HasAccount {
		return nil
	}
	total, err := s.repo.AddSpend(ctx, customerID, orderTotal)
	if err != nil {
		return err
	}
	tiers, err := s.repo.ListTiers(ctx)
	if err != nil {
		return err
	}
	var cur, best domain.Tier
	for _, t := range tiers {
		if t.ID == c.TierID {
			cur = t
		}
		// 没配门槛的等级只能手工分配
		if t.MinSpend > 0 && t.MinSpend <= total && t.MinSpend > best.MinSpend {
			best = t
		}
	}
	// 手工分配的无门槛等级不被自动升级顶掉
	if c.TierID != 0 && cur.MinSpend == 0 {
		return nil
	}
	if best.ID == 0 || best.ID == c.TierID || best.MinSpend <= cur.MinSpend {
		return nil
	}
	return s.repo.UpdateTier(ctx, customerID, best.ID)
}

func (s *service) CreateTier(ctx context.Context, t domain.Tier) (domain.Tier, error) {
	id, err := s.repo.CreateTier(ctx, t)
	if err != nil {
		return domain.Tier{}, err
	}
	t.ID = id
	return t, nil
}

func (s *service) FindTier(ctx context.Context, id int64) (domain.Tier, error) {
	return s.repo.FindTierByID(ctx, id)
}

func (s *service) ListTiers(ctx context.Context) ([]domain.Tier, error) {
	return s.repo.ListTiers(ctx)
}

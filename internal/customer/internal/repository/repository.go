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
	"github.com/ecodeclub/eshop/internal/customer/internal/domain"
	"github.com/ecodeclub/eshop/internal/customer/internal/repository/dao"
)

var (
	ErrRecordNotFound  = dao.ErrRecordNotFound
	ErrDuplicatedEmail = dao.ErrDuplicatedEmail
)

type CustomerRepository interface {
	Create(ctx context.Context, c domain.Customer) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (domain.Customer, error)
	UpdateTier(ctx context.Context, customerID, tierID int64) error
	// AddSpend 累加消费金额, 返回累加后的总额
	AddSpend(ctx context.Context, customerID, amount int64) (int64, error)
	CreateTier(ctx context.Context, t domain.Tier) (int64, error)
	FindTierByID(ctx context.Context, id int64) (domain.Tier, error)
	ListTiers(ctx context.Context) ([]domain.Tier, error)
}

type customerRepository struct {
	dao dao.CustomerDAO
}

func NewCustomerRepository(d dao.CustomerDAO) CustomerRepository {
	return &customerRepository{dao: d}
}

func (r *customerRepository) Create(ctx context.Context, c domain.Customer) (int64, error) {
	return r.dao.Insert(ctx, dao.Customer{
		Email:      c.Email,
		FirstName:  c.FirstName,
		HasAccount: c.HasAccount,
		TierId:     c.TierID,
	})
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (domain.Customer, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}
	return r.toDomain(c), nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (domain.Customer, error) {
	c, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Customer{}, err
	}
	return r.toDomain(c), nil
}

func (r *customerRepository) UpdateTier(ctx context.Context, customerID, tierID int64) error {
	return r.dao.UpdateTier(ctx, customerID, tierID)
}

func (r *customerRepository) AddSpend(ctx context.Context, customerID, amount int64) (int64, error) {
	return r.dao.AddSpend(ctx, customerID, amount)
}

func (r *customerRepository) CreateTier(ctx context.Context, t domain.Tier) (int64, error) {
	return r.dao.InsertTier(ctx, dao.CustomerTier{
		Name:        t.Name,
		PromotionId: t.PromotionID,
		MinSpend:    t.MinSpend,
	})
}

func (r *customerRepository) FindTierByID(ctx context.Context, id int64) (domain.Tier, error) {
	t, err := r.dao.FindTierByID(ctx, id)
	if err != nil {
		return domain.Tier{}, err
	}
	return r.toDomainTier(t), nil
}

func (r *customerRepository) ListTiers(ctx context.Context) ([]domain.Tier, error) {
	ts, err := r.dao.ListTiers(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(ts, func(_ int, src dao.CustomerTier) domain.Tier {
		return r.toDomainTier(src)
	}), nil
}

func (r *customerRepository) toDomain(c dao.Customer) domain.Customer {
	return domain.Customer{
		ID:         c.Id,
		Email:      c.Email,
		FirstName:  c.FirstName,
		HasAccount: c.HasAccount,
		TierID:     c.TierId,
		TotalSpend: c.TotalSpend,
	}
}

func (r *customerRepository) toDomainTier(t dao.CustomerTier) domain.Tier {
	return domain.Tier{
		ID:          t.Id,
		Name:        t.Name,
		PromotionID: t.PromotionId,
		MinSpend:    t.MinSpend,
	}
}
